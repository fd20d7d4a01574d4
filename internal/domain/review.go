package domain

// Review is a customer review of a product.
type Review struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	UserName  string  `json:"user_name"`
	Rating    int     `json:"rating"`
	Title     string  `json:"title"`
	Comment   string  `json:"comment"`
	Date      string  `json:"date"`
}
