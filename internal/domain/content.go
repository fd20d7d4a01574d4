package domain

// CareGuide is a static editorial article about orchid care.
type CareGuide struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Excerpt  string `json:"excerpt"`
	Body     string `json:"body,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	Category string `json:"category"`
	ReadTime int    `json:"read_time_minutes"`
	Featured bool   `json:"featured"`
}

// StoreInfo is the static about/contact information for the shop.
type StoreInfo struct {
	Name        string   `json:"name"`
	Tagline     string   `json:"tagline"`
	Description string   `json:"description"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Address     string   `json:"address"`
	Hours       []string `json:"hours"`
}

// ContactMessage is a message submitted through the contact form. It is
// validated and logged; no mail is sent.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
