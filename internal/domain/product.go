package domain

// Care difficulty levels.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// Blooming seasons.
const (
	SeasonSpring    = "Spring"
	SeasonSummer    = "Summer"
	SeasonFall      = "Fall"
	SeasonWinter    = "Winter"
	SeasonYearRound = "Year-round"
)

// Product represents a catalog product. Products are created by the catalog
// provider and never mutated by the stores; the cart and wishlist keep copies
// of the product as it looked when it was added.
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Category       string            `json:"category"`
	Subcategory    string            `json:"subcategory,omitempty"`
	Price          float64           `json:"price"`
	Discount       int               `json:"discount,omitempty"`
	InStock        bool              `json:"in_stock"`
	StockCount     int               `json:"stock_count,omitempty"`
	Images         []string          `json:"images,omitempty"`
	Rating         float64           `json:"rating"`
	ReviewCount    int               `json:"review_count,omitempty"`
	Difficulty     string            `json:"difficulty,omitempty"`
	BloomingSeason string            `json:"blooming_season,omitempty"`
	IsFragrant     bool              `json:"is_fragrant"`
	Featured       bool              `json:"featured"`
	IsNew          bool              `json:"is_new"`
	FreeShipping   bool              `json:"free_shipping,omitempty"`
	Variants       []ProductVariant  `json:"variants,omitempty"`
	Care           *CareInstructions `json:"care_instructions,omitempty"`
	Features       []string          `json:"features,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
}

// ProductVariant is a purchasable variation of a product (e.g. pot size).
type ProductVariant struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	InStock bool    `json:"in_stock"`
}

// CareInstructions describe how to keep an orchid alive.
type CareInstructions struct {
	Light       string `json:"light"`
	Watering    string `json:"watering"`
	Temperature string `json:"temperature"`
	Humidity    string `json:"humidity,omitempty"`
	Fertilizer  string `json:"fertilizer,omitempty"`
	Repotting   string `json:"repotting,omitempty"`
	Notes       string `json:"additional_notes,omitempty"`
}
