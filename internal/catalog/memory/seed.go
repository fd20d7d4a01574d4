package memory

import "github.com/momomonster549/ecom-macsorchids/internal/domain"

// seedProducts returns the mock orchid catalog. IDs are stable; the stores
// persist snapshots keyed by them.
func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:             "1",
			Name:           "Phalaenopsis Orchid - Pink Blush",
			Description:    "A stunning pink Phalaenopsis orchid with delicate blooms that last for months. Perfect for beginners and experienced growers alike.",
			Category:       "Phalaenopsis",
			Price:          29.99,
			InStock:        true,
			StockCount:     24,
			Rating:         4.8,
			ReviewCount:    2,
			Difficulty:     domain.DifficultyBeginner,
			BloomingSeason: domain.SeasonYearRound,
			Featured:       true,
			Images: []string{
				"https://images.macsorchids.example/phalaenopsis-pink-1.jpg",
				"https://images.macsorchids.example/phalaenopsis-pink-2.jpg",
				"https://images.macsorchids.example/phalaenopsis-pink-3.jpg",
			},
			Care: &domain.CareInstructions{
				Light:       "Bright, indirect light. Avoid direct sunlight which can burn leaves.",
				Watering:    "Water thoroughly when the growing medium is nearly dry. Typically once a week in summer, less in winter.",
				Temperature: "Prefers temperatures between 65-80°F (18-27°C) during the day and slightly cooler at night.",
				Humidity:    "Enjoys humidity of 50-70%. Consider using a humidifier or humidity tray.",
				Fertilizer:  "Feed with a balanced orchid fertilizer diluted to half strength every 2 weeks during growing season.",
				Repotting:   "Repot every 1-2 years or when the growing medium breaks down.",
				Notes:       "Remove spent flower spikes at the base or cut just above a node to encourage reblooming.",
			},
			Features: []string{
				"Long-lasting blooms (up to 3 months)",
				"Elegant arching flower spike",
				"Comes in decorative ceramic pot",
				"Includes care guide",
			},
			Specifications: map[string]string{
				"Plant Height": "18-24 inches (including pot)",
				"Pot Size":     "5 inches",
				"Bloom Size":   "3-4 inches",
				"Fragrance":    "None",
				"Light Needs":  "Medium",
				"Water Needs":  "Low",
			},
		},
		{
			ID:             "2",
			Name:           "Cattleya Orchid - Royal Purple",
			Description:    "A magnificent Cattleya with vibrant purple blooms and intoxicating fragrance. The queen of orchids for the discerning collector.",
			Category:       "Cattleya",
			Price:          49.99,
			InStock:        true,
			StockCount:     9,
			Rating:         4.9,
			ReviewCount:    1,
			Difficulty:     domain.DifficultyIntermediate,
			BloomingSeason: domain.SeasonSpring,
			IsFragrant:     true,
			Featured:       true,
			Images: []string{
				"https://images.macsorchids.example/cattleya-purple-1.jpg",
				"https://images.macsorchids.example/cattleya-purple-2.jpg",
			},
			Care: &domain.CareInstructions{
				Light:       "Bright light with some direct morning sun. Protect from intense afternoon sun.",
				Watering:    "Allow to dry slightly between waterings. Water thoroughly when medium is approaching dryness.",
				Temperature: "Prefers temperatures of 70-85°F (21-29°C) during the day and 55-65°F (13-18°C) at night.",
				Humidity:    "Requires 50-70% humidity. Use humidity trays or room humidifiers.",
				Fertilizer:  "Feed weekly with a balanced orchid fertilizer at 1/4 to 1/2 strength.",
				Repotting:   "Repot every 2-3 years when new growth starts, usually after blooming.",
				Notes:       "Provide good air circulation to prevent fungal issues.",
			},
			Features: []string{
				"Intensely fragrant blooms",
				"Vibrant royal purple color",
				"Large, showy flowers (5-7 inches)",
				"Mounted on natural cork bark",
			},
			Specifications: map[string]string{
				"Plant Height": "12-18 inches",
				"Mount Size":   "8 x 10 inches",
				"Bloom Size":   "5-7 inches",
				"Fragrance":    "Strong, sweet",
				"Light Needs":  "High",
				"Water Needs":  "Medium",
			},
		},
		{
			ID:             "3",
			Name:           "Dendrobium Orchid - Sunshine",
			Description:    "A cheerful yellow Dendrobium with multiple flower spikes and abundant blooms. Brings a touch of sunshine to any space.",
			Category:       "Dendrobium",
			Price:          34.99,
			InStock:        true,
			StockCount:     15,
			Rating:         4.7,
			Difficulty:     domain.DifficultyIntermediate,
			BloomingSeason: domain.SeasonSummer,
			IsFragrant:     true,
			IsNew:          true,
			Images: []string{
				"https://images.macsorchids.example/dendrobium-sunshine-1.jpg",
			},
			Care: &domain.CareInstructions{
				Light:       "Bright light with some direct morning sun. Protect from intense afternoon sun.",
				Watering:    "Water thoroughly when the growing medium is nearly dry. Reduce watering in winter.",
				Temperature: "Prefers temperatures of 70-85°F (21-29°C) during the day and 60-65°F (15-18°C) at night.",
				Humidity:    "Prefers 50-70% humidity. Mist occasionally during dry periods.",
				Fertilizer:  "Feed weekly with a balanced orchid fertilizer at 1/4 strength during growing season.",
				Repotting:   "Repot every 2 years or when the medium breaks down.",
				Notes:       "Requires a distinct dry, cool rest period in winter to initiate blooming.",
			},
		},
		{
			ID:             "4",
			Name:           "Vanda Orchid - Blue Magic",
			Description:    "A spectacular blue Vanda with large, flat flowers and intense color. A true showstopper for the experienced grower.",
			Category:       "Vanda",
			Price:          59.99,
			InStock:        false,
			Rating:         4.9,
			Difficulty:     domain.DifficultyAdvanced,
			BloomingSeason: domain.SeasonSummer,
			IsFragrant:     true,
			Images: []string{
				"https://images.macsorchids.example/vanda-blue-1.jpg",
			},
		},
		{
			ID:             "5",
			Name:           "Oncidium Orchid - Dancing Lady",
			Description:    "Charming yellow and brown flowers resembling dancing ladies. Produces sprays of numerous small blooms.",
			Category:       "Oncidium",
			Price:          39.99,
			InStock:        true,
			StockCount:     11,
			Rating:         4.6,
			Difficulty:     domain.DifficultyIntermediate,
			BloomingSeason: domain.SeasonFall,
			IsNew:          true,
			Images: []string{
				"https://images.macsorchids.example/oncidium-dancing-1.jpg",
			},
		},
		{
			ID:          "6",
			Name:        "Premium Orchid Potting Mix",
			Description: "Specially formulated mix for healthy orchid growth. Contains bark, charcoal, and sphagnum moss for optimal drainage and aeration.",
			Category:    "Supplies",
			Subcategory: "Growing Media",
			Price:       14.99,
			InStock:     true,
			StockCount:  120,
			Rating:      4.8,
			Images: []string{
				"https://images.macsorchids.example/potting-mix-1.jpg",
			},
		},
		{
			ID:          "7",
			Name:        "Orchid Fertilizer - Bloom Booster",
			Description: "Specialized fertilizer formulated to encourage abundant blooming in all orchid varieties.",
			Category:    "Supplies",
			Subcategory: "Fertilizers",
			Price:       12.99,
			InStock:     true,
			StockCount:  85,
			Rating:      4.7,
			Images: []string{
				"https://images.macsorchids.example/fertilizer-1.jpg",
			},
		},
		{
			ID:          "8",
			Name:        "Orchid Gift Set - Beginner's Collection",
			Description: "Perfect gift for the aspiring orchid enthusiast. Includes a Phalaenopsis orchid, care guide, and essential supplies.",
			Category:    "Gifts",
			Price:       49.99,
			InStock:     true,
			StockCount:  18,
			Rating:      4.9,
			Featured:    true,
			IsNew:       true,
			Images: []string{
				"https://images.macsorchids.example/gift-set-1.jpg",
			},
			Variants: []domain.ProductVariant{
				{ID: 1, Name: "Classic", Price: 49.99, InStock: true},
				{ID: 2, Name: "Deluxe (with ceramic pot)", Price: 64.99, InStock: true},
			},
		},
	}
}

// seedReviews returns the mock customer reviews.
func seedReviews() []domain.Review {
	return []domain.Review{
		{
			ID:        "r1",
			ProductID: "1",
			UserName:  "Jane S.",
			Rating:    5,
			Title:     "Beautiful and long-lasting",
			Comment:   "This Phalaenopsis has been blooming for over 3 months now. The flowers are gorgeous and the plant arrived in perfect condition.",
			Date:      "2023-05-15",
		},
		{
			ID:        "r2",
			ProductID: "1",
			UserName:  "Michael T.",
			Rating:    4,
			Title:     "Great for beginners",
			Comment:   "As a first-time orchid owner, I found this plant easy to care for. The care instructions were very helpful.",
			Date:      "2023-04-22",
		},
		{
			ID:        "r3",
			ProductID: "2",
			UserName:  "Orchid Enthusiast",
			Rating:    5,
			Title:     "Stunning fragrance",
			Comment:   "The fragrance of this Cattleya fills the entire room. Absolutely worth the price for such a spectacular specimen.",
			Date:      "2023-06-10",
		},
	}
}
