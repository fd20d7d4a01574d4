package content

import "github.com/momomonster549/ecom-macsorchids/internal/domain"

func seedGuides() []domain.CareGuide {
	return []domain.CareGuide{
		{
			ID:       "featured-1",
			Title:    "The Complete Guide to Phalaenopsis Orchid Care",
			Slug:     "complete-phalaenopsis-care",
			Excerpt:  "Learn everything you need to know about caring for the most popular and beginner-friendly orchid variety, from watering and light requirements to reblooming tips.",
			Category: "beginner",
			ReadTime: 12,
			Featured: true,
		},
		{
			ID:       "1",
			Title:    "Watering Orchids: How Often and How Much",
			Slug:     "watering-orchids",
			Excerpt:  "Learn the proper watering techniques for different orchid varieties and how to adjust based on your home environment.",
			Category: "watering",
			ReadTime: 8,
		},
		{
			ID:       "2",
			Title:    "Light Requirements for Healthy Orchids",
			Slug:     "orchid-light-requirements",
			Excerpt:  "Discover the ideal light conditions for different orchid species and how to provide the right amount of light in your home.",
			Category: "lighting",
			ReadTime: 6,
		},
		{
			ID:       "3",
			Title:    "Repotting Your Orchid: Step-by-Step Guide",
			Slug:     "repotting-orchids",
			Excerpt:  "Learn when and how to repot your orchids, including selecting the right potting medium and container size.",
			Category: "repotting",
			ReadTime: 10,
		},
		{
			ID:       "4",
			Title:    "Orchid Fertilizing Schedule and Tips",
			Slug:     "orchid-fertilizing",
			Excerpt:  "Understand the nutritional needs of orchids and how to establish an effective fertilizing routine.",
			Category: "fertilizing",
			ReadTime: 7,
		},
		{
			ID:       "5",
			Title:    "Troubleshooting Common Orchid Problems",
			Slug:     "orchid-troubleshooting",
			Excerpt:  "Identify and resolve common issues like yellow leaves, root rot, pests, and failure to bloom.",
			Category: "troubleshooting",
			ReadTime: 9,
		},
		{
			ID:       "6",
			Title:    "Seasonal Orchid Care: Winter to Summer",
			Slug:     "seasonal-orchid-care",
			Excerpt:  "Adjust your orchid care routine throughout the year to account for seasonal changes in temperature, humidity, and light.",
			Category: "seasonal",
			ReadTime: 8,
		},
		{
			ID:       "7",
			Title:    "Orchids for Beginners: Top 5 Easy-to-Grow Varieties",
			Slug:     "beginner-orchid-varieties",
			Excerpt:  "Start your orchid journey with these forgiving, beautiful varieties perfect for novice growers.",
			Category: "beginner",
			ReadTime: 5,
		},
		{
			ID:       "8",
			Title:    "Creating the Perfect Humidity Environment for Orchids",
			Slug:     "orchid-humidity-guide",
			Excerpt:  "Learn different methods to increase humidity for your orchids, from humidity trays to room humidifiers.",
			Category: "watering",
			ReadTime: 6,
		},
		{
			ID:       "9",
			Title:    "How to Get Your Orchid to Rebloom",
			Slug:     "orchid-reblooming",
			Excerpt:  "Discover the secrets to encouraging your orchids to produce new flower spikes and bloom again.",
			Category: "beginner",
			ReadTime: 7,
		},
	}
}

func seedStoreInfo() domain.StoreInfo {
	return domain.StoreInfo{
		Name:        "Mac's Orchids",
		Tagline:     "Rare and beautiful orchids, grown with care",
		Description: "Family-run orchid nursery offering Phalaenopsis, Cattleya, Dendrobium, Vanda, and Oncidium varieties along with everything you need to keep them thriving.",
		Email:       "info@macsorchids.com",
		Phone:       "(555) 123-4567",
		Address:     "123 Bloom Street, Orchid City, OC 12345",
		Hours: []string{
			"Monday - Friday: 9am - 5pm",
			"Saturday: 10am - 4pm",
			"Sunday: Closed",
		},
	}
}
