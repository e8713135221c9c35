package catalog

// Seed returns the fixed default catalog used at first startup and after a
// global reset. Callers receive a fresh copy; mutating the returned slice
// never affects later seeds.
func Seed() []Project {
	return []Project{
		{
			ID:            "p1",
			Name:          "Aurum Sky Residences",
			Location:      "Worli, South Mumbai",
			StartingPrice: "₹ 4.5 Cr",
			Image:         "https://picsum.photos/id/122/800/600",
			Description:   "Experience the pinnacle of luxury living with sea-facing decks, concierge services, and world-class amenities in the heart of the financial district.",
			Amenities:     []string{"Infinity Pool", "Sky Lounge", "Private Gym", "Concierge", "Valet Parking"},
			Configurations: []Configuration{
				{Type: "3 BHK", Size: "1800 Sq. Ft.", Price: "₹ 4.5 Cr"},
				{Type: "4 BHK", Size: "2500 Sq. Ft.", Price: "₹ 6.8 Cr"},
				{Type: "Penthouse", Size: "4500 Sq. Ft.", Price: "₹ 12.5 Cr"},
			},
			IsFeatured: true,
		},
		{
			ID:            "p2",
			Name:          "Greenwood Estate",
			Location:      "Whitefield, Bangalore",
			StartingPrice: "₹ 1.2 Cr",
			Image:         "https://picsum.photos/id/78/800/600",
			Description:   "A serene sanctuary amidst the bustle of the IT hub. 80% open spaces, lush greenery, and sustainable living designed for the modern family.",
			Amenities:     []string{"Clubhouse", "Tennis Court", "Jogging Track", "Kids Play Area", "Amphitheater"},
			Configurations: []Configuration{
				{Type: "2 BHK", Size: "1100 Sq. Ft.", Price: "₹ 1.2 Cr"},
				{Type: "3 BHK", Size: "1550 Sq. Ft.", Price: "₹ 1.8 Cr"},
			},
			IsFeatured: true,
		},
		{
			ID:            "p3",
			Name:          "The Cobalt Tower",
			Location:      "Gachibowli, Hyderabad",
			StartingPrice: "₹ 95 L",
			Image:         "https://picsum.photos/id/188/800/600",
			Description:   "Modern high-rise living with smart-home automation and direct connectivity to the financial district.",
			Amenities:     []string{"Co-working Space", "Rooftop Garden", "Smart Security", "Indoor Games"},
			Configurations: []Configuration{
				{Type: "2 BHK", Size: "1250 Sq. Ft.", Price: "₹ 95 L"},
				{Type: "3 BHK", Size: "1600 Sq. Ft.", Price: "₹ 1.4 Cr"},
			},
			IsFeatured: false,
		},
	}
}
