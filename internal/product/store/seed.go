package store

func ptr(s string) *string { return &s }

// SeedProducts returns the fixed catalog loaded at startup.
func SeedProducts() []Product {
	return []Product{
		{ID: 1, Name: "Cotton T-Shirt", Price: 12.99, Description: ptr("Classic crew neck short sleeve t-shirt")},
		{ID: 2, Name: "Running Shoes", Price: 54.99, Description: ptr("Lightweight breathable sneakers for everyday wear")},
		{ID: 3, Name: "Reusable Water Bottle", Price: 19.99, Description: ptr("32oz insulated stainless steel water bottle")},
		{ID: 4, Name: "Yoga Mat", Price: 24.99, Description: ptr("Non-slip exercise mat, 1/4 inch thick")},
		{ID: 5, Name: "Backpack", Price: 39.99, Description: ptr("Durable everyday backpack with laptop compartment")},
		{ID: 6, Name: "Throw Blanket", Price: 29.99, Description: ptr("Soft fleece throw blanket, 50x60 inches")},
		{ID: 7, Name: "Coffee Mug", Price: 9.99, Description: ptr("Ceramic coffee mug, 12oz")},
		{ID: 8, Name: "Notebook Set", Price: 14.99, Description: ptr("Pack of 3 lined notebooks, A5 size")},
		{ID: 9, Name: "Scented Candle", Price: 16.99, Description: ptr("Soy wax candle, lavender scent, 40-hour burn")},
		{ID: 10, Name: "Pillow", Price: 22.99, Description: ptr("Standard size hypoallergenic bed pillow")},
	}
}
