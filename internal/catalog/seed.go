package catalog

// Seed returns the built-in catalog used when no catalog file is configured.
func Seed() (*Catalog, error) {
	return New(seedProducts(), seedCategories())
}

func seedCategories() []Category {
	return []Category{
		{ID: "clothing", Name: "Clothing", Image: "/modern-clothing-collection.png", ProductCount: 156},
		{ID: "shoes", Name: "Shoes", Image: "/stylish-sneakers-and-shoes.jpg", ProductCount: 89},
		{ID: "accessories", Name: "Accessories", Image: "/fashion-accessories-bags-watches.jpg", ProductCount: 67},
		{ID: "electronics", Name: "Electronics", Image: "/modern-electronics.png", ProductCount: 234},
	}
}

func seedProducts() []Product {
	return []Product{
		{
			ID:            "1",
			Name:          "Premium Cotton T-Shirt",
			Price:         15000,
			OriginalPrice: 20000,
			Image:         "/premium-cotton-t-shirt.png",
			Images: []string{
				"/premium-cotton-t-shirt-front.jpg",
				"/premium-cotton-t-shirt-back.jpg",
				"/premium-cotton-t-shirt-detail.jpg",
			},
			Category:    "clothing",
			Description: "Soft, breathable cotton t-shirt perfect for everyday wear. Made from 100% organic cotton with a comfortable fit.",
			Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
			Colors:      []string{"White", "Black", "Navy", "Gray"},
			Rating:      4.5,
			Reviews:     128,
			InStock:     true,
		},
		{
			ID:    "2",
			Name:  "Running Sneakers",
			Price: 45000,
			Image: "/modern-running-sneakers.jpg",
			Images: []string{
				"/running-sneakers-side-view.jpg",
				"/running-sneakers-top-view.jpg",
				"/running-sneakers-sole-detail.jpg",
			},
			Category:    "shoes",
			Description: "Lightweight running shoes with advanced cushioning technology for maximum comfort during workouts.",
			Sizes:       []string{"7", "7.5", "8", "8.5", "9", "9.5", "10", "10.5", "11", "11.5", "12"},
			Colors:      []string{"White", "Black", "Blue", "Red"},
			Rating:      4.8,
			Reviews:     256,
			InStock:     true,
		},
		{
			ID:            "3",
			Name:          "Leather Crossbody Bag",
			Price:         75000,
			OriginalPrice: 100000,
			Image:         "/leather-crossbody-bag.png",
			Images: []string{
				"/leather-crossbody-bag-front.jpg",
				"/leather-crossbody-bag-interior.jpg",
				"/leather-crossbody-bag-worn.jpg",
			},
			Category:    "accessories",
			Description: "Handcrafted genuine leather crossbody bag with adjustable strap and multiple compartments.",
			Sizes:       []string{"One Size"},
			Colors:      []string{"Brown", "Black", "Tan"},
			Rating:      4.7,
			Reviews:     89,
			InStock:     true,
		},
		{
			ID:    "4",
			Name:  "Wireless Headphones",
			Price: 120000,
			Image: "/wireless-headphones.png",
			Images: []string{
				"/wireless-headphones-side.png",
				"/wireless-headphones-folded.jpg",
				"/wireless-headphones-case.png",
			},
			Category:    "electronics",
			Description: "Premium wireless headphones with noise cancellation and 30-hour battery life.",
			Sizes:       []string{"One Size"},
			Colors:      []string{"Black", "White", "Silver"},
			Rating:      4.6,
			Reviews:     342,
			InStock:     true,
		},
		{
			ID:    "5",
			Name:  "Denim Jacket",
			Price: 40000,
			Image: "/classic-denim-jacket.png",
			Images: []string{
				"/denim-jacket-front.jpg",
				"/denim-jacket-back.png",
				"/denim-jacket-detail.png",
			},
			Category:    "clothing",
			Description: "Classic denim jacket with a modern fit. Perfect for layering in any season.",
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Colors:      []string{"Light Blue", "Dark Blue", "Black"},
			Rating:      4.4,
			Reviews:     167,
			InStock:     true,
		},
		{
			ID:            "6",
			Name:          "Smart Watch",
			Price:         180000,
			OriginalPrice: 210000,
			Image:         "/smartwatch-lifestyle.png",
			Images: []string{
				"/smart-watch-face.jpg",
				"/smartwatch-side-view.png",
				"/smart-watch-apps.jpg",
			},
			Category:    "electronics",
			Description: "Advanced smartwatch with health tracking, GPS, and 7-day battery life.",
			Sizes:       []string{"38mm", "42mm"},
			Colors:      []string{"Space Gray", "Silver", "Gold"},
			Rating:      4.9,
			Reviews:     523,
			InStock:     true,
		},
	}
}
