// Package seed provides the demo dataset loaded at startup. All data
// lives in memory and is lost on process exit.
package seed

import "markethub/internal/domain"

// Dataset is the full demo state seeded into the repository at startup.
type Dataset struct {
	Customers []domain.Customer
	Stores    []domain.Store
	Products  []domain.Product
	Orders    []domain.Order
}

// Load returns a fresh copy of the demo dataset. Each call allocates new
// slices so callers can mutate the result freely.
func Load() *Dataset {
	products := demoProducts()
	return &Dataset{
		Customers: []domain.Customer{demoCustomer()},
		Stores:    demoStores(),
		Products:  products,
		Orders:    demoOrders(products),
	}
}

func demoCustomer() domain.Customer {
	return domain.Customer{
		ID:      "c1",
		Name:    "Alex Thompson",
		Email:   "alex.thompson@email.com",
		Phone:   "+1 (555) 123-4567",
		Address: "456 Oak Lane, Seattle, WA 98101",
		Avatar:  "https://i.pravatar.cc/150?u=alex",
	}
}

func demoStores() []domain.Store {
	return []domain.Store{
		{
			ID:             "s1",
			Name:           "EcoWear Collective",
			Logo:           "https://picsum.photos/seed/eco/200",
			Banner:         "https://picsum.photos/seed/ecob/800/400",
			Description:    "Sustainable fashion for the conscious consumer.",
			Rating:         4.8,
			ReviewsCount:   1240,
			Category:       "Fashion",
			CommissionRate: 10,
			Status:         domain.StoreStatusActive,
			PlatformDomain: "ecowear-store.myshopify.com",
		},
		{
			ID:             "s2",
			Name:           "TechHaven",
			Logo:           "https://picsum.photos/seed/tech/200",
			Banner:         "https://picsum.photos/seed/techb/800/400",
			Description:    "The latest gadgets and gear for tech enthusiasts.",
			Rating:         4.5,
			ReviewsCount:   850,
			Category:       "Electronics",
			CommissionRate: 8,
			Status:         domain.StoreStatusActive,
			PlatformDomain: "tech-haven-official.myshopify.com",
		},
		{
			ID:             "s3",
			Name:           "Urban Kitchen",
			Logo:           "https://picsum.photos/seed/kitchen/200",
			Banner:         "https://picsum.photos/seed/kitchenb/800/400",
			Description:    "Elevate your cooking with our premium kitchenware.",
			Rating:         4.9,
			ReviewsCount:   2100,
			Category:       "Home & Living",
			CommissionRate: 12,
			Status:         domain.StoreStatusActive,
			PlatformDomain: "urban-kitchen-co.myshopify.com",
		},
		{
			ID:             "s4",
			Name:           "Glow Skincare",
			Logo:           "https://picsum.photos/seed/glow/200",
			Banner:         "https://picsum.photos/seed/glowb/800/400",
			Description:    "Natural skincare products for a radiant you.",
			Rating:         4.7,
			ReviewsCount:   540,
			Category:       "Beauty",
			CommissionRate: 15,
			Status:         domain.StoreStatusActive,
			PlatformDomain: "glow-skin.myshopify.com",
		},
		{
			ID:             "s5",
			Name:           "Pet Paradise",
			Logo:           "https://picsum.photos/seed/pet/200",
			Banner:         "https://picsum.photos/seed/petb/800/400",
			Description:    "Everything your furry friends need and more.",
			Rating:         4.6,
			ReviewsCount:   920,
			Category:       "Pets",
			CommissionRate: 10,
			Status:         domain.StoreStatusPending,
			PlatformDomain: "pet-paradise-global.myshopify.com",
		},
	}
}

func demoProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "p1",
			StoreID:     "s1",
			Name:        "Organic Cotton T-Shirt",
			Description: "Soft, breathable organic cotton t-shirt in various colors. Ethically sourced and pre-shrunk for the perfect fit.",
			Price:       29.99,
			Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?auto=format&fit=crop&q=80&w=400",
			Category:    "Fashion",
			Stock:       50,
			Rating:      4.5,
			Trending:    true,
		},
		{
			ID:          "p2",
			StoreID:     "s1",
			Name:        "Recycled Denim Jeans",
			Description: "Classic fit jeans made from 100% recycled denim. Low environmental impact with maximum durability.",
			Price:       89.99,
			Image:       "https://images.unsplash.com/photo-1542272604-787c3835535d?auto=format&fit=crop&q=80&w=400",
			Category:    "Fashion",
			Stock:       25,
			Rating:      4.2,
		},
		{
			ID:          "p3",
			StoreID:     "s2",
			Name:        "Noise Cancelling Headphones",
			Description: "Premium wireless headphones with industry-leading ANC. Over-ear design with 40 hours of battery life.",
			Price:       299.99,
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&q=80&w=400",
			Category:    "Electronics",
			Stock:       15,
			Rating:      4.9,
			Trending:    true,
		},
		{
			ID:          "p4",
			StoreID:     "s2",
			Name:        "Smart Watch Series X",
			Description: "The ultimate fitness and connectivity companion. GPS, heart rate monitor, and water resistant up to 50m.",
			Price:       349.99,
			Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?auto=format&fit=crop&q=80&w=400",
			Category:    "Electronics",
			Stock:       10,
			Rating:      4.8,
			Trending:    true,
		},
		{
			ID:          "p5",
			StoreID:     "s3",
			Name:        "Cast Iron Dutch Oven",
			Description: "Durable cast iron dutch oven for all your cooking needs. Even heat distribution with an enamel finish.",
			Price:       129.99,
			Image:       "https://images.unsplash.com/photo-1584990344321-27461ad500b7?auto=format&fit=crop&q=80&w=400",
			Category:    "Home & Living",
			Stock:       20,
			Rating:      4.9,
		},
		{
			ID:          "p6",
			StoreID:     "s3",
			Name:        "Professional Knife Set",
			Description: "12-piece forged stainless steel knife set with block. Ergonomic handles for precision and safety.",
			Price:       199.99,
			Image:       "https://images.unsplash.com/photo-1593618998160-e34014e67546?auto=format&fit=crop&q=80&w=400",
			Category:    "Home & Living",
			Stock:       8,
			Rating:      4.7,
		},
		{
			ID:          "p7",
			StoreID:     "s4",
			Name:        "Hyaluronic Acid Serum",
			Description: "Deeply hydrating serum for all skin types. Restores moisture barrier and reduces fine lines.",
			Price:       45.00,
			Image:       "https://images.unsplash.com/photo-1620916566398-39f1143ab7be?auto=format&fit=crop&q=80&w=400",
			Category:    "Beauty",
			Stock:       100,
			Rating:      4.8,
			Trending:    true,
		},
		{
			ID:          "p8",
			StoreID:     "s4",
			Name:        "Mineral Sunscreen SPF 50",
			Description: "Non-greasy, reef-safe mineral sunscreen. Lightweight formula with broad spectrum protection.",
			Price:       24.00,
			Image:       "https://images.unsplash.com/photo-1556228720-195a672e8a03?auto=format&fit=crop&q=80&w=400",
			Category:    "Beauty",
			Stock:       150,
			Rating:      4.6,
		},
		{
			ID:          "p9",
			StoreID:     "s5",
			Name:        "Orthopedic Dog Bed",
			Description: "Memory foam bed for maximum comfort and support. Removable cover for easy cleaning.",
			Price:       79.99,
			Image:       "https://images.unsplash.com/photo-1541599540903-216a46ca1ad0?auto=format&fit=crop&q=80&w=400",
			Category:    "Pets",
			Stock:       12,
			Rating:      4.9,
			Trending:    true,
		},
		{
			ID:          "p10",
			StoreID:     "s5",
			Name:        "Interactive Cat Toy",
			Description: "Keep your cat entertained for hours with this toy. Encourages exercise and mental stimulation.",
			Price:       19.99,
			Image:       "https://images.unsplash.com/photo-1514888286974-6c03e2ca1dba?auto=format&fit=crop&q=80&w=400",
			Category:    "Pets",
			Stock:       45,
			Rating:      4.4,
		},
	}
}

func demoOrders(products []domain.Product) []domain.Order {
	return []domain.Order{
		{
			ID:           "ORD-5521",
			CustomerID:   "c1",
			CustomerName: "Alex Thompson",
			Items: []domain.CartItem{
				{Product: products[0], Quantity: 2},
				{Product: products[2], Quantity: 1},
			},
			Total:           359.97,
			Status:          domain.OrderStatusShipped,
			PaymentMethod:   domain.PaymentMethodCard,
			Date:            "2024-05-12",
			ShippingAddress: "456 Oak Lane, Seattle, WA 98101",
			Timeline: []domain.OrderStep{
				{Step: domain.StepOrderPlaced, Completed: true, Date: "May 12, 10:00 AM"},
				{Step: domain.StepPaymentConfirmed, Completed: true, Date: "May 12, 10:05 AM"},
				{Step: domain.StepProcessing, Completed: true, Date: "May 13, 09:00 AM"},
				{Step: domain.StepShipped, Completed: true, Date: "May 14, 02:00 PM"},
				{Step: domain.StepDelivered, Completed: false},
			},
		},
		{
			ID:           "ORD-8829",
			CustomerID:   "c1",
			CustomerName: "Alex Thompson",
			Items: []domain.CartItem{
				{Product: products[6], Quantity: 1},
			},
			Total:           45.00,
			Status:          domain.OrderStatusDelivered,
			PaymentMethod:   domain.PaymentMethodCOD,
			Date:            "2024-05-10",
			ShippingAddress: "456 Oak Lane, Seattle, WA 98101",
			Timeline: []domain.OrderStep{
				{Step: domain.StepOrderPlaced, Completed: true, Date: "May 10, 08:30 AM"},
				{Step: domain.StepPaymentConfirmed, Completed: true, Date: "May 10, 08:35 AM"},
				{Step: domain.StepProcessing, Completed: true, Date: "May 10, 11:00 AM"},
				{Step: domain.StepShipped, Completed: true, Date: "May 11, 09:00 AM"},
				{Step: domain.StepDelivered, Completed: true, Date: "May 11, 04:30 PM"},
			},
		},
	}
}
