package catalog

import "github.com/m04kA/SMC-SalonBooking/internal/domain"

var defaultServices = []domain.Service{
	{
		ID:              "manicure-classic",
		Name:            "Classic Manicure",
		Description:     "Traditional manicure with nail shaping, cuticle care, and polish",
		DurationMinutes: 45,
		Price:           35,
		Category:        domain.CategoryManicure,
	},
	{
		ID:              "manicure-gel",
		Name:            "Gel Manicure",
		Description:     "Long-lasting gel polish with professional finish",
		DurationMinutes: 60,
		Price:           55,
		Category:        domain.CategoryManicure,
	},
	{
		ID:              "pedicure-classic",
		Name:            "Classic Pedicure",
		Description:     "Relaxing pedicure with foot soak, exfoliation, and polish",
		DurationMinutes: 60,
		Price:           45,
		Category:        domain.CategoryPedicure,
	},
	{
		ID:              "pedicure-spa",
		Name:            "Spa Pedicure",
		Description:     "Luxurious spa pedicure with massage and premium treatments",
		DurationMinutes: 75,
		Price:           65,
		Category:        domain.CategoryPedicure,
	},
	{
		ID:              "nailart-simple",
		Name:            "Simple Nail Art",
		Description:     "Elegant nail art designs with up to 3 colors",
		DurationMinutes: 75,
		Price:           70,
		Category:        domain.CategoryNailArt,
	},
	{
		ID:              "nailart-complex",
		Name:            "Complex Nail Art",
		Description:     "Intricate custom designs with embellishments",
		DurationMinutes: 120,
		Price:           120,
		Category:        domain.CategoryNailArt,
	},
}

var defaultAddons = []domain.Addon{
	{ID: "addon-french", Name: "French Tips", Description: "Classic or modern French tip design", Price: 10},
	{ID: "addon-massage", Name: "Hand/Foot Massage", Description: "10-minute relaxing massage", Price: 15},
	{ID: "addon-paraffin", Name: "Paraffin Treatment", Description: "Moisturizing paraffin wax treatment", Price: 12},
	{ID: "addon-design", Name: "Accent Nail Design", Description: "Special design on 1-2 accent nails", Price: 8},
	{ID: "addon-removal", Name: "Gel/Acrylic Removal", Description: "Safe removal of previous gel or acrylic", Price: 20},
}

var portfolioCategories = []Option{
	{Value: domain.PortfolioCategoryAll, Label: "All"},
	{Value: string(domain.PortfolioNatural), Label: "Natural"},
	{Value: string(domain.PortfolioFrench), Label: "French"},
	{Value: string(domain.PortfolioGel), Label: "Gel"},
	{Value: string(domain.PortfolioAcrylic), Label: "Acrylic"},
	{Value: string(domain.PortfolioNailArt), Label: "Nail Art"},
	{Value: string(domain.PortfolioOther), Label: "Other"},
}

var contactMethods = []Option{
	{Value: string(domain.ContactEmail), Label: "Email"},
	{Value: string(domain.ContactPhone), Label: "Phone"},
	{Value: string(domain.ContactInstagram), Label: "Instagram"},
}
