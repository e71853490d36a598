// Package mockdata holds the static catalog served in mock mode.
package mockdata

import "github.com/tair/storefront/internal/catalog/domain"

func f(v float64) *float64 { return &v }
func n(v int) *int         { return &v }

var products = []domain.Product{
	{
		ID: "1", Brand: "La Roche-Posay", Name: "Effaclar Duo+ Unifiant", Category: "skincare",
		Description: "Tinted corrective care for blemish-prone skin.",
		Price: 18.90, OriginalPrice: f(22.90), SaveAmount: f(4.00),
		Image: "/images/products/effaclar-duo.png",
		Rating: f(4.6), Reviews: n(212),
		Meta: map[string]interface{}{"caresPoints": 190},
		Badges: []domain.ProductBadge{{Label: "SALE", Color: domain.BadgeWarning}},
	},
	{
		ID: "2", Brand: "CeraVe", Name: "Hydrating Facial Cleanser", Category: "skincare",
		Price: 12.50, Image: "/images/products/cerave-cleanser.png",
		Rating: f(4.8), Reviews: n(540),
		Meta: map[string]interface{}{"caresPoints": 125},
		Badges: []domain.ProductBadge{{Label: "BESTSELLER", Color: domain.BadgePrimary}},
	},
	{
		ID: "3", Brand: "Vichy", Name: "Dercos Energy+ Shampoo", Category: "hair-care",
		Price: 14.20, OriginalPrice: f(16.70), SaveAmount: f(2.50),
		Image: "/images/products/dercos-energy.png",
		Rating: f(4.3), Reviews: n(88),
	},
	{
		ID: "4", Brand: "Korres", Name: "Argan Oil Conditioner", Category: "hair-care",
		Price: 9.80, Image: "/images/products/korres-argan.png",
		Rating: f(4.1), Reviews: n(47),
	},
	{
		ID: "5", Brand: "Solgar", Name: "Vitamin D3 2200 IU", Category: "vitamins",
		Price: 16.40, OriginalPrice: f(19.90), SaveAmount: f(3.50),
		Image: "/images/products/solgar-d3.png",
		Rating: f(4.9), Reviews: n(321),
		Badges: []domain.ProductBadge{{Label: "-18%", Color: domain.BadgeSuccess}},
	},
	{
		ID: "6", Brand: "Solgar", Name: "Magnesium Citrate", Category: "vitamins",
		Price: 21.00, Image: "/images/products/solgar-magnesium.png",
		Rating: f(4.7), Reviews: n(156),
	},
	{
		ID: "7", Brand: "Mustela", Name: "Gentle Cleansing Gel Baby", Category: "baby-care",
		Price: 11.30, Image: "/images/products/mustela-gel.png",
		Rating: f(4.5), Reviews: n(73),
		Badges: []domain.ProductBadge{{Label: "NEW", Color: domain.BadgeInfo}},
	},
	{
		ID: "8", Brand: "Bioderma", Name: "Sensibio H2O Micellar Water", Category: "skincare",
		Price: 13.60, OriginalPrice: f(15.10), SaveAmount: f(1.50),
		Image: "/images/products/sensibio-h2o.png",
		Rating: f(4.8), Reviews: n(1204),
	},
	{
		ID: "9", Brand: "Apivita", Name: "Bee Sun Safe SPF50 Face Cream", Category: "sun-protection",
		Price: 19.95, Image: "/images/products/apivita-spf50.png",
		Rating: f(4.4), Reviews: n(96),
	},
	{
		ID: "10", Brand: "Frezyderm", Name: "Sunscreen Velvet Face SPF50+", Category: "sun-protection",
		Price: 17.40, OriginalPrice: f(20.50), SaveAmount: f(3.10),
		Image: "/images/products/frezyderm-velvet.png",
		Rating: f(4.6), Reviews: n(64),
	},
	{
		ID: "11", Brand: "Nivea", Name: "Body Lotion Express Hydration", Category: "body-care",
		Price: 6.90, Image: "/images/products/nivea-express.png",
		Rating: f(4.2), Reviews: n(402),
	},
	{
		ID: "12", Brand: "Oral-B", Name: "Pro-Expert Toothpaste", Category: "oral-care",
		Price: 4.50, Image: "/images/products/oralb-proexpert.png",
		Rating: f(4.0), Reviews: n(58),
	},
	{
		ID: "13", Brand: "Avène", Name: "Couvrance Compact Foundation", Category: "makeup",
		Price: 23.70, OriginalPrice: f(26.30), SaveAmount: f(2.60),
		Image: "/images/products/avene-couvrance.png",
		Rating: f(4.3), Reviews: n(39),
		Badges: []domain.ProductBadge{{Label: "LIMITED", Color: domain.BadgeError}},
	},
}

var categories = []domain.Category{
	{ID: "1", Name: "Skincare", Slug: "skincare", Icon: "lucide:sparkles", ProductCount: n(42)},
	{ID: "2", Name: "Hair Care", Slug: "hair-care", Icon: "lucide:scissors", ProductCount: n(28)},
	{ID: "3", Name: "Vitamins", Slug: "vitamins", Icon: "lucide:pill", ProductCount: n(35)},
	{ID: "4", Name: "Baby Care", Slug: "baby-care", Icon: "lucide:baby", ProductCount: n(19)},
	{ID: "5", Name: "Makeup", Slug: "makeup", Icon: "lucide:palette", ProductCount: n(56)},
	{ID: "6", Name: "Body Care", Slug: "body-care", Icon: "lucide:heart-pulse", ProductCount: n(31)},
	{ID: "7", Name: "Sun Protection", Slug: "sun-protection", Icon: "lucide:sun", ProductCount: n(22)},
	{ID: "8", Name: "Oral Care", Slug: "oral-care", Icon: "lucide:smile", ProductCount: n(15)},
}

// Products returns a fresh copy of the mock products
func Products() []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)
	return out
}

// Categories returns a fresh copy of the mock categories
func Categories() []domain.Category {
	out := make([]domain.Category, len(categories))
	copy(out, categories)
	return out
}
