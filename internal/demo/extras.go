package demo

import "storefront/internal/domain"

var productExtras = map[string]domain.ProductExtra{
	"1": {
		Subtitle: "Centella 50ml SPF50+ Sun Serum",
		KeyIngredients: []domain.KeyIngredient{
			{Name: "Centella Asiatica Extract", Description: "Soothes and calms sensitive skin"},
			{Name: "Hyaluronic Acid", Description: "Intense hydration & moisture retention"},
			{Name: "Niacinamide (Vitamin B3)", Description: "Brightens and evens skin tone"},
			{Name: "Panthenol (Vitamin B5)", Description: "Strengthens skin barrier"},
		},
		Badges: []domain.Badge{
			{Icon: "vegan", Label: "Peta Vegan & Cruelty Free"},
			{Icon: "ewg", Label: "EWG Green Grade"},
			{Icon: "fragrance", Label: "Artificial Fragrance Free"},
		},
		ProductDetails:  "<p><strong>Hyalu-Cica Water-Fit Sun Serum UV</strong></p><p>A lightweight sun serum with SPF50+ broad spectrum coverage for everyday protection.</p>",
		Texture:         "Water-light, serum-like texture that glides on smoothly and absorbs instantly.",
		IngredientsList: "Water, Centella Asiatica Extract, Homosalate, Niacinamide, Glycerin, Panthenol, Hyaluronic Acid.",
		HowToUse:        "Apply generously as the last step of your morning routine, 15 minutes before sun exposure. Reapply every 2-3 hours.",
		SuitedFor:       []string{"Normal", "Dry", "Combination"},
	},
	"2": {
		Subtitle: "Fragrance-Free Hydrating Serum",
		KeyIngredients: []domain.KeyIngredient{
			{Name: "Hyaluronic Acid", Description: "Deep hydration without heaviness"},
			{Name: "Centella Asiatica", Description: "Calms redness and irritation"},
			{Name: "Allantoin", Description: "Soothes and protects sensitive skin"},
		},
		Badges: []domain.Badge{
			{Icon: "vegan", Label: "Peta Vegan & Cruelty Free"},
			{Icon: "fragrance", Label: "Fragrance Free"},
		},
		HowToUse: "After cleansing and toning, apply 2-3 drops to face and neck. Follow with moisturizer.",
	},
	"3": {
		Subtitle: "Ceramide-Rich Night Moisturizer",
		KeyIngredients: []domain.KeyIngredient{
			{Name: "Ceramides NP/AP/EOP", Description: "Rebuild and protect skin barrier"},
			{Name: "Squalane", Description: "Lightweight yet deeply nourishing"},
			{Name: "Aloe Vera", Description: "Cooling and soothing hydration"},
		},
		Badges: []domain.Badge{
			{Icon: "vegan", Label: "Cruelty Free"},
			{Icon: "fragrance", Label: "Fragrance Free"},
		},
		HowToUse: "Apply a generous amount to clean face and neck in the evening as your last skincare step.",
	},
	"4": {
		Subtitle: "Mineral Broad-Spectrum Protection",
		KeyIngredients: []domain.KeyIngredient{
			{Name: "Zinc Oxide 20%", Description: "Mineral UV filter, gentle on skin"},
			{Name: "Niacinamide", Description: "Reduces redness and uneven tone"},
			{Name: "Vitamin E", Description: "Antioxidant protection"},
		},
		Badges: []domain.Badge{
			{Icon: "ewg", Label: "EWG Green Grade"},
			{Icon: "fragrance", Label: "Fragrance Free"},
		},
		HowToUse: "Apply liberally 15 minutes before sun exposure. Reapply every 2 hours or after swimming.",
	},
}
