package product

import "github.com/shopspring/decimal"

// Initial catalog used when no products slice has been stored yet.
func Seed() []Product {
	return []Product{
		{
			ID:            "1",
			NameAr:        "قميص قطني أوفر سايز",
			NameEn:        "Oversized Cotton Shirt",
			Price:         decimal.NewFromInt(450),
			DescriptionAr: "قميص قطني مريح جداً بتصميم عصري يناسب الإطلالات الكاجوال اليومية.",
			DescriptionEn: "Ultra-comfortable cotton shirt with a modern design, perfect for casual daily looks.",
			Category:      "men",
			Image:         "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?auto=format&fit=crop&w=600&q=80",
			SpecsAr:       []string{"قطن 100%", "مريح للجلد", "ألوان ثابتة"},
			SpecsEn:       []string{"100% Cotton", "Skin friendly", "Color fastness"},
			Stock:         25,
		},
		{
			ID:            "2",
			NameAr:        "فستان صيفي منقوش",
			NameEn:        "Patterned Summer Dress",
			Price:         decimal.NewFromInt(850),
			DescriptionAr: "فستان صيفي أنيق بتصميم عصري وألوان زاهية، مثالي للخروجات والرحلات.",
			DescriptionEn: "Elegant summer dress with vibrant colors and modern cut, ideal for trips and outings.",
			Category:      "women",
			Image:         "https://images.unsplash.com/photo-1515372039744-b8f02a3ae446?auto=format&fit=crop&w=600&q=80",
			SpecsAr:       []string{"خامة خفيفة", "تصميم مريح", "سهل الغسيل"},
			SpecsEn:       []string{"Lightweight fabric", "Comfortable fit", "Easy to wash"},
			Stock:         15,
		},
		{
			ID:            "3",
			NameAr:        "بنطلون جينز كلاسيك",
			NameEn:        "Classic Blue Jeans",
			Price:         decimal.NewFromInt(600),
			DescriptionAr: "بنطلون جينز متين بتصميم كلاسيكي يناسب جميع الأوقات والمناسبات.",
			DescriptionEn: "Durable denim jeans with a classic design suitable for all occasions.",
			Category:      "men",
			Image:         "https://images.unsplash.com/photo-1542272604-787c3835535d?auto=format&fit=crop&w=600&q=80",
			SpecsAr:       []string{"دينيم عالي الجودة", "خياطة مزدوجة", "مقاس مريح"},
			SpecsEn:       []string{"High-quality denim", "Double stitching", "Relaxed fit"},
			Stock:         30,
		},
		{
			ID:            "4",
			NameAr:        "طقم أطفال قطعتين",
			NameEn:        "Kids Two-Piece Set",
			Price:         decimal.NewFromInt(550),
			DescriptionAr: "طقم أطفال مريح وعملي مكون من قطعتين، مثالي للعب والنشاط اليومي.",
			DescriptionEn: "Practical and comfortable two-piece set for kids, perfect for play and activities.",
			Category:      "kids",
			Image:         "https://images.unsplash.com/photo-1519702113330-8041a79857d4?auto=format&fit=crop&w=600&q=80",
			SpecsAr:       []string{"آمن على البشرة", "تصميم جذاب", "متوفر بمقاسات مختلفة"},
			SpecsEn:       []string{"Safe for skin", "Attractive design", "Available in various sizes"},
			Stock:         12,
		},
	}
}
