package domain

// Category is the fixed set of storefront sections. The same list drives the
// browser sections, the add-product form and the admin console; it is an
// enumeration, not a table.
type Category string

const (
	CategoryHairProducts      Category = "Hair Products"
	CategorySkinProducts      Category = "Skin Products"
	CategoryNailProducts      Category = "Nail Products"
	CategoryMakeup            Category = "Makeup"
	CategoryFragrances        Category = "Fragrances"
	CategoryBodyCare          Category = "Body Care"
	CategoryHairTools         Category = "Hair Tools"
	CategoryBeautyAccessories Category = "Beauty Accessories"
	CategoryExclusiveDeals    Category = "Exclusive Deals"
	CategoryTopPicks          Category = "Top Picks"
	CategoryNewArrivals       Category = "New Arrivals"
)

// Categories returns the sections in storefront display order.
func Categories() []Category {
	return []Category{
		CategoryExclusiveDeals,
		CategoryTopPicks,
		CategoryNewArrivals,
		CategoryHairProducts,
		CategorySkinProducts,
		CategoryNailProducts,
		CategoryMakeup,
		CategoryFragrances,
		CategoryBodyCare,
		CategoryHairTools,
		CategoryBeautyAccessories,
	}
}

func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}

	return false
}
