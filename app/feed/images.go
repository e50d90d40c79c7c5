package feed

// FallbackImageSource is the attribution label for stock imagery
// assigned when the feed item carried no image of its own.
const FallbackImageSource = "Unsplash"

const defaultFallbackImage = "https://images.unsplash.com/photo-1461896836934-ffe607ba8211?w=800&q=80"

// Category-specific stock images. The map must stay total over
// AllCategories so that no ingested card is ever left without an
// image.
var fallbackImages = map[SportCategory]string{
	CategoryFootball:   "https://images.unsplash.com/photo-1522778119026-d647f0596c20?w=800&q=80",
	CategoryBasketball: "https://images.unsplash.com/photo-1546519638-68e109498ffc?w=800&q=80",
	CategoryTennis:     "https://images.unsplash.com/photo-1595429035839-c99c298ffdde?w=800&q=80",
	CategoryChess:      "https://images.unsplash.com/photo-1529699211952-734e80c4d42b?w=800&q=80",
	CategoryCycling:    "https://images.unsplash.com/photo-1517649763962-0c623066013b?w=800&q=80",
	CategoryMotorsport: "https://images.unsplash.com/photo-1568605117036-5fe5e7bab0b7?w=800&q=80",
	CategoryEsports:    "https://images.unsplash.com/photo-1542751371-adc38448a05e?w=800&q=80",
	CategoryLocal:      "https://images.unsplash.com/photo-1459865264687-595d652de67e?w=800&q=80",
	CategoryHockey:     "https://images.unsplash.com/photo-1515703407324-5f753afd8be8?w=800&q=80",
	CategoryBaseball:   "https://images.unsplash.com/photo-1508344928928-7165b67de128?w=800&q=80",
	CategoryGolf:       "https://images.unsplash.com/photo-1535131749006-b7f58c99034b?w=800&q=80",
	CategoryAthletics:  "https://images.unsplash.com/photo-1461896836934-ffe607ba8211?w=800&q=80",
	CategorySwimming:   "https://images.unsplash.com/photo-1519315901367-f34ff9154487?w=800&q=80",
	CategoryBoxing:     "https://images.unsplash.com/photo-1549719386-74dfcbf7dbed?w=800&q=80",
	CategoryMMA:        "https://images.unsplash.com/photo-1622279457486-62dcc4a431d6?w=800&q=80",
	CategoryRugby:      "https://images.unsplash.com/photo-1480099225005-2513c8947aec?w=800&q=80",
	CategoryCricket:    "https://images.unsplash.com/photo-1531415074968-036ba1b575da?w=800&q=80",
}

// FallbackImage returns the stock image URL for a category and its
// attribution string. Unmapped categories get the default image.
func FallbackImage(category SportCategory) (string, string) {
	if u, ok := fallbackImages[category]; ok {
		return u, FallbackImageSource
	}
	return defaultFallbackImage, FallbackImageSource
}
