package source

import "strings"

const DefaultCity = "Delhi"

// Cities maps display names to the slugs used in upstream page URLs.
var Cities = map[string]string{
	"Delhi":     "delhi",
	"Mumbai":    "mumbai",
	"Chennai":   "chennai",
	"Kolkata":   "kolkata",
	"Bangalore": "bangalore",
	"Hyderabad": "hyderabad",
	"Pune":      "pune",
	"Jaipur":    "jaipur",
	"Lucknow":   "lucknow",
	"Ahmedabad": "ahmedabad",
	"Patna":     "patna",
	"Kerala":    "kerala",
	"Nashik":    "nashik",
}

// CityResolver maps user-supplied city names to slugs, falling back to a
// default city for anything it does not recognize.
type CityResolver struct {
	slugs    map[string]string
	fallback string
}

func NewCityResolver(defaultCity string) *CityResolver {
	slugs := make(map[string]string, len(Cities))
	for name, slug := range Cities {
		slugs[strings.ToLower(name)] = slug
	}

	fallback, ok := slugs[strings.ToLower(strings.TrimSpace(defaultCity))]
	if !ok {
		fallback = Cities[DefaultCity]
	}
	return &CityResolver{slugs: slugs, fallback: fallback}
}

func (r *CityResolver) Slug(city string) string {
	if slug, ok := r.slugs[strings.ToLower(strings.TrimSpace(city))]; ok {
		return slug
	}
	return r.fallback
}
