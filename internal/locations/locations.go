// Package locations holds the fixed set of locations reviews may be filed
// against.
package locations

var allowed = []string{
	"Albuquerque, New Mexico",
	"Carlsbad, California",
	"Chula Vista, California",
	"Colorado Springs, Colorado",
	"Denver, Colorado",
	"El Cajon, California",
	"El Paso, Texas",
	"Escondido, California",
	"Fresno, California",
	"La Mesa, California",
	"Las Vegas, Nevada",
	"Los Angeles, California",
	"Oceanside, California",
	"Phoenix, Arizona",
	"Sacramento, California",
	"Salt Lake City, Utah",
	"San Diego, California",
	"Tucson, Arizona",
}

var allowedSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(allowed))
	for _, loc := range allowed {
		m[loc] = struct{}{}
	}
	return m
}()

// Allowed reports whether loc is an exact match for a known location.
func Allowed(loc string) bool {
	_, ok := allowedSet[loc]
	return ok
}

// All returns the allow-list in its canonical order.
func All() []string {
	out := make([]string, len(allowed))
	copy(out, allowed)
	return out
}
