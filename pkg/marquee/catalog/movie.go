// Package catalog holds the fixed, in-memory movie collection backing the
// list and details screens.
package catalog

// Movie is a single catalog entry. Values are treated as immutable once the
// Catalog is built; accessors hand out copies.
type Movie struct {
	ID       string   `toml:"id"`
	Title    string   `toml:"title"`
	Director string   `toml:"director"`
	Year     string   `toml:"year"`
	Plot     string   `toml:"plot"`
	Actors   string   `toml:"actors"`
	Rating   string   `toml:"rating"`
	Images   []string `toml:"images"`
}

// Poster returns the first image, shown in list rows.
func (m Movie) Poster() string {
	if len(m.Images) == 0 {
		return ""
	}
	return m.Images[0]
}

func (m Movie) clone() Movie {
	c := m
	c.Images = append([]string(nil), m.Images...)
	return c
}
