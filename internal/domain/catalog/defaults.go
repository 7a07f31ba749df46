package catalog

// DefaultFactories is the fixed set seeded into an empty factories
// collection on first read.
func DefaultFactories() []Factory {
	return []Factory{
		{ID: "sae", Code: "SAE", Name: "Shekhawati Art Exports"},
		{ID: "cac", Code: "CAC", Name: "Country Art & Crafts"},
		{ID: "gae", Code: "GAE", Name: "Global Art Exports"},
	}
}

// DefaultCategories is the fixed set seeded into an empty categories
// collection on first read.
func DefaultCategories() []Category {
	return []Category{
		{ID: "chair", Name: "Chair"},
		{ID: "sofa", Name: "Sofa"},
		{ID: "bar-chair", Name: "Bar Chair"},
		{ID: "table", Name: "Table"},
		{ID: "bed", Name: "Bed"},
		{ID: "cabinet", Name: "Cabinet"},
		{ID: "shelf", Name: "Shelf"},
		{ID: "other", Name: "Other"},
	}
}
