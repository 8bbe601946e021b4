package drivers

// Record is the normalized flat book record handed back to the dispatch
// framework on a successful lookup. String fields are empty when the source
// had nothing usable; numeric fields are nil rather than zero so an absent
// measurement is distinguishable from a measured zero.
type Record struct {
	ISBN   string `json:"isbn,omitempty"`
	ISBN10 string `json:"isbn10,omitempty"`
	ISBN13 string `json:"isbn13,omitempty"`
	EAN13  string `json:"ean13,omitempty"`

	Title string `json:"title,omitempty"`
	// Author is a single string: all contributor names joined with "; ".
	Author    string `json:"author,omitempty"`
	Publisher string `json:"publisher,omitempty"`
	Location  string `json:"location,omitempty"`
	Year      string `json:"year,omitempty"`

	Binding string `json:"binding,omitempty"`
	Pages   *int   `json:"pages,omitempty"`
	// Weight is in grams; Width, Height and Depth are in millimeters.
	Weight *float64 `json:"weight,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
	Depth  *float64 `json:"depth,omitempty"`

	DeweyDecimal string `json:"dewey_decimal,omitempty"`
	// SourceURL is the details request URL the record was extracted from.
	SourceURL string `json:"book_link,omitempty"`
}

// Fields returns the record as the named field mapping the dispatch framework
// consumes. Unset fields are omitted entirely.
func (r *Record) Fields() map[string]any {
	fields := make(map[string]any)
	put := func(key, value string) {
		if value != "" {
			fields[key] = value
		}
	}
	put("isbn", r.ISBN)
	put("isbn10", r.ISBN10)
	put("isbn13", r.ISBN13)
	put("ean13", r.EAN13)
	put("title", r.Title)
	put("author", r.Author)
	put("publisher", r.Publisher)
	put("location", r.Location)
	put("year", r.Year)
	put("binding", r.Binding)
	put("dewey_decimal", r.DeweyDecimal)
	put("book_link", r.SourceURL)
	if r.Pages != nil {
		fields["pages"] = *r.Pages
	}
	if r.Weight != nil {
		fields["weight"] = *r.Weight
	}
	if r.Width != nil {
		fields["width"] = *r.Width
	}
	if r.Height != nil {
		fields["height"] = *r.Height
	}
	if r.Depth != nil {
		fields["depth"] = *r.Depth
	}
	return fields
}
