package scraper

// DefaultSelectors returns the fallback chains for OLX search-result markup.
// OLX ships several generations of class names depending on experiment
// buckets, so every lookup carries the attribute-based selector first, then
// class-based and tag-heuristic alternatives.
func DefaultSelectors() Selectors {
	return Selectors{
		ListingQueries: []string{
			`[data-aut-id="itemBox"]`,
			"li.EIR5N",
			"div._2fp1f",
			".item-card",
			`[class*="item"]`,
		},
		Title: []FieldRule{
			Text("h6"),
			Text(`[data-aut-id="itemTitle"]`),
			Text(".title"),
			Text("h6._2caa7"),
		},
		Price: []FieldRule{
			Text("span._2b6f3"),
			Text(`[data-aut-id="itemPrice"]`),
			Text(".price"),
			Text(`span[class*="price"]`),
		},
		Location: []FieldRule{
			Text("span._2e28f"),
			Text(`[data-aut-id="item-location"]`),
			Text(".location"),
		},
		URL: []FieldRule{
			Attr("a[href]", "href"),
		},
		ImageURL: []FieldRule{
			Attr("img[src]", "src"),
		},
	}
}
