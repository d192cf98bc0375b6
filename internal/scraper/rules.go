package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Text returns a rule reading the trimmed text of the first descendant
// matching the selector
func Text(selector string) FieldRule {
	return func(s *goquery.Selection) string {
		sel := s.Find(selector).First()
		if sel.Length() == 0 {
			return ""
		}
		return strings.TrimSpace(sel.Text())
	}
}

// Attr returns a rule reading the named attribute of the first descendant
// matching the selector
func Attr(selector, attr string) FieldRule {
	return func(s *goquery.Selection) string {
		sel := s.Find(selector).First()
		if sel.Length() == 0 {
			return ""
		}
		value, exists := sel.Attr(attr)
		if !exists {
			return ""
		}
		return strings.TrimSpace(value)
	}
}
