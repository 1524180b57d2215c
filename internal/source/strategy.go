package source

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/anyulbade/zakat-calculator/internal/model"
	"github.com/anyulbade/zakat-calculator/internal/pricetext"
)

// Strategy extracts one per-gram price from a parsed page.
type Strategy interface {
	Name() string
	Extract(doc *goquery.Document, q model.RateQuery) (float64, bool)
}

// Chain tries strategies in order and stops at the first hit.
type Chain []Strategy

func (c Chain) Extract(doc *goquery.Document, q model.RateQuery) (float64, string, bool) {
	for _, s := range c {
		if v, ok := s.Extract(doc, q); ok {
			return v, s.Name(), true
		}
	}
	return 0, "", false
}

// ElementByID reads the text of the element whose id is produced by ID.
type ElementByID struct {
	ID func(q model.RateQuery) string
}

func FixedID(id string) ElementByID {
	return ElementByID{ID: func(model.RateQuery) string { return id }}
}

// CaratID targets ids such as "22K-price".
func CaratID() ElementByID {
	return ElementByID{ID: func(q model.RateQuery) string {
		return fmt.Sprintf("%dK-price", int(q.Carat))
	}}
}

func (s ElementByID) Name() string { return "element_by_id" }

func (s ElementByID) Extract(doc *goquery.Document, q model.RateQuery) (float64, bool) {
	// Attribute selector: ids like "24K-price" are not valid CSS identifiers.
	el := doc.Find(fmt.Sprintf(`[id=%q]`, s.ID(q))).First()
	if el.Length() == 0 {
		return 0, false
	}
	v := pricetext.Normalize(el.Text())
	return v, v > 0
}

// Derived scales a base value, e.g. a 24K price by purity or a 1kg price
// down to one gram.
type Derived struct {
	Label string
	Base  Strategy
	Scale func(q model.RateQuery) float64
}

func (s Derived) Name() string { return "derived_" + s.Label }

func (s Derived) Extract(doc *goquery.Document, q model.RateQuery) (float64, bool) {
	base, ok := s.Base.Extract(doc, q)
	if !ok {
		return 0, false
	}
	v := base * s.Scale(q)
	return v, v > 0
}

// PurityFrom24K derives a carat price from the 24K figure: 24K × carat/24.
func PurityFrom24K() Derived {
	return Derived{
		Label: "24k",
		Base:  FixedID("24K-price"),
		Scale: func(q model.RateQuery) float64 { return q.Carat.Purity() },
	}
}

// PerGramFrom reads a multi-gram quote and divides it down to one gram.
func PerGramFrom(id string, grams float64) Derived {
	return Derived{
		Label: id,
		Base:  FixedID(id),
		Scale: func(model.RateQuery) float64 { return 1 / grams },
	}
}

// TableScan looks for a row labelled with Unit (e.g. "1 gram") in a table
// whose caption, header row or preceding heading mentions one of the
// Context words, and reads the value column. The value column is the header
// cell that mentions a Context word, or the first one after the label. A
// table whose header mentions only Rivals words is skipped.
type TableScan struct {
	Unit    string
	Context func(q model.RateQuery) []string
	Rivals  func(q model.RateQuery) []string
}

func (s TableScan) Name() string { return "table_scan" }

func (s TableScan) Extract(doc *goquery.Document, q model.RateQuery) (float64, bool) {
	unit := squash(s.Unit)
	var words, rivals []string
	if s.Context != nil {
		words = s.Context(q)
	}
	if s.Rivals != nil {
		rivals = s.Rivals(q)
	}

	var found float64
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		if len(words) > 0 && !mentionsAny(tableContext(table), words) {
			return true
		}
		col, ok := valueColumn(table.Find("tr").First().ChildrenFiltered("td, th"), words, rivals)
		if !ok {
			return true
		}
		table.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
			cells := row.ChildrenFiltered("td, th")
			if cells.Length() <= col || !strings.HasPrefix(squash(cells.First().Text()), unit) {
				return true
			}
			found = pricetext.Normalize(cells.Eq(col).Text())
			return found <= 0
		})
		return found <= 0
	})
	return found, found > 0
}

// valueColumn picks the header column for the query. It reports false for
// a comparison table that has columns for rivals only.
func valueColumn(header *goquery.Selection, words, rivals []string) (int, bool) {
	col, rival := -1, false
	header.Each(func(i int, cell *goquery.Selection) {
		if i == 0 || col >= 0 {
			return
		}
		text := squash(cell.Text())
		switch {
		case len(words) > 0 && mentionsAny(text, words):
			col = i
		case len(rivals) > 0 && mentionsAny(text, rivals):
			rival = true
		}
	})
	switch {
	case col >= 0:
		return col, true
	case rival:
		return 0, false
	}
	return 1, true
}

// GoldTableWords are the ways a carat is written in table headings.
func GoldTableWords(q model.RateQuery) []string {
	c := int(q.Carat)
	return []string{
		fmt.Sprintf("%dk", c),
		fmt.Sprintf("%d k", c),
		fmt.Sprintf("%d carat", c),
		fmt.Sprintf("%d karat", c),
		fmt.Sprintf("%dct", c),
	}
}

// GoldRivalWords are the headings of the carats other than the queried one.
func GoldRivalWords(q model.RateQuery) []string {
	var words []string
	for _, c := range []model.Carat{model.Carat18, model.Carat22, model.Carat24} {
		if c != q.Carat {
			words = append(words, GoldTableWords(model.GoldQuery(q.City, c))...)
		}
	}
	return words
}

func SilverTableWords(model.RateQuery) []string {
	return []string{"silver"}
}

func tableContext(table *goquery.Selection) string {
	parts := []string{
		table.Find("caption").Text(),
		table.Find("tr").First().Text(),
		precedingHeading(table),
		precedingHeading(table.Parent()),
	}
	return squash(strings.Join(parts, " "))
}

func precedingHeading(s *goquery.Selection) string {
	for p := s.Prev(); p.Length() > 0; p = p.Prev() {
		if p.Is("h1, h2, h3, h4, h5, h6") {
			return p.Text()
		}
	}
	return ""
}

func mentionsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, squash(w)) {
			return true
		}
	}
	return false
}

// squash lowercases and collapses runs of whitespace.
func squash(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
