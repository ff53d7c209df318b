package models

type Category string

const (
	CategoryEnglish    Category = "English"
	CategorySpanish    Category = "Spanish"
	CategoryCoding     Category = "Coding"
	CategoryFinance    Category = "Finance"
	CategoryPhilosophy Category = "Philosophy"
	CategoryPolitics   Category = "Politics"
	CategoryQuote      Category = "Quote"
)

// Categories returns every category in quiz order.
func Categories() []Category {
	return []Category{
		CategoryEnglish,
		CategorySpanish,
		CategoryCoding,
		CategoryFinance,
		CategoryPhilosophy,
		CategoryPolitics,
		CategoryQuote,
	}
}

type Entry struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Example    string `json:"example"`
}

type Quote struct {
	Quote   string `json:"quote"`
	Author  string `json:"author"`
	Context string `json:"context"`
}

// DayRecord is one day of content across every category plus a stoic quote.
type DayRecord struct {
	English    Entry `json:"english"`
	Spanish    Entry `json:"spanish"`
	Coding     Entry `json:"coding"`
	Finance    Entry `json:"finance"`
	Philosophy Entry `json:"philosophy"`
	Politics   Entry `json:"politics"`
	StoicQuote Quote `json:"stoic_quote"`
}

// Entry returns the term entry for a non-quote category.
func (d DayRecord) Entry(c Category) (Entry, bool) {
	switch c {
	case CategoryEnglish:
		return d.English, true
	case CategorySpanish:
		return d.Spanish, true
	case CategoryCoding:
		return d.Coding, true
	case CategoryFinance:
		return d.Finance, true
	case CategoryPhilosophy:
		return d.Philosophy, true
	case CategoryPolitics:
		return d.Politics, true
	default:
		return Entry{}, false
	}
}
