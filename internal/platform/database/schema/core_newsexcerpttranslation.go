package schema

// CoreNewsExcerptTranslationTable represents the 'core.newsexcerpttranslation' table
type CoreNewsExcerptTranslationTable struct {
	Table       string
	NewsID      string
	Locale      string
	Title       string
	More        string
	Description string
	Categories  string
	Tags        string
	Icons       string
	Images      string
}

// CoreNewsExcerptTranslation is the schema definition for core.newsexcerpttranslation
var CoreNewsExcerptTranslation = CoreNewsExcerptTranslationTable{
	Table:       "core.newsexcerpttranslation",
	NewsID:      "newsid",
	Locale:      "locale",
	Title:       "title",
	More:        "more",
	Description: "description",
	Categories:  "categories",
	Tags:        "tags",
	Icons:       "icons",
	Images:      "images",
}

func (t CoreNewsExcerptTranslationTable) Columns() []string {
	return []string{
		t.NewsID, t.Locale, t.Title, t.More, t.Description,
		t.Categories, t.Tags, t.Icons, t.Images,
	}
}
