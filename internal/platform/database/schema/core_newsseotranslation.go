package schema

// CoreNewsSeoTranslationTable represents the 'core.newsseotranslation' table
type CoreNewsSeoTranslationTable struct {
	Table         string
	NewsID        string
	Locale        string
	Title         string
	Description   string
	Keywords      string
	CanonicalURL  string
	NoIndex       string
	NoFollow      string
	HideInSitemap string
}

// CoreNewsSeoTranslation is the schema definition for core.newsseotranslation
var CoreNewsSeoTranslation = CoreNewsSeoTranslationTable{
	Table:         "core.newsseotranslation",
	NewsID:        "newsid",
	Locale:        "locale",
	Title:         "title",
	Description:   "description",
	Keywords:      "keywords",
	CanonicalURL:  "canonicalurl",
	NoIndex:       "noindex",
	NoFollow:      "nofollow",
	HideInSitemap: "hideinsitemap",
}

func (t CoreNewsSeoTranslationTable) Columns() []string {
	return []string{
		t.NewsID, t.Locale, t.Title, t.Description, t.Keywords,
		t.CanonicalURL, t.NoIndex, t.NoFollow, t.HideInSitemap,
	}
}
