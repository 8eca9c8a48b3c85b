package schema

// CoreNewsTranslationTable represents the 'core.newstranslation' table
type CoreNewsTranslationTable struct {
	Table       string
	NewsID      string
	Locale      string
	Title       string
	Subtitle    string
	Summary     string
	Text        string
	Footer      string
	RoutePath   string
	ImageID     string
	PdfID       string
	URL         string
	Published   string
	PublishedAt string
	CreatedAt   string
	UpdatedAt   string
	CreatedBy   string
	UpdatedBy   string
}

// CoreNewsTranslation is the schema definition for core.newstranslation
var CoreNewsTranslation = CoreNewsTranslationTable{
	Table:       "core.newstranslation",
	NewsID:      "newsid",
	Locale:      "locale",
	Title:       "title",
	Subtitle:    "subtitle",
	Summary:     "summary",
	Text:        "text",
	Footer:      "footer",
	RoutePath:   "routepath",
	ImageID:     "imageid",
	PdfID:       "pdfid",
	URL:         "url",
	Published:   "published",
	PublishedAt: "publishedat",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
	CreatedBy:   "createdby",
	UpdatedBy:   "updatedby",
}

func (t CoreNewsTranslationTable) Columns() []string {
	return []string{
		t.NewsID, t.Locale, t.Title, t.Subtitle, t.Summary, t.Text, t.Footer,
		t.RoutePath, t.ImageID, t.PdfID, t.URL, t.Published, t.PublishedAt,
		t.CreatedAt, t.UpdatedAt, t.CreatedBy, t.UpdatedBy,
	}
}
