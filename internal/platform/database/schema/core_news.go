package schema

// CoreNewsTable represents the 'core.news' table
type CoreNewsTable struct {
	Table     string
	ID        string
	Type      string
	Images    string
	Version   string
	CreatedAt string
	UpdatedAt string
}

// CoreNews is the schema definition for core.news
var CoreNews = CoreNewsTable{
	Table:     "core.news",
	ID:        "id",
	Type:      "type",
	Images:    "images",
	Version:   "version",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t CoreNewsTable) Columns() []string {
	return []string{t.ID, t.Type, t.Images, t.Version, t.CreatedAt, t.UpdatedAt}
}
