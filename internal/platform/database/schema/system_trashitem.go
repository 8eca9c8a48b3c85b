package schema

// SystemTrashItemTable represents the 'system.trashitem' table
type SystemTrashItemTable struct {
	Table       string
	ID          string
	ResourceKey string
	ResourceID  string
	Title       string
	Locale      string
	Payload     string
	TrashedBy   string
	TrashedAt   string
}

// SystemTrashItem is the schema definition for system.trashitem
var SystemTrashItem = SystemTrashItemTable{
	Table:       "system.trashitem",
	ID:          "id",
	ResourceKey: "resourcekey",
	ResourceID:  "resourceid",
	Title:       "title",
	Locale:      "locale",
	Payload:     "payload",
	TrashedBy:   "trashedby",
	TrashedAt:   "trashedat",
}

func (t SystemTrashItemTable) Columns() []string {
	return []string{
		t.ID, t.ResourceKey, t.ResourceID, t.Title, t.Locale,
		t.Payload, t.TrashedBy, t.TrashedAt,
	}
}
