package schema

// CoreRouteTable represents the 'core.route' table
type CoreRouteTable struct {
	Table       string
	ID          string
	Path        string
	Locale      string
	EntityClass string
	EntityID    string
	CreatedAt   string
	UpdatedAt   string
}

// CoreRoute is the schema definition for core.route
var CoreRoute = CoreRouteTable{
	Table:       "core.route",
	ID:          "id",
	Path:        "path",
	Locale:      "locale",
	EntityClass: "entityclass",
	EntityID:    "entityid",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t CoreRouteTable) Columns() []string {
	return []string{t.ID, t.Path, t.Locale, t.EntityClass, t.EntityID, t.CreatedAt, t.UpdatedAt}
}
