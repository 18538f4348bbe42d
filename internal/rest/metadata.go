package rest

// Metadata is the schema-introspection answer to an OPTIONS request on
// a collection endpoint. Select inputs read their valid values from it
// (roles, country codes, workflow states) instead of hardcoding them.
type Metadata struct {
	Name    string                      `json:"name"`
	Actions map[string]map[string]Field `json:"actions"`
}

// Field describes one writable field of the introspected action.
type Field struct {
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	ReadOnly bool     `json:"read_only"`
	Label    string   `json:"label"`
	Choices  []Choice `json:"choices,omitempty"`
}

// Choice is one enumerated value with its display label.
type Choice struct {
	Value       string `json:"value"`
	DisplayName string `json:"display_name"`
}

// ChoicesFor returns the enumerated values of a field under the given
// action ("POST" for create forms), or nil when the field is free-form.
func (m Metadata) ChoicesFor(action, field string) []Choice {
	fields, ok := m.Actions[action]
	if !ok {
		return nil
	}
	f, ok := fields[field]
	if !ok {
		return nil
	}
	return f.Choices
}
