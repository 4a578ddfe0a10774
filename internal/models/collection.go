// Package models defines the entities tracked by Shelfkeeper: collections,
// their custom field definitions, and the items they own.
package models

import "time"

// FieldType enumerates the value types a custom field can declare.
type FieldType string

const (
	FieldTypeText   FieldType = "text"
	FieldTypeNumber FieldType = "number"
	FieldTypeDate   FieldType = "date"
	FieldTypeBool   FieldType = "bool"
)

// FieldDef declares one custom field of a collection template. The order of
// definitions inside a collection is significant and preserved.
type FieldDef struct {
	Key   string    `json:"key"`
	Label string    `json:"label"`
	Type  FieldType `json:"type"`
}

// DisplaySettings selects which custom fields appear in list and badge views.
type DisplaySettings struct {
	ListFields []string `json:"listFields,omitempty"`
	BadgeField string   `json:"badgeField,omitempty"`
}

// Collection is a named grouping of items. An empty OwnerID means the
// collection has never been written to the remote store ("local-only").
type Collection struct {
	ID         string          `json:"id"`
	TemplateID string          `json:"templateId"`
	Name       string          `json:"name"`
	Icon       string          `json:"icon,omitempty"`
	Fields     []FieldDef      `json:"fields,omitempty"`
	Items      []Item          `json:"items,omitempty"`
	Display    DisplaySettings `json:"display,omitempty"`
	UpdatedAt  string          `json:"updatedAt"`
	OwnerID    string          `json:"ownerId,omitempty"`
	Public     bool            `json:"public,omitempty"`
}

// EntityID returns the collection identifier.
func (c Collection) EntityID() string { return c.ID }

// ModTime returns the parsed last-modified instant. A malformed timestamp
// compares as the zero time, which sorts oldest.
func (c Collection) ModTime() time.Time {
	t, _ := ParseTimestamp(c.UpdatedAt)
	return t
}

// LocalOnly reports whether the collection carries no sync evidence.
func (c Collection) LocalOnly() bool { return c.OwnerID == "" }
