package remote

import "github.com/dmitrijs2005/shelfkeeper/internal/models"

// Wire shapes use the backend's snake_case field names. Translation between
// the internal entity shape and these DTOs is this package's
// responsibility; nothing outside remote sees them.

type fieldWire struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

type itemWire struct {
	ID           string         `json:"id"`
	CollectionID string         `json:"collection_id"`
	Title        string         `json:"title"`
	Notes        string         `json:"notes,omitempty"`
	Rating       float64        `json:"rating,omitempty"`
	Data         map[string]any `json:"data,omitempty"`
	PhotoPath    string         `json:"photo_path,omitempty"`
	CreatedAt    string         `json:"created_at"`
	UpdatedAt    string         `json:"updated_at"`
}

type collectionWire struct {
	ID         string      `json:"id"`
	TemplateID string      `json:"template_id"`
	Name       string      `json:"name"`
	Icon       string      `json:"icon,omitempty"`
	Fields     []fieldWire `json:"fields,omitempty"`
	Items      []itemWire  `json:"items,omitempty"`
	ListFields []string    `json:"list_fields,omitempty"`
	BadgeField string      `json:"badge_field,omitempty"`
	UpdatedAt  string      `json:"updated_at"`
	OwnerID    string      `json:"owner_id,omitempty"`
	Public     bool        `json:"public,omitempty"`
}

func itemToWire(i models.Item) itemWire {
	return itemWire{
		ID:           i.ID,
		CollectionID: i.CollectionID,
		Title:        i.Title,
		Notes:        i.Notes,
		Rating:       i.Rating,
		Data:         i.Data,
		PhotoPath:    i.PhotoPath,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

func (w itemWire) toModel() models.Item {
	return models.Item{
		ID:           w.ID,
		CollectionID: w.CollectionID,
		Title:        w.Title,
		Notes:        w.Notes,
		Rating:       w.Rating,
		Data:         w.Data,
		PhotoPath:    w.PhotoPath,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}
}

func collectionToWire(c models.Collection) collectionWire {
	w := collectionWire{
		ID:         c.ID,
		TemplateID: c.TemplateID,
		Name:       c.Name,
		Icon:       c.Icon,
		ListFields: c.Display.ListFields,
		BadgeField: c.Display.BadgeField,
		UpdatedAt:  c.UpdatedAt,
		OwnerID:    c.OwnerID,
		Public:     c.Public,
	}
	for _, f := range c.Fields {
		w.Fields = append(w.Fields, fieldWire{Key: f.Key, Label: f.Label, Type: string(f.Type)})
	}
	for _, i := range c.Items {
		w.Items = append(w.Items, itemToWire(i))
	}
	return w
}

func (w collectionWire) toModel() models.Collection {
	c := models.Collection{
		ID:         w.ID,
		TemplateID: w.TemplateID,
		Name:       w.Name,
		Icon:       w.Icon,
		Display:    models.DisplaySettings{ListFields: w.ListFields, BadgeField: w.BadgeField},
		UpdatedAt:  w.UpdatedAt,
		OwnerID:    w.OwnerID,
		Public:     w.Public,
	}
	for _, f := range w.Fields {
		c.Fields = append(c.Fields, models.FieldDef{Key: f.Key, Label: f.Label, Type: models.FieldType(f.Type)})
	}
	for _, i := range w.Items {
		c.Items = append(c.Items, i.toModel())
	}
	return c
}
