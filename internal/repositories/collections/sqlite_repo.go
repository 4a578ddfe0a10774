package collections

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/shelfkeeper/internal/dbx"
	"github.com/dmitrijs2005/shelfkeeper/internal/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository accepts either *sql.DB or *sql.Tx so callers can run
// repository operations inside a transaction.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Upsert(ctx context.Context, c *models.Collection) error {

	fields, err := json.Marshal(c.Fields)
	if err != nil {
		return fmt.Errorf("failed to encode field definitions: %w", err)
	}
	display, err := json.Marshal(c.Display)
	if err != nil {
		return fmt.Errorf("failed to encode display settings: %w", err)
	}

	query := ` INSERT INTO collections (id, template_id, name, icon, fields, display, updated_at, owner_id, public)
			values (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET template_id = excluded.template_id,
				name = excluded.name,
				icon = excluded.icon,
				fields = excluded.fields,
				display = excluded.display,
				updated_at = excluded.updated_at,
				owner_id = excluded.owner_id,
				public = excluded.public
	`
	_, err = r.db.ExecContext(ctx, query, c.ID, c.TemplateID, c.Name, c.Icon, string(fields), string(display), c.UpdatedAt, c.OwnerID, boolToInt(c.Public))
	if err != nil {
		return fmt.Errorf("failed to upsert collection: %w", err)
	}

	return nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Collection, error) {

	query := `select id, template_id, name, icon, fields, display, updated_at, owner_id, public from collections order by rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select collections: %w", err)
	}

	var result []models.Collection

	defer rows.Close()
	for rows.Next() {
		var c models.Collection
		var fields, display string
		var public int
		err := rows.Scan(&c.ID, &c.TemplateID, &c.Name, &c.Icon, &fields, &display, &c.UpdatedAt, &c.OwnerID, &public)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(fields), &c.Fields); err != nil {
			return nil, fmt.Errorf("failed to decode field definitions for %s: %w", c.ID, err)
		}
		if err := json.Unmarshal([]byte(display), &c.Display); err != nil {
			return nil, fmt.Errorf("failed to decode display settings for %s: %w", c.ID, err)
		}
		c.Public = public != 0
		result = append(result, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *SQLiteRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `delete from collections`)
	if err != nil {
		return fmt.Errorf("failed to clear collections: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) CountLocalOnly(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `select count(*) from collections where owner_id = ''`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count local-only collections: %w", err)
	}
	return n, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
