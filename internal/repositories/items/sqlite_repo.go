package items

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

func (r *SQLiteRepository) Upsert(ctx context.Context, item *models.Item) error {

	data, err := json.Marshal(item.Data)
	if err != nil {
		return fmt.Errorf("failed to encode item data: %w", err)
	}

	query := ` INSERT INTO items (id, collection_id, title, notes, rating, data, photo_path, created_at, updated_at)
			values (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET collection_id = excluded.collection_id,
				title = excluded.title,
				notes = excluded.notes,
				rating = excluded.rating,
				data = excluded.data,
				photo_path = excluded.photo_path,
				created_at = excluded.created_at,
				updated_at = excluded.updated_at
	`
	_, err = r.db.ExecContext(ctx, query, item.ID, item.CollectionID, item.Title, item.Notes, item.Rating, string(data), item.PhotoPath, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert item: %w", err)
	}

	return nil
}

const selectColumns = `id, collection_id, title, notes, rating, data, photo_path, created_at, updated_at`

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Item, error) {
	query := `select ` + selectColumns + ` from items order by rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *SQLiteRepository) GetByCollection(ctx context.Context, collectionID string) ([]models.Item, error) {
	query := `select ` + selectColumns + ` from items where collection_id = ? order by rowid`
	rows, err := r.db.QueryContext(ctx, query, collectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *SQLiteRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `delete from items`)
	if err != nil {
		return fmt.Errorf("failed to clear items: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) CountLocalOnly(ctx context.Context) (int, error) {
	query := `select count(*) from items i
		left join collections c on c.id = i.collection_id
		where c.id is null or c.owner_id = ''`
	var n int
	err := r.db.QueryRowContext(ctx, query).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count local-only items: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanItems(rows rowScanner) ([]models.Item, error) {
	var result []models.Item
	for rows.Next() {
		var item models.Item
		var data string
		err := rows.Scan(&item.ID, &item.CollectionID, &item.Title, &item.Notes, &item.Rating, &data, &item.PhotoPath, &item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(data), &item.Data); err != nil {
			return nil, fmt.Errorf("failed to decode data for item %s: %w", item.ID, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
