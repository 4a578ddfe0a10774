package assets

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/shelfkeeper/internal/common"
	"github.com/dmitrijs2005/shelfkeeper/internal/dbx"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Save(ctx context.Context, collectionID, itemID string, original, display []byte) error {

	query := ` INSERT INTO assets (collection_id, item_id, resolution, body)
			values (?, ?, ?, ?)
			ON CONFLICT(collection_id, item_id, resolution) DO UPDATE SET body = excluded.body
	`

	// both resolutions in one transaction: a failure on either leaves the
	// store without a half-written pair
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, query, collectionID, itemID, ResolutionOriginal, original); err != nil {
			return fmt.Errorf("failed to save original: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, collectionID, itemID, ResolutionDisplay, display); err != nil {
			return fmt.Errorf("failed to save display: %w", err)
		}
		return nil
	})
}

func (r *SQLiteRepository) Get(ctx context.Context, collectionID, itemID string) ([]byte, []byte, error) {

	query := `select resolution, body from assets where collection_id = ? and item_id = ?`
	rows, err := r.db.QueryContext(ctx, query, collectionID, itemID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to select asset: %w", err)
	}
	defer rows.Close()

	var original, display []byte
	found := false
	for rows.Next() {
		var resolution string
		var body []byte
		if err := rows.Scan(&resolution, &body); err != nil {
			return nil, nil, err
		}
		found = true
		switch resolution {
		case ResolutionOriginal:
			original = body
		case ResolutionDisplay:
			display = body
		}
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	if !found {
		return nil, nil, fmt.Errorf("asset %s/%s: %w", collectionID, itemID, common.ErrorNotFound)
	}

	return original, display, nil
}
