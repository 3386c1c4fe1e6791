package store

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/yterada/ballpark/models"
)

// Repository wraps the bun handle with the per-dataset operations the API
// needs: batched inserts, paged range selects, and delete-by-upload.
type Repository struct {
	db *bun.DB
}

// NewRepository wraps a bun DB.
func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// DB exposes the underlying handle for queries the repository does not cover.
func (r *Repository) DB() *bun.DB {
	return r.db
}

func (r *Repository) InsertSavant(ctx context.Context, batch []models.PitchEvent) error {
	_, err := r.db.NewInsert().Model(&batch).Exec(ctx)
	return err
}

func (r *Repository) InsertRapsodoPitching(ctx context.Context, batch []models.RapsodoPitch) error {
	_, err := r.db.NewInsert().Model(&batch).Exec(ctx)
	return err
}

func (r *Repository) InsertRapsodoBatting(ctx context.Context, batch []models.RapsodoSwing) error {
	_, err := r.db.NewInsert().Model(&batch).Exec(ctx)
	return err
}

func (r *Repository) InsertBlast(ctx context.Context, batch []models.BlastSwing) error {
	_, err := r.db.NewInsert().Model(&batch).Exec(ctx)
	return err
}

// selectRange pages through a table in id order so repeated calls walk the
// full dataset deterministically.
func selectRange[T any](ctx context.Context, db *bun.DB, offset, limit int) ([]T, error) {
	var rows []T
	err := db.NewSelect().Model(&rows).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// LoadSavant fetches every row, page by page.
func (r *Repository) LoadSavant(ctx context.Context) ([]models.PitchEvent, error) {
	return LoadAll(ctx, PageSize, func(ctx context.Context, offset, limit int) ([]models.PitchEvent, error) {
		return selectRange[models.PitchEvent](ctx, r.db, offset, limit)
	})
}

func (r *Repository) LoadRapsodoPitching(ctx context.Context) ([]models.RapsodoPitch, error) {
	return LoadAll(ctx, PageSize, func(ctx context.Context, offset, limit int) ([]models.RapsodoPitch, error) {
		return selectRange[models.RapsodoPitch](ctx, r.db, offset, limit)
	})
}

func (r *Repository) LoadRapsodoBatting(ctx context.Context) ([]models.RapsodoSwing, error) {
	return LoadAll(ctx, PageSize, func(ctx context.Context, offset, limit int) ([]models.RapsodoSwing, error) {
		return selectRange[models.RapsodoSwing](ctx, r.db, offset, limit)
	})
}

func (r *Repository) LoadBlast(ctx context.Context) ([]models.BlastSwing, error) {
	return LoadAll(ctx, PageSize, func(ctx context.Context, offset, limit int) ([]models.BlastSwing, error) {
		return selectRange[models.BlastSwing](ctx, r.db, offset, limit)
	})
}

func modelFor(d Dataset) (interface{}, error) {
	switch d {
	case DatasetSavant:
		return (*models.PitchEvent)(nil), nil
	case DatasetRapsodoPitching:
		return (*models.RapsodoPitch)(nil), nil
	case DatasetRapsodoBatting:
		return (*models.RapsodoSwing)(nil), nil
	case DatasetBlast:
		return (*models.BlastSwing)(nil), nil
	}
	return nil, fmt.Errorf("unknown dataset %q", d)
}

// DeleteByUpload removes every row of a dataset sharing the upload id. Rows
// stored before batch tracking carry an empty upload_id and are addressed
// through the synthetic legacy identifier.
func (r *Repository) DeleteByUpload(ctx context.Context, d Dataset, uploadID string) (int64, error) {
	model, err := modelFor(d)
	if err != nil {
		return 0, err
	}
	q := r.db.NewDelete().Model(model)
	if uploadID == LegacyUploadID {
		q = q.Where("upload_id IS NULL OR upload_id = ''")
	} else {
		q = q.Where("upload_id = ?", uploadID)
	}
	res, err := q.Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("deleting upload %s from %s: %w", uploadID, d, err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// GetSettings returns the settings table as a key/value map.
func (r *Repository) GetSettings(ctx context.Context) (map[string]string, error) {
	var rows []models.Setting
	if err := r.db.NewSelect().Model(&rows).Scan(ctx); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, s := range rows {
		out[s.Key] = s.Value
	}
	return out, nil
}

// PutSettings upserts each key/value pair.
func (r *Repository) PutSettings(ctx context.Context, values map[string]string) error {
	for k, v := range values {
		setting := &models.Setting{Key: k, Value: v}
		_, err := r.db.NewInsert().Model(setting).
			On("CONFLICT (key) DO UPDATE SET value = EXCLUDED.value").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("saving setting %s: %w", k, err)
		}
	}
	return nil
}
