// Package store owns movement of canonical rows between the PostgreSQL
// row-store and the in-memory working sets: chunked batch inserts, paginated
// bulk loads, delete-by-upload, and reconstruction of the file history from
// persisted batch identifiers.
package store

import (
	"time"

	"github.com/google/uuid"
)

// Dataset names one of the four row collections.
type Dataset string

const (
	DatasetSavant          Dataset = "savant"
	DatasetRapsodoPitching Dataset = "rapsodo-pitching"
	DatasetRapsodoBatting  Dataset = "rapsodo-batting"
	DatasetBlast           Dataset = "blast"
)

// LegacyUploadID groups persisted rows that predate batch identifiers.
const LegacyUploadID = "legacy"

// PageSize is the fixed page size for bulk loads.
const PageSize = 1000

// BatchSize returns the fixed insert chunk size for a dataset. Savant
// uploads use smaller chunks because their rows are much wider.
func (d Dataset) BatchSize() int {
	if d == DatasetSavant {
		return 500
	}
	return 1000
}

// Valid reports whether d names a known dataset.
func (d Dataset) Valid() bool {
	switch d {
	case DatasetSavant, DatasetRapsodoPitching, DatasetRapsodoBatting, DatasetBlast:
		return true
	}
	return false
}

// NewUploadID returns a fresh batch identifier shared by every row of one
// ingestion operation.
func NewUploadID() string {
	return uuid.NewString()
}

// FileHistoryEntry summarizes one ingested batch. Entries are created at
// upload time or synthesized at load time by grouping rows on their stored
// upload_id; they disappear when all rows sharing the identifier are
// deleted.
type FileHistoryEntry struct {
	ID         string    `json:"id"`
	FileName   string    `json:"fileName"`
	Source     string    `json:"source"` // "upload" or "database"
	UploadedAt time.Time `json:"uploadedAt"`
	RowCount   int       `json:"rowCount"`
	Dataset    Dataset   `json:"dataType"`
}

// Batched is any canonical row carrying its batch identity.
type Batched interface {
	Upload() (uploadID, fileName string)
}

// BuildHistory reconstructs the file history from loaded rows by grouping on
// upload_id. Rows without one fall into the synthetic legacy group. Order
// follows first appearance in the row stream.
func BuildHistory[T Batched](rows []T, dataset Dataset) []FileHistoryEntry {
	now := time.Now()
	index := map[string]int{}
	var history []FileHistoryEntry

	for _, row := range rows {
		id, fileName := row.Upload()
		if id == "" {
			id = LegacyUploadID
		}
		if fileName == "" {
			fileName = "Legacy Data"
		}
		i, ok := index[id]
		if !ok {
			i = len(history)
			index[id] = i
			history = append(history, FileHistoryEntry{
				ID:         id,
				FileName:   fileName,
				Source:     "database",
				UploadedAt: now,
				RowCount:   0,
				Dataset:    dataset,
			})
		}
		history[i].RowCount++
	}
	return history
}
