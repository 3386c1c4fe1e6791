// cmd/ingest/main.go
// Loads vendor CSV exports from disk into the database through the same
// pipeline the upload endpoint uses. Useful for seeding or re-importing
// historical files without the dashboard.
//
// Usage:
//
//	go run ./cmd/ingest -dataset savant export.csv [more.csv ...]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/yterada/ballpark/config"
	bundb "github.com/yterada/ballpark/db"
	"github.com/yterada/ballpark/ingest"
	"github.com/yterada/ballpark/store"
)

func main() {
	datasetFlag := flag.String("dataset", "", "one of: savant, rapsodo-pitching, rapsodo-batting, blast (required)")
	flag.Parse()

	d := store.Dataset(*datasetFlag)
	if !d.Valid() {
		log.Fatal("-dataset must be one of: savant, rapsodo-pitching, rapsodo-batting, blast")
	}
	if flag.NArg() == 0 {
		log.Fatal("at least one CSV file is required")
	}

	ctx := context.Background()
	cfg := config.Load()
	db := bundb.Setup(cfg)
	defer db.Close()

	if err := bundb.CreateTables(ctx, db); err != nil {
		log.Fatalf("create tables: %v", err)
	}

	repo := store.NewRepository(db)
	for _, path := range flag.Args() {
		kept, dropped, err := ingestFile(ctx, repo, d, path)
		if err != nil {
			log.Fatalf("%s: %v", path, err)
		}
		log.Printf("%-40s  %d rows inserted, %d dropped", filepath.Base(path), kept, dropped)
	}
}

func ingestFile(ctx context.Context, repo *store.Repository, d store.Dataset, path string) (kept, dropped int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	uploadID := store.NewUploadID()
	fileName := filepath.Base(path)

	switch d {
	case store.DatasetSavant:
		raw, err := ingest.ReadCSV(f)
		if err != nil {
			return 0, 0, err
		}
		rows, n := ingest.MapSavantRows(raw, fileName, uploadID)
		if err := store.UploadBatches(ctx, rows, d.BatchSize(), repo.InsertSavant); err != nil {
			return 0, 0, err
		}
		return len(rows), n, nil

	case store.DatasetRapsodoPitching:
		raw, err := ingest.ReadCSV(f)
		if err != nil {
			return 0, 0, err
		}
		rows, n := ingest.MapRapsodoPitches(raw, fileName, uploadID)
		if err := store.UploadBatches(ctx, rows, d.BatchSize(), repo.InsertRapsodoPitching); err != nil {
			return 0, 0, err
		}
		return len(rows), n, nil

	case store.DatasetRapsodoBatting:
		raw, err := ingest.ReadCSV(f)
		if err != nil {
			return 0, 0, err
		}
		rows, n := ingest.MapRapsodoSwings(raw, fileName, uploadID)
		if err := store.UploadBatches(ctx, rows, d.BatchSize(), repo.InsertRapsodoBatting); err != nil {
			return 0, 0, err
		}
		return len(rows), n, nil

	case store.DatasetBlast:
		raw, err := ingest.ReadBlastCSV(f)
		if err != nil {
			return 0, 0, err
		}
		rows, n := ingest.MapBlastRows(raw, fileName, uploadID)
		if err := store.UploadBatches(ctx, rows, d.BatchSize(), repo.InsertBlast); err != nil {
			return 0, 0, err
		}
		return len(rows), n, nil
	}

	return 0, 0, fmt.Errorf("unknown dataset %q", d)
}
