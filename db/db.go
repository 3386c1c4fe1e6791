package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"

	"github.com/yterada/ballpark/config"
	"github.com/yterada/ballpark/models"
)

// Setup opens a PostgreSQL connection using the provided config.
func Setup(cfg *config.Config) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.PostgresDSN())))
	db := bun.NewDB(sqldb, pgdialect.New())

	if cfg.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	if err := db.PingContext(context.Background()); err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	return db
}

// CreateTables creates the four dataset tables and the settings table.
func CreateTables(ctx context.Context, db *bun.DB) error {
	tables := []interface{}{
		(*models.PitchEvent)(nil),
		(*models.RapsodoPitch)(nil),
		(*models.RapsodoSwing)(nil),
		(*models.BlastSwing)(nil),
		(*models.Setting)(nil),
	}

	for _, model := range tables {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("creating table for %T: %w", model, err)
		}
	}

	// Delete-by-batch and history grouping both key on upload_id.
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS savant_data_upload_id ON savant_data (upload_id)`,
		`CREATE INDEX IF NOT EXISTS rapsodo_pitching_upload_id ON rapsodo_pitching (upload_id)`,
		`CREATE INDEX IF NOT EXISTS rapsodo_batting_upload_id ON rapsodo_batting (upload_id)`,
		`CREATE INDEX IF NOT EXISTS blast_data_upload_id ON blast_data (upload_id)`,
	}
	for _, stmt := range indexes {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			log.Printf("index: %v", err)
		}
	}

	return nil
}
