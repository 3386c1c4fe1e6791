package models

import "github.com/uptrace/bun"

// Setting is one persisted dashboard preference, e.g. language or units.
type Setting struct {
	bun.BaseModel `bun:"table:settings,alias:st"`

	Key   string `bun:"key,pk" json:"key"`
	Value string `bun:"value,notnull" json:"value"`
}
