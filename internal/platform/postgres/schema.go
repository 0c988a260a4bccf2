package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/phrazzld/taskq-api/internal/store"
)

// Schema is the DDL of the users table, as shipped in schema.sql.
//
//go:embed schema.sql
var Schema string

// ApplySchema creates the users table if it does not exist.
func ApplySchema(ctx context.Context, db store.DBTX) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply users schema: %w", err)
	}
	return nil
}
