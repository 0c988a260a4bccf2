// Package postgres implements the credential store defined in internal/store
// on PostgreSQL, using database/sql with the pgx stdlib driver.
//
// The store expects the users table from schema.sql (exported as Schema) to
// exist. The server does not migrate it; apply the file once, for example
// with psql -f, or call ApplySchema from provisioning code.
package postgres
