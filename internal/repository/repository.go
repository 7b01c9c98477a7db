// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist, or update
// data, abstracting SQL away from the service layer.
package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/wedora/backend/internal/sqlerr"
)

// wrapErr normalizes driver errors for the layers above:
// Postgres errors become *sqlerr.Error so constraint violations can be
// classified, and ErrNoRows is tagged with the table name so the global
// error handler can name the missing entity.
func wrapErr(table string, err error) error {
	if err == nil {
		return nil
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return sqlerr.ConvertPgError(pgerr)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("table:%s: %w", table, err)
	}

	return err
}
