package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/inkwell/metal/env"
	"github.com/lib/pq"
)

type Truncate struct {
	database *Connection
	env      *env.Environment
}

func NewTruncate(db *Connection, env *env.Environment) *Truncate {
	return &Truncate{
		database: db,
		env:      env,
	}
}

func (t Truncate) Execute() error {
	if t.env.App.IsProduction() {
		panic("Cannot truncate production environment")
	}

	tables := GetSchemaTables()
	var errs []error

	db := t.database.Sql()

	for i := len(tables) - 1; i >= 0; i-- {
		table := tables[i]

		if !isValidTable(table) {
			errs = append(errs, fmt.Errorf("table '%s' does not exist", table))
			continue
		}

		if !db.Migrator().HasTable(table) {
			fmt.Printf("[db:truncate] skipped table [%s]: table does not exist\n", table)
			continue
		}

		exec := db.Exec(t.statementFor(table))
		if exec.Error != nil {
			if isUndefinedRelationError(exec.Error) {
				fmt.Printf("[db:truncate] skipped table [%s]: %v\n", table, exec.Error)
				continue
			}

			fmt.Printf("[db:truncate] failed to truncate table [%s]: %v\n", table, exec.Error)
			errs = append(errs, fmt.Errorf("truncate table %s: %w", table, exec.Error))
			continue
		}

		fmt.Printf("[db:truncate] truncated table [%s]\n", table)
	}

	if len(errs) > 0 {
		return fmt.Errorf("truncate completed with %d error(s): %w", len(errs), errors.Join(errs...))
	}
	return nil
}

// statementFor builds the wipe statement for the connected engine. SQLite has
// no TRUNCATE, so rows are deleted instead.
func (t Truncate) statementFor(table string) string {
	quoted := pq.QuoteIdentifier(table)

	if t.database.IsSQLite() {
		return fmt.Sprintf("DELETE FROM %s;", quoted)
	}

	return fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE;", quoted)
}

func isUndefinedRelationError(err error) bool {
	return sqlState(err) == "42P01"
}

func sqlState(err error) string {
	if err == nil {
		return ""
	}

	var stateErr interface{ SQLState() string }
	if errors.As(err, &stateErr) {
		return stateErr.SQLState()
	}

	message := err.Error()
	upper := strings.ToUpper(message)
	marker := "(SQLSTATE "
	idx := strings.LastIndex(upper, marker)
	if idx != -1 {
		start := idx + len(marker)
		end := strings.Index(upper[start:], ")")
		if end != -1 {
			return message[start : start+end]
		}
	}

	return ""
}
