package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/inkwell/metal/env"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Connection struct {
	driverName string
	driver     *gorm.DB
	env        *env.Environment
}

func MakeConnection(environment *env.Environment) (*Connection, error) {
	dbEnv := environment.DB

	var dialector gorm.Dialector

	switch dbEnv.DriverName {
	case "", env.PostgresDriver:
		dialector = postgres.Open(dbEnv.GetDSN())
	case env.SQLiteDriver:
		dialector = sqlite.Open(dbEnv.GetDSN())
	default:
		return nil, fmt.Errorf("unsupported database driver [%s]", dbEnv.DriverName)
	}

	driver, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})

	if err != nil {
		return nil, err
	}

	if dbEnv.IsSQLite() {
		if err := driver.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("enable sqlite foreign keys: %w", err)
		}
	}

	return &Connection{
		driver:     driver,
		driverName: driver.Dialector.Name(),
		env:        environment,
	}, nil
}

func (c *Connection) DriverName() string {
	return c.driverName
}

func (c *Connection) IsSQLite() bool {
	return c.driverName == env.SQLiteDriver
}

func (c *Connection) Close() bool {
	if sqlDB, err := c.driver.DB(); err != nil {
		slog.Error("There was an error closing the db: " + err.Error())

		return false
	} else {
		if err = sqlDB.Close(); err != nil {
			slog.Error("There was an error closing the db: " + err.Error())
			return false
		}
	}

	return true
}

func (c *Connection) Ping() error {
	var driver *sql.DB

	if conn, err := c.driver.DB(); err != nil {
		slog.Error("Error retrieving the db driver", "error", err.Error())

		return err
	} else {
		driver = conn
	}

	if err := driver.Ping(); err != nil {
		slog.Error("Error pinging the db driver", "error", err.Error())

		return err
	}

	slog.Debug("Database driver is healthy", "stats", driver.Stats())

	return nil
}

func (c *Connection) Sql() *gorm.DB {
	return c.driver
}

func (c *Connection) GetSession() *gorm.Session {
	return &gorm.Session{QueryFields: true}
}

func (c *Connection) Transaction(callback func(db *gorm.DB) error) error {
	if c == nil || c.driver == nil {
		return errors.New("database connection is not initialised")
	}

	return c.driver.Transaction(callback)
}
