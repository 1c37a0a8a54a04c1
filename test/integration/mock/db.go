// Package mock provides shared test doubles for the integration suite.
package mock

import (
	"database/sql"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/luismonroy1971/actividad-sub000/internal/integration/persistence/model"
)

var dbOnce sync.Once
var db *Db

// Db wraps a process-wide in-memory sqlite database for integration tests.
// A single connection is enforced so every scenario sees the same
// shared-cache instance.
type Db struct {
	DbConn *gorm.DB
	models []any
}

// NewDb returns the singleton test database, migrating the full schema on
// first use.
func NewDb() *Db {
	dbOnce.Do(func() {
		db = open()
	})
	return db
}

func open() *Db {
	sqlDB, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	models := []any{
		&model.ActivityModel{},
		&model.OptionModel{},
		&model.ClientModel{},
		&model.OrderModel{},
		&model.ExpenseModel{},
		&model.EmailQueueModel{},
	}
	if err := conn.AutoMigrate(models...); err != nil {
		panic("failed to migrate test schema. err: " + err.Error())
	}

	return &Db{
		DbConn: conn,
		models: models,
	}
}

// ClearDB empties every table between scenarios.
func (d *Db) ClearDB() error {
	for _, m := range d.models {
		if err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}
