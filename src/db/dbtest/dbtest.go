// Package dbtest opens throwaway in-memory databases for tests.
package dbtest

import (
	"fmt"
	"hbs/src/models"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New returns a migrated sqlite database private to t. The pool is limited to
// one connection so transactions serialize the way row locks do on postgres.
func New(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		t.Fatalf("open sqlite: %s", err.Error())
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sqlite pool: %s", err.Error())
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	if err := gdb.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("migrate: %s", err.Error())
	}
	return gdb
}
