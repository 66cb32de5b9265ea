package db

import (
	"context"
	"errors"
	"log"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewMockDB() (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening a stub database connection", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening gorm database", err)
	}

	return gormDB, mock
}

func TestPing(t *testing.T) {
	gormDB, mock := NewMockDB()
	NewDB(gormDB)
	defer NewDB(nil)

	mock.ExpectPing()
	assert.NoError(t, Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	assert.Error(t, Ping(context.Background()))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDbReturnsInjectedInstance(t *testing.T) {
	gormDB, _ := NewMockDB()
	NewDB(gormDB)
	defer NewDB(nil)

	assert.Same(t, gormDB, GetDb())
}
