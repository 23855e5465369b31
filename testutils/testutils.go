package testutils

import (
	"io"
	"log"
	"testing"

	"growing-backend/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB swaps the global DB for a sqlmock-backed connection. The
// returned cleanup restores the original and must be deferred.
func SetupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock connection: %s", err)
	}

	newLogger := logger.New(
		log.New(io.Discard, "", log.LstdFlags),
		logger.Config{
			LogLevel: logger.Silent,
		},
	)

	dialector := postgres.New(postgres.Config{
		Conn:       sqlDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		t.Fatalf("failed to open GORM connection: %s", err)
	}

	originalDB := database.DB
	database.DB = gormDB

	cleanup := func() {
		database.DB = originalDB
		sqlDB.Close()
	}

	return gormDB, mock, cleanup
}

func SetupTestRouter() *gin.Engine {
	r := gin.New()
	return r
}

func InitTestMain() {
	gin.SetMode(gin.TestMode)
}
