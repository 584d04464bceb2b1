// Package testutil provides common test utilities for the repair shop backend.
// It opens throwaway databases, seeds the records a work order refers to and
// drives the HTTP API from tests.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/repairshop/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// NewSQLiteDB opens a private in-memory database with the full schema and
// foreign keys enforced. It is closed when the test ends.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err, "Failed to open sqlite database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a new database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...), "Failed to migrate schema")
	return db
}

// Shop is a customer with one vehicle and a couple of stocked inventory
// items, all owned by one company.
type Shop struct {
	CompanyID  string
	CustomerID string
	VehicleID  string
	ItemIDs    []string
}

// SeedShop inserts a customer, a vehicle and two inventory items for an
// existing company.
func SeedShop(t *testing.T, db *gorm.DB, companyID string) Shop {
	t.Helper()
	now := time.Now().UTC()

	scoped := func() models.CompanyScopedModel {
		return models.CompanyScopedModel{
			BaseModel: models.BaseModel{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now},
			CompanyID: companyID,
		}
	}

	customer := models.CustomerModel{
		CompanyScopedModel: scoped(),
		FirstName:          gofakeit.FirstName(),
		LastName:           gofakeit.LastName(),
		Email:              gofakeit.Email(),
		Phone:              gofakeit.Numerify("##########"),
	}
	require.NoError(t, db.Create(&customer).Error)

	vehicle := models.VehicleModel{
		CompanyScopedModel: scoped(),
		CustomerID:         customer.ID,
		Make:               gofakeit.CarMaker(),
		Model:              gofakeit.CarModel(),
		Year:               gofakeit.Number(1995, 2025),
		VIN:                gofakeit.LetterN(17),
	}
	require.NoError(t, db.Create(&vehicle).Error)

	shop := Shop{
		CompanyID:  companyID,
		CustomerID: customer.ID,
		VehicleID:  vehicle.ID,
	}
	for range 2 {
		item := models.InventoryItemModel{
			CompanyScopedModel: scoped(),
			Name:               gofakeit.ProductName(),
			SKU:                gofakeit.LetterN(8),
			Quantity:           gofakeit.Number(5, 50),
			UnitPrice:          decimal.NewFromFloat(gofakeit.Price(5, 200)).Round(2),
		}
		require.NoError(t, db.Create(&item).Error)
		shop.ItemIDs = append(shop.ItemIDs, item.ID)
	}
	return shop
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}

// ContextWithTimeout creates a context with timeout that is cancelled when the test ends.
func ContextWithTimeout(t *testing.T, timeout time.Duration) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}
