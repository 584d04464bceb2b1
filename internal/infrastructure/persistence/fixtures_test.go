package persistence

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/repairshop/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newSQLiteDB opens a private in-memory database with the full schema.
func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(SQLiteDSN(":memory:")), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

// newMockDB returns a GORM handle backed by sqlmock using the postgres dialect.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

// shopFixture is one company with the records a work order refers to.
type shopFixture struct {
	CompanyID    string
	CustomerID   string
	VehicleID    string
	TechnicianID string
	ItemIDs      []string
}

func seedShop(t *testing.T, db *gorm.DB, companyID string) shopFixture {
	t.Helper()
	now := time.Now().UTC()

	base := func(id string) models.BaseModel {
		return models.BaseModel{ID: id, CreatedAt: now, UpdatedAt: now}
	}
	scoped := func(id string) models.CompanyScopedModel {
		return models.CompanyScopedModel{BaseModel: base(id), CompanyID: companyID}
	}

	f := shopFixture{
		CompanyID:    companyID,
		CustomerID:   companyID + "-customer",
		VehicleID:    companyID + "-vehicle",
		TechnicianID: companyID + "-tech",
		ItemIDs:      []string{companyID + "-item-1", companyID + "-item-2"},
	}

	require.NoError(t, db.Create(&models.CompanyModel{
		BaseModel: base(companyID),
		Name:      gofakeit.Company(),
		Email:     gofakeit.Email(),
	}).Error)
	require.NoError(t, db.Create(&models.UserModel{
		CompanyScopedModel: scoped(f.TechnicianID),
		Email:              gofakeit.Email(),
		PasswordHash:       "hash",
		FirstName:          gofakeit.FirstName(),
		LastName:           gofakeit.LastName(),
		Role:               "TECHNICIAN",
	}).Error)
	require.NoError(t, db.Create(&models.CustomerModel{
		CompanyScopedModel: scoped(f.CustomerID),
		FirstName:          gofakeit.FirstName(),
		LastName:           gofakeit.LastName(),
		Email:              gofakeit.Email(),
		Phone:              gofakeit.Numerify("##########"),
	}).Error)
	require.NoError(t, db.Create(&models.VehicleModel{
		CompanyScopedModel: scoped(f.VehicleID),
		CustomerID:         f.CustomerID,
		Make:               gofakeit.CarMaker(),
		Model:              gofakeit.CarModel(),
		Year:               2019,
		VIN:                gofakeit.LetterN(17),
	}).Error)
	for _, id := range f.ItemIDs {
		require.NoError(t, db.Create(&models.InventoryItemModel{
			CompanyScopedModel: scoped(id),
			Name:               gofakeit.ProductName(),
			SKU:                gofakeit.LetterN(8),
			Quantity:           10,
			UnitPrice:          decimal.NewFromFloat(12.5),
		}).Error)
	}
	return f
}
