package tenant

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TestModel is a simple model for testing company scoping
type TestModel struct {
	ID        string `gorm:"type:varchar(36);primaryKey"`
	CompanyID string `gorm:"type:varchar(36);not null;index"`
	Name      string `gorm:"size:100"`
}

func (TestModel) TableName() string {
	return "test_models"
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
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

func TestCompanyScope(t *testing.T) {
	t.Run("adds a qualified company predicate", func(t *testing.T) {
		db, mock, mockDB := setupMockDB(t)
		defer mockDB.Close()

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "test_models" WHERE "test_models"."company_id" = $1`)).
			WithArgs("company-a").
			WillReturnRows(sqlmock.NewRows([]string{"id", "company_id", "name"}).
				AddRow("row-1", "company-a", "first"))

		var rows []TestModel
		err := db.WithContext(context.Background()).Scopes(CompanyScope("company-a")).Find(&rows).Error
		require.NoError(t, err)
		assert.Len(t, rows, 1)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty company never reaches the database", func(t *testing.T) {
		db, mock, mockDB := setupMockDB(t)
		defer mockDB.Close()

		var rows []TestModel
		err := db.Scopes(CompanyScope("")).Find(&rows).Error
		assert.ErrorIs(t, err, ErrCompanyIDRequired)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOwnedRecord(t *testing.T) {
	t.Run("id and company share one WHERE clause", func(t *testing.T) {
		db, mock, mockDB := setupMockDB(t)
		defer mockDB.Close()

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "test_models" SET "name"=$1 WHERE "test_models"."id" = $2 AND "test_models"."company_id" = $3`)).
			WithArgs("renamed", "row-1", "company-a").
			WillReturnResult(sqlmock.NewResult(0, 1))

		result := db.Model(&TestModel{}).Scopes(OwnedRecord("row-1", "company-a")).Update("name", "renamed")
		require.NoError(t, result.Error)
		assert.Equal(t, int64(1), result.RowsAffected)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing id is rejected", func(t *testing.T) {
		db, mock, mockDB := setupMockDB(t)
		defer mockDB.Close()

		err := db.Model(&TestModel{}).Scopes(OwnedRecord("", "company-a")).Update("name", "x").Error
		assert.ErrorIs(t, err, ErrRecordIDRequired)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing company is rejected", func(t *testing.T) {
		db, mock, mockDB := setupMockDB(t)
		defer mockDB.Close()

		var row TestModel
		err := db.Scopes(OwnedRecord("row-1", "")).Find(&row).Error
		assert.ErrorIs(t, err, ErrCompanyIDRequired)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
