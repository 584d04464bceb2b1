package persistence

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/repairshop/backend/internal/domain/partner"
	"github.com/repairshop/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeCustomer(t *testing.T, companyID string) *partner.Customer {
	t.Helper()
	c, err := partner.NewCustomer(companyID, gofakeit.FirstName(), gofakeit.LastName(), gofakeit.Email(), gofakeit.Numerify("##########"))
	require.NoError(t, err)
	return c
}

func TestGormCustomerRepository(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	a := seedShop(t, db, "company-a")
	b := seedShop(t, db, "company-b")
	repo := NewGormCustomerRepository(db)

	created := fakeCustomer(t, a.CompanyID)
	require.NoError(t, repo.Create(ctx, created))

	t.Run("lists customers of the company with vehicles", func(t *testing.T) {
		customers, err := repo.FindAllForCompany(ctx, a.CompanyID)
		require.NoError(t, err)
		require.Len(t, customers, 2)
		for _, c := range customers {
			assert.Equal(t, a.CompanyID, c.CompanyID)
		}

		seeded, err := repo.FindByIDForCompany(ctx, a.CompanyID, a.CustomerID)
		require.NoError(t, err)
		require.Len(t, seeded.Vehicles, 1)
		assert.Equal(t, a.VehicleID, seeded.Vehicles[0].ID)
	})

	t.Run("hides customers of other companies", func(t *testing.T) {
		_, err := repo.FindByIDForCompany(ctx, b.CompanyID, created.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.Equal(t, "Customer not found", err.Error())
	})

	t.Run("updates contact details within the company", func(t *testing.T) {
		require.NoError(t, created.Update("Ada", "Lovelace", "ada@example.com", "5551234567"))
		require.NoError(t, repo.Update(ctx, created))

		got, err := repo.FindByIDForCompany(ctx, a.CompanyID, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ada", got.FirstName)
		assert.Equal(t, "ada@example.com", got.Email)
	})

	t.Run("update from another company is not found", func(t *testing.T) {
		foreign := *created
		foreign.CompanyID = b.CompanyID
		err := repo.Update(ctx, &foreign)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("delete is scoped by company", func(t *testing.T) {
		err := repo.DeleteForCompany(ctx, b.CompanyID, created.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		require.NoError(t, repo.DeleteForCompany(ctx, a.CompanyID, created.ID))
		_, err = repo.FindByIDForCompany(ctx, a.CompanyID, created.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
