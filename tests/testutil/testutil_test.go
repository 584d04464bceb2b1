package testutil

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedShop(t *testing.T) {
	db := NewSQLiteDB(t)
	require.NoError(t, db.Exec(
		"INSERT INTO companies (id, name, email, created_at, updated_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)",
		"company-1", "Acme Garage", "acme@example.com").Error)

	shop := SeedShop(t, db, "company-1")

	assert.Equal(t, "company-1", shop.CompanyID)
	assert.NotEmpty(t, shop.CustomerID)
	assert.NotEmpty(t, shop.VehicleID)
	assert.Len(t, shop.ItemIDs, 2)
	assert.EqualValues(t, 1, CountRows(t, db, "customers"))
	assert.EqualValues(t, 1, CountRows(t, db, "vehicles"))
	assert.EqualValues(t, 2, CountRows(t, db, "inventory_items"))
}

func TestAPIClient(t *testing.T) {
	engine := gin.New()
	engine.POST("/echo", func(c *gin.Context) {
		var body map[string]string
		_ = c.ShouldBindJSON(&body)
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
			"auth": c.GetHeader("Authorization"),
			"key":  c.GetHeader("Idempotency-Key"),
			"name": body["name"],
		}})
	})
	engine.GET("/fail", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": gin.H{"code": "ERR_NOT_FOUND", "message": "gone"}})
	})

	client := NewAPIClient(engine).WithToken("abc")
	w := client.Do(t, http.MethodPost, "/echo", map[string]string{"name": "brakes"}, "Idempotency-Key", "k-1")
	data := DecodeData[map[string]string](t, w, http.StatusOK)
	assert.Equal(t, "Bearer abc", data["auth"])
	assert.Equal(t, "k-1", data["key"])
	assert.Equal(t, "brakes", data["name"])

	msg := AssertError(t, NewAPIClient(engine).Do(t, http.MethodGet, "/fail", nil), http.StatusNotFound, "ERR_NOT_FOUND")
	assert.Equal(t, "gone", msg)
}
