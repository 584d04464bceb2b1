package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/repairshop/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPartLine struct {
	InventoryItemID string `json:"inventoryItemId" binding:"required"`
	Quantity        int    `json:"quantity" binding:"gt=0"`
}

type testOrderRequest struct {
	Description string         `json:"description" binding:"required,notblank"`
	Status      string         `json:"status" binding:"omitempty,oneof=PENDING COMPLETED"`
	Parts       []testPartLine `json:"parts" binding:"omitempty,dive"`
}

func newBindRouter() *gin.Engine {
	SetupValidator()

	router := gin.New()
	router.Use(RequestID())
	router.POST("/test", func(c *gin.Context) {
		var req testOrderRequest
		if !BindJSON(c, &req) {
			return
		}
		c.JSON(http.StatusOK, dto.NewSuccessResponse(req))
	})
	return router
}

func postJSON(router *gin.Engine, body string) (*httptest.ResponseRecorder, dto.Response) {
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp dto.Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestSetupValidator(t *testing.T) {
	SetupValidator()
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	assert.True(t, ok)
	assert.NotNil(t, v)
}

func TestBindJSON(t *testing.T) {
	router := newBindRouter()

	t.Run("valid body passes", func(t *testing.T) {
		w, resp := postJSON(router, `{"description":"Brake job","parts":[{"inventoryItemId":"item-1","quantity":2}]}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, resp.Success)
	})

	t.Run("blank description is rejected", func(t *testing.T) {
		w, resp := postJSON(router, `{"description":"   "}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		assert.Equal(t, "description: Must not be blank", resp.Error.Message)
		assert.NotEmpty(t, resp.Error.RequestID)
	})

	t.Run("nested field path uses json names", func(t *testing.T) {
		w, resp := postJSON(router, `{"description":"Brake job","parts":[{"inventoryItemId":"item-1","quantity":0}]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, resp.Error)
		require.Len(t, resp.Error.Details, 1)
		assert.Equal(t, "parts[0].quantity", resp.Error.Details[0].Field)
		assert.Equal(t, "Must be greater than 0", resp.Error.Details[0].Message)
	})

	t.Run("every violation is listed", func(t *testing.T) {
		w, resp := postJSON(router, `{"status":"DONE"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, resp.Error)
		assert.Len(t, resp.Error.Details, 2)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		w, resp := postJSON(router, `{"description":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeInvalidJSON, resp.Error.Code)
	})

	t.Run("wrong type", func(t *testing.T) {
		w, resp := postJSON(router, `{"description":"x","parts":[{"inventoryItemId":"item-1","quantity":"two"}]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeInvalidJSON, resp.Error.Code)
	})
}
