package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())
	assert.Equal(t, "/api/v1", r.BasePath())
	assert.Empty(t, r.registrars)

	r = NewRouter(gin.New(), WithAPIVersion("v2"))
	assert.Equal(t, "/api/v2", r.BasePath())
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	group := NewDomainGroup("system", "/system")
	group.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	r.Register(group).Setup()

	w := serve(engine, http.MethodGet, "/api/v1/system/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())

	assert.Equal(t, http.StatusNotFound, serve(engine, http.MethodGet, "/system/ping").Code)
}

func TestRouterUseGuardsEveryRegistrar(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine).Use(func(c *gin.Context) {
		c.Header("X-Api", "v1")
		c.Next()
	})

	customers := NewDomainGroup("customers", "/customers").
		GET("", func(c *gin.Context) { c.Status(http.StatusOK) })
	workOrders := NewDomainGroup("work-orders", "/work-orders").
		GET("", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.Register(customers).Register(workOrders).Setup()

	for _, path := range []string{"/api/v1/customers", "/api/v1/work-orders"} {
		w := serve(engine, http.MethodGet, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, "v1", w.Header().Get("X-Api"), path)
	}
}

func TestDomainGroupMethods(t *testing.T) {
	engine := gin.New()
	g := NewDomainGroup("work-orders", "/work-orders")
	reply := func(status int) gin.HandlerFunc {
		return func(c *gin.Context) { c.Status(status) }
	}

	g.GET("/:id", reply(http.StatusOK)).
		POST("", reply(http.StatusCreated)).
		PUT("/:id", reply(http.StatusOK)).
		PATCH("/:id/status", reply(http.StatusOK)).
		DELETE("/:id", reply(http.StatusNoContent))

	g.RegisterRoutes(engine.Group("/api/v1"))

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/api/v1/work-orders/wo-1", http.StatusOK},
		{http.MethodPost, "/api/v1/work-orders", http.StatusCreated},
		{http.MethodPut, "/api/v1/work-orders/wo-1", http.StatusOK},
		{http.MethodPatch, "/api/v1/work-orders/wo-1/status", http.StatusOK},
		{http.MethodDelete, "/api/v1/work-orders/wo-1", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			assert.Equal(t, tt.status, serve(engine, tt.method, tt.path).Code)
		})
	}

	assert.Equal(t, "work-orders", g.Name())
	assert.Equal(t, "/work-orders", g.Prefix())
}

func TestDomainGroupMiddlewareAndSubgroups(t *testing.T) {
	engine := gin.New()
	auth := NewDomainGroup("auth", "/auth")
	auth.POST("/login", func(c *gin.Context) { c.String(http.StatusOK, "login") })

	protected := auth.Group("auth-protected", "")
	protected.Use(func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Next()
	})
	protected.GET("/me", func(c *gin.Context) { c.String(http.StatusOK, "me") })

	auth.RegisterRoutes(engine.Group("/api/v1"))

	assert.Equal(t, http.StatusOK, serve(engine, http.MethodPost, "/api/v1/auth/login").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(engine, http.MethodGet, "/api/v1/auth/me").Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer x")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "me", w.Body.String())
}
