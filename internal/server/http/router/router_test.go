package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kiralago/storefront/internal/config"
	"github.com/kiralago/storefront/internal/domain/model"
	"github.com/kiralago/storefront/internal/server/http/handlers"
	"github.com/kiralago/storefront/internal/session"
	testhelpers "github.com/kiralago/storefront/internal/test"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		MediaBackend:   config.MediaBackendDisk,
		UploadDir:      t.TempDir(),
		MediaBaseURL:   "/media/profile_pics",
		MaxUploadBytes: 2 << 20,
	}
}

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	sessions := testhelpers.NewSessionStoreStub()
	facade := testhelpers.StorefrontFacadeStub{
		CatalogFacadeStub: testhelpers.CatalogFacadeStub{Items: []model.Product{
			{ID: 1, Name: "Canoe", Price: 100.00},
		}},
	}
	engine := Setup(facade, sessions, logger, testConfig(t))

	// public catalog
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for products, got %d", resp.Code)
	}

	// register issues a session
	body, _ := json.Marshal(map[string]string{"username": "ayse", "email": "ayse@example.com", "password": "Secret123"})
	req = httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for register, got %d", resp.Code)
	}

	// cart requires authentication
	req = httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for unauthenticated cart, got %d", resp.Code)
	}

	token, err := sessions.Create(context.Background(), session.Identity{UserID: 7, Username: "ayse"})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/cart"},
		{http.MethodGet, "/api/checkout"},
		{http.MethodGet, "/api/user/profile"},
	} {
		req = httptest.NewRequest(route.method, route.path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp = httptest.NewRecorder()
		engine.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s %s: expected status 200, got %d", route.method, route.path, resp.Code)
		}
	}
}

var _ handlers.StorefrontFacade = (*testhelpers.StorefrontFacadeStub)(nil)
