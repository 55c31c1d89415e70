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

	"github.com/polkiloo/panganku/internal/domain/model"
	"github.com/polkiloo/panganku/internal/server/http/handlers"
	testhelpers "github.com/polkiloo/panganku/internal/test"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := testhelpers.StoreFacadeStub{
		OrderFacadeStub: testhelpers.OrderFacadeStub{
			PaymentFn: func(context.Context, model.PaymentNotification) (*model.Transition, error) {
				return nil, nil
			},
		},
	}
	return Setup(facade, logger)
}

func serve(engine *gin.Engine, method, target, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	return resp
}

func TestSetupRoutes(t *testing.T) {
	engine := newEngine()

	cases := []struct {
		name   string
		method string
		target string
		token  string
		body   any
		code   int
	}{
		{"register", http.MethodPost, "/auth/register", "", map[string]string{"email": "a@b.id", "name": "A", "password": "secret"}, http.StatusCreated},
		{"login", http.MethodPost, "/auth/login", "", map[string]string{"email": "a@b.id", "password": "secret"}, http.StatusOK},
		{"webhook is public", http.MethodPost, "/payment/notification", "", map[string]string{"order_id": "o1", "transaction_status": "settlement"}, http.StatusOK},
		{"products are public", http.MethodGet, "/products", "", nil, http.StatusOK},
		{"product detail", http.MethodGet, "/products/p1", "", nil, http.StatusOK},
		{"reviews are public", http.MethodGet, "/products/p1/reviews", "", nil, http.StatusOK},
		{"categories", http.MethodGet, "/categories", "", nil, http.StatusOK},
		{"cart requires auth", http.MethodGet, "/cart", "", nil, http.StatusUnauthorized},
		{"cart", http.MethodGet, "/cart", "user", nil, http.StatusOK},
		{"review create", http.MethodPost, "/products/p1/reviews", "user", map[string]any{"rating": 4}, http.StatusCreated},
		{"history", http.MethodGet, "/profile/orders", "user", nil, http.StatusOK},
		{"own order", http.MethodGet, "/profile/order/o1", "user", nil, http.StatusOK},
		{"own status update", http.MethodPatch, "/profile/order/o1", "user", map[string]string{"status": "CANCELED"}, http.StatusOK},
		{"status lookup", http.MethodGet, "/orders/o1/status", "user", nil, http.StatusOK},
		{"addresses", http.MethodGet, "/profile/addresses", "user", nil, http.StatusOK},
		{"notifications", http.MethodGet, "/notifications", "user", nil, http.StatusOK},
		{"mark read", http.MethodPatch, "/notifications/n1/read", "user", nil, http.StatusNoContent},
		{"admin requires role", http.MethodGet, "/admin/orders", "user", nil, http.StatusForbidden},
		{"admin requires auth", http.MethodPatch, "/admin/order/o1", "", map[string]string{"status": "SHIPPED"}, http.StatusUnauthorized},
		{"admin orders", http.MethodGet, "/admin/orders", "admin", nil, http.StatusOK},
		{"admin status update", http.MethodPatch, "/admin/order/o1", "admin", map[string]string{"status": "SHIPPED"}, http.StatusOK},
		{"admin delete product", http.MethodDelete, "/admin/products/p1", "admin", nil, http.StatusNoContent},
		{"admin reply", http.MethodPost, "/admin/reviews/r1/reply", "admin", map[string]string{"reply": "Terima kasih"}, http.StatusOK},
		{"healthz", http.MethodGet, "/healthz", "", nil, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := serve(engine, tc.method, tc.target, tc.token, tc.body)
			if resp.Code != tc.code {
				t.Fatalf("expected %d, got %d: %s", tc.code, resp.Code, resp.Body.String())
			}
		})
	}
}

func TestSetupGzipResponses(t *testing.T) {
	engine := newEngine()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip encoded response, got headers %v", resp.Header())
	}
}

var _ handlers.StoreFacade = testhelpers.StoreFacadeStub{}
