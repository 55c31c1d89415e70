package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/panganku/internal/domain/errors"
	"github.com/polkiloo/panganku/internal/domain/model"
	"github.com/polkiloo/panganku/internal/server/http/dto"
	"github.com/polkiloo/panganku/internal/server/http/middleware"
	testhelpers "github.com/polkiloo/panganku/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var (
	customer = model.Principal{UserID: "user-1", Role: model.RoleUser}
	admin    = model.Principal{UserID: "admin-1", Role: model.RoleAdmin}
)

func as(principal model.Principal) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.PrincipalContextKey, principal)
	}
}

func performRequest(t *testing.T, method, route, target string, handler gin.HandlerFunc, setup func(*gin.Context), body any) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case []byte:
		reader = bytes.NewReader(b)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(resp.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", resp.Body.String(), err)
	}
}

func TestCurrentPrincipal(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentPrincipal(c); got.UserID != "" {
		t.Fatalf("expected empty principal when not set, got %+v", got)
	}
	as(customer)(c)
	if got := CurrentPrincipal(c); got != customer {
		t.Fatalf("expected %+v, got %+v", customer, got)
	}
}

func TestWriteErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domainErrors.ErrValidation, http.StatusBadRequest},
		{domainErrors.ErrEmptyCart, http.StatusBadRequest},
		{domainErrors.ErrInvalidStatus, http.StatusBadRequest},
		{domainErrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{domainErrors.ErrForbidden, http.StatusForbidden},
		{domainErrors.ErrInvalidSignature, http.StatusForbidden},
		{domainErrors.ErrNotFound, http.StatusNotFound},
		{domainErrors.ErrAlreadyExists, http.StatusConflict},
		{domainErrors.ErrConflict, http.StatusConflict},
		{fmt.Errorf("%w: PENDING -> SHIPPED", domainErrors.ErrInvalidTransition), http.StatusConflict},
		{domainErrors.ErrInsufficientStock, http.StatusConflict},
		{fmt.Errorf("db down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		resp := performRequest(t, http.MethodGet, "/", "/", func(c *gin.Context) { writeError(c, tc.err) }, nil, nil)
		if resp.Code != tc.code {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.code, resp.Code)
		}
	}

	resp := performRequest(t, http.MethodGet, "/", "/", func(c *gin.Context) { writeError(c, fmt.Errorf("secret detail")) }, nil, nil)
	if bytes.Contains(resp.Body.Bytes(), []byte("secret detail")) {
		t.Fatalf("internal errors must not leak: %s", resp.Body.String())
	}
}

func TestBindAndValidate(t *testing.T) {
	handler := func(c *gin.Context) {
		var req dto.RegisterRequest
		if err := BindAndValidate(c, &req); err != nil {
			return
		}
		c.Status(http.StatusNoContent)
	}

	resp := performRequest(t, http.MethodPost, "/", "/", handler, nil, "{")
	var body map[string]any
	decodeBody(t, resp, &body)
	if resp.Code != http.StatusBadRequest || body["error"] != "invalid_request_body" {
		t.Fatalf("unexpected response for malformed body: %d %v", resp.Code, body)
	}

	resp = performRequest(t, http.MethodPost, "/", "/", handler, nil, map[string]string{"email": "bad", "password": "123"})
	decodeBody(t, resp, &body)
	fields, _ := body["fields"].(map[string]any)
	if resp.Code != http.StatusBadRequest || body["error"] != "validation_failed" {
		t.Fatalf("unexpected response for invalid body: %d %v", resp.Code, body)
	}
	if fields["email"] != "email" || fields["name"] != "required" || fields["password"] != "min" {
		t.Fatalf("unexpected field errors %v", fields)
	}

	resp = performRequest(t, http.MethodPost, "/", "/", handler, nil, dto.RegisterRequest{Email: "a@b.id", Name: "A", Password: "secret"})
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected valid body to pass, got %d", resp.Code)
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	email := testhelpers.RandomEmail()
	name := testhelpers.RandomASCIIString(3, 12)
	password := testhelpers.RandomASCIIString(6, 24)
	var got [3]string
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{RegisterFn: func(_ context.Context, email, name, password string) (*model.User, string, error) {
		got = [3]string{email, name, password}
		return &model.User{ID: "user-9", Email: email, Name: name, Role: model.RoleUser}, "token-9", nil
	}})
	resp := performRequest(t, http.MethodPost, "/auth/register", "/auth/register", handler.Register, nil,
		dto.RegisterRequest{Email: email, Name: name, Password: password})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	if got != [3]string{email, name, password} {
		t.Fatalf("unexpected facade input %v", got)
	}
	if resp.Header().Get("Authorization") != "Bearer token-9" {
		t.Fatalf("expected auth header, got %q", resp.Header().Get("Authorization"))
	}
	var body dto.AuthResponse
	decodeBody(t, resp, &body)
	if body.Token != "token-9" || body.User.ID != "user-9" || body.User.Role != "USER" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestAuthHandlerRegisterConflict(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string, string) (*model.User, string, error) {
		return nil, "", domainErrors.ErrAlreadyExists
	}})
	resp := performRequest(t, http.MethodPost, "/auth/register", "/auth/register", handler.Register, nil,
		dto.RegisterRequest{Email: "sari@example.com", Name: "Sari", Password: "rahasia"})
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.Code)
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{AuthenticateFn: func(_ context.Context, email, password string) (*model.User, string, error) {
		if password != "rahasia" {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return &model.User{ID: "user-1", Email: email, Role: model.RoleAdmin}, "token-1", nil
	}})

	resp := performRequest(t, http.MethodPost, "/auth/login", "/auth/login", handler.Login, nil, dto.LoginRequest{Email: "a@b.id", Password: "salah"})
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPost, "/auth/login", "/auth/login", handler.Login, nil, dto.LoginRequest{Email: "a@b.id", Password: "rahasia"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	cookies := resp.Result().Cookies()
	if len(cookies) == 0 || cookies[0].Value != "token-1" {
		t.Fatalf("expected auth cookie, got %+v", cookies)
	}
}

func TestPaymentNotification(t *testing.T) {
	var received model.PaymentNotification
	handler := NewPaymentHandler(testhelpers.OrderFacadeStub{PaymentFn: func(_ context.Context, n model.PaymentNotification) (*model.Transition, error) {
		received = n
		return &model.Transition{Order: model.Order{ID: n.OrderID, Status: model.OrderStatusProcessing}}, nil
	}})
	resp := performRequest(t, http.MethodPost, "/payment/notification", "/payment/notification", handler.Notification, nil,
		map[string]string{"order_id": "o1", "transaction_status": "settlement", "status_code": "200", "gross_amount": "65000.00", "signature_key": "abc"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if received.OrderID != "o1" || received.TransactionStatus != model.PaymentSettlement || received.SignatureKey != "abc" {
		t.Fatalf("unexpected notification %+v", received)
	}
	var body dto.PaymentResponse
	decodeBody(t, resp, &body)
	if !body.Success || body.Status != "PROCESSING" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestPaymentNotificationOutcomes(t *testing.T) {
	cases := []struct {
		name string
		tr   *model.Transition
		err  error
		code int
	}{
		{"duplicate acknowledged", nil, nil, http.StatusOK},
		{"unknown order", nil, domainErrors.ErrNotFound, http.StatusNotFound},
		{"bad signature", nil, domainErrors.ErrInvalidSignature, http.StatusForbidden},
		{"storage failure", nil, fmt.Errorf("tx aborted"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewPaymentHandler(testhelpers.OrderFacadeStub{PaymentFn: func(context.Context, model.PaymentNotification) (*model.Transition, error) {
				return tc.tr, tc.err
			}})
			resp := performRequest(t, http.MethodPost, "/payment/notification", "/payment/notification", handler.Notification, nil,
				map[string]string{"order_id": "o1", "transaction_status": "settlement"})
			if resp.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, resp.Code)
			}
			var body map[string]any
			decodeBody(t, resp, &body)
			if acked := body["success"] == true; acked != (tc.code == http.StatusOK) {
				t.Fatalf("success flag %v for status %d: %v", body["success"], resp.Code, body)
			}
		})
	}

	handler := NewPaymentHandler(testhelpers.OrderFacadeStub{})
	resp := performRequest(t, http.MethodPost, "/payment/notification", "/payment/notification", handler.Notification, nil,
		map[string]string{"transaction_status": "settlement"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without order id, got %d", resp.Code)
	}
}

func TestAdminUpdateStatus(t *testing.T) {
	var gotID, gotStatus string
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{UpdateFn: func(_ context.Context, orderID, status string) (*model.Transition, error) {
		gotID, gotStatus = orderID, status
		if status == "REFUNDED" {
			return nil, domainErrors.ErrInvalidStatus
		}
		return &model.Transition{Order: model.Order{ID: orderID, Status: model.OrderStatus(status)}}, nil
	}})

	resp := performRequest(t, http.MethodPatch, "/admin/order/:id", "/admin/order/o1", handler.AdminUpdateStatus, as(admin), dto.StatusUpdateRequest{Status: "SHIPPED"})
	if resp.Code != http.StatusOK || gotID != "o1" || gotStatus != "SHIPPED" {
		t.Fatalf("unexpected result %d id=%s status=%s", resp.Code, gotID, gotStatus)
	}

	resp = performRequest(t, http.MethodPatch, "/admin/order/:id", "/admin/order/o1", handler.AdminUpdateStatus, as(admin), dto.StatusUpdateRequest{Status: "REFUNDED"})
	var body map[string]string
	decodeBody(t, resp, &body)
	if resp.Code != http.StatusBadRequest || body["error"] != "Invalid status value" {
		t.Fatalf("expected invalid status response, got %d %v", resp.Code, body)
	}
}

func TestUpdateOwnStatusUsesCaller(t *testing.T) {
	var gotUser string
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{UpdateOwnFn: func(_ context.Context, userID, orderID, status string) (*model.Transition, error) {
		gotUser = userID
		return nil, domainErrors.ErrNotFound
	}})
	resp := performRequest(t, http.MethodPatch, "/profile/order/:id", "/profile/order/o2", handler.UpdateOwnStatus, as(customer), dto.StatusUpdateRequest{Status: "CANCELED"})
	if resp.Code != http.StatusNotFound || gotUser != "user-1" {
		t.Fatalf("unexpected result %d user=%s", resp.Code, gotUser)
	}
}

func TestOrderQueries(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{})

	resp := performRequest(t, http.MethodGet, "/profile/order/:id", "/profile/order/o1", handler.Get, as(customer), nil)
	var order dto.OrderResponse
	decodeBody(t, resp, &order)
	if resp.Code != http.StatusOK || order.ID != "o1" || len(order.Items) != 1 || order.Subtotal.String() != "50000" {
		t.Fatalf("unexpected order %d %+v", resp.Code, order)
	}

	resp = performRequest(t, http.MethodGet, "/profile/orders", "/profile/orders", handler.List, as(customer), nil)
	var orders []dto.OrderResponse
	decodeBody(t, resp, &orders)
	if resp.Code != http.StatusOK || len(orders) != 1 || orders[0].UserID != "user-1" {
		t.Fatalf("unexpected orders %d %+v", resp.Code, orders)
	}

	resp = performRequest(t, http.MethodGet, "/orders/:id/status", "/orders/o1/status", handler.Status, as(customer), nil)
	var status dto.StatusResponse
	decodeBody(t, resp, &status)
	if resp.Code != http.StatusOK || status.Status != "SHIPPED" || status.OrderID != "o1" {
		t.Fatalf("unexpected status %d %+v", resp.Code, status)
	}

	var gotFilter string
	handler = NewOrderHandler(testhelpers.OrderFacadeStub{AllOrdersFn: func(_ context.Context, status string) ([]model.Order, error) {
		gotFilter = status
		return nil, nil
	}})
	resp = performRequest(t, http.MethodGet, "/admin/orders", "/admin/orders?status=PROCESSING", handler.AdminList, as(admin), nil)
	if resp.Code != http.StatusOK || gotFilter != "PROCESSING" || resp.Body.String() != "[]" {
		t.Fatalf("unexpected admin list %d %q filter=%s", resp.Code, resp.Body.String(), gotFilter)
	}
}

func TestCatalogProductsQuery(t *testing.T) {
	var got model.ProductFilter
	handler := NewCatalogHandler(testhelpers.CatalogFacadeStub{ProductsFn: func(_ context.Context, f model.ProductFilter) (*model.ProductPage, error) {
		got = f
		return &model.ProductPage{Page: 2, Limit: 10}, nil
	}})

	resp := performRequest(t, http.MethodGet, "/products", "/products?q=apel&category=c1&min_price=1000&max_price=50000&sort=price_asc&page=2&limit=10", handler.Products, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got.Query != "apel" || got.CategoryID != "c1" || got.Sort != model.SortPriceAsc || got.Page != 2 || got.Limit != 10 {
		t.Fatalf("unexpected filter %+v", got)
	}
	if got.MinPrice == nil || got.MinPrice.String() != "1000" || got.MaxPrice == nil || got.MaxPrice.String() != "50000" {
		t.Fatalf("unexpected price range %v %v", got.MinPrice, got.MaxPrice)
	}

	for _, query := range []string{"?page=x", "?limit=-1", "?min_price=abc", "?max_price=-5"} {
		resp = performRequest(t, http.MethodGet, "/products", "/products"+query, handler.Products, nil, nil)
		if resp.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", query, resp.Code)
		}
	}
}

func TestCatalogAdminOperations(t *testing.T) {
	handler := NewCatalogHandler(testhelpers.CatalogFacadeStub{})

	resp := performRequest(t, http.MethodPost, "/admin/products", "/admin/products", handler.CreateProduct, as(admin),
		map[string]any{"name": "Apel Fuji", "price": "25000", "stock": 5})
	var product dto.ProductResponse
	decodeBody(t, resp, &product)
	if resp.Code != http.StatusCreated || product.ID != "product-new" || product.Price.String() != "25000" {
		t.Fatalf("unexpected create %d %+v", resp.Code, product)
	}

	resp = performRequest(t, http.MethodPost, "/admin/products", "/admin/products", handler.CreateProduct, as(admin),
		map[string]any{"name": "Apel", "price": 1000, "stock": -1})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative stock, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPut, "/admin/products/:id", "/admin/products/p7", handler.UpdateProduct, as(admin),
		map[string]any{"name": "Apel", "price": 1000, "stock": 1})
	decodeBody(t, resp, &product)
	if resp.Code != http.StatusOK || product.ID != "p7" {
		t.Fatalf("unexpected update %d %+v", resp.Code, product)
	}

	resp = performRequest(t, http.MethodDelete, "/admin/products/:id", "/admin/products/p7", handler.DeleteProduct, as(admin), nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}

	inUse := NewCatalogHandler(testhelpers.CatalogFacadeStub{DeleteFn: func(context.Context, string) error { return domainErrors.ErrConflict }})
	resp = performRequest(t, http.MethodDelete, "/admin/categories/:id", "/admin/categories/c1", inUse.DeleteCategory, as(admin), nil)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 for category in use, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPost, "/admin/categories", "/admin/categories", handler.CreateCategory, as(admin), dto.CategoryRequest{Name: "Buah"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
}

func TestCatalogProductNotFound(t *testing.T) {
	handler := NewCatalogHandler(testhelpers.CatalogFacadeStub{ProductFn: func(context.Context, string) (*model.Product, error) {
		return nil, domainErrors.ErrNotFound
	}})
	resp := performRequest(t, http.MethodGet, "/products/:id", "/products/missing", handler.Product, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestCartHandlers(t *testing.T) {
	type call struct {
		user, target string
		qty          int
	}
	var calls []call
	handler := NewCartHandler(testhelpers.CartFacadeStub{
		MutateFn: func(_ context.Context, userID, target string, qty int) (*model.Order, error) {
			calls = append(calls, call{userID, target, qty})
			if qty > 100 {
				return nil, domainErrors.ErrInsufficientStock
			}
			return &model.Order{ID: "cart-1", UserID: userID, Status: model.OrderStatusPending}, nil
		},
		CheckoutFn: func(context.Context, string, string) (*model.Order, error) {
			return nil, domainErrors.ErrEmptyCart
		},
	})

	resp := performRequest(t, http.MethodGet, "/cart", "/cart", handler.Get, as(customer), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPost, "/cart/items", "/cart/items", handler.AddItem, as(customer), dto.AddCartItemRequest{ProductID: "p1", Quantity: 2})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	resp = performRequest(t, http.MethodPost, "/cart/items", "/cart/items", handler.AddItem, as(customer), dto.AddCartItemRequest{ProductID: "p1", Quantity: 0})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero quantity, got %d", resp.Code)
	}
	resp = performRequest(t, http.MethodPost, "/cart/items", "/cart/items", handler.AddItem, as(customer), dto.AddCartItemRequest{ProductID: "p1", Quantity: 500})
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 over stock, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPatch, "/cart/items/:itemId", "/cart/items/i1", handler.SetItem, as(customer), map[string]int{"quantity": 0})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected zero quantity to be accepted, got %d", resp.Code)
	}
	resp = performRequest(t, http.MethodPatch, "/cart/items/:itemId", "/cart/items/i1", handler.SetItem, as(customer), map[string]int{})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without quantity, got %d", resp.Code)
	}
	resp = performRequest(t, http.MethodDelete, "/cart/items/:itemId", "/cart/items/i2", handler.RemoveItem, as(customer), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	want := []call{{"user-1", "p1", 2}, {"user-1", "p1", 500}, {"user-1", "i1", 0}, {"user-1", "i2", 0}}
	if fmt.Sprint(calls) != fmt.Sprint(want) {
		t.Fatalf("unexpected calls %v", calls)
	}

	resp = performRequest(t, http.MethodPost, "/cart/checkout", "/cart/checkout", handler.Checkout, as(customer), dto.CheckoutRequest{AddressID: "a1"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty cart, got %d", resp.Code)
	}
}

func TestProfileHandlers(t *testing.T) {
	orderID := "o1"
	handler := NewProfileHandler(testhelpers.ProfileFacadeStub{
		Feed: []model.Notification{{ID: "n1", UserID: "user-1", OrderID: &orderID, Message: "Pesanan #o1 sedang dikirim."}},
		MarkReadFn: func(_ context.Context, userID, id string) error {
			if id != "n1" {
				return domainErrors.ErrNotFound
			}
			return nil
		},
	})

	resp := performRequest(t, http.MethodGet, "/profile/addresses", "/profile/addresses", handler.Addresses, as(customer), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPost, "/profile/addresses", "/profile/addresses", handler.CreateAddress, as(customer),
		dto.AddressRequest{Recipient: "Sari", Phone: "0812", Street: "Jl. Melati 5", City: "Bandung"})
	var address dto.AddressResponse
	decodeBody(t, resp, &address)
	if resp.Code != http.StatusCreated || address.ID != "address-new" {
		t.Fatalf("unexpected create %d %+v", resp.Code, address)
	}

	resp = performRequest(t, http.MethodPost, "/profile/addresses", "/profile/addresses", handler.CreateAddress, as(customer), dto.AddressRequest{Recipient: "Sari"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for incomplete address, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodDelete, "/profile/addresses/:id", "/profile/addresses/a1", handler.DeleteAddress, as(customer), nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/notifications", "/notifications", handler.Notifications, as(customer), nil)
	var feed []dto.Notification
	decodeBody(t, resp, &feed)
	if resp.Code != http.StatusOK || len(feed) != 1 || feed[0].OrderID == nil || *feed[0].OrderID != "o1" {
		t.Fatalf("unexpected feed %d %+v", resp.Code, feed)
	}

	resp = performRequest(t, http.MethodPatch, "/notifications/:id/read", "/notifications/n1/read", handler.MarkRead, as(customer), nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
	resp = performRequest(t, http.MethodPatch, "/notifications/:id/read", "/notifications/n9/read", handler.MarkRead, as(customer), nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestReviewHandlers(t *testing.T) {
	handler := NewReviewHandler(testhelpers.ReviewFacadeStub{})

	resp := performRequest(t, http.MethodGet, "/products/:id/reviews", "/products/p1/reviews", handler.List, nil, nil)
	var reviews []dto.ReviewResponse
	decodeBody(t, resp, &reviews)
	if resp.Code != http.StatusOK || len(reviews) != 1 || reviews[0].ProductID != "p1" {
		t.Fatalf("unexpected reviews %d %+v", resp.Code, reviews)
	}

	resp = performRequest(t, http.MethodPost, "/products/:id/reviews", "/products/p1/reviews", handler.Create, as(customer), dto.ReviewRequest{Rating: 6})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for rating 6, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPost, "/products/:id/reviews", "/products/p1/reviews", handler.Create, as(customer), dto.ReviewRequest{Rating: 5, Comment: "segar"})
	var review dto.ReviewResponse
	decodeBody(t, resp, &review)
	if resp.Code != http.StatusCreated || review.UserID != "user-1" || review.Rating != 5 {
		t.Fatalf("unexpected review %d %+v", resp.Code, review)
	}

	resp = performRequest(t, http.MethodPost, "/admin/reviews/:id/reply", "/admin/reviews/r1/reply", handler.Reply, as(admin), dto.ReplyRequest{Reply: "Terima kasih"})
	decodeBody(t, resp, &review)
	if resp.Code != http.StatusOK || review.Reply == nil || *review.Reply != "Terima kasih" {
		t.Fatalf("unexpected reply %d %+v", resp.Code, review)
	}
}
