package test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/panganku/internal/domain/model"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PaymentFn     func(context.Context, model.PaymentNotification) (*model.Transition, error)
	UpdateFn      func(context.Context, string, string) (*model.Transition, error)
	UpdateOwnFn   func(context.Context, string, string, string) (*model.Transition, error)
	OrderFn       func(context.Context, model.Principal, string) (*model.Order, error)
	OrdersFn      func(context.Context, string) ([]model.Order, error)
	AllOrdersFn   func(context.Context, string) ([]model.Order, error)
	OrderStatusFn func(context.Context, model.Principal, string) (*model.StatusSnapshot, error)
}

func transitionTo(orderID string, status model.OrderStatus) *model.Transition {
	return &model.Transition{
		Order:        model.Order{ID: orderID, UserID: "user-1", Status: status},
		From:         model.OrderStatusPending,
		Notification: model.Notification{ID: "notification-1", UserID: "user-1", Message: "updated"},
	}
}

// HandlePayment delegates to PaymentFn or reports a settled order.
func (s OrderFacadeStub) HandlePayment(ctx context.Context, n model.PaymentNotification) (*model.Transition, error) {
	if s.PaymentFn != nil {
		return s.PaymentFn(ctx, n)
	}
	return transitionTo(n.OrderID, model.OrderStatusProcessing), nil
}

// UpdateOrderStatus delegates to UpdateFn or accepts the change.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, orderID, status string) (*model.Transition, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, orderID, status)
	}
	return transitionTo(orderID, model.OrderStatus(status)), nil
}

// UpdateOwnOrderStatus delegates to UpdateOwnFn or accepts the change.
func (s OrderFacadeStub) UpdateOwnOrderStatus(ctx context.Context, userID, orderID, status string) (*model.Transition, error) {
	if s.UpdateOwnFn != nil {
		return s.UpdateOwnFn(ctx, userID, orderID, status)
	}
	return transitionTo(orderID, model.OrderStatus(status)), nil
}

// Order returns a single order with one item.
func (s OrderFacadeStub) Order(ctx context.Context, principal model.Principal, orderID string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, principal, orderID)
	}
	return &model.Order{
		ID:           orderID,
		UserID:       principal.UserID,
		Status:       model.OrderStatusProcessing,
		Total:        decimal.NewFromInt(65000),
		ShippingCost: decimal.NewFromInt(15000),
		Items: []model.OrderItem{{
			ID: "item-1", ProductID: "product-1", ProductName: "Apel", Quantity: 2, UnitPrice: decimal.NewFromInt(25000),
		}},
	}, nil
}

// Orders returns the order history.
func (s OrderFacadeStub) Orders(ctx context.Context, userID string) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{{ID: "order-1", UserID: userID, Status: model.OrderStatusPending}}, nil
}

// AllOrders returns orders of every user.
func (s OrderFacadeStub) AllOrders(ctx context.Context, status string) ([]model.Order, error) {
	if s.AllOrdersFn != nil {
		return s.AllOrdersFn(ctx, status)
	}
	return []model.Order{{ID: "order-1", UserID: "user-1", Status: model.OrderStatusProcessing}}, nil
}

// OrderStatus returns a snapshot owned by the caller.
func (s OrderFacadeStub) OrderStatus(ctx context.Context, principal model.Principal, orderID string) (*model.StatusSnapshot, error) {
	if s.OrderStatusFn != nil {
		return s.OrderStatusFn(ctx, principal, orderID)
	}
	return &model.StatusSnapshot{OrderID: orderID, UserID: principal.UserID, Status: model.OrderStatusShipped, UpdatedAt: time.Unix(0, 0)}, nil
}

// CatalogFacadeStub simulates catalog operations.
type CatalogFacadeStub struct {
	ProductsFn       func(context.Context, model.ProductFilter) (*model.ProductPage, error)
	ProductFn        func(context.Context, string) (*model.Product, error)
	SaveProductFn    func(context.Context, model.Product) (*model.Product, error)
	SaveCategoryFn   func(context.Context, model.Category) (*model.Category, error)
	DeleteFn         func(context.Context, string) error
	CategoriesResult []model.Category
}

// Products returns a single page with one product.
func (s CatalogFacadeStub) Products(ctx context.Context, filter model.ProductFilter) (*model.ProductPage, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, filter)
	}
	filter = filter.Normalize()
	return &model.ProductPage{
		Items: []model.Product{{ID: "product-1", Name: "Apel", Price: decimal.NewFromInt(25000), Stock: 10}},
		Total: 1,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// Product returns a product with the requested id.
func (s CatalogFacadeStub) Product(ctx context.Context, id string) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "Apel", Price: decimal.NewFromInt(25000), Stock: 10}, nil
}

func (s CatalogFacadeStub) saveProduct(ctx context.Context, p model.Product) (*model.Product, error) {
	if s.SaveProductFn != nil {
		return s.SaveProductFn(ctx, p)
	}
	if p.ID == "" {
		p.ID = "product-new"
	}
	return &p, nil
}

// CreateProduct echoes the product back.
func (s CatalogFacadeStub) CreateProduct(ctx context.Context, p model.Product) (*model.Product, error) {
	return s.saveProduct(ctx, p)
}

// UpdateProduct echoes the product back.
func (s CatalogFacadeStub) UpdateProduct(ctx context.Context, p model.Product) (*model.Product, error) {
	return s.saveProduct(ctx, p)
}

// DeleteProduct delegates to DeleteFn.
func (s CatalogFacadeStub) DeleteProduct(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// Categories returns CategoriesResult.
func (s CatalogFacadeStub) Categories(ctx context.Context) ([]model.Category, error) {
	return s.CategoriesResult, nil
}

func (s CatalogFacadeStub) saveCategory(ctx context.Context, c model.Category) (*model.Category, error) {
	if s.SaveCategoryFn != nil {
		return s.SaveCategoryFn(ctx, c)
	}
	if c.ID == "" {
		c.ID = "category-new"
	}
	return &c, nil
}

// CreateCategory echoes the category back.
func (s CatalogFacadeStub) CreateCategory(ctx context.Context, c model.Category) (*model.Category, error) {
	return s.saveCategory(ctx, c)
}

// UpdateCategory echoes the category back.
func (s CatalogFacadeStub) UpdateCategory(ctx context.Context, c model.Category) (*model.Category, error) {
	return s.saveCategory(ctx, c)
}

// DeleteCategory delegates to DeleteFn.
func (s CatalogFacadeStub) DeleteCategory(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// CartFacadeStub simulates cart operations.
type CartFacadeStub struct {
	CartFn     func(context.Context, string) (*model.Order, error)
	MutateFn   func(context.Context, string, string, int) (*model.Order, error)
	CheckoutFn func(context.Context, string, string) (*model.Order, error)
}

func (s CartFacadeStub) mutate(ctx context.Context, userID, target string, quantity int) (*model.Order, error) {
	if s.MutateFn != nil {
		return s.MutateFn(ctx, userID, target, quantity)
	}
	return &model.Order{ID: "cart-1", UserID: userID, Status: model.OrderStatusPending}, nil
}

// Cart returns the caller cart.
func (s CartFacadeStub) Cart(ctx context.Context, userID string) (*model.Order, error) {
	if s.CartFn != nil {
		return s.CartFn(ctx, userID)
	}
	return &model.Order{UserID: userID, Status: model.OrderStatusPending}, nil
}

// AddCartItem delegates to MutateFn.
func (s CartFacadeStub) AddCartItem(ctx context.Context, userID, productID string, quantity int) (*model.Order, error) {
	return s.mutate(ctx, userID, productID, quantity)
}

// SetCartItem delegates to MutateFn.
func (s CartFacadeStub) SetCartItem(ctx context.Context, userID, itemID string, quantity int) (*model.Order, error) {
	return s.mutate(ctx, userID, itemID, quantity)
}

// RemoveCartItem delegates to MutateFn with zero quantity.
func (s CartFacadeStub) RemoveCartItem(ctx context.Context, userID, itemID string) (*model.Order, error) {
	return s.mutate(ctx, userID, itemID, 0)
}

// Checkout delegates to CheckoutFn.
func (s CartFacadeStub) Checkout(ctx context.Context, userID, addressID string) (*model.Order, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, userID, addressID)
	}
	return &model.Order{ID: "cart-1", UserID: userID, Status: model.OrderStatusPending, AddressID: &addressID}, nil
}

// ProfileFacadeStub simulates address and notification operations.
type ProfileFacadeStub struct {
	AddressFn  func(context.Context, model.Address) (*model.Address, error)
	DeleteFn   func(context.Context, string, string) error
	MarkReadFn func(context.Context, string, string) error
	Feed       []model.Notification
}

// Addresses returns a single default address.
func (s ProfileFacadeStub) Addresses(ctx context.Context, userID string) ([]model.Address, error) {
	return []model.Address{{ID: "address-1", UserID: userID, Recipient: "Sari", IsDefault: true}}, nil
}

// CreateAddress delegates to AddressFn.
func (s ProfileFacadeStub) CreateAddress(ctx context.Context, a model.Address) (*model.Address, error) {
	if s.AddressFn != nil {
		return s.AddressFn(ctx, a)
	}
	a.ID = "address-new"
	return &a, nil
}

// UpdateAddress delegates to AddressFn.
func (s ProfileFacadeStub) UpdateAddress(ctx context.Context, a model.Address) (*model.Address, error) {
	if s.AddressFn != nil {
		return s.AddressFn(ctx, a)
	}
	return &a, nil
}

// DeleteAddress delegates to DeleteFn.
func (s ProfileFacadeStub) DeleteAddress(ctx context.Context, userID, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, userID, id)
	}
	return nil
}

// Notifications returns Feed.
func (s ProfileFacadeStub) Notifications(ctx context.Context, userID string) ([]model.Notification, error) {
	return s.Feed, nil
}

// MarkNotificationRead delegates to MarkReadFn.
func (s ProfileFacadeStub) MarkNotificationRead(ctx context.Context, userID, id string) error {
	if s.MarkReadFn != nil {
		return s.MarkReadFn(ctx, userID, id)
	}
	return nil
}

// ReviewFacadeStub simulates review operations.
type ReviewFacadeStub struct {
	CreateFn func(context.Context, string, string, int, string) (*model.Review, error)
	ReplyFn  func(context.Context, string, string) (*model.ReviewReply, error)
}

// Reviews returns one review of the product.
func (s ReviewFacadeStub) Reviews(ctx context.Context, productID string) ([]model.Review, error) {
	return []model.Review{{ID: "review-1", ProductID: productID, UserID: "user-1", UserName: "Budi", Rating: 5}}, nil
}

// CreateReview delegates to CreateFn.
func (s ReviewFacadeStub) CreateReview(ctx context.Context, userID, productID string, rating int, comment string) (*model.Review, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, productID, rating, comment)
	}
	return &model.Review{ID: "review-new", ProductID: productID, UserID: userID, Rating: rating, Comment: comment}, nil
}

// ReplyReview delegates to ReplyFn.
func (s ReviewFacadeStub) ReplyReview(ctx context.Context, reviewID, reply string) (*model.ReviewReply, error) {
	if s.ReplyFn != nil {
		return s.ReplyFn(ctx, reviewID, reply)
	}
	return &model.ReviewReply{Review: model.Review{ID: reviewID, Reply: &reply}}, nil
}

// StoreFacadeStub aggregates facade dependencies for HTTP layer tests.
type StoreFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
	CatalogFacadeStub
	CartFacadeStub
	ProfileFacadeStub
	ReviewFacadeStub
}

// NotifierRecorder captures events handed to the notifier.
type NotifierRecorder struct {
	mu     sync.Mutex
	events []model.Event
}

// Notify records the event.
func (r *NotifierRecorder) Notify(event model.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns a copy of the recorded events.
func (r *NotifierRecorder) Events() []model.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Event(nil), r.events...)
}

// StatusCacheStub is an in-memory status cache.
type StatusCacheStub struct {
	mu      sync.Mutex
	Entries map[string]model.StatusSnapshot
	GetErr  error
	SetErr  error
	Sets    int
}

// Get returns a stored snapshot or nil on a miss.
func (s *StatusCacheStub) Get(ctx context.Context, orderID string) (*model.StatusSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	if snapshot, ok := s.Entries[orderID]; ok {
		return &snapshot, nil
	}
	return nil, nil
}

// Set stores the snapshot.
func (s *StatusCacheStub) Set(ctx context.Context, snapshot model.StatusSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sets++
	if s.SetErr != nil {
		return s.SetErr
	}
	if s.Entries == nil {
		s.Entries = make(map[string]model.StatusSnapshot)
	}
	s.Entries[snapshot.OrderID] = snapshot
	return nil
}
