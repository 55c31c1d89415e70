package test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/panganku/internal/domain/errors"
	"github.com/polkiloo/panganku/internal/domain/model"
	"github.com/polkiloo/panganku/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[string]*model.User
	Next  int
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[string]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, user model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[string]*model.User)
	}
	if _, exists := s.Users[user.Email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user.ID = fmt.Sprintf("user-%d", s.Next)
	if user.Role == "" {
		user.Role = model.RoleUser
	}
	s.Next++
	stored := user
	s.Users[user.Email] = &stored
	s.ByID[user.ID] = &stored
	return &stored, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// OrderRepositoryStub keeps orders and product stock in memory and applies
// transitions the way the SQL store does, under a single lock.
type OrderRepositoryStub struct {
	mu sync.Mutex

	Orders        map[string]*model.Order
	Stock         map[string]int
	Notifications []model.Notification

	GetByIDFn    func(context.Context, string) (*model.Order, error)
	TransitionFn func(context.Context, string, repository.DecideFunc) (*model.Transition, error)
	Err          error
}

// NewOrderRepositoryStub constructs the stub with the given orders and stock levels.
func NewOrderRepositoryStub(stock map[string]int, orders ...model.Order) *OrderRepositoryStub {
	s := &OrderRepositoryStub{Orders: make(map[string]*model.Order), Stock: make(map[string]int)}
	for k, v := range stock {
		s.Stock[k] = v
	}
	for _, o := range orders {
		order := o
		s.Orders[o.ID] = &order
	}
	return s
}

// GetByID returns a copy of the stored order.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	o, ok := s.Orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	order := *o
	return &order, nil
}

// ListByUser returns orders owned by userID.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	return s.filter(func(o *model.Order) bool { return o.UserID == userID })
}

// List returns orders with the given status, all orders when status is empty.
func (s *OrderRepositoryStub) List(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	return s.filter(func(o *model.Order) bool { return status == "" || o.Status == status })
}

func (s *OrderRepositoryStub) filter(keep func(*model.Order) bool) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.Order
	for _, o := range s.Orders {
		if keep(o) {
			out = append(out, *o)
		}
	}
	return out, nil
}

// TransitionStatus asks decide for a change and applies status, stock and notification together.
func (s *OrderRepositoryStub) TransitionStatus(ctx context.Context, orderID string, decide repository.DecideFunc) (*model.Transition, error) {
	if s.TransitionFn != nil {
		return s.TransitionFn(ctx, orderID, decide)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	o, ok := s.Orders[orderID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	change, err := decide(*o)
	if err != nil || change == nil {
		return nil, err
	}

	for _, item := range o.Items {
		switch change.Stock {
		case model.StockDecrement:
			s.Stock[item.ProductID] -= item.Quantity
		case model.StockRestore:
			s.Stock[item.ProductID] += item.Quantity
		}
	}

	from := o.Status
	o.Status = change.To
	o.UpdatedAt = time.Now()
	id := o.ID
	n := model.Notification{
		ID:        fmt.Sprintf("notification-%d", len(s.Notifications)+1),
		UserID:    o.UserID,
		OrderID:   &id,
		Message:   change.Message,
		CreatedAt: o.UpdatedAt,
	}
	s.Notifications = append(s.Notifications, n)
	return &model.Transition{Order: *o, From: from, Notification: n}, nil
}

// StockOf returns the current stock of a product.
func (s *OrderRepositoryStub) StockOf(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Stock[productID]
}

// StatusOf returns the current status of an order.
func (s *OrderRepositoryStub) StatusOf(orderID string) model.OrderStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o, ok := s.Orders[orderID]; ok {
		return o.Status
	}
	return ""
}

// NotificationCount returns how many notification rows were written.
func (s *OrderRepositoryStub) NotificationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Notifications)
}

// CartCall records the arguments of a cart mutation.
type CartCall struct {
	UserID   string
	TargetID string
	Quantity int
	Policy   model.ShippingPolicy
}

// CartRepositoryStub lets tests control cart persistence.
type CartRepositoryStub struct {
	GetPendingFn func(context.Context, string) (*model.Order, error)
	Err          error
	Calls        []CartCall
}

func (s *CartRepositoryStub) record(userID, target string, quantity int, policy model.ShippingPolicy) (*model.Order, error) {
	s.Calls = append(s.Calls, CartCall{UserID: userID, TargetID: target, Quantity: quantity, Policy: policy})
	if s.Err != nil {
		return nil, s.Err
	}
	return &model.Order{ID: "cart-1", UserID: userID, Status: model.OrderStatusPending}, nil
}

// GetPending returns the configured cart or not found.
func (s *CartRepositoryStub) GetPending(ctx context.Context, userID string) (*model.Order, error) {
	if s.GetPendingFn != nil {
		return s.GetPendingFn(ctx, userID)
	}
	return nil, domainErrors.ErrNotFound
}

// AddItem records the call.
func (s *CartRepositoryStub) AddItem(ctx context.Context, userID, productID string, quantity int, policy model.ShippingPolicy) (*model.Order, error) {
	return s.record(userID, productID, quantity, policy)
}

// SetItemQuantity records the call.
func (s *CartRepositoryStub) SetItemQuantity(ctx context.Context, userID, itemID string, quantity int, policy model.ShippingPolicy) (*model.Order, error) {
	return s.record(userID, itemID, quantity, policy)
}

// RemoveItem records the call.
func (s *CartRepositoryStub) RemoveItem(ctx context.Context, userID, itemID string, policy model.ShippingPolicy) (*model.Order, error) {
	return s.record(userID, itemID, 0, policy)
}

// Checkout records the call.
func (s *CartRepositoryStub) Checkout(ctx context.Context, userID, addressID string, policy model.ShippingPolicy) (*model.Order, error) {
	return s.record(userID, addressID, 0, policy)
}

// ProductRepositoryStub stores products in-memory.
type ProductRepositoryStub struct {
	Products map[string]*model.Product
	ListFn   func(context.Context, model.ProductFilter) (*model.ProductPage, error)
	Err      error
}

// List delegates to ListFn or returns every stored product.
func (s *ProductRepositoryStub) List(ctx context.Context, filter model.ProductFilter) (*model.ProductPage, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	page := &model.ProductPage{Page: filter.Page, Limit: filter.Limit}
	for _, p := range s.Products {
		page.Items = append(page.Items, *p)
	}
	page.Total = len(page.Items)
	return page, s.Err
}

// GetByID returns a stored product or not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if p, ok := s.Products[id]; ok {
		return p, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Create stores the product under a generated id.
func (s *ProductRepositoryStub) Create(ctx context.Context, p model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Products == nil {
		s.Products = make(map[string]*model.Product)
	}
	p.ID = fmt.Sprintf("product-%d", len(s.Products)+1)
	s.Products[p.ID] = &p
	return &p, nil
}

// Update replaces a stored product.
func (s *ProductRepositoryStub) Update(ctx context.Context, p model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, ok := s.Products[p.ID]; !ok {
		return nil, domainErrors.ErrNotFound
	}
	s.Products[p.ID] = &p
	return &p, nil
}

// Delete removes a stored product.
func (s *ProductRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Products[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Products, id)
	return nil
}

// CategoryRepositoryStub stores categories in-memory.
type CategoryRepositoryStub struct {
	Categories []model.Category
	DeleteErr  error
}

// List returns stored categories.
func (s *CategoryRepositoryStub) List(ctx context.Context) ([]model.Category, error) {
	return s.Categories, nil
}

// Create appends a category unless its slug is taken.
func (s *CategoryRepositoryStub) Create(ctx context.Context, c model.Category) (*model.Category, error) {
	for _, existing := range s.Categories {
		if strings.EqualFold(existing.Slug, c.Slug) {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	c.ID = fmt.Sprintf("category-%d", len(s.Categories)+1)
	s.Categories = append(s.Categories, c)
	return &c, nil
}

// Update replaces a stored category.
func (s *CategoryRepositoryStub) Update(ctx context.Context, c model.Category) (*model.Category, error) {
	for i := range s.Categories {
		if s.Categories[i].ID == c.ID {
			s.Categories[i] = c
			return &c, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Delete returns DeleteErr when set.
func (s *CategoryRepositoryStub) Delete(ctx context.Context, id string) error {
	return s.DeleteErr
}

// NotificationRepositoryStub stores notifications in-memory.
type NotificationRepositoryStub struct {
	Items     []model.Notification
	LastLimit int
}

// Create appends a notification.
func (s *NotificationRepositoryStub) Create(ctx context.Context, userID, message string, orderID *string) (*model.Notification, error) {
	n := model.Notification{
		ID:        fmt.Sprintf("notification-%d", len(s.Items)+1),
		UserID:    userID,
		OrderID:   orderID,
		Message:   message,
		CreatedAt: time.Now(),
	}
	s.Items = append(s.Items, n)
	return &n, nil
}

// ListByUser returns notifications of userID.
func (s *NotificationRepositoryStub) ListByUser(ctx context.Context, userID string, limit int) ([]model.Notification, error) {
	s.LastLimit = limit
	var out []model.Notification
	for _, n := range s.Items {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

// MarkRead flags a notification of userID as read.
func (s *NotificationRepositoryStub) MarkRead(ctx context.Context, userID, id string) error {
	for i := range s.Items {
		if s.Items[i].ID == id && s.Items[i].UserID == userID {
			s.Items[i].Read = true
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// AddressRepositoryStub stores addresses in-memory.
type AddressRepositoryStub struct {
	Items []model.Address
}

// ListByUser returns addresses of userID.
func (s *AddressRepositoryStub) ListByUser(ctx context.Context, userID string) ([]model.Address, error) {
	var out []model.Address
	for _, a := range s.Items {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

// Create appends an address.
func (s *AddressRepositoryStub) Create(ctx context.Context, a model.Address) (*model.Address, error) {
	a.ID = fmt.Sprintf("address-%d", len(s.Items)+1)
	s.Items = append(s.Items, a)
	return &a, nil
}

// Update replaces an address owned by the same user.
func (s *AddressRepositoryStub) Update(ctx context.Context, a model.Address) (*model.Address, error) {
	for i := range s.Items {
		if s.Items[i].ID == a.ID && s.Items[i].UserID == a.UserID {
			s.Items[i] = a
			return &a, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Delete removes an address owned by userID.
func (s *AddressRepositoryStub) Delete(ctx context.Context, userID, id string) error {
	for i := range s.Items {
		if s.Items[i].ID == id && s.Items[i].UserID == userID {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// ReviewRepositoryStub stores reviews in-memory.
type ReviewRepositoryStub struct {
	Items   []model.Review
	ReplyFn func(context.Context, string, string, string) (*model.ReviewReply, error)
}

// Create appends a review.
func (s *ReviewRepositoryStub) Create(ctx context.Context, r model.Review) (*model.Review, error) {
	r.ID = fmt.Sprintf("review-%d", len(s.Items)+1)
	r.CreatedAt = time.Now()
	s.Items = append(s.Items, r)
	return &r, nil
}

// ListByProduct returns reviews of productID.
func (s *ReviewRepositoryStub) ListByProduct(ctx context.Context, productID string) ([]model.Review, error) {
	var out []model.Review
	for _, r := range s.Items {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

// Reply stores the reply and returns the author notification.
func (s *ReviewRepositoryStub) Reply(ctx context.Context, reviewID, reply, message string) (*model.ReviewReply, error) {
	if s.ReplyFn != nil {
		return s.ReplyFn(ctx, reviewID, reply, message)
	}
	for i := range s.Items {
		if s.Items[i].ID != reviewID {
			continue
		}
		now := time.Now()
		s.Items[i].Reply = &reply
		s.Items[i].RepliedAt = &now
		return &model.ReviewReply{
			Review: s.Items[i],
			Notification: model.Notification{
				ID:        "notification-" + reviewID,
				UserID:    s.Items[i].UserID,
				Message:   message,
				CreatedAt: now,
			},
		}, nil
	}
	return nil, domainErrors.ErrNotFound
}

var (
	_ repository.UserRepository         = (*UserRepositoryStub)(nil)
	_ repository.OrderRepository        = (*OrderRepositoryStub)(nil)
	_ repository.CartRepository         = (*CartRepositoryStub)(nil)
	_ repository.ProductRepository      = (*ProductRepositoryStub)(nil)
	_ repository.CategoryRepository     = (*CategoryRepositoryStub)(nil)
	_ repository.NotificationRepository = (*NotificationRepositoryStub)(nil)
	_ repository.AddressRepository      = (*AddressRepositoryStub)(nil)
	_ repository.ReviewRepository       = (*ReviewRepositoryStub)(nil)
)
