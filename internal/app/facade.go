package app

import (
	"context"

	"github.com/polkiloo/panganku/internal/domain/model"
	"github.com/polkiloo/panganku/internal/usecase"
)

// StoreFacade adapts the use cases to the operations the HTTP layer consumes.
type StoreFacade struct {
	auth          *usecase.AuthUseCase
	orders        *usecase.OrderUseCase
	catalog       *usecase.CatalogUseCase
	cart          *usecase.CartUseCase
	addresses     *usecase.AddressUseCase
	notifications *usecase.NotificationUseCase
	reviews       *usecase.ReviewUseCase
}

func NewStoreFacade(
	auth *usecase.AuthUseCase,
	orders *usecase.OrderUseCase,
	catalog *usecase.CatalogUseCase,
	cart *usecase.CartUseCase,
	addresses *usecase.AddressUseCase,
	notifications *usecase.NotificationUseCase,
	reviews *usecase.ReviewUseCase,
) *StoreFacade {
	return &StoreFacade{
		auth:          auth,
		orders:        orders,
		catalog:       catalog,
		cart:          cart,
		addresses:     addresses,
		notifications: notifications,
		reviews:       reviews,
	}
}

func (f *StoreFacade) Register(ctx context.Context, email, name, password string) (*model.User, string, error) {
	return f.auth.Register(ctx, email, name, password)
}

func (f *StoreFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *StoreFacade) ParseToken(token string) (model.Principal, error) {
	return f.auth.ParseToken(token)
}

func (f *StoreFacade) HandlePayment(ctx context.Context, n model.PaymentNotification) (*model.Transition, error) {
	return f.orders.HandlePaymentNotification(ctx, n)
}

func (f *StoreFacade) UpdateOrderStatus(ctx context.Context, orderID, status string) (*model.Transition, error) {
	return f.orders.UpdateStatus(ctx, orderID, status)
}

func (f *StoreFacade) UpdateOwnOrderStatus(ctx context.Context, userID, orderID, status string) (*model.Transition, error) {
	return f.orders.UpdateOwnStatus(ctx, userID, orderID, status)
}

func (f *StoreFacade) Order(ctx context.Context, principal model.Principal, orderID string) (*model.Order, error) {
	return f.orders.Get(ctx, principal, orderID)
}

func (f *StoreFacade) Orders(ctx context.Context, userID string) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *StoreFacade) AllOrders(ctx context.Context, status string) ([]model.Order, error) {
	return f.orders.List(ctx, status)
}

func (f *StoreFacade) OrderStatus(ctx context.Context, principal model.Principal, orderID string) (*model.StatusSnapshot, error) {
	return f.orders.Status(ctx, principal, orderID)
}

func (f *StoreFacade) Products(ctx context.Context, filter model.ProductFilter) (*model.ProductPage, error) {
	return f.catalog.ListProducts(ctx, filter)
}

func (f *StoreFacade) Product(ctx context.Context, id string) (*model.Product, error) {
	return f.catalog.GetProduct(ctx, id)
}

func (f *StoreFacade) CreateProduct(ctx context.Context, p model.Product) (*model.Product, error) {
	return f.catalog.CreateProduct(ctx, p)
}

func (f *StoreFacade) UpdateProduct(ctx context.Context, p model.Product) (*model.Product, error) {
	return f.catalog.UpdateProduct(ctx, p)
}

func (f *StoreFacade) DeleteProduct(ctx context.Context, id string) error {
	return f.catalog.DeleteProduct(ctx, id)
}

func (f *StoreFacade) Categories(ctx context.Context) ([]model.Category, error) {
	return f.catalog.ListCategories(ctx)
}

func (f *StoreFacade) CreateCategory(ctx context.Context, c model.Category) (*model.Category, error) {
	return f.catalog.CreateCategory(ctx, c)
}

func (f *StoreFacade) UpdateCategory(ctx context.Context, c model.Category) (*model.Category, error) {
	return f.catalog.UpdateCategory(ctx, c)
}

func (f *StoreFacade) DeleteCategory(ctx context.Context, id string) error {
	return f.catalog.DeleteCategory(ctx, id)
}

func (f *StoreFacade) Cart(ctx context.Context, userID string) (*model.Order, error) {
	return f.cart.Get(ctx, userID)
}

func (f *StoreFacade) AddCartItem(ctx context.Context, userID, productID string, quantity int) (*model.Order, error) {
	return f.cart.AddItem(ctx, userID, productID, quantity)
}

func (f *StoreFacade) SetCartItem(ctx context.Context, userID, itemID string, quantity int) (*model.Order, error) {
	return f.cart.SetItemQuantity(ctx, userID, itemID, quantity)
}

func (f *StoreFacade) RemoveCartItem(ctx context.Context, userID, itemID string) (*model.Order, error) {
	return f.cart.RemoveItem(ctx, userID, itemID)
}

func (f *StoreFacade) Checkout(ctx context.Context, userID, addressID string) (*model.Order, error) {
	return f.cart.Checkout(ctx, userID, addressID)
}

func (f *StoreFacade) Addresses(ctx context.Context, userID string) ([]model.Address, error) {
	return f.addresses.List(ctx, userID)
}

func (f *StoreFacade) CreateAddress(ctx context.Context, a model.Address) (*model.Address, error) {
	return f.addresses.Create(ctx, a)
}

func (f *StoreFacade) UpdateAddress(ctx context.Context, a model.Address) (*model.Address, error) {
	return f.addresses.Update(ctx, a)
}

func (f *StoreFacade) DeleteAddress(ctx context.Context, userID, id string) error {
	return f.addresses.Delete(ctx, userID, id)
}

func (f *StoreFacade) Notifications(ctx context.Context, userID string) ([]model.Notification, error) {
	return f.notifications.List(ctx, userID)
}

func (f *StoreFacade) MarkNotificationRead(ctx context.Context, userID, id string) error {
	return f.notifications.MarkRead(ctx, userID, id)
}

func (f *StoreFacade) Reviews(ctx context.Context, productID string) ([]model.Review, error) {
	return f.reviews.ListByProduct(ctx, productID)
}

func (f *StoreFacade) CreateReview(ctx context.Context, userID, productID string, rating int, comment string) (*model.Review, error) {
	return f.reviews.Create(ctx, userID, productID, rating, comment)
}

func (f *StoreFacade) ReplyReview(ctx context.Context, reviewID, reply string) (*model.ReviewReply, error) {
	return f.reviews.Reply(ctx, reviewID, reply)
}
