package handlers

import (
	"context"

	"github.com/polkiloo/panganku/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, name, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (model.Principal, error)
}

// OrderFacade covers the order status state machine and order queries.
type OrderFacade interface {
	HandlePayment(ctx context.Context, n model.PaymentNotification) (*model.Transition, error)
	UpdateOrderStatus(ctx context.Context, orderID, status string) (*model.Transition, error)
	UpdateOwnOrderStatus(ctx context.Context, userID, orderID, status string) (*model.Transition, error)
	Order(ctx context.Context, principal model.Principal, orderID string) (*model.Order, error)
	Orders(ctx context.Context, userID string) ([]model.Order, error)
	AllOrders(ctx context.Context, status string) ([]model.Order, error)
	OrderStatus(ctx context.Context, principal model.Principal, orderID string) (*model.StatusSnapshot, error)
}

// CatalogFacade serves products and categories.
type CatalogFacade interface {
	Products(ctx context.Context, filter model.ProductFilter) (*model.ProductPage, error)
	Product(ctx context.Context, id string) (*model.Product, error)
	CreateProduct(ctx context.Context, p model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, p model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, c model.Category) (*model.Category, error)
	UpdateCategory(ctx context.Context, c model.Category) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

// CartFacade edits the cart of the caller.
type CartFacade interface {
	Cart(ctx context.Context, userID string) (*model.Order, error)
	AddCartItem(ctx context.Context, userID, productID string, quantity int) (*model.Order, error)
	SetCartItem(ctx context.Context, userID, itemID string, quantity int) (*model.Order, error)
	RemoveCartItem(ctx context.Context, userID, itemID string) (*model.Order, error)
	Checkout(ctx context.Context, userID, addressID string) (*model.Order, error)
}

// ProfileFacade covers addresses and the notification feed.
type ProfileFacade interface {
	Addresses(ctx context.Context, userID string) ([]model.Address, error)
	CreateAddress(ctx context.Context, a model.Address) (*model.Address, error)
	UpdateAddress(ctx context.Context, a model.Address) (*model.Address, error)
	DeleteAddress(ctx context.Context, userID, id string) error
	Notifications(ctx context.Context, userID string) ([]model.Notification, error)
	MarkNotificationRead(ctx context.Context, userID, id string) error
}

// ReviewFacade covers product reviews.
type ReviewFacade interface {
	Reviews(ctx context.Context, productID string) ([]model.Review, error)
	CreateReview(ctx context.Context, userID, productID string, rating int, comment string) (*model.Review, error)
	ReplyReview(ctx context.Context, reviewID, reply string) (*model.ReviewReply, error)
}

// StoreFacade aggregates the full set of operations used across handlers.
type StoreFacade interface {
	AuthFacade
	OrderFacade
	CatalogFacade
	CartFacade
	ProfileFacade
	ReviewFacade
}
