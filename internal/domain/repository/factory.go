package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Products() ProductRepository
	Categories() CategoryRepository
	Orders() OrderRepository
	Carts() CartRepository
	Notifications() NotificationRepository
	Addresses() AddressRepository
	Reviews() ReviewRepository
}
