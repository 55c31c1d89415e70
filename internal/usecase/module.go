package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/panganku/internal/config"
	"github.com/polkiloo/panganku/internal/domain/model"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	NewOrderUseCase,
	NewCartUseCase,
	NewCatalogUseCase,
	NewReviewUseCase,
	NewNotificationUseCase,
	NewAddressUseCase,
	newShippingPolicy,
	newSignatureVerifier,
)

func newShippingPolicy(cfg *config.Config) model.ShippingPolicy {
	return model.ShippingPolicy{FlatFee: cfg.ShippingFlatFee, FreeThreshold: cfg.FreeShippingMin}
}

func newSignatureVerifier(cfg *config.Config) *SignatureVerifier {
	return NewSignatureVerifier(cfg.PaymentServerKey)
}
