package impl

import (
	"io"
	"log/slog"

	"marketplace/config"
	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Listing: &config.ListingConfig{
			DefaultPostLimit: 10,
			DefaultShopLimit: 12,
			MaxLimit:         50,
		},
	}
}

func newRequester(role entity.Role, isPremium bool) *entity.Requester {
	return &entity.Requester{
		ID:        uuid.New(),
		Role:      role,
		IsPremium: isPremium,
	}
}

func intPtr(v int) *int {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}
