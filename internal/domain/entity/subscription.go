// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentProvider identifies the checkout backend.
type PaymentProvider string

const (
	ProviderMock       PaymentProvider = "MOCK"
	ProviderStripe     PaymentProvider = "STRIPE"
	ProviderSSLCommerz PaymentProvider = "SSLCOMMERZ"
	ProviderShurjoPay  PaymentProvider = "SHURJOPAY"
)

// IsValid checks if the PaymentProvider is a valid value.
func (p PaymentProvider) IsValid() bool {
	switch p {
	case ProviderMock, ProviderStripe, ProviderSSLCommerz, ProviderShurjoPay:
		return true
	default:
		return false
	}
}

// SubscriptionStatus tracks a checkout attempt.
type SubscriptionStatus string

const (
	SubscriptionPending   SubscriptionStatus = "PENDING"
	SubscriptionSucceeded SubscriptionStatus = "SUCCEEDED"
	SubscriptionFailed    SubscriptionStatus = "FAILED"
)

// Subscription is the premium subscription of a user. One per user.
type Subscription struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Provider      PaymentProvider
	Status        SubscriptionStatus
	TransactionID *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SubscriptionStatusView is the premium state of a user.
type SubscriptionStatusView struct {
	IsPremium    bool
	Subscription *Subscription
}
