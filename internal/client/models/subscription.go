package models

import "time"

// Subscription status values reported by /subscriptions/check.
const (
	StatusActive   = "active"
	StatusShared   = "shared"
	StatusInactive = "inactive"
)

// Plan describes a subscription plan as served by /subscriptions/plans.
type Plan struct {
	ID             int64    `json:"plan_id"`
	Name           string   `json:"plan_name"`
	Price          float64  `json:"price"`
	DurationMonths int      `json:"duration_months"`
	MaxAccessCodes int      `json:"max_access_codes"`
	Description    string   `json:"description"`
	Features       []string `json:"features"`
}

// AccessCodeDetails describes the access code a user has redeemed, as
// embedded in subscription-check and redeem responses.
type AccessCodeDetails struct {
	CodeID        int64     `json:"code_id"`
	Code          string    `json:"code"`
	ExpiryDate    Timestamp `json:"expiryDate"`
	OwnerUsername string    `json:"ownerUsername"`
	OwnerID       int64     `json:"ownerId"`
	PlanName      string    `json:"planName,omitempty"`
}

// SubscriptionStatus is the full payload of GET /subscriptions/check. It is
// also the shape persisted as the local last-known-good snapshot.
type SubscriptionStatus struct {
	HasSubscription   bool               `json:"hasSubscription"`
	HasAccessCode     bool               `json:"hasAccessCode"`
	SubscriptionPlan  *Plan              `json:"subscriptionPlan"`
	Status            string             `json:"status"`
	ExpiryDate        Timestamp          `json:"expiryDate"`
	GeneratedCodes    int                `json:"generatedCodes"`
	MaxAllowedCodes   int                `json:"maxAllowedCodes"`
	RemainingCodes    int                `json:"remainingCodes"`
	AccessCodeDetails *AccessCodeDetails `json:"accessCodeDetails"`
}

// SubscriptionActive reports whether the user's own subscription currently
// grants access.
func (s *SubscriptionStatus) SubscriptionActive(now time.Time) bool {
	return s.HasSubscription && s.Status == StatusActive && s.ExpiryDate.Valid(now)
}

// AccessCodeValid reports whether a redeemed access code currently grants
// access.
func (s *SubscriptionStatus) AccessCodeValid(now time.Time) bool {
	return s.HasAccessCode && s.AccessCodeDetails != nil && s.AccessCodeDetails.ExpiryDate.Valid(now)
}

// Entitled is the role-agnostic entitlement decision: either an active
// subscription or a still-valid access code is sufficient on its own.
// Admin bypass is a route-guard concern, not computed here.
func (s *SubscriptionStatus) Entitled(now time.Time) bool {
	return s.SubscriptionActive(now) || s.AccessCodeValid(now)
}
