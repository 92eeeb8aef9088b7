// Package models contains the client-side data records for the VortexTV API:
// users, subscription state, and access codes.
package models

// Role is the server-assigned authorization level of a user.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// IsStaff reports whether the role bypasses the subscription gate and may
// enter the admin console.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// User is the in-memory record of the authenticated user, including the
// subscription projection merged in by the subscription check.
type User struct {
	ID       int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`

	HasSubscription    bool               `json:"hasSubscription"`
	HasAccessCode      bool               `json:"hasAccessCode"`
	SubscriptionPlan   *Plan              `json:"subscriptionPlan,omitempty"`
	SubscriptionStatus string             `json:"subscriptionStatus,omitempty"`
	SubscriptionExpiry Timestamp          `json:"subscriptionExpiry"`
	GeneratedCodes     int                `json:"generatedCodes"`
	MaxAllowedCodes    int                `json:"maxAllowedCodes"`
	RemainingCodes     int                `json:"remainingCodes"`
	AccessCodeDetails  *AccessCodeDetails `json:"accessCodeDetails,omitempty"`
}

// ApplyStatus merges a subscription status snapshot into the user record.
func (u *User) ApplyStatus(st *SubscriptionStatus) {
	if st == nil {
		return
	}
	u.HasSubscription = st.HasSubscription
	u.HasAccessCode = st.HasAccessCode
	u.SubscriptionPlan = st.SubscriptionPlan
	u.SubscriptionStatus = st.Status
	u.SubscriptionExpiry = st.ExpiryDate
	u.GeneratedCodes = st.GeneratedCodes
	u.MaxAllowedCodes = st.MaxAllowedCodes
	u.RemainingCodes = st.RemainingCodes
	u.AccessCodeDetails = st.AccessCodeDetails
}
