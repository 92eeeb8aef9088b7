package models

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is the register request body.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the body of /auth/login and /auth/register. The embedded
// user fields back the degraded-login path when the follow-up /users/me
// fetch fails.
type AuthResponse struct {
	Token    string `json:"token"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Message  string `json:"message,omitempty"`
}

// FallbackUser builds the minimal user record embedded in an auth response.
// An empty role defaults to the regular user role (new registrations).
func (r *AuthResponse) FallbackUser() *User {
	role := r.Role
	if role == "" {
		role = RoleUser
	}
	return &User{
		ID:       r.UserID,
		Username: r.Username,
		Email:    r.Email,
		Role:     role,
	}
}
