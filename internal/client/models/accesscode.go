package models

// AccessCode is one code owned by the current user, as listed by
// GET /access/me.
type AccessCode struct {
	CodeID        int64     `json:"code_id"`
	Code          string    `json:"code"`
	FormattedCode string    `json:"formatted_code,omitempty"`
	IsActive      bool      `json:"is_active"`
	UsedBy        *int64    `json:"used_by"`
	ExpiresAt     Timestamp `json:"expires_at"`
	Status        string    `json:"status,omitempty"`
}

// GenerateCodeResult is the body of POST /access/generate. Success is a
// business-level flag: the server can answer HTTP 200 with Success=false.
type GenerateCodeResult struct {
	Success         bool      `json:"success"`
	Message         string    `json:"message,omitempty"`
	Code            string    `json:"code,omitempty"`
	CodeID          int64     `json:"code_id,omitempty"`
	ExpiryDate      Timestamp `json:"expiryDate"`
	PlanName        string    `json:"planName,omitempty"`
	RemainingCodes  int       `json:"remainingCodes"`
	MaxAllowedCodes int       `json:"maxAllowedCodes"`
	GeneratedCodes  int       `json:"generatedCodes"`
	Error           string    `json:"error,omitempty"`
}

// RedeemResult is the body of POST /access/redeem.
type RedeemResult struct {
	Success           bool               `json:"success"`
	Message           string             `json:"message,omitempty"`
	AccessCodeDetails *AccessCodeDetails `json:"accessCodeDetails,omitempty"`
	Error             string             `json:"error,omitempty"`
}

// AccessCodeList is the controller-level answer for "list my codes".
// Codes is never nil.
type AccessCodeList struct {
	Success bool
	Codes   []AccessCode
	Error   string
}
