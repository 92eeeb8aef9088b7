package session

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vortextv/vortexcli/internal/client/models"
	"github.com/vortextv/vortexcli/internal/common"
)

// tokenClaims is the slice of the JWT the client cares about. The token is
// decoded without signature verification — verification is the server's
// job, the client only reads subject, role, and expiry to drive bootstrap.
type tokenClaims struct {
	UserID    int64
	Role      models.Role
	ExpiresAt time.Time
}

func decodeClaims(tok string) (*tokenClaims, error) {
	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, mc); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	exp, err := mc.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, fmt.Errorf("%w: missing expiry claim", common.ErrInvalidToken)
	}

	userID, err := subjectID(mc["sub"])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	role, _ := mc["role"].(string)

	return &tokenClaims{
		UserID:    userID,
		Role:      models.Role(role),
		ExpiresAt: exp.Time,
	}, nil
}

// subjectID copes with the backend issuing numeric subjects while standard
// libraries re-sign them as strings.
func subjectID(sub any) (int64, error) {
	switch v := sub.(type) {
	case float64:
		return int64(v), nil
	case json.Number:
		return v.Int64()
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected subject claim type %T", sub)
	}
}
