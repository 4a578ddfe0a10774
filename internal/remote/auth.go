package remote

import (
	"fmt"

	"github.com/dmitrijs2005/shelfkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

type sessionClaims struct {
	jwt.RegisteredClaims
	Admin bool `json:"admin,omitempty"`
}

// parseToken extracts the owner identity (subject) and the admin claim from
// a session token. Signature verification is the backend's job; the client
// only needs the claims to scope requests and gate seeding.
func parseToken(token string) (ownerID string, admin bool, err error) {
	var claims sessionClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return "", false, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return "", false, fmt.Errorf("%w: token has no subject", common.ErrInvalidToken)
	}
	return claims.Subject, claims.Admin, nil
}
