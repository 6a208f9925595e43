package token

import (
	authmw "adcheck/pkg/platform/middleware/auth"
)

// JWTServiceAdapter exposes the JWT service through the auth middleware's
// validator interface.
type JWTServiceAdapter struct {
	service *JWTService
}

func NewJWTServiceAdapter(service *JWTService) *JWTServiceAdapter {
	return &JWTServiceAdapter{service: service}
}

func (a *JWTServiceAdapter) ValidateToken(tokenString string) (*authmw.JWTClaims, error) {
	claims, err := a.service.Validate(tokenString)
	if err != nil {
		return nil, err
	}
	return &authmw.JWTClaims{
		Subject: claims.Subject,
		JTI:     claims.ID,
	}, nil
}
