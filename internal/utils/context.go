package utils

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

type ContextKey string

const (
	ClaimsKey   ContextKey = "claims"
	TenantIDKey ContextKey = "tenant_id"
	UserIDKey   ContextKey = "user_id"
	RolesKey    ContextKey = "roles"
)

var (
	ErrNoClaimsInContext   = errors.New("no claims found in context")
	ErrInvalidClaimsType   = errors.New("invalid claims type")
	ErrNoTenantIDInClaims  = errors.New("no tenant_id found in claims")
	ErrInvalidTenantIDType = errors.New("tenant_id must be a string")
	ErrNoUserIDInClaims    = errors.New("no sub found in claims")
	ErrInvalidUserIDType   = errors.New("sub must be a string")
)

func getClaims(c context.Context) (jwt.MapClaims, error) {
	claims, exists := c.Value(ClaimsKey).(jwt.MapClaims)
	if !exists {
		return nil, ErrNoClaimsInContext
	}
	return claims, nil
}

func GetTenantIDFromContext(c context.Context) (string, error) {
	claims, err := getClaims(c)
	if err != nil {
		return "", err
	}

	tenantID, exists := claims[string(TenantIDKey)]
	if !exists {
		return "", ErrNoTenantIDInClaims
	}

	tenantIDStr, ok := tenantID.(string)
	if !ok {
		return "", ErrInvalidTenantIDType
	}

	return tenantIDStr, nil
}

func GetUserIDFromContext(c context.Context) (string, error) {
	claims, err := getClaims(c)
	if err != nil {
		return "", err
	}

	sub, exists := claims["sub"]
	if !exists {
		return "", ErrNoUserIDInClaims
	}

	subStr, ok := sub.(string)
	if !ok {
		return "", ErrInvalidUserIDType
	}

	return subStr, nil
}

// GetRolesFromContext returns the roles claim as a string slice. A missing
// or malformed claim yields an empty slice, never an error, because a user
// without roles is a valid state during bootstrap.
func GetRolesFromContext(c context.Context) []string {
	claims, err := getClaims(c)
	if err != nil {
		return nil
	}

	raw, exists := claims[string(RolesKey)]
	if !exists {
		return nil
	}

	switch v := raw.(type) {
	case []string:
		return v
	case []interface{}:
		roles := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				roles = append(roles, s)
			}
		}
		return roles
	default:
		return nil
	}
}

// GetClaimString returns an arbitrary string claim, empty when absent.
func GetClaimString(c context.Context, key string) string {
	claims, err := getClaims(c)
	if err != nil {
		return ""
	}
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
