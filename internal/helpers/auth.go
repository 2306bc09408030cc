package helpers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/beego/beego/v2/server/web/context"
)

const ctxClaimsKey = "__agua_mid_jwt_claims"

var (
	// ErrNoAuthHeader se devuelve cuando no se encuentra el header Authorization.
	ErrNoAuthHeader = errors.New("authorization header missing")
	// ErrInvalidToken se devuelve cuando el formato del token no es un JWT válido.
	ErrInvalidToken = errors.New("invalid bearer token")
	// ErrClaimNotFound indica que el claim requerido no está presente.
	ErrClaimNotFound = errors.New("claim not found")
)

// Claims obtiene y almacena en caché los claims del JWT presente en Authorization.
func Claims(ctx *context.Context) (map[string]interface{}, error) {
	if cached := ctx.Input.GetData(ctxClaimsKey); cached != nil {
		if claims, ok := cached.(map[string]interface{}); ok {
			return claims, nil
		}
	}

	token, err := extractBearer(ctx)
	if err != nil {
		return nil, err
	}
	claims, err := decodeClaims(token)
	if err != nil {
		return nil, err
	}
	ctx.Input.SetData(ctxClaimsKey, claims)
	return claims, nil
}

// GetOrganizationID retorna el claim organization_id (texto o número).
func GetOrganizationID(ctx *context.Context) (string, error) {
	return getStringClaim(ctx, "organization_id")
}

// GetUserID retorna el claim user_id y, si no existe, sub.
func GetUserID(ctx *context.Context) (string, error) {
	if id, err := getStringClaim(ctx, "user_id"); err == nil {
		return id, nil
	}
	return getStringClaim(ctx, "sub")
}

func getStringClaim(ctx *context.Context, key string) (string, error) {
	claims, err := Claims(ctx)
	if err != nil {
		return "", err
	}
	switch v := claims[key].(type) {
	case string:
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed, nil
		}
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case json.Number:
		return v.String(), nil
	}
	return "", fmt.Errorf("%w: %s", ErrClaimNotFound, key)
}

func extractBearer(ctx *context.Context) (string, error) {
	header := strings.TrimSpace(ctx.Input.Header("Authorization"))
	if header == "" {
		return "", ErrNoAuthHeader
	}

	if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return "", ErrInvalidToken
	}
	return strings.TrimSpace(header[7:]), nil
}

func decodeClaims(token string) (map[string]interface{}, error) {
	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return nil, ErrInvalidToken
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, ErrInvalidToken
	}

	var claims map[string]interface{}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
