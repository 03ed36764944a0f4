package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jobsmalta/jobsmalta/internal/utils"
)

type apiError struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
}

func abortAuth(c *gin.Context, status int, code utils.Code, msg string) {
	c.AbortWithStatusJSON(status, apiError{Code: code, Message: msg})
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Role         string         `json:"role"` // provider role, usually "authenticated"
	AppMetadata  map[string]any `json:"app_metadata"`
	UserMetadata map[string]any `json:"user_metadata"`
}

// JWTAuth verifies the identity provider's HS256 session token and exposes
// user_id and the app-level role ("seeker", "employer", "admin") to handlers.
func JWTAuth() gin.HandlerFunc {
	secret := os.Getenv("SUPABASE_JWT_SECRET")
	issuer := os.Getenv("SUPABASE_JWT_ISSUER")     // optional
	audience := os.Getenv("SUPABASE_JWT_AUDIENCE") // optional

	return func(c *gin.Context) {
		if secret == "" {
			abortAuth(c, http.StatusInternalServerError, utils.CodeInternal, "SUPABASE_JWT_SECRET is not set")
			return
		}

		auth := c.GetHeader("Authorization")
		raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
		if !strings.HasPrefix(auth, "Bearer ") || raw == "" {
			abortAuth(c, http.StatusUnauthorized, utils.CodeUnauthorized, "missing bearer token")
			return
		}

		claims := &sessionClaims{}
		tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

		if err != nil || tok == nil || !tok.Valid {
			abortAuth(c, http.StatusUnauthorized, utils.CodeUnauthorized, "invalid token")
			return
		}

		if issuer != "" && claims.Issuer != issuer {
			abortAuth(c, http.StatusUnauthorized, utils.CodeUnauthorized, "invalid token issuer")
			return
		}

		if audience != "" && !hasAudience(claims.Audience, audience) {
			abortAuth(c, http.StatusUnauthorized, utils.CodeUnauthorized, "invalid token audience")
			return
		}

		userID := claims.Subject // provider user UUID lives in "sub"
		if userID == "" {
			abortAuth(c, http.StatusUnauthorized, utils.CodeUnauthorized, "missing subject")
			return
		}

		appRole := "seeker"
		if claims.AppMetadata != nil {
			if v, ok := claims.AppMetadata["role"]; ok {
				if s, ok := v.(string); ok && s != "" {
					appRole = s
				}
			}
		}

		c.Set("user_id", userID)
		c.Set("role", appRole)
		c.Next()
	}
}

func hasAudience(auds jwt.ClaimStrings, want string) bool {
	for _, aud := range auds {
		if aud == want {
			return true
		}
	}
	return false
}
