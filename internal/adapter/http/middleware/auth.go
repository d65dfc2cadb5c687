package middleware

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"giramae/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ContextUserID is the gin context key holding the authenticated user id (JWT sub).
const ContextUserID = "userID"

var (
	errMissingToken = pkg.NewDomainErrorSimple("NO_AUTH_HEADER", "Authorization required", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid or expired token", http.StatusUnauthorized)
	errInvalidKey   = pkg.NewDomainErrorSimple("INVALID_SERVICE_KEY", "Invalid service key", http.StatusUnauthorized)
)

// JWTAuth validates Supabase access tokens (HS256) and stores the sub claim in the
// context. The token may also come in the access_token query parameter, which is how
// browsers authenticate websocket upgrades.
func JWTAuth(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		userID, err := parseSubject(tokenString, key)
		if err != nil {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// ServiceKey protects routes called by the scheduler and other backend jobs.
func ServiceKey(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader("X-Service-Key")
		if expected == "" || subtle.ConstantTimeCompare([]byte(got), []byte(expected)) != 1 {
			c.AbortWithStatusJSON(errInvalidKey.HTTPStatus, errInvalidKey.ToHTTPError())
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user id set by JWTAuth.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if after, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(after)
		}
		return ""
	}
	return strings.TrimSpace(c.Query("access_token"))
}

func parseSubject(tokenString string, key []byte) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New("token invalid")
	}
	sub, err := token.Claims.GetSubject()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(sub) == "" {
		return "", errors.New("missing sub claim")
	}
	return sub, nil
}
