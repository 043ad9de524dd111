package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/guttosm/planning-service/internal/domain/dto"
	"github.com/guttosm/planning-service/internal/i18n"
	"github.com/guttosm/planning-service/internal/logger"
)

// OperatorKey is the gin context key holding the operator name.
const OperatorKey = "operator"

// ErrOperatorMissing is returned for a token without an operator name.
var ErrOperatorMissing = errors.New("token has no operator")

// OperatorClaims identifies the operator making plan changes.
type OperatorClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// IssueOperatorToken signs an HS256 token for operator valid for ttl.
func IssueOperatorToken(secret []byte, operator string, ttl time.Duration, now time.Time) (string, error) {
	if operator == "" {
		return "", ErrOperatorMissing
	}
	claims := OperatorClaims{
		Name: operator,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   operator,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseOperatorToken validates tokenString and returns the operator name.
func ParseOperatorToken(secret []byte, tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &OperatorClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*OperatorClaims)
	if !ok || !token.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}
	if claims.Name == "" {
		return "", ErrOperatorMissing
	}
	return claims.Name, nil
}

// OperatorIdentity reads a bearer token and stores the operator name in the
// context. Without a secret the middleware is a no-op. When required is
// false a request without an Authorization header passes anonymously, but a
// malformed or invalid token is always rejected.
func OperatorIdentity(secret []byte, required bool) gin.HandlerFunc {
	if len(secret) == 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			if required {
				abortUnauthorized(c, i18n.ErrKeyTokenRequired)
				return
			}
			c.Next()
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}

		operator, err := ParseOperatorToken(secret, tokenString)
		if err != nil {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}

		c.Set(OperatorKey, operator)
		c.Request = c.Request.WithContext(logger.WithFields(c.Request.Context(), "operator", operator))
		c.Next()
	}
}

// GetOperator returns the operator stored by OperatorIdentity, or "".
func GetOperator(c *gin.Context) string {
	return c.GetString(OperatorKey)
}

func abortUnauthorized(c *gin.Context, key string) {
	message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewError(dto.ErrCodeUnauthorized, message).WithRequestID(GetRequestID(c)))
}
