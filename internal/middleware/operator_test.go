package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var operatorSecret = []byte("plant-floor-secret")

func TestIssueAndParseOperatorToken(t *testing.T) {
	now := time.Now()

	t.Run("round trip", func(t *testing.T) {
		token, err := IssueOperatorToken(operatorSecret, "marta", time.Hour, now)
		require.NoError(t, err)

		operator, err := ParseOperatorToken(operatorSecret, token)
		require.NoError(t, err)
		assert.Equal(t, "marta", operator)
	})

	t.Run("empty operator", func(t *testing.T) {
		_, err := IssueOperatorToken(operatorSecret, "", time.Hour, now)
		assert.ErrorIs(t, err, ErrOperatorMissing)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := IssueOperatorToken(operatorSecret, "marta", time.Hour, now)
		require.NoError(t, err)

		_, err = ParseOperatorToken([]byte("other"), token)
		assert.ErrorIs(t, err, jwt.ErrSignatureInvalid)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := IssueOperatorToken(operatorSecret, "marta", time.Hour, now.Add(-2*time.Hour))
		require.NoError(t, err)

		_, err = ParseOperatorToken(operatorSecret, token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("non hmac algorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, OperatorClaims{Name: "marta"}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = ParseOperatorToken(operatorSecret, token)
		assert.Error(t, err)
	})

	t.Run("token without name", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, OperatorClaims{}).SignedString(operatorSecret)
		require.NoError(t, err)

		_, err = ParseOperatorToken(operatorSecret, token)
		assert.ErrorIs(t, err, ErrOperatorMissing)
	})
}

func TestOperatorIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	valid, err := IssueOperatorToken(operatorSecret, "marta", time.Hour, time.Now())
	require.NoError(t, err)

	tests := []struct {
		name         string
		secret       []byte
		required     bool
		header       string
		wantStatus   int
		wantOperator string
		wantBody     string
	}{
		{"valid token", operatorSecret, true, "Bearer " + valid, http.StatusOK, "marta", ""},
		{"missing token when required", operatorSecret, true, "", http.StatusUnauthorized, "", "Authentication token is required"},
		{"missing token when optional", operatorSecret, false, "", http.StatusOK, "", ""},
		{"not a bearer token", operatorSecret, false, "Basic abc", http.StatusUnauthorized, "", "Invalid or expired token"},
		{"empty bearer token", operatorSecret, false, "Bearer ", http.StatusUnauthorized, "", "Invalid or expired token"},
		{"invalid token", operatorSecret, false, "Bearer abc.def.ghi", http.StatusUnauthorized, "", "Invalid or expired token"},
		{"no secret configured", nil, true, "", http.StatusOK, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(OperatorIdentity(tt.secret, tt.required))
			router.GET("/api/plans", func(c *gin.Context) {
				c.String(http.StatusOK, GetOperator(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/api/plans", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantOperator, w.Body.String())
			}
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
		})
	}
}
