package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/planning-service/internal/domain/dto"
	"github.com/guttosm/planning-service/internal/i18n"
	"github.com/guttosm/planning-service/internal/service/cache"
)

const (
	// IdempotencyKeyHeader names the client-chosen key of a write.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from a previous write.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is how long a successful write can be replayed.
	IdempotencyKeyTTL = 5 * time.Minute

	idempotencyCapacity = 10000
)

// storedResponse is the remembered outcome of a write.
type storedResponse struct {
	fingerprint string
	status      int
	contentType string
	body        []byte
}

// IdempotencyConfig holds configuration for idempotency middleware.
type IdempotencyConfig struct {
	Cache   cache.Cache[storedResponse]
	Enabled bool
}

// DefaultIdempotencyConfig remembers writes in an in-memory TTL cache.
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		Cache: cache.NewTTLCache(idempotencyCapacity, IdempotencyKeyTTL,
			cache.WithCleanupInterval[storedResponse](time.Minute)),
		Enabled: true,
	}
}

// Idempotency replays the response of a recent plan write sent again with the
// same Idempotency-Key by the same operator to the same route. Reusing a key
// with a different body is rejected with 422. Only 2xx outcomes are
// remembered, so a failed save can be retried under the same key.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Cache == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" || !isWrite(c.Request.Method) {
			c.Next()
			return
		}

		body, err := readBody(c.Request)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}
		slot := idempotencySlot(GetOperator(c), key, c.Request.Method, c.Request.URL.Path)
		fingerprint := digest(body)

		if prev, ok := cfg.Cache.Get(slot); ok {
			if prev.fingerprint != fingerprint {
				message := i18n.GetTranslator().Translate(i18n.ErrKeyIdempotencyMismatch, i18n.GetLocale(c))
				c.AbortWithStatusJSON(http.StatusUnprocessableEntity,
					dto.NewError(dto.ErrCodeFromStatus(http.StatusUnprocessableEntity), message).WithRequestID(GetRequestID(c)))
				return
			}
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(prev.status, prev.contentType, prev.body)
			c.Abort()
			return
		}

		rec := &recordingWriter{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()

		if status := rec.Status(); status >= 200 && status < 300 {
			cfg.Cache.Set(slot, storedResponse{
				fingerprint: fingerprint,
				status:      status,
				contentType: rec.Header().Get("Content-Type"),
				body:        bytes.Clone(rec.buf.Bytes()),
			})
		}
	}
}

func isWrite(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// readBody drains the request body and puts an identical reader back.
func readBody(req *http.Request) ([]byte, error) {
	if req.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}

// idempotencySlot identifies one key of one operator on one route.
func idempotencySlot(operator, key, method, path string) string {
	return digest([]byte(operator), []byte(key), []byte(method), []byte(path))
}

func digest(parts ...[]byte) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// recordingWriter keeps a copy of the response body.
type recordingWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *recordingWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
