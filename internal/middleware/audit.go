package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"air-cargo-assistant/internal/audit"
)

// maxAuditBodyBytes caps how much of a request body lands in the audit
// trail. Bodies beyond the cap are truncated, not rejected.
const maxAuditBodyBytes = 4096

// Audit records endpoint, latency and a body snapshot for every API
// request. The write is asynchronous inside the audit use case, so the
// response is never held up by it.
func (m Middleware) Audit() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		body := snapshotBody(c)

		c.Next()

		m.auditUC.Record(c.Request.Context(), audit.RecordInput{
			Endpoint:       c.FullPath(),
			Method:         c.Request.Method,
			LatencyMs:      float64(time.Since(start).Microseconds()) / 1000.0,
			RequestData:    string(body),
			ResponseStatus: c.Writer.Status(),
			UserMessage:    extractUserMessage(body),
		})
	}
}

// snapshotBody reads up to the cap and puts the bytes back so binding
// downstream still sees the full body.
func snapshotBody(c *gin.Context) []byte {
	if c.Request.Body == nil {
		return nil
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))

	if len(raw) > maxAuditBodyBytes {
		return raw[:maxAuditBodyBytes]
	}
	return raw
}

// extractUserMessage pulls the conversational message out of the body,
// when there is one, so the audit trail is searchable by what the user
// actually said.
func extractUserMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}
