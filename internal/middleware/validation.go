package middleware

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vendaflow/pos-api/pkg/logger"
)

type ValidationMiddleware struct {
	logger *logger.Logger
}

func NewValidationMiddleware(logger *logger.Logger) *ValidationMiddleware {
	return &ValidationMiddleware{
		logger: logger,
	}
}

// ValidateContentType ensures only allowed content types. Import endpoints
// take multipart uploads, everything else is JSON.
func (m *ValidationMiddleware) ValidateContentType(allowedTypes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == "GET" || c.Request.Method == "DELETE" {
			c.Next()
			return
		}

		contentType := c.GetHeader("Content-Type")
		if contentType == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Content-Type header is required"})
			c.Abort()
			return
		}

		contentType = strings.TrimSpace(strings.Split(contentType, ";")[0])

		for _, allowedType := range allowedTypes {
			if contentType == allowedType {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusUnsupportedMediaType, gin.H{
			"error":         "Unsupported Content-Type",
			"allowed_types": allowedTypes,
		})
		c.Abort()
	}
}

// ValidateRequestSize limits request body size
func (m *ValidationMiddleware) ValidateRequestSize(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxSize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error":         "Request body too large",
				"max_size":      maxSize,
				"received_size": c.Request.ContentLength,
			})
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}

// BlockSuspiciousPatterns blocks requests with injection or traversal
// patterns in the path or query string.
func (m *ValidationMiddleware) BlockSuspiciousPatterns() gin.HandlerFunc {
	patterns := []string{
		`(?i)(\bUNION\b.*\bSELECT\b)`,
		`(?i)(\bINSERT\b.*\bINTO\b)`,
		`(?i)(\bDELETE\b.*\bFROM\b)`,
		`(?i)(\bDROP\b.*\bTABLE\b)`,
		`<script.*?>`,
		`javascript:`,
		`onerror=`,
		`<iframe.*?>`,
		`\.\.\/`,
		`%2e%2e%2f`,
	}

	compiled := make([]*regexp.Regexp, len(patterns))
	for i, pattern := range patterns {
		compiled[i] = regexp.MustCompile(pattern)
	}

	matchesAny := func(input string) bool {
		for _, pattern := range compiled {
			if pattern.MatchString(input) {
				return true
			}
		}
		return false
	}

	return func(c *gin.Context) {
		if matchesAny(c.Request.URL.Path) {
			m.logger.Warn("Blocked suspicious request",
				zap.String("path", c.Request.URL.Path),
				zap.String("ip", c.ClientIP()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			c.Abort()
			return
		}

		for key, values := range c.Request.URL.Query() {
			for _, value := range values {
				if matchesAny(value) {
					m.logger.Warn("Blocked suspicious query parameter",
						zap.String("key", key),
						zap.String("ip", c.ClientIP()))
					c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
					c.Abort()
					return
				}
			}
		}

		c.Next()
	}
}
