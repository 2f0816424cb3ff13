package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/blogem/workout-tracker/models"
	"github.com/blogem/workout-tracker/repositories"
	"github.com/blogem/workout-tracker/userctx"
)

const auditWriteTimeout = 5 * time.Second

// redactedFields are never written to the audit log
var redactedFields = map[string]bool{
	"password":              true,
	"password_confirmation": true,
	ConfirmTokenField:       true,
}

// AuditLogger middleware logs all POST/PUT/DELETE requests
func AuditLogger(auditRepo repositories.AuditRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Only log mutation operations
			if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodDelete {
				entry := &models.AuditLogEntry{
					Timestamp: time.Now(),
					UserID:    userctx.GetUserID(r.Context()),
					Method:    r.Method,
					Path:      r.URL.Path,
					UserAgent: r.UserAgent(),
					IPAddress: getIPAddress(r),
					FormData:  captureFormData(r),
				}

				// Log asynchronously to avoid blocking request
				go func() {
					ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
					defer cancel()

					if err := auditRepo.Create(ctx, entry); err != nil {
						logrus.WithFields(logrus.Fields{
							"path":    entry.Path,
							"user_id": entry.UserID,
						}).WithError(err).Error("Failed to create audit log")
					}
				}()
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getIPAddress extracts IP address from request, checking X-Forwarded-For first
func getIPAddress(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}

// captureFormData captures form data as JSON string with secrets removed
func captureFormData(r *http.Request) string {
	if err := r.ParseForm(); err != nil {
		return ""
	}

	formMap := make(map[string]interface{}, len(r.PostForm))
	for key, values := range r.PostForm {
		switch {
		case redactedFields[key]:
			formMap[key] = "[redacted]"
		case len(values) == 1:
			formMap[key] = values[0]
		default:
			formMap[key] = values
		}
	}

	if len(formMap) == 0 {
		return ""
	}

	jsonData, err := json.Marshal(formMap)
	if err != nil {
		return ""
	}

	return string(jsonData)
}
