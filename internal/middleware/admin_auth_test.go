package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func adminTestRouter(apiKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	router := gin.New()
	router.GET("/protected", AdminAuth(apiKey, logger), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestAdminAuth(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		provided   string
		wantStatus int
	}{
		{"valid key", "s3cret", "s3cret", http.StatusOK},
		{"wrong key", "s3cret", "nope", http.StatusUnauthorized},
		{"missing key", "s3cret", "", http.StatusUnauthorized},
		{"partial key", "s3cret", "s3cre", http.StatusUnauthorized},
		{"unconfigured leaves endpoint open", "", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := adminTestRouter(tt.configured)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.provided != "" {
				req.Header.Set(AdminKeyHeader, tt.provided)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Expected %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}
