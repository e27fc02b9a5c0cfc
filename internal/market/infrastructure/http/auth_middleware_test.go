package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Lexv0lk/marketplace/internal/pkg/jwt"
	"github.com/Lexv0lk/marketplace/internal/pkg/logging"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestNewAuthMiddleware(t *testing.T) {
	t.Parallel()

	issuer := jwt.NewJWTTokenIssuer()

	validToken, err := issuer.IssueToken([]byte(testSecret), 42, "alice", time.Hour)
	require.NoError(t, err)
	expiredToken, err := issuer.IssueToken([]byte(testSecret), 42, "alice", -time.Hour)
	require.NoError(t, err)
	foreignToken, err := issuer.IssueToken([]byte("other-secret"), 42, "alice", time.Hour)
	require.NoError(t, err)
	anonymousToken, err := issuer.IssueToken([]byte(testSecret), 0, "", time.Hour)
	require.NoError(t, err)

	type testCase struct {
		name   string
		header string

		expectingError bool
		errorStatus    int

		expectedUserID int64
	}

	testCases := []testCase{
		{
			name:   "success",
			header: "Bearer " + validToken,

			expectingError: false,
			expectedUserID: 42,
		},
		{
			name:   "missing authorization header",
			header: "",

			expectingError: true,
			errorStatus:    http.StatusUnauthorized,
		},
		{
			name:   "invalid auth header format",
			header: "InvalidHeaderFormat",

			expectingError: true,
			errorStatus:    http.StatusUnauthorized,
		},
		{
			name:   "invalid auth header prefix",
			header: "Token " + validToken,

			expectingError: true,
			errorStatus:    http.StatusUnauthorized,
		},
		{
			name:   "expired token",
			header: "Bearer " + expiredToken,

			expectingError: true,
			errorStatus:    http.StatusUnauthorized,
		},
		{
			name:   "token signed with another secret",
			header: "Bearer " + foreignToken,

			expectingError: true,
			errorStatus:    http.StatusUnauthorized,
		},
		{
			name:   "token without user",
			header: "Bearer " + anonymousToken,

			expectingError: true,
			errorStatus:    http.StatusUnauthorized,
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range testCases {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			writer := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(writer)

			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.Header.Set(authHeaderName, tt.header)

			middleware := NewAuthMiddleware(testSecret, jwt.NewJWTTokenParser(), logging.DiscardLogger)
			middleware(c)

			if tt.expectingError {
				assert.Equal(t, tt.errorStatus, writer.Code)
				assert.True(t, c.IsAborted())
				assert.Contains(t, writer.Body.String(), codeUnauthorized)
			} else {
				userID, exists := c.Get(jwt.UserIDContextKey)
				assert.True(t, exists)
				assert.Equal(t, tt.expectedUserID, userID)
				assert.Equal(t, "alice", c.GetString(jwt.UsernameContextKey))
			}
		})
	}
}
