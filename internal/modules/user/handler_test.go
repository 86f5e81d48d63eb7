package user

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestWriteFollowError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(nil)

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"unknown user", ErrUserNotFound, http.StatusNotFound},
		{"self follow", ErrSelfFollow, http.StatusBadRequest},
		{"duplicate follow", ErrAlreadyFollowing, http.StatusBadRequest},
		{"missing edge", ErrNotFollowing, http.StatusBadRequest},
		{"unexpected error", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodPost, "/users/x/follow", nil)

			h.writeFollowError(c, tt.err)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
