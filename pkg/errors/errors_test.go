package custom_error

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"logistica/pkg/httpstatus"

	"github.com/stretchr/testify/assert"
)

func TestTaxonomy(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		validation bool
		network    bool
		server     bool
		storage    bool
	}{
		{"validation", NewValidationError("quantity", "must be positive"), true, false, false, false},
		{"network", &NetworkError{Op: "GET /movements", Err: errors.New("connection refused")}, false, true, false, false},
		{"server", NewServerError("POST /movements", 500, nil), false, false, true, false},
		{"storage", &StorageError{Op: "save", Err: errors.New("disk full")}, false, false, false, true},
		{"wrapped server", fmt.Errorf("create movement: %w", NewServerError("POST /movements", 409, nil)), false, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.validation, IsValidation(tt.err))
			assert.Equal(t, tt.network, IsNetwork(tt.err))
			assert.Equal(t, tt.server, IsServer(tt.err))
			assert.Equal(t, tt.storage, IsStorage(tt.err))
		})
	}
}

func TestNewServerError(t *testing.T) {
	err := NewServerError("PUT /movements/1/start", 503, []byte(strings.Repeat("x", 2000)))

	var serverErr *ServerError
	assert.True(t, errors.As(err, &serverErr))
	assert.Equal(t, 503, serverErr.Status)
	assert.Equal(t, httpstatus.CategoryServiceUnavailable, serverErr.Category)
	assert.Len(t, serverErr.Body, 512)
}

func TestNetworkErrorUnwrap(t *testing.T) {
	cause := errors.New("i/o timeout")
	err := &NetworkError{Op: "GET /users", Err: cause}
	assert.ErrorIs(t, err, cause)
}
