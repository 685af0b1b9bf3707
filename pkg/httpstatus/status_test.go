package httpstatus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var predicates = map[int]func(int) bool{
	200: IsOk,
	201: IsCreated,
	400: IsBadRequest,
	401: IsUnauthorized,
	403: IsForbidden,
	404: IsNotFound,
	409: IsConflict,
	500: IsInternalServerError,
	503: IsServiceUnavailable,
	504: IsGatewayTimeout,
}

func TestPredicatesAreExclusive(t *testing.T) {
	codes := []int{-1, 0, 1, 100, 199, 202, 204, 299, 302, 402, 405, 418, 429, 501, 502, 505, 999}
	for code := range predicates {
		codes = append(codes, code)
	}

	for _, code := range codes {
		matches := 0
		for target, predicate := range predicates {
			got := predicate(code)
			assert.Equal(t, code == target, got, "code %d against %d", code, target)
			if got {
				matches++
			}
		}

		if _, ok := predicates[code]; ok {
			assert.Equal(t, 1, matches, "code %d", code)
		} else {
			assert.Zero(t, matches, "code %d", code)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		expected Category
	}{
		{"ok", 200, CategoryOk},
		{"created", 201, CategoryCreated},
		{"conflict", 409, CategoryConflict},
		{"gateway timeout", 504, CategoryGatewayTimeout},
		{"no content is not ok", 204, CategoryUnknown},
		{"teapot", 418, CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.status))
		})
	}
}

func TestIsAuthRejected(t *testing.T) {
	assert.True(t, IsAuthRejected(401))
	assert.True(t, IsAuthRejected(403))
	assert.False(t, IsAuthRejected(404))
}
