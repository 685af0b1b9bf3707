package movements

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBuildsRequest(t *testing.T) {
	tests := []struct {
		name     string
		quantity string
		expected json.Number
	}{
		{"integer", "3", "3"},
		{"padded", " 12 ", "12"},
		{"decimal", "2.5", "2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			form.Quantity = tt.quantity

			req, err := Validate(form)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, req.Quantity)

			body, err := json.Marshal(req)
			require.NoError(t, err)
			assert.Contains(t, string(body), `"quantity":`+string(tt.expected))
		})
	}
}
