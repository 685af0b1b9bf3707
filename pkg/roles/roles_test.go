package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		role     Role
		required Role
		expected bool
	}{
		{Admin, Admin, true},
		{Admin, Driver, true},
		{Operator, Admin, false},
		{Operator, Driver, true},
		{Driver, Operator, false},
		{Role("visitante"), Driver, true},
		{Role("visitante"), Operator, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+string(tt.required), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.role.HasPermission(tt.required))
		})
	}
}

func TestParse(t *testing.T) {
	assert.Equal(t, Admin, Parse("  Admin "))
	assert.True(t, Parse("MOTORISTA").IsValid())
	assert.False(t, Parse("gerente").IsValid())
}
