package metadata

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMovementStatus(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected MovementStatus
		known    bool
	}{
		{"created", "created", StatusCreated, true},
		{"capitalised created", "Created", StatusCreated, true},
		{"in transit", "em transito", StatusInTransit, true},
		{"in transit with accent", "Em Trânsito", StatusInTransit, true},
		{"delivery confirmed", "  coleta  finalizada ", StatusDeliveryConfirmed, true},
		{"unknown keeps raw value", " Cancelada ", MovementStatus("Cancelada"), false},
		{"empty", "", MovementStatus(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewMovementStatus(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.known, got.IsKnown())
		})
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name       string
		status     MovementStatus
		transition Transition
		expected   MovementStatus
		wantErr    bool
	}{
		{"start created", StatusCreated, TransitionStart, StatusInTransit, false},
		{"end in transit", StatusInTransit, TransitionEnd, StatusDeliveryConfirmed, false},
		{"end created", StatusCreated, TransitionEnd, StatusCreated, true},
		{"start in transit", StatusInTransit, TransitionStart, StatusInTransit, true},
		{"terminal", StatusDeliveryConfirmed, TransitionEnd, StatusDeliveryConfirmed, true},
		{"unknown", MovementStatus("cancelada"), TransitionStart, MovementStatus("cancelada"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.status.Apply(tt.transition)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidTransition))
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAllowedTransitions(t *testing.T) {
	assert.Equal(t, []Transition{TransitionStart}, StatusCreated.AllowedTransitions())
	assert.Equal(t, []Transition{TransitionEnd}, StatusInTransit.AllowedTransitions())
	assert.Empty(t, StatusDeliveryConfirmed.AllowedTransitions())
	assert.Empty(t, MovementStatus("whatever").AllowedTransitions())
}

func TestHasRoute(t *testing.T) {
	assert.False(t, StatusCreated.HasRoute())
	assert.True(t, StatusInTransit.HasRoute())
	assert.True(t, StatusDeliveryConfirmed.HasRoute())
	assert.False(t, MovementStatus("x").HasRoute())
}

func TestUnmarshalStatus(t *testing.T) {
	var payload struct {
		Status MovementStatus `json:"status"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"status":"Em Trânsito"}`), &payload))
	assert.Equal(t, StatusInTransit, payload.Status)

	require.NoError(t, json.Unmarshal([]byte(`{"status":"devolvida"}`), &payload))
	assert.Equal(t, MovementStatus("devolvida"), payload.Status)
}
