package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "zero", in: 0, want: 0},
		{name: "arredonda para cima", in: 10.005001, want: 10.01},
		{name: "arredonda para baixo", in: 3.14159, want: 3.14},
		{name: "negativo", in: -2.456, want: -2.46},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundWithTwoDecimalPlace(tt.in))
		})
	}
}

func TestSafeDivide(t *testing.T) {
	assert.Equal(t, 0.0, SafeDivide(10, 0))
	assert.Equal(t, 2.5, SafeDivide(10, 4))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, idSize)

	other, err := GenerateID()
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}

func TestParseReferenceTime(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "vazio", in: "", want: time.Time{}},
		{name: "somente data", in: "2024-06-15", want: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
		{name: "data e hora", in: "2024-06-15 10:30:00", want: time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)},
		{name: "RFC3339 com fuso", in: "2024-06-15T10:30:00-03:00", want: time.Date(2024, 6, 15, 13, 30, 0, 0, time.UTC)},
		{name: "inválido", in: "15/06/2024", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReferenceTime(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "esperado %s, obtido %s", tt.want, got)
		})
	}
}

func TestReferenceOrNow(t *testing.T) {
	fixed := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, fixed, ReferenceOrNow(fixed))

	now := ReferenceOrNow(time.Time{})
	assert.WithinDuration(t, time.Now(), now, time.Minute)
}
