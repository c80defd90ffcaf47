package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	tests := []struct {
		name   string
		result interface{}
		want   bool
	}{
		{"nil", nil, false},
		{"true", true, true},
		{"false", false, false},
		{"empty string", "", false},
		{"non-empty string", "x", true},
		{"zero int", 0, false},
		{"non-zero int", 42, true},
		{"zero int64", int64(0), false},
		{"zero float", 0.0, false},
		{"non-zero float", 1.5, true},
		{"zero uint", uint(0), false},
		{"struct value", struct{}{}, true},
		{"empty slice", []string{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truthy(tt.result))
		})
	}
}

func TestNewRecord(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	rec := NewRecord(true, at)

	assert.True(t, rec.Result)
	assert.Equal(t, "2024-03-01T12:30:00Z", rec.InstalledAt)
	assert.Equal(t, at, rec.InstalledTime())
}

func TestRecordInstalledTime_Malformed(t *testing.T) {
	rec := Record{Result: true, InstalledAt: "not-a-time"}
	assert.True(t, rec.InstalledTime().IsZero())
}
