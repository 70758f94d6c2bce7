package dbx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_Scan(t *testing.T) {
	want := time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC)

	tests := []struct {
		name string
		src  any
		want time.Time
	}{
		{"time", want, want},
		{"sqlite text", "2024-03-01 10:20:30", want},
		{"rfc3339", "2024-03-01T10:20:30Z", want},
		{"bytes", []byte("2024-03-01 10:20:30"), want},
		{"nil", nil, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got time.Time
			require.NoError(t, Timestamp{Time: &got}.Scan(tt.src))
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}

func TestTimestamp_ScanErrors(t *testing.T) {
	var got time.Time
	assert.Error(t, Timestamp{Time: &got}.Scan("yesterday"))
	assert.Error(t, Timestamp{Time: &got}.Scan(42))
}
