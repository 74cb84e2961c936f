package cashback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthStart(t *testing.T) {
	tests := []struct {
		in   time.Time
		want time.Time
	}{
		{
			in:   time.Date(2025, time.June, 21, 11, 58, 45, 0, time.UTC),
			want: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			in:   time.Date(2025, time.July, 1, 1, 0, 0, 0, time.FixedZone("MSK", 3*60*60)),
			want: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			in:   time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC),
			want: time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		assert.True(t, tt.want.Equal(MonthStart(tt.in)), "%s", tt.in)
	}
}
