package dto

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/gopher-rewards/internal/model"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    model.Page
		wantErr bool
	}{
		{name: "defaults", query: "", want: model.Page{Number: 1, Limit: 20}},
		{name: "explicit", query: "page=3&limit=5", want: model.Page{Number: 3, Limit: 5}},
		{name: "limit capped", query: "limit=1000", want: model.Page{Number: 1, Limit: 100}},
		{name: "zero page", query: "page=0", wantErr: true},
		{name: "negative limit", query: "limit=-1", wantErr: true},
		{name: "not a number", query: "page=two", wantErr: true},
		{name: "offset past int4", query: "page=30000000&limit=100", wantErr: true},
		{name: "last addressable page", query: "page=21474837&limit=100", want: model.Page{Number: 21474837, Limit: 100}},
		{name: "huge page", query: "page=9223372036854775807", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			got, err := ParsePage(q)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDateRange(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	tests := []struct {
		wantFrom *time.Time
		wantTo   *time.Time
		name     string
		query    string
		wantErr  bool
	}{
		{name: "none", query: ""},
		{
			name:     "start only",
			query:    "start_date=2025-01-15",
			wantFrom: ptr(day(2025, time.January, 15)),
		},
		{
			name:   "end date covers the whole day",
			query:  "end_date=2025-01-15",
			wantTo: ptr(day(2025, time.January, 16).Add(-time.Nanosecond)),
		},
		{
			name:     "rfc3339",
			query:    "start_date=2025-01-15T10:00:00Z&end_date=2025-01-15T11:00:00Z",
			wantFrom: ptr(time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)),
			wantTo:   ptr(time.Date(2025, time.January, 15, 11, 0, 0, 0, time.UTC)),
		},
		{name: "garbage", query: "start_date=yesterday", wantErr: true},
		{name: "reversed", query: "start_date=2025-02-01&end_date=2025-01-01", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			from, to, err := ParseDateRange(q)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assertTime(t, tt.wantFrom, from)
			assertTime(t, tt.wantTo, to)
		})
	}
}

func TestParseCampaignID(t *testing.T) {
	id, err := ParseCampaignID(url.Values{"campaign_id": {"101"}})
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, int64(101), *id)

	id, err = ParseCampaignID(url.Values{})
	require.NoError(t, err)
	assert.Nil(t, id)

	_, err = ParseCampaignID(url.Values{"campaign_id": {"abc"}})
	assert.Error(t, err)
}

func ptr[T any](v T) *T {
	return &v
}

func assertTime(t *testing.T, want, got *time.Time) {
	t.Helper()
	if want == nil {
		assert.Nil(t, got)
		return
	}
	require.NotNil(t, got)
	assert.True(t, want.Equal(*got), "want %s, got %s", want, got)
}
