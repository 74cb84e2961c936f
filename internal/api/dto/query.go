package dto

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/talx-hub/gopher-rewards/internal/model"
)

const dateOnly = "2006-01-02"

// ParsePage reads page and limit. Missing values take the defaults, limit is capped.
func ParsePage(q url.Values) (model.Page, error) {
	page := model.Page{Number: model.DefaultPage, Limit: model.DefaultLimit}

	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return model.Page{}, fmt.Errorf("page must be a positive integer, got %q", raw)
		}
		page.Number = n
	}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return model.Page{}, fmt.Errorf("limit must be a positive integer, got %q", raw)
		}
		page.Limit = min(n, model.MaxLimit)
	}
	if !page.InRange() {
		return model.Page{}, fmt.Errorf("page %d is out of range for limit %d", page.Number, page.Limit)
	}
	return page, nil
}

// ParseDateRange reads start_date and end_date. Each bound is optional.
// A bare end date covers that whole day.
func ParseDateRange(q url.Values) (*time.Time, *time.Time, error) {
	from, err := parseDate(q.Get("start_date"), false)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid start_date: %w", err)
	}
	to, err := parseDate(q.Get("end_date"), true)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid end_date: %w", err)
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, fmt.Errorf("end_date %s is before start_date %s",
			to.Format(time.RFC3339), from.Format(time.RFC3339))
	}
	return from, to, nil
}

func parseDate(raw string, endOfDay bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dateOnly, raw)
	if err != nil {
		return nil, fmt.Errorf("expected RFC 3339 or YYYY-MM-DD, got %q", raw)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func ParseCampaignID(q url.Values) (*int64, error) {
	raw := q.Get("campaign_id")
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return nil, fmt.Errorf("campaign_id must be a positive integer, got %q", raw)
	}
	return &id, nil
}
