package service

import (
	"strings"
	"time"
)

// dateOnlyLayouts covers the date formats bulk uploads and API clients
// send for calendar fields.
var dateOnlyLayouts = []string{"2006-01-02", "02-01-2006", "2006/01/02", time.RFC3339}

func parseDateOnly(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var lastErr error
	for _, layout := range dateOnlyLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			return &parsed, nil
		}
		lastErr = err
	}
	return nil, lastErr
}
