package utils

import (
	"strings"
	"time"
)

var reminderTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseReminderTime accepts RFC 3339 and the datetime-local forms sent by
// browsers. Values without a zone are read as UTC. The result is in UTC.
func ParseReminderTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range reminderTimeLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
