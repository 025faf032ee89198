package utils

import (
	"sync"
	"testing"
	"time"
)

func TestParseReminderTime(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2026-10-18T09:30:00Z", time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)},
		{"2026-10-18T12:30:00+03:00", time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)},
		{"2026-10-18T09:30", time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)},
		{"2026-10-18T09:30:15", time.Date(2026, 10, 18, 9, 30, 15, 0, time.UTC)},
		{" 2026-10-18 09:30 ", time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		got, ok := ParseReminderTime(c.in)
		if !ok {
			t.Fatalf("%q: expected to parse", c.in)
		}
		if !got.Equal(c.want) || got.Location() != time.UTC {
			t.Fatalf("%q: expected %v, got %v", c.in, c.want, got)
		}
	}
}

func TestParseReminderTime_Unparseable(t *testing.T) {
	for _, in := range []string{"", "tomorrow morning", "18.10.2026", "09:30"} {
		if _, ok := ParseReminderTime(in); ok {
			t.Fatalf("%q: expected no parse", in)
		}
	}
}

func TestIdempotencyKey(t *testing.T) {
	a := IdempotencyKey("r1", "2026-10-18T09:30:00Z")
	b := IdempotencyKey("r1", "2026-10-18T09:30:00Z")
	c := IdempotencyKey("r1", "2026-10-18T09:31:00Z")
	if a != b {
		t.Fatalf("same parts must give the same key")
	}
	if a == c {
		t.Fatalf("different parts must give different keys")
	}
	if IdempotencyKey("ab", "c") == IdempotencyKey("a", "bc") {
		t.Fatalf("part boundaries must matter")
	}
}

func TestSafeAsync_RecoversPanic(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)
	SafeAsync(func() {
		defer wg.Done()
		panic("boom")
	})
	wg.Wait()
}
