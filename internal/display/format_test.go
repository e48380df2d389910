package display

import (
	"testing"
	"time"
)

func TestParseInstant(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Time
		ok    bool
	}{
		{"rfc3339 utc", "2025-09-06T18:00:00Z", time.Date(2025, 9, 6, 18, 0, 0, 0, time.UTC), true},
		{"rfc3339 offset", "2025-09-06T19:00:00+01:00", time.Date(2025, 9, 6, 18, 0, 0, 0, time.UTC), true},
		{"no zone is utc", "2025-09-06T18:00:00", time.Date(2025, 9, 6, 18, 0, 0, 0, time.UTC), true},
		{"date only", "2025-09-06", time.Date(2025, 9, 6, 0, 0, 0, 0, time.UTC), true},
		{"epoch seconds", "1757181600", time.Date(2025, 9, 6, 18, 0, 0, 0, time.UTC), true},
		{"epoch millis", "1757181600000", time.Date(2025, 9, 6, 18, 0, 0, 0, time.UTC), true},
		{"empty", "", time.Time{}, false},
		{"whitespace", "   ", time.Time{}, false},
		{"garbage", "not-a-date", time.Time{}, false},
		{"partial", "2025-09", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseInstant(tt.value)
			if ok != tt.ok {
				t.Fatalf("ParseInstant(%q) ok = %v, want %v", tt.value, ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Fatalf("ParseInstant(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatInstantFixedTimezone(t *testing.T) {
	// 18:00 UTC in September is 19:00 in Dublin (IST, +01:00).
	got := FormatInstant("2025-09-06T18:00:00Z")
	want := "Sep 6, 2025, 7:00 PM"
	if got != want {
		t.Fatalf("FormatInstant = %q, want %q", got, want)
	}

	// In January Dublin is back on GMT.
	got = FormatInstant("2025-01-15T18:00:00Z")
	want = "Jan 15, 2025, 6:00 PM"
	if got != want {
		t.Fatalf("FormatInstant = %q, want %q", got, want)
	}
}

func TestFormatInstantInvalid(t *testing.T) {
	if got := FormatInstant("nonsense"); got != "" {
		t.Fatalf("FormatInstant(invalid) = %q, want empty", got)
	}
}

func TestMidnightUTC(t *testing.T) {
	got, ok := MidnightUTC("2025-09-09")
	if !ok {
		t.Fatal("MidnightUTC failed on valid identifier")
	}
	want := time.Date(2025, 9, 9, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("MidnightUTC = %v, want %v", got, want)
	}

	if _, ok := MidnightUTC("beach-day"); ok {
		t.Fatal("MidnightUTC accepted a non-date identifier")
	}
}
