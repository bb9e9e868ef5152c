package availability

import (
	"testing"
	"time"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse(DateLayout, s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return parsed
}

func TestDefaultEnd(t *testing.T) {
	tests := []struct {
		name string
		now  string
		want string
	}{
		{"mid january, leap year", "2024-01-15", "2024-02-29"},
		{"mid january, non-leap year", "2023-01-15", "2023-02-28"},
		{"last day of month", "2024-03-31", "2024-04-30"},
		{"november rolls into december", "2024-11-05", "2024-12-31"},
		{"december rolls into next year", "2024-12-10", "2025-01-31"},
		{"first of month", "2024-06-01", "2024-07-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultEnd(date(t, tt.now))
			want := date(t, tt.want)
			if !got.Equal(want) {
				t.Errorf("DefaultEnd(%s) = %s, want %s", tt.now, got.Format(DateLayout), tt.want)
			}
		})
	}
}

func TestDefaultEndIgnoresTimeOfDay(t *testing.T) {
	now := time.Date(2024, time.January, 15, 23, 59, 59, 0, time.UTC)
	got := DefaultEnd(now)
	want := date(t, "2024-02-29")
	if !got.Equal(want) {
		t.Errorf("DefaultEnd = %s, want %s", got.Format(DateLayout), "2024-02-29")
	}
}

func TestResolve(t *testing.T) {
	now := time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)

	t.Run("both bounds default", func(t *testing.T) {
		w := Resolve(nil, nil, now)
		if !w.Start.Equal(date(t, "2024-01-15")) {
			t.Errorf("Start = %s, want 2024-01-15", w.Start.Format(DateLayout))
		}
		if !w.End.Equal(date(t, "2024-02-29")) {
			t.Errorf("End = %s, want 2024-02-29", w.End.Format(DateLayout))
		}
	})

	t.Run("explicit bounds win", func(t *testing.T) {
		start := date(t, "2024-03-01")
		end := date(t, "2024-03-12")
		w := Resolve(&start, &end, now)
		if !w.Start.Equal(start) || !w.End.Equal(end) {
			t.Errorf("got [%s, %s], want [2024-03-01, 2024-03-12]",
				w.Start.Format(DateLayout), w.End.Format(DateLayout))
		}
	})

	t.Run("only end supplied", func(t *testing.T) {
		end := date(t, "2024-04-01")
		w := Resolve(nil, &end, now)
		if !w.Start.Equal(date(t, "2024-01-15")) || !w.End.Equal(end) {
			t.Errorf("got [%s, %s], want [2024-01-15, 2024-04-01]",
				w.Start.Format(DateLayout), w.End.Format(DateLayout))
		}
	})
}

func TestParseWindow(t *testing.T) {
	now := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		start     string
		end       string
		wantStart string
		wantEnd   string
	}{
		{"both valid", "2024-03-01", "2024-03-12", "2024-03-01", "2024-03-12"},
		{"both empty", "", "", "2024-01-15", "2024-02-29"},
		{"malformed start falls back", "03/01/2024", "2024-03-12", "2024-01-15", "2024-03-12"},
		{"malformed end falls back", "2024-03-01", "garbage", "2024-03-01", "2024-02-29"},
		{"whitespace tolerated", " 2024-03-01 ", " 2024-03-12 ", "2024-03-01", "2024-03-12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ParseWindow(tt.start, tt.end, now)
			if !w.Start.Equal(date(t, tt.wantStart)) || !w.End.Equal(date(t, tt.wantEnd)) {
				t.Errorf("got [%s, %s], want [%s, %s]",
					w.Start.Format(DateLayout), w.End.Format(DateLayout), tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	if _, ok := ParseDate(""); ok {
		t.Error("empty string should not parse")
	}
	if _, ok := ParseDate("2024-13-01"); ok {
		t.Error("month 13 should not parse")
	}
	if got, ok := ParseDate("2024-02-29"); !ok || got.Day() != 29 {
		t.Errorf("leap day should parse, got %v %v", got, ok)
	}
}
