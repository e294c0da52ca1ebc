package datemath_test

import (
	"testing"
	"time"

	"jasper/pkg/datemath"
)

// Wednesday, December 10, 2025
var baseTime = time.Date(2025, 12, 10, 15, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Europe/Zagreb")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParseAbsolute(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")

	tests := []struct {
		name   string
		input  string
		want   time.Time
		wantOK bool
	}{
		{name: "DMY", input: "24.12.2025", want: day(2025, 12, 24), wantOK: true},
		{name: "DMY single digits", input: "2.3.2026", want: day(2026, 3, 2), wantOK: true},
		{name: "YMD", input: "2026-02-02", want: day(2026, 2, 2), wantOK: true},
		{name: "Embedded in text", input: "mails at 01.01.2026 please", want: day(2026, 1, 1), wantOK: true},
		{name: "Impossible date", input: "31.02.2025", wantOK: false},
		{name: "No date", input: "hello", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.ParseAbsolute(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseAbsolute(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("ParseAbsolute(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseRelative(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")

	tests := []struct {
		name   string
		input  string
		want   time.Time
		wantOK bool
	}{
		{name: "Last 3 days", input: "last 3 days", want: baseTime.AddDate(0, 0, -3), wantOK: true},
		{name: "Past 2 weeks", input: "past 2 weeks", want: baseTime.AddDate(0, 0, -14), wantOK: true},
		{name: "Last 3 months", input: "last 3 months", want: baseTime.AddDate(0, 0, -90), wantOK: true},
		{name: "Misspelled month", input: "last 2 monts", want: baseTime.AddDate(0, 0, -60), wantOK: true},
		{name: "Last year", input: "last year", want: baseTime.AddDate(0, 0, -365), wantOK: true},
		{name: "Last week", input: "last week", want: baseTime.AddDate(0, 0, -7), wantOK: true},
		{name: "This week anchors Monday", input: "this week", want: day(2025, 12, 8), wantOK: true},
		{name: "Current month anchors 1st", input: "current month", want: day(2025, 12, 1), wantOK: true},
		{name: "This year anchors Jan 1", input: "this year", want: day(2025, 1, 1), wantOK: true},
		{name: "This day anchors midnight", input: "this day", want: day(2025, 12, 10), wantOK: true},
		{name: "Yesterday", input: "yesterday", want: day(2025, 12, 9), wantOK: true},
		{name: "Typo anchor", input: "lat 5 days", want: baseTime.AddDate(0, 0, -5), wantOK: true},
		{name: "No anchor", input: "3 days", wantOK: false},
		{name: "Nothing", input: "boris", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.ParseRelative(tt.input, baseTime)
			if ok != tt.wantOK {
				t.Fatalf("ParseRelative(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("ParseRelative(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	got := parser.EndOfDay(day(2025, 12, 24))
	want := time.Date(2025, 12, 24, 23, 59, 59, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("EndOfDay() = %v, want %v", got, want)
	}
}
