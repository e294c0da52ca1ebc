package datemath_test

import (
	"testing"
	"time"

	"jasper/pkg/datemath"
)

func TestExtractRange(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")

	ts := func(t time.Time) *time.Time { return &t }

	tests := []struct {
		name     string
		input    string
		wantFrom *time.Time
		wantTo   *time.Time
	}{
		{
			name:     "Explicit range",
			input:    "from 02.12.2025 to 02.02.2026",
			wantFrom: ts(day(2025, 12, 2)),
			wantTo:   ts(day(2026, 2, 2)),
		},
		{
			name:     "Single day",
			input:    "at 24.12.2025",
			wantFrom: ts(day(2025, 12, 24)),
			wantTo:   ts(day(2025, 12, 24)),
		},
		{
			name:     "Single day short-circuits range",
			input:    "mails on 2025-12-01 from 01.11.2025 to 05.11.2025",
			wantFrom: ts(day(2025, 12, 1)),
			wantTo:   ts(day(2025, 12, 1)),
		},
		{
			name:     "Relative start only",
			input:    "last 3 months",
			wantFrom: ts(baseTime.AddDate(0, 0, -90)),
		},
		{
			name:     "Since only",
			input:    "emails from boris since 01.11.2025",
			wantFrom: ts(day(2025, 11, 1)),
		},
		{
			name:   "Before only",
			input:  "invoices before 2025-10-01",
			wantTo: ts(day(2025, 10, 1)),
		},
		{
			name:     "Since and until both fire",
			input:    "since 01.11.2025 and until 15.11.2025",
			wantFrom: ts(day(2025, 11, 1)),
			wantTo:   ts(day(2025, 11, 15)),
		},
		{
			name:     "Bare absolute sets both ends",
			input:    "report 05.05.2025",
			wantFrom: ts(day(2025, 5, 5)),
			wantTo:   ts(day(2025, 5, 5)),
		},
		{
			name:     "Yesterday alias",
			input:    "mail since yesterday",
			wantFrom: ts(day(2025, 12, 9)),
			wantTo:   nil,
		},
		{
			name:     "Reversed range is normalized",
			input:    "from 02.02.2026 to 02.12.2025",
			wantFrom: ts(day(2025, 12, 2)),
			wantTo:   ts(day(2026, 2, 2)),
		},
		{
			name:  "No date",
			input: "search mail from boris",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.ExtractRange(tt.input, baseTime)
			assertTime(t, "From", got.From, tt.wantFrom)
			assertTime(t, "To", got.To, tt.wantTo)
		})
	}
}

func TestExtractRange_FromNeverAfterTo(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	inputs := []string{
		"from 01.01.2026 to 01.01.2025",
		"since 2026-03-01 until 2026-01-01",
		"at 24.12.2025",
		"from last 3 days to yesterday",
	}
	for _, in := range inputs {
		r := parser.ExtractRange(in, baseTime)
		if r.From != nil && r.To != nil && r.From.After(*r.To) {
			t.Errorf("ExtractRange(%q): From %v after To %v", in, r.From, r.To)
		}
	}
}

func TestCleanDateString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "boris last 3 days", want: "boris"},
		{input: "boris from 01.12.2025 to 02.12.2025", want: "boris"},
		{input: "ana at 24.12.2025", want: "ana"},
		{input: "ana since yesterday", want: "ana"},
		{input: "Report   Before 2025-10-01 final", want: "Report final"},
		{input: "no dates here", want: "no dates here"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := datemath.CleanDateString(tt.input); got != tt.want {
				t.Errorf("CleanDateString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStartsWithDate(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "01.12.2025", want: true},
		{input: "2025-11-01 to 2025-11-30", want: true},
		{input: "yesterday please", want: true},
		{input: "last week", want: true},
		{input: "Past 3 days", want: true},
		{input: "last weekend", want: false},
		{input: "lastminute.com", want: false},
		{input: "ana yesterday", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := datemath.StartsWithDate(tt.input); got != tt.want {
				t.Errorf("StartsWithDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFindRelative(t *testing.T) {
	if got := datemath.FindRelative("search outlook for ana last 3 days"); got != "last 3 days" {
		t.Errorf("FindRelative() = %q, want %q", got, "last 3 days")
	}
	if got := datemath.FindRelative("mail from ana"); got != "" {
		t.Errorf("FindRelative() = %q, want empty", got)
	}
}

func TestFindExpressions(t *testing.T) {
	got := datemath.FindExpressions("from 02.12.2025 to last week")
	if len(got) != 2 {
		t.Fatalf("FindExpressions() len = %d, want 2", len(got))
	}
	if got[0].Kind != datemath.KindAbsolute || got[0].Text != "02.12.2025" {
		t.Errorf("first expression = %+v", got[0])
	}
	if got[1].Kind != datemath.KindRelative || got[1].Text != "last week" {
		t.Errorf("second expression = %+v", got[1])
	}
}

func assertTime(t *testing.T, label string, got, want *time.Time) {
	t.Helper()
	switch {
	case got == nil && want == nil:
	case got == nil || want == nil:
		t.Errorf("%s = %v, want %v", label, got, want)
	case !got.Equal(*want):
		t.Errorf("%s = %v, want %v", label, *got, *want)
	}
}
