package assistant_test

import (
	"errors"
	"testing"
	"time"

	"workspace-agent/internal/assistant"
)

func TestBuildCalendarFilter(t *testing.T) {
	// Wednesday, January 3, 2024, 10:30 UTC
	now := time.Date(2024, 1, 3, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		opts        assistant.FilterOptions
		wantTimeMin time.Time
		wantTimeMax *time.Time
		wantErr     bool
	}{
		{
			name:        "No options means open window from now",
			opts:        assistant.FilterOptions{},
			wantTimeMin: now,
			wantTimeMax: nil,
		},
		{
			name:        "Next 3 days",
			opts:        assistant.FilterOptions{NextXDays: "3"},
			wantTimeMin: now,
			wantTimeMax: timePtr(now.AddDate(0, 0, 3)),
		},
		{
			name:        "Next days clamped to seven",
			opts:        assistant.FilterOptions{NextXDays: "30"},
			wantTimeMin: now,
			wantTimeMax: timePtr(now.AddDate(0, 0, 7)),
		},
		{
			name:        "Specific date",
			opts:        assistant.FilterOptions{SpecificDate: "2024-02-14"},
			wantTimeMin: time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC),
			wantTimeMax: timePtr(time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:        "Next Monday from Wednesday",
			opts:        assistant.FilterOptions{SpecificDay: "Monday"},
			wantTimeMin: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
			wantTimeMax: timePtr(time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:        "Same weekday means today",
			opts:        assistant.FilterOptions{SpecificDay: "wednesday"},
			wantTimeMin: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
			wantTimeMax: timePtr(time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)),
		},
		{
			name: "Next days takes priority over specific date",
			opts: assistant.FilterOptions{
				NextXDays:    "1",
				SpecificDate: "2024-02-14",
			},
			wantTimeMin: now,
			wantTimeMax: timePtr(now.AddDate(0, 0, 1)),
		},
		{
			name:    "Non-integer next days",
			opts:    assistant.FilterOptions{NextXDays: "few"},
			wantErr: true,
		},
		{
			name:    "Malformed date",
			opts:    assistant.FilterOptions{SpecificDate: "14/02/2024"},
			wantErr: true,
		},
		{
			name:    "Unknown weekday",
			opts:    assistant.FilterOptions{SpecificDay: "funday"},
			wantErr: true,
		},
		{
			name:    "Malformed time range",
			opts:    assistant.FilterOptions{SpecificTime: "afternoon"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assistant.BuildCalendarFilter(tt.opts, now)
			if (err != nil) != tt.wantErr {
				t.Fatalf("BuildCalendarFilter() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, assistant.ErrValidation) {
					t.Errorf("BuildCalendarFilter() error = %v, want ErrValidation", err)
				}
				return
			}
			if !got.TimeMin.Equal(tt.wantTimeMin) {
				t.Errorf("TimeMin got = %v, want %v", got.TimeMin, tt.wantTimeMin)
			}
			if (got.TimeMax == nil) != (tt.wantTimeMax == nil) {
				t.Fatalf("TimeMax got = %v, want %v", got.TimeMax, tt.wantTimeMax)
			}
			if tt.wantTimeMax != nil && !got.TimeMax.Equal(*tt.wantTimeMax) {
				t.Errorf("TimeMax got = %v, want %v", got.TimeMax, *tt.wantTimeMax)
			}
		})
	}
}

func TestBuildCalendarFilterTitleKeyword(t *testing.T) {
	now := time.Date(2024, 1, 3, 10, 30, 0, 0, time.UTC)

	filter, err := assistant.BuildCalendarFilter(assistant.FilterOptions{TitleKeyword: "Standup"}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filter.TitleKeyword != "standup" {
		t.Errorf("TitleKeyword got = %q, want lowercased %q", filter.TitleKeyword, "standup")
	}

	if !filter.MatchSummary("Daily STANDUP meeting") {
		t.Errorf("MatchSummary should match case-insensitively")
	}
	if filter.MatchSummary("Retro") {
		t.Errorf("MatchSummary should reject summaries without the keyword")
	}
}

func TestMatchSummaryNoKeyword(t *testing.T) {
	var filter assistant.CalendarFilter
	if !filter.MatchSummary("anything") {
		t.Errorf("empty keyword must match every summary")
	}
}

func TestMatchStart(t *testing.T) {
	now := time.Date(2024, 1, 3, 10, 30, 0, 0, time.UTC)

	filter, err := assistant.BuildCalendarFilter(assistant.FilterOptions{SpecificTime: "14:00-15:30"}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		hour   int
		minute int
		want   bool
	}{
		{"At range start", 14, 0, true},
		{"Inside range", 14, 45, true},
		{"At end hour excluded", 15, 0, false},
		{"After end hour", 16, 0, false},
		{"Before start hour", 13, 59, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := filter.MatchStart(tt.hour, tt.minute); got != tt.want {
				t.Errorf("MatchStart(%d, %d) got = %v, want %v", tt.hour, tt.minute, got, tt.want)
			}
		})
	}
}

func TestMatchStartHourGranularWindow(t *testing.T) {
	now := time.Date(2024, 1, 3, 10, 30, 0, 0, time.UTC)

	filter, err := assistant.BuildCalendarFilter(assistant.FilterOptions{SpecificTime: "14:30-16:00"}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The start minute only gates events whose hour falls outside the
	// hour window; 14:15 passes because 14 is within [14, 16).
	if !filter.MatchStart(14, 15) {
		t.Errorf("start-hour event before the start minute should still match")
	}
	if filter.MatchStart(16, 0) {
		t.Errorf("end hour should not match")
	}
}

func TestMatchStartSingleTime(t *testing.T) {
	now := time.Date(2024, 1, 3, 10, 30, 0, 0, time.UTC)

	// Single form expands to a one-hour window starting at 9:30.
	filter, err := assistant.BuildCalendarFilter(assistant.FilterOptions{SpecificTime: "9:30"}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !filter.MatchStart(9, 30) {
		t.Errorf("start of window should match")
	}
	if !filter.MatchStart(9, 45) {
		t.Errorf("inside window should match")
	}
	// The hour window is [9, 10), so 9:15 matches even before the
	// start minute.
	if !filter.MatchStart(9, 15) {
		t.Errorf("start-hour event before the start minute should still match")
	}
	if filter.MatchStart(10, 30) {
		t.Errorf("end hour should not match")
	}
}

func TestMatchStartNoRange(t *testing.T) {
	var filter assistant.CalendarFilter
	if !filter.MatchStart(3, 12) {
		t.Errorf("nil time range must match every start")
	}
}

func timePtr(t time.Time) *time.Time { return &t }
