package assistant

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// BuildCalendarFilter resolves FilterOptions against now into a concrete
// query window. Priority for the primary window: next_x_days, then
// specific_date, then specific_day; none given means [now, +inf).
func BuildCalendarFilter(opts FilterOptions, now time.Time) (CalendarFilter, error) {
	now = now.UTC()
	filter := CalendarFilter{TimeMin: now}

	switch {
	case opts.NextXDays != "":
		days, err := strconv.Atoi(strings.TrimSpace(opts.NextXDays))
		if err != nil {
			return CalendarFilter{}, fmt.Errorf("%w: next_x_days %q is not an integer", ErrValidation, opts.NextXDays)
		}
		if days > maxLookbackDays {
			days = maxLookbackDays
		}
		timeMax := now.AddDate(0, 0, days)
		filter.TimeMax = &timeMax

	case opts.SpecificDate != "":
		date, err := time.Parse("2006-01-02", opts.SpecificDate)
		if err != nil {
			return CalendarFilter{}, fmt.Errorf("%w: specific_date %q must be YYYY-MM-DD", ErrValidation, opts.SpecificDate)
		}
		filter.TimeMin = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
		timeMax := filter.TimeMin.AddDate(0, 0, 1)
		filter.TimeMax = &timeMax

	case opts.SpecificDay != "":
		target, ok := weekdays[strings.ToLower(strings.TrimSpace(opts.SpecificDay))]
		if !ok {
			return CalendarFilter{}, fmt.Errorf("%w: unknown weekday %q", ErrValidation, opts.SpecificDay)
		}
		// Next occurrence on or after now: zero days ahead when today matches.
		delta := (int(target) - int(now.Weekday()) + 7) % 7
		day := now.AddDate(0, 0, delta)
		filter.TimeMin = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
		timeMax := filter.TimeMin.AddDate(0, 0, 1)
		filter.TimeMax = &timeMax
	}

	if opts.TitleKeyword != "" {
		filter.TitleKeyword = strings.ToLower(opts.TitleKeyword)
	}

	if opts.SpecificTime != "" {
		timeRange, err := parseClockRange(opts.SpecificTime)
		if err != nil {
			return CalendarFilter{}, err
		}
		filter.ApproxTimeRange = timeRange
	}

	return filter, nil
}

// parseClockRange parses "H:MM-H:MM" or a single "H:MM"; the single form
// means an implicit one-hour window starting at that time.
func parseClockRange(s string) (*ClockRange, error) {
	if start, end, ok := strings.Cut(s, "-"); ok {
		startTime, err := parseClockTime(start)
		if err != nil {
			return nil, err
		}
		endTime, err := parseClockTime(end)
		if err != nil {
			return nil, err
		}
		return &ClockRange{Start: startTime, End: endTime}, nil
	}

	start, err := parseClockTime(s)
	if err != nil {
		return nil, err
	}
	return &ClockRange{
		Start: start,
		End:   ClockTime{Hour: start.Hour + 1, Minute: start.Minute},
	}, nil
}

func parseClockTime(s string) (ClockTime, error) {
	hourStr, minStr, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return ClockTime{}, fmt.Errorf("%w: specific_time %q must be H:MM", ErrValidation, s)
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return ClockTime{}, fmt.Errorf("%w: specific_time hour %q is not an integer", ErrValidation, hourStr)
	}
	minute, err := strconv.Atoi(minStr)
	if err != nil {
		return ClockTime{}, fmt.Errorf("%w: specific_time minute %q is not an integer", ErrValidation, minStr)
	}
	return ClockTime{Hour: hour, Minute: minute}, nil
}

// MatchSummary reports whether the event summary passes the keyword filter.
func (f CalendarFilter) MatchSummary(summary string) bool {
	if f.TitleKeyword == "" {
		return true
	}
	return strings.Contains(strings.ToLower(summary), f.TitleKeyword)
}

// MatchStart reports whether a concrete event start time-of-day passes the
// approximate time filter. The boundary is inclusive from the start,
// exclusive at the end hour, with an extra allowance exactly at the start
// hour regardless of the end bound. The asymmetry is intentional and kept as
// shipped; callers rely on the exact behavior.
func (f CalendarFilter) MatchStart(hour, minute int) bool {
	if f.ApproxTimeRange == nil {
		return true
	}
	r := *f.ApproxTimeRange
	if r.Start.Hour <= hour && hour < r.End.Hour {
		return true
	}
	return r.Start.Hour == hour && minute >= r.Start.Minute
}
