package assistant

import (
	"fmt"
	"time"
)

// localTimeLayout is the naive timestamp format accepted from callers, no
// zone designator.
const localTimeLayout = "2006-01-02T15:04:05"

// BuildEventBody converts the requested event into a UTC payload.
//
// Start/end are naive local timestamps in a fixed UTC-minus-offsetHours
// convention: conversion just adds offsetHours and stamps UTC. This is not
// timezone-aware math (no DST); the offset is configuration
// (google.event_utc_offset_hours).
//
// The Meet conference request id is derived from now's unix seconds, so two
// calls within the same second would collide. Known limitation.
func BuildEventBody(in EventInput, offsetHours int, now time.Time) (EventBody, error) {
	start, err := time.Parse(localTimeLayout, in.StartTimeLocal)
	if err != nil {
		return EventBody{}, fmt.Errorf("%w: start_time_str %q must be %s", ErrValidation, in.StartTimeLocal, localTimeLayout)
	}
	start = start.Add(time.Duration(offsetHours) * time.Hour).UTC()

	var end time.Time
	if in.EndTimeLocal != "" {
		end, err = time.Parse(localTimeLayout, in.EndTimeLocal)
		if err != nil {
			return EventBody{}, fmt.Errorf("%w: end_time_str %q must be %s", ErrValidation, in.EndTimeLocal, localTimeLayout)
		}
		end = end.Add(time.Duration(offsetHours) * time.Hour).UTC()
	} else {
		end = start.Add(time.Hour)
	}

	body := EventBody{
		Summary: in.Summary,
		Start:   start,
		End:     end,
		Guests:  in.Guests,
	}

	if in.AddMeetLink {
		body.ConferenceRequestID = fmt.Sprintf("meet-%d", now.Unix())
	}

	return body, nil
}
