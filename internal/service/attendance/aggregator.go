package attendance

import (
	"fmt"
	"sort"
	"time"

	"github.com/attendease/attendease-backend-go/internal/domain/attendance"
	"github.com/attendease/attendease-backend-go/internal/domain/settings"
)

// Policy is the resolved work policy used by the classifier: the late
// threshold is pre-parsed and the reference timezone pre-loaded so the
// aggregation functions stay pure and cheap.
type Policy struct {
	StandardWorkMinutes  int
	LateThresholdMinutes int // minutes since midnight in Location
	HalfDayBelowMinutes  int
	Location             *time.Location
}

// PolicyFromSettings resolves a stored WorkPolicy into a Policy.
func PolicyFromSettings(wp settings.WorkPolicy) (Policy, error) {
	threshold, err := time.Parse("15:04", wp.LateThreshold)
	if err != nil {
		return Policy{}, fmt.Errorf("invalid late threshold %q: %w", wp.LateThreshold, err)
	}

	loc, err := time.LoadLocation(wp.Timezone)
	if err != nil {
		return Policy{}, fmt.Errorf("invalid timezone %q: %w", wp.Timezone, err)
	}

	return Policy{
		StandardWorkMinutes:  wp.StandardWorkMinutes,
		LateThresholdMinutes: threshold.Hour()*60 + threshold.Minute(),
		HalfDayBelowMinutes:  wp.HalfDayBelowMinutes,
		Location:             loc,
	}, nil
}

// Totals is the result of reconstructing one employee's day from its events.
type Totals struct {
	WorkMinutes  int
	BreakMinutes int
	FirstCheckIn *time.Time
	LastCheckOut *time.Time
	OpenCheckIn  bool // a trailing check-in was still open at `now`
}

// Reconstruct rebuilds work and break intervals from an unordered event
// list. The walk keeps at most one open cursor: a CHECK_IN closes an open
// break, a CHECK_OUT closes an open work span. Malformed sequences are
// tolerated rather than rejected: an orphan CHECK_OUT contributes nothing,
// and a repeated CHECK_IN overwrites the open cursor, losing the earlier
// span. If the final CHECK_IN is never closed, work time accrues up to
// `now`, so the result is live and callers must not cache it across ticks.
//
// `now` has no effect on a fully closed day, which keeps recomputation
// idempotent.
func Reconstruct(events []attendance.Event, now time.Time) Totals {
	sorted := make([]attendance.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	var totals Totals
	var openCheckIn, openCheckOut *time.Time

	for i := range sorted {
		ev := sorted[i]
		switch ev.Kind {
		case attendance.KindCheckIn:
			if openCheckOut != nil {
				totals.BreakMinutes += flooredMinutes(ev.Timestamp.Sub(*openCheckOut))
			}
			ts := ev.Timestamp
			openCheckIn = &ts
			openCheckOut = nil
			if totals.FirstCheckIn == nil {
				totals.FirstCheckIn = &ts
			}
		case attendance.KindCheckOut:
			if openCheckIn != nil {
				totals.WorkMinutes += flooredMinutes(ev.Timestamp.Sub(*openCheckIn))
				ts := ev.Timestamp
				openCheckOut = &ts
				openCheckIn = nil
			}
			// A check-out with no open check-in is dropped on purpose:
			// duplicate or out-of-order events must not sink the whole day.
			ts := ev.Timestamp
			totals.LastCheckOut = &ts
		}
	}

	if openCheckIn != nil {
		totals.WorkMinutes += flooredMinutes(now.Sub(*openCheckIn))
		totals.OpenCheckIn = true
	}

	return totals
}

// Classify derives the day's status and overtime from reconstructed totals.
// Rule order matters: lateness is evaluated first, then the half-day rule
// may overwrite it. HALF_DAY winning over LATE is intentional.
func Classify(workMinutes int, firstCheckIn *time.Time, policy Policy) (attendance.Status, int) {
	overtime := workMinutes - policy.StandardWorkMinutes
	if overtime < 0 {
		overtime = 0
	}

	status := attendance.StatusPresent

	if firstCheckIn != nil {
		local := firstCheckIn.In(policy.Location)
		if local.Hour()*60+local.Minute() > policy.LateThresholdMinutes {
			status = attendance.StatusLate
		}
	}

	if workMinutes > 0 && workMinutes < policy.HalfDayBelowMinutes {
		status = attendance.StatusHalfDay
	}

	return status, overtime
}

// flooredMinutes converts a duration to whole minutes, clamping negatives
// to zero: clock skew must never produce negative attendance time.
func flooredMinutes(d time.Duration) int {
	if d < 0 {
		return 0
	}
	return int(d / time.Minute)
}
