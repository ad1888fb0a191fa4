package attendance

import (
	"testing"
	"time"

	"github.com/attendease/attendease-backend-go/internal/domain/attendance"
	"github.com/attendease/attendease-backend-go/internal/domain/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ist = time.FixedZone("IST", 5*3600+1800)

func testPolicy(t *testing.T) Policy {
	t.Helper()
	policy, err := PolicyFromSettings(settings.WorkPolicy{
		StandardWorkMinutes: 480,
		LateThreshold:       "09:30",
		HalfDayBelowMinutes: 240,
		Timezone:            "Asia/Kolkata",
	})
	require.NoError(t, err)
	return policy
}

func at(t *testing.T, clock string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04", "2024-03-11 "+clock, ist)
	require.NoError(t, err)
	return ts.UTC()
}

func checkIn(t *testing.T, clock string) attendance.Event {
	t.Helper()
	return attendance.Event{Kind: attendance.KindCheckIn, Timestamp: at(t, clock)}
}

func checkOut(t *testing.T, clock string) attendance.Event {
	t.Helper()
	return attendance.Event{Kind: attendance.KindCheckOut, Timestamp: at(t, clock)}
}

func TestReconstructEmpty(t *testing.T) {
	totals := Reconstruct(nil, time.Now())

	assert.Zero(t, totals.WorkMinutes)
	assert.Zero(t, totals.BreakMinutes)
	assert.Nil(t, totals.FirstCheckIn)
	assert.Nil(t, totals.LastCheckOut)
	assert.False(t, totals.OpenCheckIn)
}

func TestReconstructSingleClosedSession(t *testing.T) {
	events := []attendance.Event{
		checkIn(t, "09:00"),
		checkOut(t, "17:30"),
	}

	totals := Reconstruct(events, at(t, "23:00"))

	assert.Equal(t, 510, totals.WorkMinutes)
	assert.Equal(t, 0, totals.BreakMinutes)
	require.NotNil(t, totals.FirstCheckIn)
	assert.Equal(t, at(t, "09:00"), *totals.FirstCheckIn)
	require.NotNil(t, totals.LastCheckOut)
	assert.Equal(t, at(t, "17:30"), *totals.LastCheckOut)
	assert.False(t, totals.OpenCheckIn)
}

func TestReconstructWorkAndBreaks(t *testing.T) {
	// 09:00-12:00 work, 12:00-13:00 break, 13:00-18:00 work
	events := []attendance.Event{
		checkIn(t, "09:00"),
		checkOut(t, "12:00"),
		checkIn(t, "13:00"),
		checkOut(t, "18:00"),
	}

	totals := Reconstruct(events, at(t, "23:00"))

	assert.Equal(t, 480, totals.WorkMinutes)
	assert.Equal(t, 60, totals.BreakMinutes)
}

func TestReconstructUnorderedInput(t *testing.T) {
	events := []attendance.Event{
		checkOut(t, "18:00"),
		checkIn(t, "13:00"),
		checkOut(t, "12:00"),
		checkIn(t, "09:00"),
	}

	totals := Reconstruct(events, at(t, "23:00"))

	assert.Equal(t, 480, totals.WorkMinutes)
	assert.Equal(t, 60, totals.BreakMinutes)
	assert.Equal(t, at(t, "09:00"), *totals.FirstCheckIn)
	assert.Equal(t, at(t, "18:00"), *totals.LastCheckOut)
}

func TestReconstructOpenSessionAccruesToNow(t *testing.T) {
	events := []attendance.Event{checkIn(t, "09:00")}

	totals := Reconstruct(events, at(t, "11:30"))

	assert.Equal(t, 150, totals.WorkMinutes)
	assert.True(t, totals.OpenCheckIn)
	assert.Nil(t, totals.LastCheckOut)
}

func TestReconstructOpenSessionMonotone(t *testing.T) {
	events := []attendance.Event{checkIn(t, "09:00")}

	earlier := Reconstruct(events, at(t, "10:00"))
	later := Reconstruct(events, at(t, "10:45"))

	assert.GreaterOrEqual(t, later.WorkMinutes, earlier.WorkMinutes)
	assert.Equal(t, 45, later.WorkMinutes-earlier.WorkMinutes)
}

func TestReconstructClosedDayIgnoresNow(t *testing.T) {
	events := []attendance.Event{
		checkIn(t, "09:00"),
		checkOut(t, "17:00"),
	}

	first := Reconstruct(events, at(t, "17:05"))
	second := Reconstruct(events, at(t, "23:59"))

	assert.Equal(t, first, second)
}

func TestReconstructOrphanCheckOutDropped(t *testing.T) {
	events := []attendance.Event{
		checkOut(t, "08:00"), // before any check-in, contributes nothing
		checkIn(t, "09:00"),
		checkOut(t, "17:00"),
	}

	totals := Reconstruct(events, at(t, "23:00"))

	assert.Equal(t, 480, totals.WorkMinutes)
	assert.Equal(t, 0, totals.BreakMinutes)
	assert.Equal(t, at(t, "09:00"), *totals.FirstCheckIn)
	assert.Equal(t, at(t, "17:00"), *totals.LastCheckOut)
}

func TestReconstructConsecutiveCheckInsOverwriteCursor(t *testing.T) {
	// The earlier open check-in is lost, only 10:00-17:00 counts.
	events := []attendance.Event{
		checkIn(t, "09:00"),
		checkIn(t, "10:00"),
		checkOut(t, "17:00"),
	}

	totals := Reconstruct(events, at(t, "23:00"))

	assert.Equal(t, 420, totals.WorkMinutes)
	assert.Equal(t, at(t, "09:00"), *totals.FirstCheckIn)
}

func TestReconstructClampsNegativeDurations(t *testing.T) {
	// now before the open check-in (clock skew) must not go negative
	events := []attendance.Event{checkIn(t, "09:00")}

	totals := Reconstruct(events, at(t, "08:00"))

	assert.Equal(t, 0, totals.WorkMinutes)
	assert.True(t, totals.OpenCheckIn)
}

func TestReconstructFloorsPartialMinutes(t *testing.T) {
	start := at(t, "09:00")
	end := start.Add(59*time.Minute + 59*time.Second)
	events := []attendance.Event{
		{Kind: attendance.KindCheckIn, Timestamp: start},
		{Kind: attendance.KindCheckOut, Timestamp: end},
	}

	totals := Reconstruct(events, end.Add(time.Hour))

	assert.Equal(t, 59, totals.WorkMinutes)
}

func TestClassifyDefaultsToPresent(t *testing.T) {
	status, overtime := Classify(0, nil, testPolicy(t))

	assert.Equal(t, attendance.StatusPresent, status)
	assert.Equal(t, 0, overtime)
}

func TestClassifyOnTimeWithOvertime(t *testing.T) {
	firstIn := at(t, "08:00")

	status, overtime := Classify(600, &firstIn, testPolicy(t))

	assert.Equal(t, attendance.StatusPresent, status)
	assert.Equal(t, 120, overtime)
}

func TestClassifyLateArrival(t *testing.T) {
	firstIn := at(t, "10:00")

	status, overtime := Classify(600, &firstIn, testPolicy(t))

	assert.Equal(t, attendance.StatusLate, status)
	assert.Equal(t, 120, overtime)
}

func TestClassifyThresholdIsExclusive(t *testing.T) {
	// Exactly 09:30 is not late: the rule is strictly later than.
	firstIn := at(t, "09:30")

	status, _ := Classify(480, &firstIn, testPolicy(t))

	assert.Equal(t, attendance.StatusPresent, status)
}

func TestClassifyHalfDayOverridesLate(t *testing.T) {
	// 10:15 is past the threshold, but under four hours of work wins.
	firstIn := at(t, "10:15")

	status, overtime := Classify(120, &firstIn, testPolicy(t))

	assert.Equal(t, attendance.StatusHalfDay, status)
	assert.Equal(t, 0, overtime)
}

func TestClassifyZeroWorkIsNotHalfDay(t *testing.T) {
	// The half-day rule only applies to strictly positive work time.
	firstIn := at(t, "10:00")

	status, _ := Classify(0, &firstIn, testPolicy(t))

	assert.Equal(t, attendance.StatusLate, status)
}

func TestClassifyEvaluatesInReferenceTimezone(t *testing.T) {
	// 04:30 UTC is exactly 10:00 IST, late regardless of the UTC clock.
	firstIn := time.Date(2024, 3, 11, 4, 30, 0, 0, time.UTC)

	status, _ := Classify(480, &firstIn, testPolicy(t))

	assert.Equal(t, attendance.StatusLate, status)
}

func TestPolicyFromSettingsRejectsBadThreshold(t *testing.T) {
	_, err := PolicyFromSettings(settings.WorkPolicy{
		StandardWorkMinutes: 480,
		LateThreshold:       "25:99",
		HalfDayBelowMinutes: 240,
		Timezone:            "Asia/Kolkata",
	})
	assert.Error(t, err)
}
