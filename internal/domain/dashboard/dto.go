package dashboard

// TodayOverview is the admin dashboard headcount for the current day in the
// reference timezone.
type TodayOverview struct {
	Date         string `json:"date"`
	TotalActive  int64  `json:"total_active"`
	Present      int64  `json:"present"`
	Late         int64  `json:"late"`
	HalfDay      int64  `json:"half_day"`
	Absent       int64  `json:"absent"`
	OnLeave      int64  `json:"on_leave"`
	CheckedInNow int64  `json:"checked_in_now"`
}
