package booking

import "time"

// FallbackRevenue is the flat per-job estimate, in rupiah, used for completed
// bookings created before price tracking existed. Kept for backward-compatible
// revenue figures.
const FallbackRevenue int64 = 50000

// DashboardStats holds the derived counters shown on the admin dashboard.
// Never persisted; recomputed on demand from the current booking set.
type DashboardStats struct {
	TotalBookings   int64 `json:"total_bookings"`
	PendingBookings int64 `json:"pending_bookings"`
	CompletedToday  int64 `json:"completed_today"`
	RevenueToday    int64 `json:"revenue_today"`
	RevenueWeek     int64 `json:"revenue_week"`
	RevenueMonth    int64 `json:"revenue_month"`
}

// ComputeStats derives dashboard counters from the given bookings at the
// reference instant. Pure function, no I/O.
//
// Revenue for a window sums the recorded price of completed bookings created
// inside the window, substituting FallbackRevenue when no price was ever set.
// The week and month windows trail 7 and 30 days from the start of the
// reference day.
func ComputeStats(bookings []*Booking, now time.Time) DashboardStats {
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := todayStart.AddDate(0, 0, -7)
	monthAgo := todayStart.AddDate(0, 0, -30)

	var stats DashboardStats
	stats.TotalBookings = int64(len(bookings))

	for _, b := range bookings {
		if b.Status() == StatusPending {
			stats.PendingBookings++
		}
		if b.Status() != StatusCompleted {
			continue
		}

		revenue := FallbackRevenue
		if b.Price() != nil {
			revenue = *b.Price()
		}

		created := b.CreatedAt()
		if !created.Before(todayStart) {
			stats.CompletedToday++
			stats.RevenueToday += revenue
		}
		if !created.Before(weekAgo) {
			stats.RevenueWeek += revenue
		}
		if !created.Before(monthAgo) {
			stats.RevenueMonth += revenue
		}
	}

	return stats
}
