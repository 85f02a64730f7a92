package dashboard

import (
	"fmt"
	"math"
	"sort"
	"time"

	"arone/models"
)

// Summary is the derived view model behind the admin dashboard. It is
// recomputed from scratch on every load and never persisted.
type Summary struct {
	TotalUsers       int              `json:"totalUsers"`
	TotalBookings    int              `json:"totalBookings"`
	TotalPackages    int              `json:"totalPackages"`
	TotalGuides      int              `json:"totalGuides"`
	PendingContacts  int              `json:"pendingContacts"`
	TotalRevenue     float64          `json:"totalRevenue"`
	RecentBookings   []models.Booking `json:"recentBookings"`
	BookingsByMonth  []SeriesPoint    `json:"bookingsByMonth"`
	BookingsByStatus []SeriesPoint    `json:"bookingsByStatus"`
}

// SeriesPoint is one chart bucket. Buckets keep the order their key was
// first encountered in the input; the charts preserve that order.
type SeriesPoint struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

const recentLimit = 5

// ComputeSummary derives the dashboard summary from point-in-time copies of
// the five collections. Pure: inputs are not mutated, malformed records are
// normalized instead of rejected, and empty inputs produce a zero summary.
func ComputeSummary(users []models.User, bookings []models.Booking, packages []models.TourPackage, guides []models.Guide, contacts []models.Contact) Summary {
	s := Summary{
		TotalUsers:       len(users),
		TotalBookings:    len(bookings),
		TotalPackages:    len(packages),
		TotalGuides:      len(guides),
		RecentBookings:   []models.Booking{},
		BookingsByMonth:  []SeriesPoint{},
		BookingsByStatus: []SeriesPoint{},
	}

	for _, c := range contacts {
		if c.Status == models.ContactPending {
			s.PendingContacts++
		}
	}

	for _, b := range bookings {
		s.TotalRevenue += safeAmount(b.TotalAmount)
	}

	// Sort our own copy newest-first rather than trusting the caller's
	// ordering; the gateway happens to sort, but the summary must not
	// depend on it.
	recent := make([]models.Booking, len(bookings))
	copy(recent, bookings)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}
	s.RecentBookings = recent

	s.BookingsByMonth = groupBookings(bookings, monthKey)
	s.BookingsByStatus = groupBookings(bookings, statusKey)

	return s
}

// safeAmount treats absent or malformed amounts as zero and never lets a
// negative entry reduce the total.
func safeAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func monthKey(b models.Booking) string {
	t := b.CreatedAt
	if t.IsZero() {
		// missing timestamp: bucket under the current month rather than
		// failing the whole summary
		t = time.Now()
	}
	return fmt.Sprintf("%d/%d", int(t.Month()), t.Year())
}

func statusKey(b models.Booking) string {
	if b.Status == "" {
		return models.BookingPending
	}
	return b.Status
}

func groupBookings(bookings []models.Booking, key func(models.Booking) string) []SeriesPoint {
	counts := make(map[string]int)
	order := []string{}
	for _, b := range bookings {
		k := key(b)
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	points := make([]SeriesPoint, 0, len(order))
	for _, k := range order {
		points = append(points, SeriesPoint{Label: k, Count: counts[k]})
	}
	return points
}
