package dashboard

import (
	"math"
	"testing"
	"time"

	"arone/models"
)

func TestComputeSummaryEmpty(t *testing.T) {
	s := ComputeSummary(nil, nil, nil, nil, nil)

	if s.TotalUsers != 0 || s.TotalBookings != 0 || s.TotalPackages != 0 || s.TotalGuides != 0 {
		t.Errorf("Expected zero totals, got %+v", s)
	}
	if s.PendingContacts != 0 || s.TotalRevenue != 0 {
		t.Errorf("Expected zero pending/revenue, got %+v", s)
	}
	if len(s.RecentBookings) != 0 {
		t.Errorf("Expected no recent bookings, got %d", len(s.RecentBookings))
	}
	if len(s.BookingsByMonth) != 0 || len(s.BookingsByStatus) != 0 {
		t.Errorf("Expected empty series, got %+v / %+v", s.BookingsByMonth, s.BookingsByStatus)
	}
}

func TestComputeSummaryRevenue(t *testing.T) {
	bookings := []models.Booking{
		{TotalAmount: 100},
		{TotalAmount: 250.5},
		{TotalAmount: -40},        // malformed, contributes 0
		{TotalAmount: math.NaN()}, // malformed, contributes 0
		{},                        // absent amount
	}

	s := ComputeSummary(nil, bookings, nil, nil, nil)
	if s.TotalRevenue != 350.5 {
		t.Errorf("Expected revenue 350.5, got %v", s.TotalRevenue)
	}
	if s.TotalBookings != 5 {
		t.Errorf("Expected 5 bookings, got %d", s.TotalBookings)
	}
}

func TestComputeSummaryPendingContacts(t *testing.T) {
	contacts := []models.Contact{
		{Status: models.ContactPending},
		{Status: models.ContactResolved},
		{Status: models.ContactPending},
	}

	s := ComputeSummary(nil, nil, nil, nil, contacts)
	if s.PendingContacts != 2 {
		t.Errorf("Expected 2 pending contacts, got %d", s.PendingContacts)
	}
}

func TestBookingsByStatusFirstSeenOrder(t *testing.T) {
	bookings := []models.Booking{
		{Status: "confirmed"},
		{Status: "pending"},
		{Status: "confirmed"},
		{Status: "completed"},
	}

	s := ComputeSummary(nil, bookings, nil, nil, nil)

	want := []SeriesPoint{
		{Label: "confirmed", Count: 2},
		{Label: "pending", Count: 1},
		{Label: "completed", Count: 1},
	}
	if len(s.BookingsByStatus) != len(want) {
		t.Fatalf("Expected %d status buckets, got %d", len(want), len(s.BookingsByStatus))
	}
	for i, p := range want {
		if s.BookingsByStatus[i] != p {
			t.Errorf("Bucket %d: expected %+v, got %+v", i, p, s.BookingsByStatus[i])
		}
	}
}

func TestBookingsByStatusDefaultsPending(t *testing.T) {
	bookings := []models.Booking{{Status: ""}, {Status: ""}}

	s := ComputeSummary(nil, bookings, nil, nil, nil)
	if len(s.BookingsByStatus) != 1 || s.BookingsByStatus[0].Label != "pending" || s.BookingsByStatus[0].Count != 2 {
		t.Errorf("Expected single pending bucket with count 2, got %+v", s.BookingsByStatus)
	}
}

func TestBookingsByMonthGrouping(t *testing.T) {
	jan15 := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	jan20 := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)
	feb02 := time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC)

	bookings := []models.Booking{
		{CreatedAt: jan15},
		{CreatedAt: jan20},
		{CreatedAt: feb02},
	}

	s := ComputeSummary(nil, bookings, nil, nil, nil)

	if len(s.BookingsByMonth) != 2 {
		t.Fatalf("Expected 2 month buckets, got %+v", s.BookingsByMonth)
	}
	if s.BookingsByMonth[0].Label != "1/2025" || s.BookingsByMonth[0].Count != 2 {
		t.Errorf("Expected 1/2025 with count 2, got %+v", s.BookingsByMonth[0])
	}
	if s.BookingsByMonth[1].Label != "2/2025" || s.BookingsByMonth[1].Count != 1 {
		t.Errorf("Expected 2/2025 with count 1, got %+v", s.BookingsByMonth[1])
	}
}

func TestBookingsByMonthMissingTimestamp(t *testing.T) {
	bookings := []models.Booking{{}} // zero CreatedAt

	s := ComputeSummary(nil, bookings, nil, nil, nil)
	if len(s.BookingsByMonth) != 1 {
		t.Fatalf("Expected one bucket for missing timestamp, got %+v", s.BookingsByMonth)
	}

	now := time.Now()
	want := monthKey(models.Booking{CreatedAt: now})
	if s.BookingsByMonth[0].Label != want {
		t.Errorf("Expected current-month bucket %s, got %s", want, s.BookingsByMonth[0].Label)
	}
}

func TestRecentBookingsSortedAndBounded(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	var bookings []models.Booking
	for i := 0; i < 8; i++ {
		bookings = append(bookings, models.Booking{
			BookingID: string(rune('a' + i)),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}

	s := ComputeSummary(nil, bookings, nil, nil, nil)

	if len(s.RecentBookings) != 5 {
		t.Fatalf("Expected 5 recent bookings, got %d", len(s.RecentBookings))
	}
	// Engine sorts internally; input was oldest-first, so newest must lead.
	if s.RecentBookings[0].BookingID != "h" {
		t.Errorf("Expected newest booking first, got %s", s.RecentBookings[0].BookingID)
	}
	for i := 1; i < len(s.RecentBookings); i++ {
		if s.RecentBookings[i].CreatedAt.After(s.RecentBookings[i-1].CreatedAt) {
			t.Errorf("Recent bookings not in descending order at %d", i)
		}
	}

	// Inputs must not be mutated.
	if bookings[0].BookingID != "a" {
		t.Error("ComputeSummary mutated its input")
	}
}
