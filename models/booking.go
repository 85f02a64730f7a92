package models

import "time"

// Booking statuses. Unknown values are still displayable; the dashboard
// and list views fall back to a neutral treatment instead of erroring.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

type Booking struct {
	BookingID    string    `json:"bookingId" bson:"bookingId"`
	UserID       string    `json:"userId" bson:"userId"`
	CustomerName string    `json:"customerName" bson:"customerName"`
	PackageID    string    `json:"packageId" bson:"packageId"`
	PackageTitle string    `json:"packageTitle" bson:"packageTitle"`
	TravelDate   string    `json:"travelDate" bson:"travelDate"` // YYYY-MM-DD
	Adults       int       `json:"adults" bson:"adults"`
	Children     int       `json:"children" bson:"children"`
	TotalAmount  float64   `json:"totalAmount" bson:"totalAmount"`
	Status       string    `json:"status" bson:"status"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}
