package models

// Offer is a promotional coupon managed from the admin panel. Offers live
// as one JSON blob in the key-value store, not in a Mongo collection, so
// ids only need to be unique within the stored list.
type Offer struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Discount   string `json:"discount"`
	ValidUntil string `json:"validUntil"` // YYYY-MM-DD
	Code       string `json:"code"`
	Active     bool   `json:"active"`
}
