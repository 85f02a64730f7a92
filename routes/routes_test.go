package routes

import (
	"testing"

	"arone/ratelim"

	"github.com/julienschmidt/httprouter"
)

func TestReviewRoutesRegistered(t *testing.T) {
	router := httprouter.New()
	AddReviewsRoutes(router, ratelim.NewRateLimiter())

	cases := []struct{ method, path string }{
		{"GET", "/api/reviews/pkg12345678"},
		{"POST", "/api/reviews/pkg12345678"},
		{"GET", "/api/admin/reviews"},
		{"DELETE", "/api/admin/reviews/r1"},
	}
	for _, tc := range cases {
		if h, _, _ := router.Lookup(tc.method, tc.path); h == nil {
			t.Errorf("%s %s not registered", tc.method, tc.path)
		}
	}
}

func TestBookingRoutesRegistered(t *testing.T) {
	router := httprouter.New()
	AddBookingRoutes(router, ratelim.NewRateLimiter())

	cases := []struct{ method, path string }{
		{"POST", "/api/bookings"},
		{"GET", "/api/bookings/mine"},
		{"GET", "/api/bookings/voucher/BK12345678"},
		{"GET", "/api/admin/bookings"},
	}
	for _, tc := range cases {
		if h, _, _ := router.Lookup(tc.method, tc.path); h == nil {
			t.Errorf("%s %s not registered", tc.method, tc.path)
		}
	}
}
