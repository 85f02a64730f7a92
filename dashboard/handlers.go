package dashboard

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"arone/models"
	"arone/rdx"
	"arone/store"
	"arone/utils"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/sync/errgroup"
)

// CacheKey holds the cached summary JSON. The seeder deletes it after a
// successful run so the next load reflects the new records.
const CacheKey = "dashboard:summary"

const cacheTTL = 30 * time.Second

// GetDashboard loads all five collections concurrently, waits for every
// read, and responds with the computed summary. A single failed read fails
// the whole load; there is no partial dashboard.
func GetDashboard(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if cached, err := rdx.RdxGet(CacheKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(cached))
		return
	}

	var (
		users    []models.User
		bookings []models.Booking
		packages []models.TourPackage
		guides   []models.Guide
		contacts []models.Contact
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) { users, err = store.GetAllUsers(ctx); return })
	g.Go(func() (err error) { bookings, err = store.GetAllBookings(ctx); return })
	g.Go(func() (err error) { packages, err = store.GetAllPackages(ctx); return })
	g.Go(func() (err error) { guides, err = store.GetAllGuides(ctx); return })
	g.Go(func() (err error) { contacts, err = store.GetAllContacts(ctx); return })

	if err := g.Wait(); err != nil {
		log.Printf("dashboard load failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load dashboard data")
		return
	}

	summary := ComputeSummary(users, bookings, packages, guides, contacts)

	if blob, err := json.Marshal(summary); err == nil {
		if err := rdx.SetWithExpiry(CacheKey, string(blob), cacheTTL); err != nil {
			log.Printf("dashboard cache write failed: %v", err)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, summary)
}
