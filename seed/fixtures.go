package seed

import (
	"time"

	"arone/db"
	"arone/models"
	"arone/utils"
)

// Collections in seeding order. Bookings reference packages by title only,
// so the order is about readable reports, not referential integrity.
var seedOrder = []string{
	db.PackagesColl,
	db.GuidesColl,
	db.BookingsColl,
	db.ContactsColl,
	db.ReviewsColl,
}

func fixturesFor(coll string, now time.Time) []interface{} {
	switch coll {
	case db.PackagesColl:
		return packageFixtures(now)
	case db.GuidesColl:
		return guideFixtures(now)
	case db.BookingsColl:
		return bookingFixtures(now)
	case db.ContactsColl:
		return contactFixtures(now)
	case db.ReviewsColl:
		return reviewFixtures(now)
	}
	return nil
}

func packageFixtures(now time.Time) []interface{} {
	pkgs := []models.TourPackage{
		{
			Title:       "Kandy Cultural Escape",
			Description: "Temple of the Tooth, botanical gardens and a traditional dance show.",
			Location:    "Kandy",
			Days:        3,
			Price:       45000,
			Rating:      4.7,
			Hotels:      []string{"Earl's Regency", "Cinnamon Citadel"},
		},
		{
			Title:       "Ella Highlands Trek",
			Description: "Nine Arch Bridge, Little Adam's Peak and tea estate walks.",
			Location:    "Ella",
			Days:        4,
			Price:       62000,
			Rating:      4.9,
			Hotels:      []string{"98 Acres Resort"},
		},
		{
			Title:       "Southern Coast Getaway",
			Description: "Galle Fort, whale watching in Mirissa and Unawatuna beach.",
			Location:    "Galle",
			Days:        5,
			Price:       78000,
			Rating:      4.5,
			Hotels:      []string{"Jetwing Lighthouse", "Fortress Resort"},
		},
		{
			Title:       "Sigiriya & Safari",
			Description: "Lion Rock at sunrise followed by a Minneriya elephant safari.",
			Location:    "Sigiriya",
			Days:        2,
			Price:       38000,
			Rating:      4.8,
			Hotels:      []string{"Hotel Sigiriya"},
		},
	}

	docs := make([]interface{}, len(pkgs))
	for i, p := range pkgs {
		p.PackageID = "pkg" + utils.GenerateRandomDigitString(8)
		p.CreatedAt = now
		p.UpdatedAt = now
		docs[i] = p
	}
	return docs
}

func guideFixtures(now time.Time) []interface{} {
	guides := []models.Guide{
		{Name: "Nuwan Perera", Speciality: "Hill country treks", Languages: []string{"English", "Sinhala"}, Rating: 4.9, PerDay: 8500, Phone: "+94 77 123 4567"},
		{Name: "Tharindu Silva", Speciality: "Wildlife safaris", Languages: []string{"English", "German"}, Rating: 4.6, PerDay: 9000, Phone: "+94 71 234 5678"},
		{Name: "Ishara Fernando", Speciality: "Cultural triangle", Languages: []string{"English", "French", "Sinhala"}, Rating: 4.8, PerDay: 7800, Phone: "+94 76 345 6789"},
	}

	docs := make([]interface{}, len(guides))
	for i, g := range guides {
		g.GuideID = "gd" + utils.GenerateRandomDigitString(8)
		g.CreatedAt = now
		g.UpdatedAt = now
		docs[i] = g
	}
	return docs
}

func bookingFixtures(now time.Time) []interface{} {
	// Spread creation dates across recent months so the dashboard charts
	// have more than one bucket out of the box.
	bookings := []models.Booking{
		{CustomerName: "Amara Jay", PackageTitle: "Kandy Cultural Escape", TravelDate: now.AddDate(0, 1, 0).Format("2006-01-02"), Adults: 2, Children: 1, TotalAmount: 135000, Status: models.BookingConfirmed, CreatedAt: now},
		{CustomerName: "Liam Carter", PackageTitle: "Ella Highlands Trek", TravelDate: now.AddDate(0, 1, 12).Format("2006-01-02"), Adults: 2, Children: 0, TotalAmount: 124000, Status: models.BookingPending, CreatedAt: now},
		{CustomerName: "Sofia Meyer", PackageTitle: "Southern Coast Getaway", TravelDate: now.AddDate(0, 0, 20).Format("2006-01-02"), Adults: 4, Children: 2, TotalAmount: 312000, Status: models.BookingConfirmed, CreatedAt: now.AddDate(0, -1, 0)},
		{CustomerName: "Kenji Watanabe", PackageTitle: "Sigiriya & Safari", TravelDate: now.AddDate(0, -1, 5).Format("2006-01-02"), Adults: 1, Children: 0, TotalAmount: 38000, Status: models.BookingCompleted, CreatedAt: now.AddDate(0, -2, 0)},
		{CustomerName: "Priya Nair", PackageTitle: "Kandy Cultural Escape", TravelDate: now.AddDate(0, 0, 8).Format("2006-01-02"), Adults: 2, Children: 2, TotalAmount: 180000, Status: models.BookingCancelled, CreatedAt: now.AddDate(0, -1, -10)},
	}

	docs := make([]interface{}, len(bookings))
	for i, b := range bookings {
		b.BookingID = "BK" + utils.GenerateRandomDigitString(8)
		b.UpdatedAt = b.CreatedAt
		docs[i] = b
	}
	return docs
}

func contactFixtures(now time.Time) []interface{} {
	contacts := []models.Contact{
		{Name: "Hannah Lee", Email: "hannah@example.com", Subject: "Honeymoon package", Message: "Do you arrange customised honeymoon itineraries?", Status: models.ContactPending},
		{Name: "Marco Rossi", Email: "marco@example.com", Subject: "Group discount", Message: "We are a group of 12 — any discount for the coast tour?", Status: models.ContactPending},
		{Name: "Dilini Perera", Email: "dilini@example.com", Subject: "Airport pickup", Message: "Is airport pickup included in the Kandy package?", Status: models.ContactResolved},
	}

	docs := make([]interface{}, len(contacts))
	for i, c := range contacts {
		c.ContactID = utils.GetUUID()
		c.CreatedAt = now
		c.UpdatedAt = now
		docs[i] = c
	}
	return docs
}

func reviewFixtures(now time.Time) []interface{} {
	reviews := []models.Review{
		{Author: "Amara Jay", Rating: 5, Comment: "The Kandy trip was flawless — our guide knew every corner of the city."},
		{Author: "Kenji Watanabe", Rating: 4, Comment: "Sunrise at Sigiriya alone was worth it. Safari jeep was a bit crowded."},
		{Author: "Sofia Meyer", Rating: 5, Comment: "Saw three blue whales off Mirissa. Kids still talk about it."},
		{Author: "Liam Carter", Rating: 4, Comment: "Ella trek well organised, tea estate lunch was a highlight."},
	}

	docs := make([]interface{}, len(reviews))
	for i, r := range reviews {
		r.ReviewID = utils.GenerateRandomString(16)
		r.CreatedAt = now
		r.UpdatedAt = now
		docs[i] = r
	}
	return docs
}
