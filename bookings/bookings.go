package bookings

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"arone/db"
	"arone/globals"
	"arone/models"
	"arone/mq"
	"arone/store"
	"arone/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func genID() string {
	return "BK" + utils.GenerateRandomDigitString(8)
}

var validStatuses = map[string]bool{
	models.BookingPending:   true,
	models.BookingConfirmed: true,
	models.BookingCompleted: true,
	models.BookingCancelled: true,
}

// CreateBooking records a trip booking for the authenticated user. The
// package is looked up so the stored title and amount cannot be spoofed by
// the client.
func CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		PackageID    string `json:"packageId"`
		CustomerName string `json:"customerName"`
		TravelDate   string `json:"travelDate"`
		Adults       int    `json:"adults"`
		Children     int    `json:"children"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if input.PackageID == "" || input.CustomerName == "" || input.TravelDate == "" {
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}
	if input.Adults < 1 || input.Children < 0 {
		http.Error(w, "Invalid traveller counts", http.StatusBadRequest)
		return
	}
	if _, err := time.Parse("2006-01-02", input.TravelDate); err != nil {
		http.Error(w, "Invalid travel date", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var pkg models.TourPackage
	if err := db.PackagesCollection.FindOne(ctx, bson.M{"packageId": input.PackageID}).Decode(&pkg); err != nil {
		if err == mongo.ErrNoDocuments {
			http.Error(w, "Package not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	booking := models.Booking{
		BookingID:    genID(),
		UserID:       userID,
		CustomerName: input.CustomerName,
		PackageID:    pkg.PackageID,
		PackageTitle: pkg.Title,
		TravelDate:   input.TravelDate,
		Adults:       input.Adults,
		Children:     input.Children,
		TotalAmount:  pkg.Price * float64(input.Adults+input.Children),
		Status:       models.BookingPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := db.BookingsCollection.InsertOne(ctx, booking); err != nil {
		http.Error(w, "Failed to create booking", http.StatusInternalServerError)
		return
	}

	go mq.Emit(globals.Ctx, "booking-created", models.Index{EntityType: "booking", EntityId: booking.BookingID, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"booking": booking})
}

// GetMyBookings lists the authenticated user's bookings, newest first.
func GetMyBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	bookings, err := store.GetBookingsForUser(r.Context(), userID)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"bookings": bookings})
}

// GetAllBookings is the admin listing over the full collection.
func GetAllBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	bookings, err := store.GetAllBookings(r.Context())
	if err != nil {
		log.Printf("Failed to list bookings: %v", err)
		http.Error(w, "Failed to fetch bookings", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"bookings": bookings})
}

// UpdateBookingStatus sets the booking status (admin only).
func UpdateBookingStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID := ps.ByName("id")

	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || !validStatuses[input.Status] {
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.BookingsCollection.UpdateOne(
		ctx,
		bson.M{"bookingId": bookingID},
		bson.M{"$set": bson.M{"status": input.Status, "updatedAt": time.Now()}},
	)
	if err != nil {
		http.Error(w, "Failed to update booking", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}

	go mq.Emit(globals.Ctx, "booking-updated", models.Index{EntityType: "booking", EntityId: bookingID, Method: "PUT"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "status": input.Status})
}

// DeleteBooking removes a booking (admin only).
func DeleteBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.BookingsCollection.DeleteOne(ctx, bson.M{"bookingId": bookingID})
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
