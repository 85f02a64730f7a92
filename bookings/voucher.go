package bookings

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"time"

	"arone/db"
	"arone/globals"
	"arone/models"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

func hmacSecret() []byte {
	if v := os.Getenv("VOUCHER_SECRET"); v != "" {
		return []byte(v)
	}
	return []byte("arone-voucher-secret")
}

// SignVoucher returns the base64 HMAC signature for a booking id, the
// payload embedded in the voucher QR code for offline verification.
func SignVoucher(bookingID string) string {
	h := hmac.New(sha256.New, hmacSecret())
	h.Write([]byte(bookingID))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// VerifyVoucher checks a signature produced by SignVoucher.
func VerifyVoucher(bookingID, signature string) bool {
	return hmac.Equal([]byte(SignVoucher(bookingID)), []byte(signature))
}

// PrintVoucher renders a PDF voucher with a signed QR code for a confirmed
// booking owned by the requesting user.
func PrintVoucher(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID := ps.ByName("id")

	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := db.BookingsCollection.FindOne(ctx, bson.M{"bookingId": bookingID, "userId": userID}).Decode(&booking)
	if err != nil {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}
	if booking.Status != models.BookingConfirmed {
		http.Error(w, "Voucher available only for confirmed bookings", http.StatusConflict)
		return
	}

	qrPayload := fmt.Sprintf("%s|%s", booking.BookingID, SignVoucher(booking.BookingID))
	qrPNG, err := qrcode.Encode(qrPayload, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Arone Tours Booking Voucher")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Booking: %s", booking.BookingID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Name: %s", booking.CustomerName))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Package: %s", booking.PackageTitle))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Travel date: %s", booking.TravelDate))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Travellers: %d adults, %d children", booking.Adults, booking.Children))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Total: LKR %.2f", booking.TotalAmount))
	pdf.Ln(12)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=voucher-"+booking.BookingID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
