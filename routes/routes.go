package routes

import (
	"net/http"

	"arone/access"
	"arone/admin"
	"arone/auth"
	"arone/bookings"
	"arone/contacts"
	"arone/dashboard"
	"arone/guides"
	"arone/middleware"
	"arone/offers"
	"arone/packages"
	"arone/ratelim"
	"arone/reviews"
	"arone/seed"
	"arone/settings"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/packagepic/*filepath", http.Dir("static/packagepic"))
	router.ServeFiles("/static/guidepic/*filepath", http.Dir("static/guidepic"))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/admin/login", rl.Limit(auth.AdminLogin))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", rl.Limit(middleware.Authenticate(auth.RefreshToken)))
}

func AddPackageRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/packages", rl.Limit(packages.GetPackages))
	router.GET("/api/packages/:id", rl.Limit(packages.GetPackage))
	router.GET("/api/packages/:id/gallery", rl.Limit(packages.GetGallery))

	router.POST("/api/admin/packages", middleware.Authenticate(access.RequireAdmin(packages.CreatePackage)))
	router.PUT("/api/admin/packages/:id", middleware.Authenticate(access.RequireAdmin(packages.EditPackage)))
	router.DELETE("/api/admin/packages/:id", middleware.Authenticate(access.RequireAdmin(packages.DeletePackage)))
	router.POST("/api/admin/packages/:id/gallery", middleware.Authenticate(access.RequireAdmin(packages.UploadGalleryImage)))
}

func AddGuideRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/guides", rl.Limit(guides.GetGuides))
	router.GET("/api/guides/:id", rl.Limit(guides.GetGuide))

	router.POST("/api/admin/guides", middleware.Authenticate(access.RequireAdmin(guides.CreateGuide)))
	router.PUT("/api/admin/guides/:id", middleware.Authenticate(access.RequireAdmin(guides.EditGuide)))
	router.DELETE("/api/admin/guides/:id", middleware.Authenticate(access.RequireAdmin(guides.DeleteGuide)))
}

func AddBookingRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/bookings", rl.Limit(middleware.Authenticate(bookings.CreateBooking)))
	router.GET("/api/bookings/mine", middleware.Authenticate(bookings.GetMyBookings))
	router.GET("/api/bookings/voucher/:id", rl.Limit(middleware.Authenticate(bookings.PrintVoucher)))

	router.GET("/api/admin/bookings", middleware.Authenticate(access.RequireAdmin(bookings.GetAllBookings)))
	router.PUT("/api/admin/bookings/:id/status", middleware.Authenticate(access.RequireAdmin(bookings.UpdateBookingStatus)))
	router.DELETE("/api/admin/bookings/:id", middleware.Authenticate(access.RequireAdmin(bookings.DeleteBooking)))
}

func AddContactRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/contacts", rl.Limit(contacts.SubmitContact))

	router.GET("/api/admin/contacts", middleware.Authenticate(access.RequireAdmin(contacts.GetContacts)))
	router.PUT("/api/admin/contacts/:id/resolve", middleware.Authenticate(access.RequireAdmin(contacts.ResolveContact)))
	router.DELETE("/api/admin/contacts/:id", middleware.Authenticate(access.RequireAdmin(contacts.DeleteContact)))
}

func AddReviewsRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/reviews/:packageId", rl.Limit(middleware.OptionalAuth(reviews.GetReviews)))
	router.POST("/api/reviews/:packageId", rl.Limit(middleware.Authenticate(reviews.AddReview)))
	router.GET("/api/admin/reviews", middleware.Authenticate(access.RequireAdmin(reviews.GetAllReviews)))
	router.DELETE("/api/admin/reviews/:reviewId", middleware.Authenticate(access.RequireAdmin(reviews.DeleteReview)))
}

func AddOfferRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/offers", rl.Limit(offers.ListOffers))

	router.POST("/api/admin/offers", middleware.Authenticate(access.RequireAdmin(offers.CreateOffer)))
	router.PUT("/api/admin/offers/:id/toggle", middleware.Authenticate(access.RequireAdmin(offers.ToggleOffer)))
	router.DELETE("/api/admin/offers/:id", middleware.Authenticate(access.RequireAdmin(offers.DeleteOffer)))
}

func AddSettingsRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/rates", rl.Limit(settings.GetRates))

	router.GET("/api/admin/settings", middleware.Authenticate(access.RequireAdmin(settings.GetSettings)))
	router.PUT("/api/admin/settings", middleware.Authenticate(access.RequireAdmin(settings.UpdateSettings)))
	router.PUT("/api/admin/rates", middleware.Authenticate(access.RequireAdmin(settings.UpdateRates)))
}

func AddAdminRoutes(router *httprouter.Router) {
	router.GET("/api/admin/dashboard", middleware.Authenticate(access.RequireAdmin(dashboard.GetDashboard)))
	router.POST("/api/admin/seed", middleware.Authenticate(access.RequireAdmin(seed.RunSeed)))
	router.GET("/api/admin/users", middleware.Authenticate(access.RequireAdmin(admin.GetUsers)))
	router.DELETE("/api/admin/users/:id", middleware.Authenticate(access.RequireAdmin(admin.DeleteUser)))
}
