package http

import (
	"net/http"

	"go-clinic-backend/internal/delivery/http/handler"
	"go-clinic-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	registrationHandler *handler.RegistrationHandler
	profileHandler      *handler.ProfileHandler
	doctorHandler       *handler.DoctorHandler
	timetableHandler    *handler.TimetableHandler
	patientHandler      *handler.PatientHandler
	bookingHandler      *handler.BookingHandler
	userHandler         *handler.UserHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	registrationHandler *handler.RegistrationHandler,
	profileHandler *handler.ProfileHandler,
	doctorHandler *handler.DoctorHandler,
	timetableHandler *handler.TimetableHandler,
	patientHandler *handler.PatientHandler,
	bookingHandler *handler.BookingHandler,
	userHandler *handler.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		registrationHandler: registrationHandler,
		profileHandler:      profileHandler,
		doctorHandler:       doctorHandler,
		timetableHandler:    timetableHandler,
		patientHandler:      patientHandler,
		bookingHandler:      bookingHandler,
		userHandler:         userHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.registrationHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Public doctor directory
	api.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}/reviews", r.doctorHandler.GetDoctorReviews).Methods(http.MethodGet)
	api.HandleFunc("/specialties", r.doctorHandler.GetSpecialties).Methods(http.MethodGet)

	// Public booking intake
	api.HandleFunc("/bookings/public", r.bookingHandler.CreatePublicBooking).Methods(http.MethodPost)

	// Self-service profile (protected)
	me := api.PathPrefix("/me").Subrouter()
	me.Use(r.authMiddleware.Authenticate)
	me.HandleFunc("", r.profileHandler.GetMyProfile).Methods(http.MethodGet)
	me.HandleFunc("", r.profileHandler.UpdateMyProfile).Methods(http.MethodPatch)

	// Timetable management (protected - doctor only)
	timetable := api.PathPrefix("/me/timetable").Subrouter()
	timetable.Use(r.authMiddleware.Authenticate)
	timetable.Use(middleware.RequireDoctor)
	timetable.HandleFunc("", r.timetableHandler.GetMyTimetable).Methods(http.MethodGet)
	timetable.HandleFunc("", r.timetableHandler.CreateEntry).Methods(http.MethodPost)
	timetable.HandleFunc("/{id}", r.timetableHandler.UpdateEntry).Methods(http.MethodPut)
	timetable.HandleFunc("/{id}", r.timetableHandler.DeleteEntry).Methods(http.MethodDelete)

	// Reviews (protected)
	reviews := api.PathPrefix("/doctors").Subrouter()
	reviews.Use(r.authMiddleware.Authenticate)
	reviews.HandleFunc("/{id}/reviews", r.doctorHandler.CreateReview).Methods(http.MethodPost)

	// Patient management (protected - staff)
	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.Use(middleware.RequireStaff)
	patients.HandleFunc("", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	patients.HandleFunc("", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	patients.HandleFunc("/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	// Booking management (protected - staff)
	bookings := api.PathPrefix("/bookings").Subrouter()
	bookings.Use(r.authMiddleware.Authenticate)
	bookings.Use(middleware.RequireStaff)
	bookings.HandleFunc("", r.bookingHandler.GetBookings).Methods(http.MethodGet)
	bookings.HandleFunc("", r.bookingHandler.CreateBooking).Methods(http.MethodPost)
	bookings.HandleFunc("/{id}", r.bookingHandler.GetBooking).Methods(http.MethodGet)
	bookings.HandleFunc("/{id}", r.bookingHandler.UpdateBooking).Methods(http.MethodPut)
	bookings.HandleFunc("/{id}", r.bookingHandler.DeleteBooking).Methods(http.MethodDelete)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/users", r.userHandler.CreateUser).Methods(http.MethodPost)
	admin.HandleFunc("/users", r.userHandler.GetAllUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.GetUser).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.UpdateUser).Methods(http.MethodPut)
	admin.HandleFunc("/users/{id}", r.userHandler.DeleteUser).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
