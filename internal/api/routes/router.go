package routes

import (
	"net/http"

	"github.com/circleage/backend/internal/api/handlers"
	"github.com/circleage/backend/internal/api/middleware"
	"github.com/circleage/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	userHandler       *handlers.UserHandler
	medicationHandler *handlers.MedicationHandler
	contactHandler    *handlers.ContactHandler
	alertHandler      *handlers.AlertHandler
	navigationHandler *handlers.NavigationHandler
	weatherHandler    *handlers.WeatherHandler
	healthLogHandler  *handlers.HealthLogHandler
	bookmarkHandler   *handlers.BookmarkHandler
	reviewHandler     *handlers.ReviewHandler
	eventHandler      *handlers.EventHandler
	buddyHandler      *handlers.BuddyHandler
	streamHandler     *handlers.StreamHandler

	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	userHandler *handlers.UserHandler,
	medicationHandler *handlers.MedicationHandler,
	contactHandler *handlers.ContactHandler,
	alertHandler *handlers.AlertHandler,
	navigationHandler *handlers.NavigationHandler,
	weatherHandler *handlers.WeatherHandler,
	healthLogHandler *handlers.HealthLogHandler,
	bookmarkHandler *handlers.BookmarkHandler,
	reviewHandler *handlers.ReviewHandler,
	eventHandler *handlers.EventHandler,
	buddyHandler *handlers.BuddyHandler,
	streamHandler *handlers.StreamHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:               http.NewServeMux(),
		userHandler:       userHandler,
		medicationHandler: medicationHandler,
		contactHandler:    contactHandler,
		alertHandler:      alertHandler,
		navigationHandler: navigationHandler,
		weatherHandler:    weatherHandler,
		healthLogHandler:  healthLogHandler,
		bookmarkHandler:   bookmarkHandler,
		reviewHandler:     reviewHandler,
		eventHandler:      eventHandler,
		buddyHandler:      buddyHandler,
		streamHandler:     streamHandler,
		cacheMiddleware:   cacheMiddleware,
		metrics:           metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// User endpoints
	r.mux.HandleFunc("POST /api/users", r.userHandler.CreateUser)
	r.mux.HandleFunc("GET /api/users/{id}", r.userHandler.GetUser)
	r.mux.HandleFunc("PUT /api/users/{id}", r.userHandler.UpdateUser)
	r.mux.HandleFunc("DELETE /api/users/{id}", r.userHandler.DeleteUser)

	// Medication and adherence endpoints
	r.mux.HandleFunc("POST /api/medications", r.medicationHandler.CreateMedication)
	r.mux.HandleFunc("GET /api/medications/{id}", r.medicationHandler.GetMedication)
	r.mux.HandleFunc("PUT /api/medications/{id}", r.medicationHandler.UpdateMedication)
	r.mux.HandleFunc("DELETE /api/medications/{id}", r.medicationHandler.DeleteMedication)
	r.mux.HandleFunc("POST /api/medications/{id}/logs", r.medicationHandler.LogDose)
	r.mux.HandleFunc("GET /api/users/{id}/medications", r.medicationHandler.ListMedications)
	r.mux.HandleFunc("GET /api/users/{id}/adherence", r.medicationHandler.CheckAdherence)

	// Emergency contact endpoints
	r.mux.HandleFunc("POST /api/contacts", r.contactHandler.CreateContact)
	r.mux.HandleFunc("GET /api/contacts/{id}", r.contactHandler.GetContact)
	r.mux.HandleFunc("PUT /api/contacts/{id}", r.contactHandler.UpdateContact)
	r.mux.HandleFunc("DELETE /api/contacts/{id}", r.contactHandler.DeleteContact)
	r.mux.HandleFunc("GET /api/users/{id}/contacts", r.contactHandler.ListContacts)

	// Alert endpoints
	r.mux.HandleFunc("POST /api/alerts", r.alertHandler.TriggerAlert)
	r.mux.HandleFunc("GET /api/users/{id}/alerts", r.alertHandler.ListAlerts)
	r.mux.HandleFunc("GET /api/alerts/stream", r.streamHandler.StreamAllAlerts)
	r.mux.HandleFunc("GET /api/users/{id}/alerts/stream", r.streamHandler.StreamUserAlerts)

	// Navigation endpoints
	r.mux.HandleFunc("GET /api/navigation/search", r.navigationHandler.SearchLocation)
	r.mux.HandleFunc("GET /api/navigation/route", r.navigationHandler.GetRoute)
	r.mux.HandleFunc("GET /api/navigation/poi", r.navigationHandler.NearbyPOI)

	// Weather endpoint
	r.mux.HandleFunc("GET /api/weather", r.weatherHandler.GetAdvice)

	// Health log endpoints
	r.mux.HandleFunc("POST /api/health-logs", r.healthLogHandler.CreateHealthLog)
	r.mux.HandleFunc("GET /api/users/{id}/health-logs", r.healthLogHandler.ListHealthLogs)

	// Bookmark endpoints
	r.mux.HandleFunc("POST /api/bookmarks", r.bookmarkHandler.CreateBookmark)
	r.mux.HandleFunc("GET /api/bookmarks/{id}", r.bookmarkHandler.GetBookmark)
	r.mux.HandleFunc("PUT /api/bookmarks/{id}", r.bookmarkHandler.UpdateBookmark)
	r.mux.HandleFunc("DELETE /api/bookmarks/{id}", r.bookmarkHandler.DeleteBookmark)
	r.mux.HandleFunc("GET /api/users/{id}/bookmarks", r.bookmarkHandler.ListBookmarks)

	// Review endpoints
	r.mux.HandleFunc("POST /api/reviews", r.reviewHandler.CreateReview)
	r.mux.HandleFunc("GET /api/reviews", r.reviewHandler.ListReviews)
	r.mux.HandleFunc("POST /api/reviews/{id}/report", r.reviewHandler.ReportReview)

	// Community event endpoints
	r.mux.HandleFunc("POST /api/events", r.eventHandler.CreateEvent)
	r.mux.HandleFunc("GET /api/events", r.eventHandler.ListEvents)
	r.mux.HandleFunc("GET /api/events/{id}", r.eventHandler.GetEvent)
	r.mux.HandleFunc("POST /api/events/{id}/join", r.eventHandler.JoinEvent)
	r.mux.HandleFunc("DELETE /api/events/{id}/join", r.eventHandler.LeaveEvent)

	// Buddy matching endpoints
	r.mux.HandleFunc("PUT /api/users/{id}/buddy-profile", r.buddyHandler.UpsertProfile)
	r.mux.HandleFunc("GET /api/users/{id}/buddy-profile", r.buddyHandler.GetProfile)
	r.mux.HandleFunc("DELETE /api/users/{id}/buddy-profile", r.buddyHandler.DeleteProfile)
	r.mux.HandleFunc("GET /api/users/{id}/buddy-matches", r.buddyHandler.GetMatches)

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS must be outermost so cached responses also get CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	if r.metrics != nil {
		handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	}

	handler = middleware.CORSMiddleware(handler)

	return handler
}
