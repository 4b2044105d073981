package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"p9e.in/pixcel/handlers"
	"p9e.in/pixcel/middleware"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()

	// =====================================================
	// Public Routes (no authentication)
	// =====================================================
	api.HandleFunc("/health", handlers.HealthCheck).Methods("GET")

	api.HandleFunc("/auth/login", handlers.Login).Methods("POST")
	api.HandleFunc("/auth/register", handlers.Register).Methods("POST")

	api.HandleFunc("/portfolio", handlers.GetAllPortfolios).Methods("GET")
	api.HandleFunc("/portfolio/slug/{slug}", handlers.GetPortfolioBySlug).Methods("GET")
	api.HandleFunc("/portfolio/{id}", handlers.GetPortfolio).Methods("GET")

	api.HandleFunc("/services", handlers.GetAllServices).Methods("GET")
	api.HandleFunc("/services/{id}", handlers.GetService).Methods("GET")

	// The quote form posts here without auth
	api.HandleFunc("/quotations", handlers.CreateQuotation).Methods("POST")

	// Locally stored uploads are served back as static files
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir("./uploads"))),
	)

	// =====================================================
	// Admin Routes (require JWT + admin role)
	// =====================================================
	admin := api.NewRoute().Subrouter()
	admin.Use(middleware.JWTMiddleware)
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/auth/me", handlers.GetCurrentUser).Methods("GET")

	admin.HandleFunc("/portfolio", handlers.CreatePortfolio).Methods("POST")
	admin.HandleFunc("/portfolio/{id}", handlers.UpdatePortfolio).Methods("PUT")
	admin.HandleFunc("/portfolio/{id}", handlers.DeletePortfolio).Methods("DELETE")

	admin.HandleFunc("/services", handlers.CreateService).Methods("POST")
	admin.HandleFunc("/services/{id}", handlers.UpdateService).Methods("PUT")
	admin.HandleFunc("/services/{id}", handlers.DeleteService).Methods("DELETE")

	admin.HandleFunc("/quotations", handlers.GetAllQuotations).Methods("GET")
	admin.HandleFunc("/quotations/export", handlers.ExportQuotationsToExcel).Methods("GET")
	admin.HandleFunc("/quotations/{id}", handlers.GetQuotation).Methods("GET")
	admin.HandleFunc("/quotations/{id}/status", handlers.UpdateQuotationStatus).Methods("PATCH")
	admin.HandleFunc("/quotations/{id}/pdf", handlers.DownloadQuotationPDF).Methods("GET")
	admin.HandleFunc("/quotations/{id}", handlers.DeleteQuotation).Methods("DELETE")

	admin.HandleFunc("/uploads", handlers.UploadImageHandler).Methods("POST")

	return r
}
