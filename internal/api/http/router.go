package http

import (
	"net/http"

	"bloodbank-backend/internal/security"
	"bloodbank-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterConfig carries everything the HTTP surface needs.
type RouterConfig struct {
	Auth        service.AuthService
	Registry    service.RegistryService
	Donations   service.DonationService
	Admin       service.AdminService
	Importer    service.ImportService
	Tokens      security.TokenManager
	MaxImportMB int64
}

// NewRouter wires the full route table. Three tiers: public, authenticated
// (any verified actor), and admin-only.
func NewRouter(cfg RouterConfig) *mux.Router {
	authHandler := NewAuthHandler(cfg.Auth)
	donorHandler := NewDonorHandler(cfg.Registry)
	donationHandler := NewDonationHandler(cfg.Donations)
	adminHandler := NewAdminHandler(cfg.Admin)
	importHandler := NewImportHandler(cfg.Importer, cfg.MaxImportMB)
	mw := NewAuthMiddleware(cfg.Tokens)

	r := mux.NewRouter()

	// Public
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/auth/login", authHandler.Login).Methods(http.MethodPost)

	// Authenticated
	authed := r.PathPrefix("/api/v1").Subrouter()
	authed.Use(mw.Authenticate)
	authed.HandleFunc("/donors/search", donorHandler.Search).Methods(http.MethodGet)
	authed.HandleFunc("/donations", donationHandler.Save).Methods(http.MethodPost)

	// Admin only
	admin := authed.NewRoute().Subrouter()
	admin.Use(mw.RequireAdmin)
	admin.HandleFunc("/donations", donationHandler.ListAll).Methods(http.MethodGet)
	admin.HandleFunc("/donations/{id}", donationHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/donations/{id}", donationHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/admin/overview", adminHandler.Overview).Methods(http.MethodGet)
	admin.HandleFunc("/admin/staff/{id}/verify", adminHandler.VerifyStaff).Methods(http.MethodPost)
	admin.HandleFunc("/admin/staff/{id}", adminHandler.DeleteStaff).Methods(http.MethodDelete)
	admin.HandleFunc("/import", importHandler.Upload).Methods(http.MethodPost)

	return r
}
