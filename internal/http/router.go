// Package http assembles the route table.
package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rms-backend/internal/events"
	"rms-backend/internal/handlers"
	"rms-backend/internal/middleware"
)

type Handlers struct {
	Auth        *handlers.AuthHandler
	Rooms       *handlers.RoomHandler
	Employees   *handlers.EmployeeHandler
	Assignments *handlers.AssignmentHandler
	Payments    *handlers.PaymentHandler
	Feedback    *handlers.FeedbackHandler
	Logs        *handlers.ActivityLogHandler
	Search      *handlers.SearchHandler
	Settings    *handlers.SettingHandler
	Health      *handlers.HealthHandler
	Monitoring  *handlers.MonitoringHandler
}

func NewRouter(h *Handlers, authMW *middleware.AuthMiddleware, hub *events.Hub) *mux.Router {
	r := mux.NewRouter()

	// Public surface
	r.HandleFunc("/health", h.Health.Health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/auth/login", h.Auth.Login).Methods("POST")
	r.Handle("/auth/logout", authMW.Authenticate(http.HandlerFunc(h.Auth.Logout))).Methods("POST")
	r.Handle("/auth/me", authMW.Authenticate(http.HandlerFunc(h.Auth.Me))).Methods("GET")
	r.HandleFunc("/ws/events", hub.ServeWS)

	// Everything under /api rides the bearer token
	api := r.PathPrefix("/api").Subrouter()
	api.Use(authMW.Authenticate)

	api.HandleFunc("/rooms", h.Rooms.ListRooms).Methods("GET")
	api.HandleFunc("/rooms", h.Rooms.CreateRoom).Methods("POST")
	api.HandleFunc("/rooms/bulk", h.Rooms.BulkUpdateRooms).Methods("PUT")
	api.HandleFunc("/rooms/{id}", h.Rooms.UpdateRoom).Methods("PUT")

	api.HandleFunc("/payments", h.Payments.ListPayments).Methods("GET")
	api.HandleFunc("/payments", h.Payments.CreatePayment).Methods("POST")
	api.HandleFunc("/payments/{id}/receipt", h.Payments.Receipt).Methods("GET")

	api.HandleFunc("/employees", h.Employees.ListEmployees).Methods("GET")
	api.HandleFunc("/employees", h.Employees.CreateEmployee).Methods("POST")
	api.HandleFunc("/employees/{id}", h.Employees.UpdateEmployee).Methods("PUT")
	api.HandleFunc("/employees/{id}", h.Employees.DeleteEmployee).Methods("DELETE")

	api.HandleFunc("/assignments", h.Assignments.ListAssignments).Methods("GET")
	api.HandleFunc("/assignments/toggle", h.Assignments.ToggleAssignment).Methods("POST")

	api.HandleFunc("/feedback", h.Feedback.ListFeedback).Methods("GET")
	api.HandleFunc("/feedback", h.Feedback.CreateFeedback).Methods("POST")

	api.HandleFunc("/search", h.Search.Search).Methods("GET")

	api.HandleFunc("/settings", h.Settings.GetSettings).Methods("GET")
	api.HandleFunc("/settings", h.Settings.UpdateSettings).Methods("PUT")

	// Admin-only surface
	api.Handle("/logs", authMW.RequireAdmin(http.HandlerFunc(h.Logs.ListLogs))).Methods("GET")
	api.Handle("/monitoring/system", authMW.RequireAdmin(http.HandlerFunc(h.Monitoring.Stats))).Methods("GET")

	return r
}
