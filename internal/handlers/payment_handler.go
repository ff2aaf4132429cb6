package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"rms-backend/internal/middleware"
	"rms-backend/internal/models"
	"rms-backend/internal/reports"
	"rms-backend/internal/services"
	"rms-backend/pkg/utils"
)

type PaymentHandler struct {
	Service *services.PaymentService
}

func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: service}
}

func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.UserFromContext(r.Context())
	payments, err := h.Service.Visible(r.Context(), actor)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, payments)
}

func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	actor, _ := middleware.UserFromContext(r.Context())
	payment, err := h.Service.Record(r.Context(), actor, &req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, payment)
}

// Receipt streams a PDF receipt for one payment. Visibility follows the
// same rule as listing: employees only see their own recordings.
func (h *PaymentHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.UserFromContext(r.Context())
	payments, err := h.Service.Visible(r.Context(), actor)
	if err != nil {
		utils.Error(w, err)
		return
	}

	id := mux.Vars(r)["id"]
	var payment *models.Payment
	for i := range payments {
		if payments[i].ID == id {
			payment = &payments[i]
			break
		}
	}
	if payment == nil {
		http.Error(w, "Payment not found", http.StatusNotFound)
		return
	}

	pdf, err := reports.PaymentReceipt(payment)
	if err != nil {
		http.Error(w, "Failed to generate receipt", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="receipt-%s.pdf"`, payment.ID))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
