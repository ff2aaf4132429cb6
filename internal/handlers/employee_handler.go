package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"rms-backend/internal/middleware"
	"rms-backend/internal/models"
	"rms-backend/internal/services"
	"rms-backend/pkg/utils"
)

type EmployeeHandler struct {
	Service *services.EmployeeService
}

func NewEmployeeHandler(service *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{Service: service}
}

func (h *EmployeeHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.List(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, employees)
}

func (h *EmployeeHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	actor, _ := middleware.UserFromContext(r.Context())
	employee, err := h.Service.Add(r.Context(), actor, &req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, employee)
}

func (h *EmployeeHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	actor, _ := middleware.UserFromContext(r.Context())
	employee, err := h.Service.Update(r.Context(), actor, mux.Vars(r)["id"], &req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.UserFromContext(r.Context())
	if err := h.Service.Delete(r.Context(), actor, mux.Vars(r)["id"]); err != nil {
		utils.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
