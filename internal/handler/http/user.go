package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/iramedia/workreport-backend-go/internal/domain/report"
	"github.com/iramedia/workreport-backend-go/internal/domain/user"
	"github.com/iramedia/workreport-backend-go/internal/handler/http/middleware"
	"github.com/iramedia/workreport-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService   user.UserService
	reportService report.ReportService
}

func NewUserHandler(userService user.UserService, reportService report.ReportService) UserHandler {
	return &UserHandlerImpl{
		userService:   userService,
		reportService: reportService,
	}
}

// Create implements UserHandler.
func (h *UserHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req user.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.userService.CreateEmployee(r.Context(), req)
	if err != nil {
		slog.Error("CreateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", created)
}

// List implements UserHandler. With the month query parameter, freelancer
// rows are decorated with their priced total for that month.
func (h *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := user.ListEmployeesFilter{}
	if employment := r.URL.Query().Get("employment_type"); employment != "" {
		filter.EmploymentType = &employment
	}

	employees, err := h.userService.ListEmployees(r.Context(), filter)
	if err != nil {
		slog.Error("ListEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	month := r.URL.Query().Get("month")
	if month == "" {
		response.Success(w, employees)
		return
	}

	decorated := make([]user.EmployeeWithAmountResponse, 0, len(employees))
	for _, emp := range employees {
		amount, err := h.reportService.MonthlyAmountFor(r.Context(), emp.ID, emp.EmploymentType, month)
		if err != nil {
			slog.Error("MonthlyAmountFor service error", "error", err)
			response.HandleError(w, err)
			return
		}
		decorated = append(decorated, user.EmployeeWithAmountResponse{
			EmployeeResponse: emp,
			MonthlyAmount:    amount,
		})
	}
	response.Success(w, decorated)
}

// Get implements UserHandler.
func (h *UserHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	found, err := h.userService.GetEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, found)
}

// Update implements UserHandler.
func (h *UserHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req user.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.userService.UpdateEmployee(r.Context(), req)
	if err != nil {
		slog.Error("UpdateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", updated)
}

// Delete implements UserHandler.
func (h *UserHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r)

	err := h.userService.DeleteEmployee(r.Context(), actor.UserID, chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("DeleteEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

// GetProfile implements UserHandler.
func (h *UserHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r)

	profile, err := h.userService.GetProfile(r.Context(), actor.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, profile)
}

// UpdateProfile implements UserHandler.
func (h *UserHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r)

	var req user.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.userService.UpdateProfile(r.Context(), actor.UserID, req)
	if err != nil {
		slog.Error("UpdateProfile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profile updated successfully", updated)
}
