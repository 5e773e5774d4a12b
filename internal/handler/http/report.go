package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/iramedia/workreport-backend-go/internal/domain/report"
	"github.com/iramedia/workreport-backend-go/internal/handler/http/middleware"
	"github.com/iramedia/workreport-backend-go/internal/handler/http/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler interface {
	EmployeeReports(w http.ResponseWriter, r *http.Request)
	MonthlyReport(w http.ResponseWriter, r *http.Request)
	ExportMonthlyReport(w http.ResponseWriter, r *http.Request)
	ExportFiltered(w http.ResponseWriter, r *http.Request)
	Pivot(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// EmployeeReports implements ReportHandler.
func (h *ReportHandlerImpl) EmployeeReports(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r)

	reports, err := h.reportService.EmployeeReports(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, reports)
}

// MonthlyReport implements ReportHandler.
func (h *ReportHandlerImpl) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r)

	monthly, err := h.reportService.MonthlyReport(r.Context(), actor, chi.URLParam(r, "id"), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, monthly)
}

// ExportMonthlyReport implements ReportHandler.
func (h *ReportHandlerImpl) ExportMonthlyReport(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r)

	export, err := h.reportService.ExportMonthlyReport(r.Context(), actor, chi.URLParam(r, "id"), r.URL.Query().Get("month"))
	if err != nil {
		slog.Error("ExportMonthlyReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	serveWorkbook(w, export)
}

// ExportFiltered implements ReportHandler. Admin only.
func (h *ReportHandlerImpl) ExportFiltered(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r)

	export, err := h.reportService.ExportFiltered(r.Context(), actor, listFilterFromQuery(r))
	if err != nil {
		slog.Error("ExportFiltered service error", "error", err)
		response.HandleError(w, err)
		return
	}

	serveWorkbook(w, export)
}

// Pivot implements ReportHandler. Admin only.
func (h *ReportHandlerImpl) Pivot(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r)

	pivot, err := h.reportService.Pivot(r.Context(), actor, listFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, pivot)
}

func serveWorkbook(w http.ResponseWriter, export report.ExportFile) {
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(export.Content)
}
