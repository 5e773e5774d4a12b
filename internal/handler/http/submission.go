package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/iramedia/workreport-backend-go/internal/domain/submission"
	"github.com/iramedia/workreport-backend-go/internal/handler/http/middleware"
	"github.com/iramedia/workreport-backend-go/internal/handler/http/response"
)

// Multipart forms are capped slightly above the attachment limit so the
// text fields still fit alongside a maximum-size file.
const maxSubmitFormSize = 17 << 20

type SubmissionHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListToday(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	DownloadAttachment(w http.ResponseWriter, r *http.Request)
}

type SubmissionHandlerImpl struct {
	submissionService submission.SubmissionService
}

func NewSubmissionHandler(submissionService submission.SubmissionService) SubmissionHandler {
	return &SubmissionHandlerImpl{submissionService: submissionService}
}

// Submit implements SubmissionHandler. The request is a multipart form so
// an attachment can ride along with the fields.
func (h *SubmissionHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r)

	if err := r.ParseMultipartForm(maxSubmitFormSize); err != nil {
		response.BadRequest(w, "Invalid form data", nil)
		return
	}

	req := submission.SubmitRequest{
		WorkText:       r.FormValue("work_text"),
		ClientCategory: optionalFormValue(r, "client_category"),
		ClientName:     r.FormValue("client_name"),
		WorkType:       r.FormValue("work_type"),
		Date:           r.FormValue("date"),
		EmployeeName:   optionalFormValue(r, "employee_name"),
	}
	if qty, ok := intFormValue(r, "quantity"); ok {
		req.Quantity = &qty
	}
	if file, header, err := r.FormFile("file"); err == nil {
		defer file.Close()
		req.File = file
		req.FileHeader = header
	}

	created, err := h.submissionService.Submit(r.Context(), actor, req)
	if err != nil {
		slog.Error("Submit service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work report submitted successfully", created)
}

// Update implements SubmissionHandler.
func (h *SubmissionHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r)

	if err := r.ParseMultipartForm(maxSubmitFormSize); err != nil {
		response.BadRequest(w, "Invalid form data", nil)
		return
	}

	req := submission.UpdateRequest{
		ID:             chi.URLParam(r, "id"),
		WorkText:       r.FormValue("work_text"),
		ClientCategory: optionalFormValue(r, "client_category"),
		ClientName:     r.FormValue("client_name"),
		WorkType:       r.FormValue("work_type"),
	}
	if qty, ok := intFormValue(r, "quantity"); ok {
		req.Quantity = &qty
	}
	if file, header, err := r.FormFile("file"); err == nil {
		defer file.Close()
		req.File = file
		req.FileHeader = header
	}

	updated, err := h.submissionService.Update(r.Context(), actor, req)
	if err != nil {
		slog.Error("Update submission service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work report updated successfully", updated)
}

// Delete implements SubmissionHandler.
func (h *SubmissionHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r)

	if err := h.submissionService.Delete(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete submission service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work report deleted successfully", nil)
}

// Get implements SubmissionHandler.
func (h *SubmissionHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r)

	found, err := h.submissionService.Get(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, found)
}

// ListMine implements SubmissionHandler.
func (h *SubmissionHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r)

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	submissions, err := h.submissionService.ListMine(r.Context(), actor, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, submissions)
}

// ListToday implements SubmissionHandler.
func (h *SubmissionHandlerImpl) ListToday(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r)

	submissions, err := h.submissionService.ListToday(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, submissions)
}

// List implements SubmissionHandler. Admin only.
func (h *SubmissionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r)

	submissions, err := h.submissionService.List(r.Context(), actor, listFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, submissions)
}

// DownloadAttachment implements SubmissionHandler.
func (h *SubmissionHandlerImpl) DownloadAttachment(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r)

	path, err := h.submissionService.AttachmentPath(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.ServeFile(w, r, path)
}

func listFilterFromQuery(r *http.Request) submission.ListFilter {
	filter := submission.ListFilter{}
	query := r.URL.Query()

	assign := func(dst **string, key string) {
		if v := query.Get(key); v != "" {
			value := v
			*dst = &value
		}
	}
	assign(&filter.UserID, "user_id")
	assign(&filter.EmployeeNameLike, "employee_name")
	assign(&filter.Date, "date")
	assign(&filter.StartDate, "start_date")
	assign(&filter.EndDate, "end_date")
	assign(&filter.Month, "month")
	assign(&filter.EmploymentType, "employment_type")
	assign(&filter.ClientName, "client_name")
	return filter
}

func optionalFormValue(r *http.Request, key string) *string {
	if v := r.FormValue(key); v != "" {
		return &v
	}
	return nil
}

func intFormValue(r *http.Request, key string) (int, bool) {
	raw := r.FormValue(key)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
