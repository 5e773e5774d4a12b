package submission

import (
	"context"
	"fmt"
	"strings"

	"github.com/iramedia/workreport-backend-go/internal/domain/submission"
	"github.com/iramedia/workreport-backend-go/internal/pkg/database"
	"github.com/iramedia/workreport-backend-go/internal/pkg/validator"
	"github.com/iramedia/workreport-backend-go/internal/repository/postgresql"
	"github.com/iramedia/workreport-backend-go/internal/service/file"
	"github.com/jackc/pgx/v5"
)

type SubmissionServiceImpl struct {
	db *database.DB
	submission.SubmissionRepository
	files file.Service
}

func NewSubmissionService(db *database.DB, submissionRepository submission.SubmissionRepository, fileService file.Service) submission.SubmissionService {
	return &SubmissionServiceImpl{
		db:                   db,
		SubmissionRepository: submissionRepository,
		files:                fileService,
	}
}

// Submit implements submission.SubmissionService.
//
// The duplicate check, the per-day numbering and the insert run inside one
// transaction holding the per-(user, day) advisory lock, so two identical
// concurrent submits yield exactly one row and distinct submission numbers.
func (s *SubmissionServiceImpl) Submit(ctx context.Context, actor submission.Actor, req submission.SubmitRequest) (submission.SubmissionResponse, error) {
	req.UserID = actor.UserID
	if err := req.Validate(); err != nil {
		return submission.SubmissionResponse{}, err
	}

	// Only admins may log work on someone else's behalf, and they may
	// only submit that way.
	if !actor.IsAdmin {
		req.EmployeeName = nil
	} else if req.EmployeeName == nil || strings.TrimSpace(*req.EmployeeName) == "" {
		return submission.SubmissionResponse{}, validator.ValidationErrors{{
			Field:   "employee_name",
			Message: "admins must name the employee the report is submitted for",
		}}
	}

	var filePath *string
	if req.File != nil && req.FileHeader != nil {
		stored, err := s.files.Store(ctx, req.File, req.FileHeader)
		if err != nil {
			return submission.SubmissionResponse{}, err
		}
		filePath = &stored
	}

	date := req.EffectiveDate()

	var created submission.Submission
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.SubmissionRepository.LockUserDay(txCtx, req.UserID, date); err != nil {
			return err
		}

		existing, err := s.SubmissionRepository.FindDuplicate(txCtx, req.UserID, date, req.WorkText, req.ClientName, req.WorkType)
		if err != nil {
			return err
		}
		if existing != nil {
			return submission.ErrDuplicateSubmission
		}

		count, err := s.SubmissionRepository.CountForDay(txCtx, req.UserID, date)
		if err != nil {
			return err
		}

		created, err = s.SubmissionRepository.Insert(txCtx, submission.Submission{
			UserID:           req.UserID,
			WorkText:         req.WorkText,
			ClientCategory:   req.ClientCategory,
			ClientName:       req.ClientName,
			WorkType:         req.WorkType,
			Quantity:         req.EffectiveQuantity(),
			FilePath:         filePath,
			Date:             date,
			SubmissionNumber: count + 1,
			EmployeeName:     req.EmployeeName,
		})
		return err
	})
	if err != nil {
		// The orphaned upload is removed; the row never landed.
		if filePath != nil {
			s.files.Remove(ctx, *filePath)
		}
		return submission.SubmissionResponse{}, err
	}

	return submission.ToResponse(created), nil
}

// Update implements submission.SubmissionService.
func (s *SubmissionServiceImpl) Update(ctx context.Context, actor submission.Actor, req submission.UpdateRequest) (submission.SubmissionResponse, error) {
	if err := req.Validate(); err != nil {
		return submission.SubmissionResponse{}, err
	}

	current, err := s.SubmissionRepository.GetByID(ctx, req.ID)
	if err != nil {
		return submission.SubmissionResponse{}, err
	}
	if !submission.CanAccessReport(actor, current.UserID) {
		return submission.SubmissionResponse{}, submission.ErrAccessDenied
	}

	previousFile := current.FilePath
	if req.File != nil && req.FileHeader != nil {
		stored, err := s.files.Store(ctx, req.File, req.FileHeader)
		if err != nil {
			return submission.SubmissionResponse{}, err
		}
		current.FilePath = &stored
	}

	current.WorkText = req.WorkText
	current.ClientCategory = req.ClientCategory
	current.ClientName = req.ClientName
	current.WorkType = req.WorkType
	if req.Quantity != nil {
		current.Quantity = *req.Quantity
	}

	if err := s.SubmissionRepository.Update(ctx, current); err != nil {
		if current.FilePath != previousFile && current.FilePath != nil {
			s.files.Remove(ctx, *current.FilePath)
		}
		return submission.SubmissionResponse{}, err
	}

	// Replaced attachment: the old file is no longer referenced.
	if previousFile != nil && current.FilePath != previousFile {
		s.files.Remove(ctx, *previousFile)
	}

	return submission.ToResponse(current), nil
}

// Delete implements submission.SubmissionService. Sibling entries keep
// their numbers; the gap is intentional.
func (s *SubmissionServiceImpl) Delete(ctx context.Context, actor submission.Actor, id string) error {
	current, err := s.SubmissionRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !submission.CanAccessReport(actor, current.UserID) {
		return submission.ErrAccessDenied
	}

	if err := s.SubmissionRepository.Delete(ctx, id); err != nil {
		return err
	}

	if current.FilePath != nil {
		s.files.Remove(ctx, *current.FilePath)
	}
	return nil
}

// Get implements submission.SubmissionService.
func (s *SubmissionServiceImpl) Get(ctx context.Context, actor submission.Actor, id string) (submission.SubmissionResponse, error) {
	current, err := s.SubmissionRepository.GetByID(ctx, id)
	if err != nil {
		return submission.SubmissionResponse{}, err
	}
	if !submission.CanAccessReport(actor, current.UserID) {
		return submission.SubmissionResponse{}, submission.ErrAccessDenied
	}
	return submission.ToResponse(current), nil
}

// ListMine implements submission.SubmissionService.
func (s *SubmissionServiceImpl) ListMine(ctx context.Context, actor submission.Actor, limit int) ([]submission.SubmissionResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	subs, err := s.SubmissionRepository.ListRecent(ctx, actor.UserID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent submissions: %w", err)
	}
	return toResponses(subs), nil
}

// ListToday implements submission.SubmissionService.
func (s *SubmissionServiceImpl) ListToday(ctx context.Context, actor submission.Actor) ([]submission.SubmissionResponse, error) {
	todayKey := submission.DateKey(submission.Today())
	subs, err := s.SubmissionRepository.Query(ctx, submission.ListFilter{
		UserID: &actor.UserID,
		Date:   &todayKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list today's submissions: %w", err)
	}
	return toResponses(subs), nil
}

// List implements submission.SubmissionService. Admin only.
func (s *SubmissionServiceImpl) List(ctx context.Context, actor submission.Actor, filter submission.ListFilter) ([]submission.SubmissionResponse, error) {
	if !actor.IsAdmin {
		return nil, submission.ErrAccessDenied
	}
	subs, err := s.SubmissionRepository.Query(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	return toResponses(subs), nil
}

// AttachmentPath implements submission.SubmissionService.
func (s *SubmissionServiceImpl) AttachmentPath(ctx context.Context, actor submission.Actor, id string) (string, error) {
	current, err := s.SubmissionRepository.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if !submission.CanAccessReport(actor, current.UserID) {
		return "", submission.ErrAccessDenied
	}
	if current.FilePath == nil || *current.FilePath == "" {
		return "", submission.ErrNoAttachment
	}
	return s.files.FullPath(*current.FilePath)
}

func toResponses(subs []submission.Submission) []submission.SubmissionResponse {
	responses := make([]submission.SubmissionResponse, 0, len(subs))
	for _, sub := range subs {
		responses = append(responses, submission.ToResponse(sub))
	}
	return responses
}
