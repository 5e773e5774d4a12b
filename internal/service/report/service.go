package report

import (
	"context"
	"fmt"
	"time"

	"github.com/iramedia/workreport-backend-go/internal/domain/pricing"
	"github.com/iramedia/workreport-backend-go/internal/domain/report"
	"github.com/iramedia/workreport-backend-go/internal/domain/submission"
	"github.com/iramedia/workreport-backend-go/internal/domain/user"
	"github.com/iramedia/workreport-backend-go/internal/pkg/excel"
)

type ReportServiceImpl struct {
	submissions submission.SubmissionRepository
	users       user.UserRepository
	calc        pricing.Calculator
}

func NewReportService(submissionRepository submission.SubmissionRepository, userRepository user.UserRepository, calc pricing.Calculator) report.ReportService {
	return &ReportServiceImpl{
		submissions: submissionRepository,
		users:       userRepository,
		calc:        calc,
	}
}

// EmployeeReports implements report.ReportService.
func (s *ReportServiceImpl) EmployeeReports(ctx context.Context, actor submission.Actor, employeeID string) (report.EmployeeReportsResponse, error) {
	if !submission.CanAccessReport(actor, employeeID) {
		return report.EmployeeReportsResponse{}, submission.ErrAccessDenied
	}

	subject, err := s.users.GetByID(ctx, employeeID)
	if err != nil {
		return report.EmployeeReportsResponse{}, err
	}

	subs, err := s.submissions.Query(ctx, submission.ListFilter{UserID: &employeeID})
	if err != nil {
		return report.EmployeeReportsResponse{}, fmt.Errorf("failed to query submissions: %w", err)
	}

	employment := string(subject.EmploymentType)
	responses := make([]submission.SubmissionResponse, 0, len(subs))
	for _, sub := range subs {
		responses = append(responses, submission.ToResponse(sub))
	}

	return report.EmployeeReportsResponse{
		EmployeeID:     subject.ID,
		EmployeeName:   subject.Name,
		EmploymentType: employment,
		Submissions:    responses,
		MonthlyStats:   report.MonthlySummaries(subs, s.calc, employment),
	}, nil
}

// MonthlyReport implements report.ReportService.
func (s *ReportServiceImpl) MonthlyReport(ctx context.Context, actor submission.Actor, employeeID, month string) (report.MonthlyReportResponse, error) {
	if !submission.CanAccessReport(actor, employeeID) {
		return report.MonthlyReportResponse{}, submission.ErrAccessDenied
	}
	if err := report.ValidateMonth(month); err != nil {
		return report.MonthlyReportResponse{}, err
	}

	subject, err := s.users.GetByID(ctx, employeeID)
	if err != nil {
		return report.MonthlyReportResponse{}, err
	}

	subs, err := s.submissions.Query(ctx, submission.ListFilter{UserID: &employeeID, Month: &month, OrderAscending: true})
	if err != nil {
		return report.MonthlyReportResponse{}, fmt.Errorf("failed to query submissions: %w", err)
	}

	employment := string(subject.EmploymentType)
	responses := make([]submission.SubmissionResponse, 0, len(subs))
	for _, sub := range subs {
		responses = append(responses, submission.ToResponse(sub))
	}

	return report.MonthlyReportResponse{
		EmployeeID:     subject.ID,
		EmployeeName:   subject.Name,
		EmploymentType: employment,
		Month:          month,
		Submissions:    responses,
		DailyTotals:    report.DailyTotals(subs, s.calc, employment),
		TotalAmount:    report.TotalAmount(subs, s.calc, employment),
	}, nil
}

// ExportMonthlyReport implements report.ReportService.
func (s *ReportServiceImpl) ExportMonthlyReport(ctx context.Context, actor submission.Actor, employeeID, month string) (report.ExportFile, error) {
	if !submission.CanAccessReport(actor, employeeID) {
		return report.ExportFile{}, submission.ErrAccessDenied
	}
	if err := report.ValidateMonth(month); err != nil {
		return report.ExportFile{}, err
	}

	subject, err := s.users.GetByID(ctx, employeeID)
	if err != nil {
		return report.ExportFile{}, err
	}

	subs, err := s.submissions.Query(ctx, submission.ListFilter{UserID: &employeeID, Month: &month, OrderAscending: true})
	if err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to query submissions: %w", err)
	}

	rowSet, err := report.MonthlyReportRows(subs, string(subject.EmploymentType), s.calc, actor.IsAdmin)
	if err != nil {
		return report.ExportFile{}, err
	}

	buf, err := excel.Build(rowSet)
	if err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to render workbook: %w", err)
	}

	return report.ExportFile{
		Filename: report.MonthlyReportFilename(subject.Name, month),
		Content:  buf.Bytes(),
	}, nil
}

// ExportFiltered implements report.ReportService. Admin only.
func (s *ReportServiceImpl) ExportFiltered(ctx context.Context, actor submission.Actor, filter submission.ListFilter) (report.ExportFile, error) {
	if !actor.IsAdmin {
		return report.ExportFile{}, submission.ErrAccessDenied
	}

	subs, err := s.submissions.Query(ctx, filter)
	if err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to query submissions: %w", err)
	}

	rowSet, err := report.FilteredReportRows(subs, s.calc)
	if err != nil {
		return report.ExportFile{}, err
	}

	buf, err := excel.Build(rowSet)
	if err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to render workbook: %w", err)
	}

	return report.ExportFile{
		Filename: report.FilteredReportFilename(time.Now()),
		Content:  buf.Bytes(),
	}, nil
}

// Pivot implements report.ReportService. Admin only.
func (s *ReportServiceImpl) Pivot(ctx context.Context, actor submission.Actor, filter submission.ListFilter) (report.PivotTable, error) {
	if !actor.IsAdmin {
		return report.PivotTable{}, submission.ErrAccessDenied
	}

	subs, err := s.submissions.Query(ctx, filter)
	if err != nil {
		return report.PivotTable{}, fmt.Errorf("failed to query submissions: %w", err)
	}

	return report.BuildPivot(subs), nil
}

// MonthlyAmountFor implements report.ReportService.
func (s *ReportServiceImpl) MonthlyAmountFor(ctx context.Context, userID, employment, month string) (int, error) {
	if err := report.ValidateMonth(month); err != nil {
		return 0, err
	}

	subs, err := s.submissions.Query(ctx, submission.ListFilter{UserID: &userID, Month: &month})
	if err != nil {
		return 0, fmt.Errorf("failed to query submissions: %w", err)
	}

	return report.TotalAmount(subs, s.calc, employment), nil
}
