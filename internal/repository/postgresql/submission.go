package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/iramedia/workreport-backend-go/internal/domain/submission"
	"github.com/iramedia/workreport-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type submissionRepositoryImpl struct {
	db *database.DB
}

func NewSubmissionRepository(db *database.DB) submission.SubmissionRepository {
	return &submissionRepositoryImpl{db: db}
}

const submissionColumns = `
	s.id, s.user_id, s.work_text, s.client_category, s.client_name, s.work_type,
	s.quantity, s.file_path, s.date, s.submission_number, s.employee_name, s.created_at,
	u.name, u.email, u.employment_type
`

// LockUserDay implements submission.SubmissionRepository. The advisory lock
// is transaction-scoped: it releases on commit or rollback, so the caller
// must already be inside a transaction.
func (r *submissionRepositoryImpl) LockUserDay(ctx context.Context, userID string, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	key := fmt.Sprintf("%s:%s", userID, submission.DateKey(date))
	_, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key)
	if err != nil {
		return fmt.Errorf("failed to lock submit sequence: %w", err)
	}
	return nil
}

// FindDuplicate implements submission.SubmissionRepository. Text fields are
// compared case-insensitively after trimming.
func (r *submissionRepositoryImpl) FindDuplicate(ctx context.Context, userID string, date time.Time, workText, clientName, workType string) (*submission.Submission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + submissionColumns + `
		FROM submissions s
		JOIN users u ON s.user_id = u.id
		WHERE s.user_id = $1
		  AND s.date = $2
		  AND LOWER(TRIM(s.work_text)) = LOWER(TRIM($3))
		  AND LOWER(TRIM(s.client_name)) = LOWER(TRIM($4))
		  AND LOWER(TRIM(s.work_type)) = LOWER(TRIM($5))
		LIMIT 1
	`

	var found submission.Submission
	err := q.QueryRow(ctx, query, userID, date, workText, clientName, workType).Scan(scanTargets(&found)...)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to check for duplicate: %w", err)
	}

	return &found, nil
}

// CountForDay implements submission.SubmissionRepository.
func (r *submissionRepositoryImpl) CountForDay(ctx context.Context, userID string, date time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM submissions WHERE user_id = $1 AND date = $2`,
		userID, date,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count submissions: %w", err)
	}
	return count, nil
}

// Insert implements submission.SubmissionRepository.
func (r *submissionRepositoryImpl) Insert(ctx context.Context, s submission.Submission) (submission.Submission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO submissions (
			user_id, work_text, client_category, client_name, work_type,
			quantity, file_path, date, submission_number, employee_name
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	created := s
	err := q.QueryRow(ctx, query,
		s.UserID,
		s.WorkText,
		s.ClientCategory,
		s.ClientName,
		s.WorkType,
		s.Quantity,
		s.FilePath,
		s.Date,
		s.SubmissionNumber,
		s.EmployeeName,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return submission.Submission{}, fmt.Errorf("failed to insert submission: %w", err)
	}

	return created, nil
}

// GetByID implements submission.SubmissionRepository.
func (r *submissionRepositoryImpl) GetByID(ctx context.Context, id string) (submission.Submission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + submissionColumns + `
		FROM submissions s
		JOIN users u ON s.user_id = u.id
		WHERE s.id = $1
	`

	var found submission.Submission
	err := q.QueryRow(ctx, query, id).Scan(scanTargets(&found)...)
	if err != nil {
		if err == pgx.ErrNoRows {
			return submission.Submission{}, submission.ErrSubmissionNotFound
		}
		return submission.Submission{}, err
	}

	return found, nil
}

// Query implements submission.SubmissionRepository.
func (r *submissionRepositoryImpl) Query(ctx context.Context, filter submission.ListFilter) ([]submission.Submission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + submissionColumns + `
		FROM submissions s
		JOIN users u ON s.user_id = u.id
		WHERE 1=1
	`
	args := []interface{}{}
	argIndex := 1

	if filter.UserID != nil && *filter.UserID != "" {
		query += fmt.Sprintf(" AND s.user_id = $%d", argIndex)
		args = append(args, *filter.UserID)
		argIndex++
	}
	if filter.EmployeeNameLike != nil && *filter.EmployeeNameLike != "" {
		query += fmt.Sprintf(" AND (u.name ILIKE $%d OR s.employee_name ILIKE $%d)", argIndex, argIndex)
		args = append(args, "%"+*filter.EmployeeNameLike+"%")
		argIndex++
	}
	if filter.Date != nil && *filter.Date != "" {
		query += fmt.Sprintf(" AND s.date = $%d", argIndex)
		args = append(args, *filter.Date)
		argIndex++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		query += fmt.Sprintf(" AND s.date >= $%d", argIndex)
		args = append(args, *filter.StartDate)
		argIndex++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		query += fmt.Sprintf(" AND s.date <= $%d", argIndex)
		args = append(args, *filter.EndDate)
		argIndex++
	}
	if filter.Month != nil && *filter.Month != "" {
		query += fmt.Sprintf(" AND TO_CHAR(s.date, 'YYYY-MM') = $%d", argIndex)
		args = append(args, *filter.Month)
		argIndex++
	}
	if filter.EmploymentType != nil && *filter.EmploymentType != "" {
		query += fmt.Sprintf(" AND u.employment_type = $%d", argIndex)
		args = append(args, *filter.EmploymentType)
		argIndex++
	}
	if filter.ClientName != nil && *filter.ClientName != "" {
		query += fmt.Sprintf(" AND s.client_name ILIKE $%d", argIndex)
		args = append(args, "%"+*filter.ClientName+"%")
		argIndex++
	}

	direction := "DESC"
	if filter.OrderAscending {
		direction = "ASC"
	}
	query += fmt.Sprintf(" ORDER BY s.date %s, s.created_at %s", direction, direction)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	return collectSubmissions(rows)
}

// ListRecent implements submission.SubmissionRepository.
func (r *submissionRepositoryImpl) ListRecent(ctx context.Context, userID string, limit int) ([]submission.Submission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + submissionColumns + `
		FROM submissions s
		JOIN users u ON s.user_id = u.id
		WHERE s.user_id = $1
		ORDER BY s.created_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent submissions: %w", err)
	}
	defer rows.Close()

	return collectSubmissions(rows)
}

// Update implements submission.SubmissionRepository.
func (r *submissionRepositoryImpl) Update(ctx context.Context, s submission.Submission) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE submissions
		SET work_text = $1, client_category = $2, client_name = $3, work_type = $4,
		    quantity = $5, file_path = $6, date = $7, employee_name = $8
		WHERE id = $9
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		s.WorkText,
		s.ClientCategory,
		s.ClientName,
		s.WorkType,
		s.Quantity,
		s.FilePath,
		s.Date,
		s.EmployeeName,
		s.ID,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return submission.ErrSubmissionNotFound
		}
		return fmt.Errorf("failed to update submission %s: %w", s.ID, err)
	}

	return nil
}

// Delete implements submission.SubmissionRepository.
func (r *submissionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM submissions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete submission %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return submission.ErrSubmissionNotFound
	}

	return nil
}

func scanTargets(s *submission.Submission) []interface{} {
	return []interface{}{
		&s.ID,
		&s.UserID,
		&s.WorkText,
		&s.ClientCategory,
		&s.ClientName,
		&s.WorkType,
		&s.Quantity,
		&s.FilePath,
		&s.Date,
		&s.SubmissionNumber,
		&s.EmployeeName,
		&s.CreatedAt,
		&s.UserName,
		&s.UserEmail,
		&s.EmploymentType,
	}
}

func collectSubmissions(rows pgx.Rows) ([]submission.Submission, error) {
	var result []submission.Submission
	for rows.Next() {
		var s submission.Submission
		if err := rows.Scan(scanTargets(&s)...); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}
