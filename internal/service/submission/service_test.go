package submission

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/iramedia/workreport-backend-go/internal/domain/submission"
	"github.com/iramedia/workreport-backend-go/internal/pkg/database"
	"github.com/iramedia/workreport-backend-go/internal/pkg/storage"
	"github.com/iramedia/workreport-backend-go/internal/pkg/validator"
	"github.com/iramedia/workreport-backend-go/internal/repository/postgresql"
	"github.com/iramedia/workreport-backend-go/internal/service/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

func testService(t *testing.T) submission.SubmissionService {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	if testDB == nil {
		var err error
		testDB, err = database.NewPostgreSQLDB(dsn)
		require.NoError(t, err, "failed to connect to test database")
	}

	fileStorage, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	repo := postgresql.NewSubmissionRepository(testDB)
	return NewSubmissionService(testDB, repo, file.NewFileService(fileStorage))
}

func truncateTables(t *testing.T, ctx context.Context) {
	t.Helper()
	for _, table := range []string{"submissions", "refresh_tokens", "users"} {
		_, err := testDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createTestUser(t *testing.T, ctx context.Context, email string) string {
	t.Helper()
	var userID string
	err := testDB.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash, role, employment_type)
		VALUES ($1, $1, 'x', 'employee', 'freelancer')
		RETURNING id
	`, email).Scan(&userID)
	require.NoError(t, err)
	return userID
}

func submitReq(workText string) submission.SubmitRequest {
	return submission.SubmitRequest{
		WorkText:   workText,
		ClientName: "Acme",
		WorkType:   "Poster",
	}
}

func TestSubmit_AssignsSequentialNumbers(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	userID := createTestUser(t, ctx, "seq@example.com")
	actor := submission.Actor{UserID: userID}

	first, err := svc.Submit(ctx, actor, submitReq("first task"))
	require.NoError(t, err)
	assert.Equal(t, 1, first.SubmissionNumber)

	second, err := svc.Submit(ctx, actor, submitReq("second task"))
	require.NoError(t, err)
	assert.Equal(t, 2, second.SubmissionNumber)
}

func TestSubmit_RejectsDuplicate(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	userID := createTestUser(t, ctx, "dup@example.com")
	actor := submission.Actor{UserID: userID}

	_, err := svc.Submit(ctx, actor, submitReq("same task"))
	require.NoError(t, err)

	_, err = svc.Submit(ctx, actor, submitReq("same task"))
	assert.ErrorIs(t, err, submission.ErrDuplicateSubmission)
}

func TestSubmit_DuplicateCheckIsCaseInsensitive(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	userID := createTestUser(t, ctx, "ci@example.com")
	actor := submission.Actor{UserID: userID}

	_, err := svc.Submit(ctx, actor, submitReq("Design Work"))
	require.NoError(t, err)

	_, err = svc.Submit(ctx, actor, submitReq("  design work "))
	assert.ErrorIs(t, err, submission.ErrDuplicateSubmission)
}

func TestSubmit_SameTextOnDifferentDayAllowed(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	userID := createTestUser(t, ctx, "days@example.com")
	actor := submission.Actor{UserID: userID}

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	req := submitReq("recurring task")
	req.Date = yesterday
	first, err := svc.Submit(ctx, actor, req)
	require.NoError(t, err)
	assert.Equal(t, 1, first.SubmissionNumber)

	second, err := svc.Submit(ctx, actor, submitReq("recurring task"))
	require.NoError(t, err)
	// Numbering restarts per day.
	assert.Equal(t, 1, second.SubmissionNumber)
}

func TestSubmit_ConcurrentDuplicatesYieldOneRow(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	userID := createTestUser(t, ctx, "race@example.com")
	actor := submission.Actor{UserID: userID}

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Submit(ctx, actor, submitReq("racy task"))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, submission.ErrDuplicateSubmission)
		}
	}
	assert.Equal(t, 1, succeeded)

	var count int
	err := testDB.QueryRow(ctx, `SELECT COUNT(*) FROM submissions WHERE user_id = $1`, userID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSubmit_ConcurrentDistinctGetDistinctNumbers(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	userID := createTestUser(t, ctx, "numbers@example.com")
	actor := submission.Actor{UserID: userID}

	const attempts = 6
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Submit(ctx, actor, submitReq(fmt.Sprintf("task %d", i)))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	rows, err := testDB.Query(ctx, `SELECT submission_number FROM submissions WHERE user_id = $1 ORDER BY submission_number`, userID)
	require.NoError(t, err)
	defer rows.Close()

	var numbers []int
	for rows.Next() {
		var n int
		require.NoError(t, rows.Scan(&n))
		numbers = append(numbers, n)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, numbers)
}

func TestDelete_LeavesNumberingGap(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	userID := createTestUser(t, ctx, "gap@example.com")
	actor := submission.Actor{UserID: userID}

	first, err := svc.Submit(ctx, actor, submitReq("one"))
	require.NoError(t, err)
	_, err = svc.Submit(ctx, actor, submitReq("two"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, actor, first.ID))

	// The next submit reuses the day's count, siblings keep their numbers.
	third, err := svc.Submit(ctx, actor, submitReq("three"))
	require.NoError(t, err)
	assert.Equal(t, 2, third.SubmissionNumber)

	remaining, err := svc.ListToday(ctx, actor)
	require.NoError(t, err)
	require.Len(t, remaining, 2)
}

func TestSubmit_RejectsFutureDate(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	userID := createTestUser(t, ctx, "future@example.com")
	actor := submission.Actor{UserID: userID}

	req := submitReq("tomorrow's work")
	req.Date = time.Now().AddDate(0, 0, 2).Format("2006-01-02")
	_, err := svc.Submit(ctx, actor, req)
	assert.Error(t, err)
}

func TestAccessControl_NonOwnerDenied(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	ownerID := createTestUser(t, ctx, "owner@example.com")
	otherID := createTestUser(t, ctx, "other@example.com")

	created, err := svc.Submit(ctx, submission.Actor{UserID: ownerID}, submitReq("private work"))
	require.NoError(t, err)

	_, err = svc.Get(ctx, submission.Actor{UserID: otherID}, created.ID)
	assert.ErrorIs(t, err, submission.ErrAccessDenied)

	// Admins see everything.
	_, err = svc.Get(ctx, submission.Actor{UserID: otherID, IsAdmin: true}, created.ID)
	assert.NoError(t, err)
}

func TestSubmit_AdminMustNameEmployee(t *testing.T) {
	// The gate sits before any storage work, no database needed.
	svc := NewSubmissionService(nil, nil, nil)

	actor := submission.Actor{UserID: "admin-1", IsAdmin: true}
	_, err := svc.Submit(context.Background(), actor, submitReq("ghost written"))

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "employee_name", verrs[0].Field)
}

func TestSubmit_AdminOnBehalfCarriesEmployeeName(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	adminID := createTestUser(t, ctx, "admin@example.com")
	actor := submission.Actor{UserID: adminID, IsAdmin: true}

	name := "Freelance Ghost"
	req := submitReq("on behalf work")
	req.EmployeeName = &name

	created, err := svc.Submit(ctx, actor, req)
	require.NoError(t, err)
	assert.Equal(t, "Freelance Ghost", created.EmployeeName)
}

func TestList_AscendingOrderForMonthlyViews(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	userID := createTestUser(t, ctx, "order@example.com")
	actor := submission.Actor{UserID: userID}

	earlier := submitReq("older entry")
	earlier.Date = time.Now().AddDate(0, 0, -3).Format("2006-01-02")
	_, err := svc.Submit(ctx, actor, earlier)
	require.NoError(t, err)
	_, err = svc.Submit(ctx, actor, submitReq("newer entry"))
	require.NoError(t, err)

	admin := submission.Actor{UserID: userID, IsAdmin: true}

	newestFirst, err := svc.List(ctx, admin, submission.ListFilter{UserID: &userID})
	require.NoError(t, err)
	require.Len(t, newestFirst, 2)
	assert.Equal(t, "newer entry", newestFirst[0].WorkText)

	oldestFirst, err := svc.List(ctx, admin, submission.ListFilter{UserID: &userID, OrderAscending: true})
	require.NoError(t, err)
	require.Len(t, oldestFirst, 2)
	assert.Equal(t, "older entry", oldestFirst[0].WorkText)
}
