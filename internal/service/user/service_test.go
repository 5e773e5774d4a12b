package user

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/iramedia/workreport-backend-go/internal/domain/user"
	"github.com/iramedia/workreport-backend-go/internal/pkg/database"
	"github.com/iramedia/workreport-backend-go/internal/pkg/storage"
	"github.com/iramedia/workreport-backend-go/internal/repository/postgresql"
	"github.com/iramedia/workreport-backend-go/internal/service/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

func testService(t *testing.T) (user.UserService, storage.FileStorage) {
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

	userRepo := postgresql.NewUserRepository(testDB)
	submissionRepo := postgresql.NewSubmissionRepository(testDB)
	svc := NewUserService(testDB, userRepo, submissionRepo, file.NewFileService(fileStorage))
	return svc, fileStorage
}

func truncateTables(t *testing.T, ctx context.Context) {
	t.Helper()
	for _, table := range []string{"submissions", "refresh_tokens", "users"} {
		_, err := testDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createReq(name, email string) user.CreateEmployeeRequest {
	return user.CreateEmployeeRequest{
		Name:           name,
		Email:          email,
		Password:       "password123",
		EmploymentType: string(user.EmploymentFreelancer),
	}
}

func TestCreateEmployee_RejectsDuplicateName(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	_, err := svc.CreateEmployee(ctx, createReq("John Doe", "john@example.com"))
	require.NoError(t, err)

	_, err = svc.CreateEmployee(ctx, createReq("john DOE", "other@example.com"))
	assert.ErrorIs(t, err, user.ErrNameExists)
}

func TestCreateEmployee_RejectsDuplicateEmail(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	_, err := svc.CreateEmployee(ctx, createReq("Jane Roe", "jane@example.com"))
	require.NoError(t, err)

	_, err = svc.CreateEmployee(ctx, createReq("Someone Else", "JANE@example.com"))
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestUpdateProfile_NameUniqueness(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	_, err := svc.CreateEmployee(ctx, createReq("First User", "first@example.com"))
	require.NoError(t, err)
	second, err := svc.CreateEmployee(ctx, createReq("Second User", "second@example.com"))
	require.NoError(t, err)

	_, err = svc.UpdateProfile(ctx, second.ID, user.UpdateProfileRequest{Name: "first user"})
	assert.ErrorIs(t, err, user.ErrNameExists)

	// Re-casing your own name is not a collision.
	updated, err := svc.UpdateProfile(ctx, second.ID, user.UpdateProfileRequest{Name: "SECOND user"})
	require.NoError(t, err)
	assert.Equal(t, "SECOND user", updated.Name)
}

func TestUpdateEmployee_RejectsTakenName(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	_, err := svc.CreateEmployee(ctx, createReq("Taken Name", "taken@example.com"))
	require.NoError(t, err)
	target, err := svc.CreateEmployee(ctx, createReq("Target User", "target@example.com"))
	require.NoError(t, err)

	_, err = svc.UpdateEmployee(ctx, user.UpdateEmployeeRequest{
		ID:    target.ID,
		Name:  "taken name",
		Email: "target@example.com",
	})
	assert.ErrorIs(t, err, user.ErrNameExists)
}

func TestDeleteEmployee_RemovesAttachmentFiles(t *testing.T) {
	svc, fileStorage := testService(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	admin, err := svc.CreateEmployee(ctx, createReq("Admin Actor", "actor@example.com"))
	require.NoError(t, err)
	target, err := svc.CreateEmployee(ctx, createReq("Leaving Soon", "leaving@example.com"))
	require.NoError(t, err)

	path, err := fileStorage.Upload(ctx, strings.NewReader("attachment body"), "report.txt")
	require.NoError(t, err)

	_, err = testDB.Exec(ctx, `
		INSERT INTO submissions (user_id, work_text, client_name, work_type, quantity, file_path, date, submission_number)
		VALUES ($1, 'work', 'Acme', 'Poster', 1, $2, CURRENT_DATE, 1)
	`, target.ID, path)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEmployee(ctx, admin.ID, target.ID))

	_, err = svc.GetEmployee(ctx, target.ID)
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	exists, err := fileStorage.Exists(ctx, path)
	require.NoError(t, err)
	assert.False(t, exists, "attachment should be cleaned up with the account")
}
