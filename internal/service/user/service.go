package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/iramedia/workreport-backend-go/internal/domain/submission"
	"github.com/iramedia/workreport-backend-go/internal/domain/user"
	"github.com/iramedia/workreport-backend-go/internal/pkg/database"
	"github.com/iramedia/workreport-backend-go/internal/service/file"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	db *database.DB
	user.UserRepository
	submissions submission.SubmissionRepository
	files       file.Service
}

func NewUserService(db *database.DB, userRepository user.UserRepository, submissionRepository submission.SubmissionRepository, fileService file.Service) user.UserService {
	return &UserServiceImpl{
		db:             db,
		UserRepository: userRepository,
		submissions:    submissionRepository,
		files:          fileService,
	}
}

func (s *UserServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// nameTaken reports whether another account already uses name. The
// comparison is case-insensitive; selfID excludes the account being edited.
func (s *UserServiceImpl) nameTaken(ctx context.Context, name, selfID string) (bool, error) {
	existing, err := s.UserRepository.GetByName(ctx, name)
	if err == nil {
		return existing.ID != selfID, nil
	}
	if errors.Is(err, user.ErrUserNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check name: %w", err)
}

// CreateEmployee implements user.UserService.
func (s *UserServiceImpl) CreateEmployee(ctx context.Context, req user.CreateEmployeeRequest) (user.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return user.EmployeeResponse{}, err
	}

	_, err := s.UserRepository.GetByEmail(ctx, req.Email)
	if err == nil {
		return user.EmployeeResponse{}, user.ErrEmailExists
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return user.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}

	taken, err := s.nameTaken(ctx, req.Name, "")
	if err != nil {
		return user.EmployeeResponse{}, err
	}
	if taken {
		return user.EmployeeResponse{}, user.ErrNameExists
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return user.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		Name:           req.Name,
		Email:          req.Email,
		PasswordHash:   hash,
		Role:           user.RoleEmployee,
		EmploymentType: user.EmploymentType(req.EmploymentType),
	})
	if err != nil {
		return user.EmployeeResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user.ToEmployeeResponse(created), nil
}

// ListEmployees implements user.UserService.
func (s *UserServiceImpl) ListEmployees(ctx context.Context, filter user.ListEmployeesFilter) ([]user.EmployeeResponse, error) {
	users, err := s.UserRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]user.EmployeeResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToEmployeeResponse(u))
	}
	return responses, nil
}

// GetEmployee implements user.UserService.
func (s *UserServiceImpl) GetEmployee(ctx context.Context, id string) (user.EmployeeResponse, error) {
	found, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.EmployeeResponse{}, err
	}
	return user.ToEmployeeResponse(found), nil
}

// UpdateEmployee implements user.UserService.
func (s *UserServiceImpl) UpdateEmployee(ctx context.Context, req user.UpdateEmployeeRequest) (user.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return user.EmployeeResponse{}, err
	}

	current, err := s.UserRepository.GetByID(ctx, req.ID)
	if err != nil {
		return user.EmployeeResponse{}, err
	}

	if req.Email != current.Email {
		existing, err := s.UserRepository.GetByEmail(ctx, req.Email)
		if err == nil && existing.ID != current.ID {
			return user.EmployeeResponse{}, user.ErrEmailExists
		}
		if err != nil && !errors.Is(err, user.ErrUserNotFound) {
			return user.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
		}
	}

	taken, err := s.nameTaken(ctx, req.Name, current.ID)
	if err != nil {
		return user.EmployeeResponse{}, err
	}
	if taken {
		return user.EmployeeResponse{}, user.ErrNameExists
	}

	current.Name = req.Name
	current.Email = req.Email
	if req.EmploymentType != "" {
		current.EmploymentType = user.EmploymentType(req.EmploymentType)
	}
	if req.Password != "" {
		hash, err := s.hashPassword(req.Password)
		if err != nil {
			return user.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		current.PasswordHash = hash
	}

	if err := s.UserRepository.Update(ctx, current); err != nil {
		return user.EmployeeResponse{}, err
	}

	return user.ToEmployeeResponse(current), nil
}

// DeleteEmployee implements user.UserService. The store cascades the
// delete to the employee's submissions; their attachment files are
// removed best-effort afterwards.
func (s *UserServiceImpl) DeleteEmployee(ctx context.Context, actorID string, id string) error {
	if actorID == id {
		return user.ErrCannotDeleteSelf
	}

	target, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if target.IsAdmin() {
		return user.ErrCannotDeleteAdmin
	}

	subs, err := s.submissions.Query(ctx, submission.ListFilter{UserID: &id})
	if err != nil {
		return fmt.Errorf("failed to list submissions for delete: %w", err)
	}

	if err := s.UserRepository.Delete(ctx, id); err != nil {
		return err
	}

	for _, sub := range subs {
		if sub.FilePath != nil && *sub.FilePath != "" {
			s.files.Remove(ctx, *sub.FilePath)
		}
	}
	return nil
}

// GetProfile implements user.UserService.
func (s *UserServiceImpl) GetProfile(ctx context.Context, id string) (user.EmployeeResponse, error) {
	return s.GetEmployee(ctx, id)
}

// UpdateProfile implements user.UserService. The caller can change their
// own name and password only.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, id string, req user.UpdateProfileRequest) (user.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return user.EmployeeResponse{}, err
	}

	current, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.EmployeeResponse{}, err
	}

	taken, err := s.nameTaken(ctx, req.Name, current.ID)
	if err != nil {
		return user.EmployeeResponse{}, err
	}
	if taken {
		return user.EmployeeResponse{}, user.ErrNameExists
	}

	current.Name = req.Name
	if req.Password != "" {
		hash, err := s.hashPassword(req.Password)
		if err != nil {
			return user.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		current.PasswordHash = hash
	}

	if err := s.UserRepository.Update(ctx, current); err != nil {
		return user.EmployeeResponse{}, err
	}

	return user.ToEmployeeResponse(current), nil
}

// EnsureDefaultAdmin implements user.UserService.
func (s *UserServiceImpl) EnsureDefaultAdmin(ctx context.Context, name, email, password string) error {
	count, err := s.UserRepository.CountAdmins(ctx)
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = s.UserRepository.Create(ctx, user.User{
		Name:           name,
		Email:          email,
		PasswordHash:   hash,
		Role:           user.RoleAdmin,
		EmploymentType: user.EmploymentInhouse,
	})
	if err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}
	return nil
}
