// services/user_service.go
package services

import (
	"errors"
	"strings"
	"time"

	"hotel-booking-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"fullName" binding:"required"`
	Gender   string `json:"gender" binding:"required"`
}

// Register creates an account with the given role. Public signup passes
// Customer; admins create staff via RegisterStaff.
func (s *UserService) Register(req *RegisterRequest, role string) (*models.User, error) {
	user, err := models.NewUser(req.Email, req.Password, req.FullName, req.Gender, role)
	if err != nil {
		return nil, ErrValidation.WithMessagef("%s", err.Error())
	}
	if err := s.DB.Create(user).Error; err != nil {
		if isDuplicateEntry(err) {
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, err
	}
	return user, nil
}

// Authenticate returns the user when email+password match an active account.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ? AND status = ?", email, true).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound.WithMessagef("user with id %d doesn't exist", id)
		}
		return nil, err
	}
	return &user, nil
}

type CreateStaffRequest struct {
	RegisterRequest
	Salary *int64 `json:"salary"`
}

// RegisterStaff creates a Staff account with an optional salary. Admin only,
// enforced at the route.
func (s *UserService) RegisterStaff(req *CreateStaffRequest) (*models.User, error) {
	user, err := models.NewUser(req.Email, req.Password, req.FullName, req.Gender, models.RoleStaff)
	if err != nil {
		return nil, ErrValidation.WithMessagef("%s", err.Error())
	}
	if req.Salary != nil && *req.Salary < 0 {
		return nil, ErrValidation.WithMessagef("salary must not be negative")
	}
	user.Salary = req.Salary
	if err := s.DB.Create(user).Error; err != nil {
		if isDuplicateEntry(err) {
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, err
	}
	return user, nil
}

type UserFilter struct {
	Email    string
	FullName string // substring, case-insensitive
	Gender   string
	Status   *bool
	Roles    []string
}

// List returns users matching the filter, ascending by id.
func (s *UserService) List(f UserFilter) ([]models.User, error) {
	q := s.DB.Model(&models.User{})
	if len(f.Roles) > 0 {
		q = q.Where("role IN ?", f.Roles)
	}
	if f.Email != "" {
		q = q.Where("email = ?", strings.ToLower(strings.TrimSpace(f.Email)))
	}
	if f.FullName != "" {
		q = q.Where("LOWER(full_name) LIKE ?", "%"+strings.ToLower(f.FullName)+"%")
	}
	if f.Gender != "" {
		q = q.Where("gender = ?", f.Gender)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	var users []models.User
	if err := q.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Get returns one user holding one of the given roles. A customer may read
// only their own record; staff records are visible to admins and themselves.
func (s *UserService) Get(actor Actor, id uint, roles []string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("id = ? AND role IN ?", id, roles).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound.WithMessagef("user with id %d doesn't exist", id)
		}
		return nil, err
	}
	if err := canEditUser(actor, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

type UpdateUserRequest struct {
	Password    *string    `json:"password"`
	FullName    *string    `json:"fullName"`
	Gender      *string    `json:"gender"`
	BirthDate   *time.Time `json:"birthDate"`
	PhoneNumber *string    `json:"phoneNumber"`
	Salary      *int64     `json:"salary"`
	Point       *int64     `json:"point"`
}

// canEditUser mirrors the per-role visibility rules: customers are reachable
// by staff, admins and themselves; staff only by admins and themselves.
func canEditUser(actor Actor, target *models.User) error {
	if models.IsElevatedRole(target.Role) {
		if actor.Role != models.RoleAdmin && actor.UserID != target.ID {
			return ErrForbidden
		}
		return nil
	}
	if !actor.CanActOn(target.ID) {
		return ErrForbidden
	}
	return nil
}

// Update applies a partial profile update. Common fields follow canEditUser;
// point is staff/admin-only on customers, salary admin-only on staff.
func (s *UserService) Update(actor Actor, id uint, roles []string, req *UpdateUserRequest) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("id = ? AND role IN ?", id, roles).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound.WithMessagef("user with id %d doesn't exist", id)
		}
		return nil, err
	}
	if err := canEditUser(actor, &user); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}

	if req.Password != nil {
		if len(*req.Password) < 8 {
			return nil, ErrValidation.WithMessagef("password must be at least 8 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password"] = string(hash)
	}
	if req.FullName != nil {
		if strings.TrimSpace(*req.FullName) == "" {
			return nil, ErrValidation.WithMessagef("fullName must not be empty")
		}
		updates["full_name"] = strings.TrimSpace(*req.FullName)
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if req.BirthDate != nil {
		updates["birth_date"] = *req.BirthDate
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}

	if req.Point != nil {
		if !models.IsCustomerRole(user.Role) || !models.IsElevatedRole(actor.Role) {
			return nil, ErrForbidden
		}
		if *req.Point < 0 {
			return nil, ErrValidation.WithMessagef("point must not be negative")
		}
		updates["point"] = *req.Point
	}
	if req.Salary != nil {
		if !models.IsElevatedRole(user.Role) || actor.Role != models.RoleAdmin {
			return nil, ErrForbidden
		}
		if *req.Salary < 0 {
			return nil, ErrValidation.WithMessagef("salary must not be negative")
		}
		updates["salary"] = *req.Salary
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &user, nil
}
