// internal/domain/user/service.go
package user

import (
	"fmt"
	"time"

	"github.com/your-org/warehouse-backend/internal/config"
	"github.com/your-org/warehouse-backend/internal/pkg/auth"
	"gorm.io/gorm"
)

// Service handles user business logic
type Service struct {
	db              *gorm.DB
	config          *config.Config
	passwordManager *auth.PasswordManager
	jwtManager      *auth.JWTManager
}

// NewService creates a new user service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:              db,
		config:          cfg,
		passwordManager: auth.NewPasswordManager(cfg),
		jwtManager:      auth.NewJWTManager(cfg),
	}
}

// RegisterRequest represents user registration data
type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	FirstName       string `json:"first_name" binding:"required"`
	LastName        string `json:"last_name" binding:"required"`
	Phone           string `json:"phone"`
}

// LoginRequest represents user login data
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Register creates a new staff account
func (s *Service) Register(req *RegisterRequest) (*AuthResponse, error) {
	if req.Password != req.ConfirmPassword {
		return nil, fmt.Errorf("passwords do not match")
	}

	var existingUser User
	result := s.db.Where("email = ?", req.Email).First(&existingUser)
	if result.Error == nil {
		return nil, fmt.Errorf("user with this email already exists")
	}

	hashedPassword, err := s.passwordManager.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := User{
		Email:     req.Email,
		Password:  hashedPassword,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		IsActive:  true,
		IsAdmin:   false,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.buildAuthResponse(&user)
}

// Login authenticates a user and returns tokens
func (s *Service) Login(req *LoginRequest) (*AuthResponse, error) {
	var user User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if !user.IsActive {
		return nil, fmt.Errorf("account is deactivated")
	}

	if err := s.passwordManager.VerifyPassword(req.Password, user.Password); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	now := time.Now().UTC()
	user.LastLoginAt = &now
	s.db.Model(&user).Update("last_login_at", now)

	return s.buildAuthResponse(&user)
}

// RefreshToken exchanges a refresh token for a fresh token pair
func (s *Service) RefreshToken(refreshToken string) (*AuthResponse, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token")
	}

	var user User
	if err := s.db.First(&user, claims.UserID).Error; err != nil {
		return nil, fmt.Errorf("user not found")
	}

	if !user.IsActive {
		return nil, fmt.Errorf("account is deactivated")
	}

	return s.buildAuthResponse(&user)
}

// GetProfile returns a user's profile
func (s *Service) GetProfile(userID uint) (*User, error) {
	var user User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, fmt.Errorf("user not found")
	}
	user.Password = ""
	return &user, nil
}

// UpdateProfile updates the mutable profile fields
func (s *Service) UpdateProfile(userID uint, updates map[string]interface{}) (*User, error) {
	allowed := map[string]bool{"first_name": true, "last_name": true, "phone": true}
	filtered := map[string]interface{}{}
	for key, value := range updates {
		if allowed[key] {
			filtered[key] = value
		}
	}

	if len(filtered) > 0 {
		if err := s.db.Model(&User{}).Where("id = ?", userID).Updates(filtered).Error; err != nil {
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
	}

	return s.GetProfile(userID)
}

// ChangePassword verifies the current password and stores a new one
func (s *Service) ChangePassword(userID uint, currentPassword, newPassword string) error {
	var user User
	if err := s.db.First(&user, userID).Error; err != nil {
		return fmt.Errorf("user not found")
	}

	if err := s.passwordManager.VerifyPassword(currentPassword, user.Password); err != nil {
		return fmt.Errorf("current password is incorrect")
	}

	hashedPassword, err := s.passwordManager.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Model(&user).Update("password", hashedPassword).Error; err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// SetAdmin grants or revokes the admin flag
func (s *Service) SetAdmin(userID uint, isAdmin bool) error {
	result := s.db.Model(&User{}).Where("id = ?", userID).Update("is_admin", isAdmin)
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}

// SetActive activates or deactivates an account
func (s *Service) SetActive(userID uint, isActive bool) error {
	result := s.db.Model(&User{}).Where("id = ?", userID).Update("is_active", isActive)
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}

// ListUsers returns all staff accounts
func (s *Service) ListUsers() ([]User, error) {
	var users []User
	if err := s.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

func (s *Service) buildAuthResponse(user *User) (*AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	user.Password = ""
	return &AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.config.JWT.AccessTokenExpiry.Seconds()),
	}, nil
}
