package service

import (
	"fmt"
	"time"

	"github.com/jdbernardo16/project-manager/internal/model"
	"github.com/jdbernardo16/project-manager/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db          *gorm.DB
	jwtSecret   string
	expireHours int
}

func NewAuthService(db *gorm.DB, jwtSecret string, expireHours int) *AuthService {
	return &AuthService{db: db, jwtSecret: jwtSecret, expireHours: expireHours}
}

type LoginResult struct {
	Token    string    `json:"token"`
	ExpireAt time.Time `json:"expire_at"`
	User     model.UserBrief
}

func (s *AuthService) Login(email, password string) (*LoginResult, error) {
	var user model.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, fmt.Errorf("40101:invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("40101:invalid email or password")
	}

	token, expireAt, err := jwt.GenerateToken(s.jwtSecret, user.ID, user.Role, s.expireHours)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &LoginResult{Token: token, ExpireAt: expireAt, User: user.Brief()}, nil
}

func (s *AuthService) GetUser(id uint) (*model.User, error) {
	var user model.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, fmt.Errorf("40401:user not found")
	}
	return &user, nil
}

func (s *AuthService) ChangePassword(userID uint, current, updated string) error {
	var user model.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return fmt.Errorf("40401:user not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)); err != nil {
		return fmt.Errorf("40102:current password is incorrect")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(updated), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.db.Model(&user).Update("password", string(hash)).Error
}

func (s *AuthService) ListUsers() ([]model.User, error) {
	var users []model.User
	if err := s.db.Order("created_at desc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *AuthService) UpdateUserRole(userID uint, role string) error {
	result := s.db.Model(&model.User{}).Where("id = ?", userID).Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("40401:user not found")
	}
	return nil
}

// SeedAdmin creates the configured admin account when the user table is
// empty, so a fresh install has a way in.
func (s *AuthService) SeedAdmin(name, email, password string) error {
	var count int64
	if err := s.db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 || email == "" {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	admin := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     model.RoleAdmin,
	}
	return s.db.Create(admin).Error
}
