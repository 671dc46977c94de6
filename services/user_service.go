package services

import (
	"errors"
	"fmt"
	"strings"

	"scrawl-notes/scrawl/database"
	"scrawl-notes/scrawl/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserServiceInterface interface {
	CreateUser(db *database.Database, userData map[string]interface{}) (models.User, error)
	GetUserById(db *database.Database, id string) (models.User, error)
}

type UserService struct {
	authService AuthServiceInterface
}

func NewUserService(authService AuthServiceInterface) *UserService {
	return &UserService{authService: authService}
}

const (
	passwordMinLength = 8
	passwordMaxLength = 72
)

// validateSignup enforces the signup contract on the raw payload: username and
// password must be present, string-typed, free of leading/trailing whitespace,
// and sized; fullname is optional but must be a string when present. The raw
// map is inspected (rather than a bound struct) so a wrong type is reported
// as such instead of failing JSON binding wholesale.
func validateSignup(userData map[string]interface{}) (username, password, fullname string, err error) {
	for _, field := range []string{"username", "password"} {
		if _, present := userData[field]; !present {
			return "", "", "", fmt.Errorf("%w: %s", ErrMissingField, field)
		}
	}

	for _, field := range []string{"username", "password", "fullname"} {
		raw, present := userData[field]
		if !present {
			continue
		}
		if _, ok := raw.(string); !ok {
			return "", "", "", fmt.Errorf("%w: %s must be of type string", ErrValidation, field)
		}
	}

	username = userData["username"].(string)
	password = userData["password"].(string)
	fullname, _ = userData["fullname"].(string)

	for _, field := range []struct{ name, value string }{
		{"username", username},
		{"password", password},
	} {
		if strings.TrimSpace(field.value) != field.value {
			return "", "", "", fmt.Errorf("%w: %s cannot begin or end with whitespace", ErrValidation, field.name)
		}
	}

	if len(username) < 1 {
		return "", "", "", fmt.Errorf("%w: username must be at least 1 character long", ErrValidation)
	}
	if len(password) < passwordMinLength {
		return "", "", "", fmt.Errorf("%w: password must be at least %d characters long", ErrValidation, passwordMinLength)
	}
	if len(password) > passwordMaxLength {
		return "", "", "", fmt.Errorf("%w: password must be at most %d characters long", ErrValidation, passwordMaxLength)
	}

	return username, password, fullname, nil
}

func (s *UserService) CreateUser(db *database.Database, userData map[string]interface{}) (models.User, error) {
	username, password, fullname, err := validateSignup(userData)
	if err != nil {
		return models.User{}, err
	}

	digest, err := s.authService.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:           uuid.New(),
		Username:     username,
		FullName:     fullname,
		PasswordHash: digest,
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.User{}, tx.Error
	}

	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		if errors.Is(database.TranslateError(err), database.ErrDuplicateKey) {
			return models.User{}, ErrUserExists
		}
		return models.User{}, err
	}

	event, err := models.NewEvent(
		"user.created",
		"user",
		user.ID,
		map[string]interface{}{
			"user_id":  user.ID.String(),
			"username": user.Username,
		},
	)
	if err != nil {
		tx.Rollback()
		return models.User{}, err
	}

	if err := tx.Create(event).Error; err != nil {
		tx.Rollback()
		return models.User{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.User{}, err
	}

	return user, nil
}

func (s *UserService) GetUserById(db *database.Database, id string) (models.User, error) {
	if !IsValidID(id) {
		return models.User{}, ErrInvalidID
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

var UserServiceInstance UserServiceInterface
