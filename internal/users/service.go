package users

import (
	"errors"
	"strings"

	"mundebate-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrMissingFields     = errors.New("usuario, contraseña y rol son obligatorios")
	ErrInvalidRole       = errors.New("rol inválido")
	ErrDuplicateUsername = errors.New("el nombre de usuario ya existe")
	ErrNotFound          = errors.New("usuario no encontrado")
	ErrProtectedUser     = errors.New("el usuario admin no puede eliminarse")
)

type UpdateInput struct {
	Username *string          `json:"username"`
	Password *string          `json:"password"`
	Role     *models.UserRole `json:"role"`
	IsActive *bool            `json:"is_active"`
}

func List(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	err := db.Order("id asc").Find(&users).Error
	return users, err
}

func Create(db *gorm.DB, username, password string, role models.UserRole) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" || role == "" {
		return nil, ErrMissingFields
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateUsername
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	return &user, nil
}

func Update(db *gorm.DB, id uint, in UpdateInput) (*models.User, error) {
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if in.Username != nil {
		username := strings.TrimSpace(*in.Username)
		if username == "" {
			return nil, ErrMissingFields
		}
		var count int64
		if err := db.Model(&models.User{}).
			Where("username = ? AND id <> ?", username, id).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrDuplicateUsername
		}
		user.Username = username
	}

	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if in.Role != nil {
		if !in.Role.Valid() {
			return nil, ErrInvalidRole
		}
		user.Role = *in.Role
	}

	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}

	if err := db.Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	return &user, nil
}

func Delete(db *gorm.DB, id uint) error {
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	// La cuenta admin de arranque no se toca, pase lo que pase.
	if user.Username == "admin" {
		return ErrProtectedUser
	}

	return db.Delete(&user).Error
}
