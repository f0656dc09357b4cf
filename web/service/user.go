package service

import (
	"net/mail"
	"time"

	"techblog/database"
	"techblog/database/model"
	"techblog/logger"
	"techblog/util/common"
	"techblog/util/crypto"
)

const minPasswordLength = 4

// UserService owns user credentials. Every path that sets a password goes
// through hashPassword, so a plaintext secret is never persisted or logged.
type UserService struct{}

// SignUp validates the input, hashes the password, and creates the user.
func (s *UserService) SignUp(username, email, password string) (*model.User, error) {
	if username == "" {
		return nil, common.NewValidationf("username can not be empty")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, common.NewValidationf("invalid email address %q", email)
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return nil, err
	}

	db := database.GetDB()

	var existing int64
	if err := db.Model(&model.User{}).Where("email = ?", email).Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, common.NewValidationf("email %q already registered", email)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}

	logger.Infof("user %s signed up", username)
	return user, nil
}

// CheckUser verifies credentials at login. Returns the user on success and nil
// on unknown email or password mismatch; a mismatch is never an error.
func (s *UserService) CheckUser(email string, password string) *model.User {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("email = ?", email).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil
	}

	if !crypto.CheckPasswordHash(user.PasswordHash, password) {
		return nil
	}
	return user
}

// UpdatePassword replaces the stored hash for the user. The previous password
// stops verifying as soon as the update commits.
func (s *UserService) UpdatePassword(id int, password string) error {
	hash, err := s.hashPassword(password)
	if err != nil {
		return err
	}

	db := database.GetDB()

	result := db.Model(model.User{}).
		Where("id = ?", id).
		Update("password_hash", hash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.NewNotFoundf("user %d", id)
	}
	return nil
}

// GetUser fetches a user by id.
func (s *UserService) GetUser(id int) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).Where("id = ?", id).First(user).Error
	if database.IsNotFound(err) {
		return nil, common.NewNotFoundf("user %d", id)
	} else if err != nil {
		return nil, err
	}
	return user, nil
}

// hashPassword enforces the minimum length and derives the bcrypt hash. This is
// the only way a password value reaches storage.
func (s *UserService) hashPassword(password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", common.NewValidationf("password must be at least %d characters", minPasswordLength)
	}
	start := time.Now()
	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return "", err
	}
	logger.Debugf("password hashed in %s", time.Since(start))
	return hash, nil
}
