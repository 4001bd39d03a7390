package service

import (
	"blog/database"
	"blog/database/model"
	"blog/logger"
	"blog/util/crypto"

	"gorm.io/gorm"
)

// UserService manages account records and credential checks.
type UserService struct{}

// Register creates a new account. The first account ever created becomes the
// administrator; the decision is made inside the insert transaction so two
// concurrent first registrations cannot both win. A duplicate email is
// rejected by the unique index regardless of any prior lookup.
func (s *UserService) Register(email string, password string, name string) (*model.User, error) {
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
	}

	db := database.GetDB()
	err = db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.User{}).Count(&count).Error; err != nil {
			return err
		}
		user.IsAdmin = count == 0
		return tx.Create(user).Error
	})
	if database.IsDuplicate(err) {
		return nil, ErrDuplicateEmail
	} else if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser looks an account up by id.
func (s *UserService) GetUser(id int) (*model.User, error) {
	db := database.GetDB()
	user := &model.User{}
	err := db.Model(&model.User{}).
		Where("id = ?", id).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByEmail looks an account up by its unique email.
func (s *UserService) GetUserByEmail(email string) (*model.User, error) {
	db := database.GetDB()
	user := &model.User{}
	err := db.Model(&model.User{}).
		Where("email = ?", email).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil, ErrUnknownEmail
	} else if err != nil {
		return nil, err
	}
	return user, nil
}

// CheckUser verifies the given credentials and returns the matching account.
func (s *UserService) CheckUser(email string, password string) (*model.User, error) {
	user, err := s.GetUserByEmail(email)
	if err == ErrUnknownEmail {
		return nil, err
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil, err
	}

	if !crypto.CheckPasswordHash(user.PasswordHash, password) {
		return nil, ErrBadPassword
	}
	return user, nil
}
