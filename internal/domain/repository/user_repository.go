package repository

import "github.com/jhoicas/stockmaster-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByLoginID(loginID string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	UpdatePassword(userID, passwordHash string) error
}
