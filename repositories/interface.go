package repositories

import (
	"errors"

	"agroyield-server/entities"
)

// ErrNotFound is returned for any lookup that matches no record.
var ErrNotFound = errors.New("record not found")

type PredictionRepository interface {
	Create(p *entities.Prediction) error
	GetByID(id uint) (*entities.Prediction, error)
	GetByUserID(userID uint) ([]entities.Prediction, error)
	MostRecentID(userID uint) (uint, error)
}

type UserRepository interface {
	Create(u *entities.User) error
	GetByID(id uint) (*entities.User, error)
	GetByUsername(username string) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
	GetByResetToken(token string) (*entities.User, error)
	Update(u *entities.User) error
}
