package repositories

import (
	"errors"

	"agroyield-server/db"
	"agroyield-server/entities"

	"gorm.io/gorm"
)

type userGormRepository struct {
	db db.Database
}

func NewUserGormRepository(database db.Database) UserRepository {
	return &userGormRepository{db: database}
}

func (r *userGormRepository) Create(u *entities.User) error {
	return r.db.GetDB().Create(u).Error
}

func (r *userGormRepository) GetByID(id uint) (*entities.User, error) {
	return r.firstWhere("id = ?", id)
}

func (r *userGormRepository) GetByUsername(username string) (*entities.User, error) {
	return r.firstWhere("username = ?", username)
}

func (r *userGormRepository) GetByEmail(email string) (*entities.User, error) {
	return r.firstWhere("email = ?", email)
}

func (r *userGormRepository) GetByResetToken(token string) (*entities.User, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	return r.firstWhere("reset_token = ?", token)
}

func (r *userGormRepository) Update(u *entities.User) error {
	return r.db.GetDB().Save(u).Error
}

func (r *userGormRepository) firstWhere(query string, args ...interface{}) (*entities.User, error) {
	var u entities.User
	err := r.db.GetDB().Where(query, args...).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
