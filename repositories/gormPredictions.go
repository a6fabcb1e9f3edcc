package repositories

import (
	"errors"

	"agroyield-server/db"
	"agroyield-server/entities"

	"gorm.io/gorm"
)

type predictionGormRepository struct {
	db db.Database
}

func NewPredictionGormRepository(database db.Database) PredictionRepository {
	return &predictionGormRepository{db: database}
}

func (r *predictionGormRepository) Create(p *entities.Prediction) error {
	return r.db.GetDB().Create(p).Error
}

func (r *predictionGormRepository) GetByID(id uint) (*entities.Prediction, error) {
	var p entities.Prediction
	err := r.db.GetDB().Where("id = ?", id).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// GetByUserID returns the user's predictions newest-first.
func (r *predictionGormRepository) GetByUserID(userID uint) ([]entities.Prediction, error) {
	var records []entities.Prediction
	err := r.db.GetDB().Where("user_id = ?", userID).Order("id DESC").Find(&records).Error
	return records, err
}

// MostRecentID returns the id of the user's newest prediction.
func (r *predictionGormRepository) MostRecentID(userID uint) (uint, error) {
	var p entities.Prediction
	err := r.db.GetDB().Where("user_id = ?", userID).Order("id DESC").First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return p.ID, nil
}
