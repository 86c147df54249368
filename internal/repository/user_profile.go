package repository

import (
	"errors"

	"fitnutri/internal/models"

	"gorm.io/gorm"
)

// UserProfileRepository is the persistence collaborator for the single active
// profile. The store is ignorant of the storage medium behind it.
type UserProfileRepository interface {
	Load() (*models.UserProfile, error)
	Save(profile *models.UserProfile) error
	Delete(id string) error
}

type userProfileRepository struct {
	db *gorm.DB
}

func NewUserProfileRepository(db *gorm.DB) UserProfileRepository {
	return &userProfileRepository{db: db}
}

// Load returns the stored profile, or nil when no profile has been saved yet.
func (r *userProfileRepository) Load() (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.Order("created_at").First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *userProfileRepository) Save(profile *models.UserProfile) error {
	return r.db.Save(profile).Error
}

func (r *userProfileRepository) Delete(id string) error {
	return r.db.Unscoped().Delete(&models.UserProfile{}, "id = ?", id).Error
}
