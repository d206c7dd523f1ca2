package repository

import (
	"recipehub/internal/models"

	"gorm.io/gorm"
)

type ProfileRepository interface {
	GetOrCreateByUserID(userID uint) (*models.Profile, error)
	Update(profile *models.Profile) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db}
}

// GetOrCreateByUserID creates the profile row on first access, so callers
// never see a missing profile for an existing user.
func (r *profileRepository) GetOrCreateByUserID(userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Where(models.Profile{UserID: userID}).FirstOrCreate(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Update(profile *models.Profile) error {
	return r.db.Save(profile).Error
}
