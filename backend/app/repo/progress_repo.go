package repo

import (
	"trackfitnessgoals/backend/app/models"

	"gorm.io/gorm"
)

type ProgressRepository struct{ db *gorm.DB }

func NewProgressRepository(db *gorm.DB) *ProgressRepository { return &ProgressRepository{db: db} }

func (r *ProgressRepository) Create(p *models.Progress) error { return r.db.Create(p).Error }

func (r *ProgressRepository) FindByID(id string) (*models.Progress, error) {
	var p models.Progress
	if err := r.db.Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProgressRepository) List(userID string) ([]models.Progress, error) {
	var entries []models.Progress
	q := r.db.Order("created_at DESC")
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	return entries, q.Find(&entries).Error
}

func (r *ProgressRepository) Update(id string, updates map[string]any) error {
	return r.db.Model(&models.Progress{}).Where("id = ?", id).Updates(updates).Error
}

func (r *ProgressRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&models.Progress{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
