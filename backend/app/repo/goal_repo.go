package repo

import (
	"trackfitnessgoals/backend/app/models"

	"gorm.io/gorm"
)

type GoalRepository struct{ db *gorm.DB }

func NewGoalRepository(db *gorm.DB) *GoalRepository { return &GoalRepository{db: db} }

func (r *GoalRepository) Create(g *models.Goal) error { return r.db.Create(g).Error }

func (r *GoalRepository) FindByID(id string) (*models.Goal, error) {
	var g models.Goal
	if err := r.db.Where("id = ?", id).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GoalRepository) List(userID string) ([]models.Goal, error) {
	var goals []models.Goal
	q := r.db.Order("created_at DESC")
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	return goals, q.Find(&goals).Error
}

func (r *GoalRepository) Update(id string, updates map[string]any) error {
	return r.db.Model(&models.Goal{}).Where("id = ?", id).Updates(updates).Error
}

func (r *GoalRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&models.Goal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
