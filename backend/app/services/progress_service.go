package services

import (
	"errors"
	"strings"

	"trackfitnessgoals/backend/app/dto"
	"trackfitnessgoals/backend/app/models"
	"trackfitnessgoals/backend/app/repo"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressService struct {
	entries *repo.ProgressRepository
	goals   *repo.GoalRepository
	users   *repo.UserRepository
}

func NewProgressService(entries *repo.ProgressRepository, goals *repo.GoalRepository, users *repo.UserRepository) *ProgressService {
	return &ProgressService{entries: entries, goals: goals, users: users}
}

func (s *ProgressService) Create(req dto.CreateProgressRequest) (*models.Progress, error) {
	userID := strings.TrimSpace(req.UserID)
	goalID := strings.TrimSpace(req.GoalID)
	if userID == "" || goalID == "" || req.Date == "" || req.Value == nil {
		return nil, invalid("All fields are required")
	}
	if !validID(userID) {
		return nil, invalid("Invalid userId")
	}
	if !validID(goalID) {
		return nil, invalid("Invalid goalId")
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, invalid("Invalid date")
	}
	if *req.Value <= 0 {
		return nil, invalid("value must be a positive number")
	}

	if _, err := s.users.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalid("Invalid userId")
		}
		return nil, err
	}
	if _, err := s.goals.FindByID(goalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalid("Invalid goalId")
		}
		return nil, err
	}

	p := &models.Progress{ID: uuid.NewString(), UserID: userID, GoalID: goalID, Date: date, Value: *req.Value}
	if err := s.entries.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProgressService) List(userID string) ([]models.Progress, error) {
	entries, err := s.entries.List(strings.TrimSpace(userID))
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.Progress{}
	}
	return entries, nil
}

func (s *ProgressService) Get(id string) (*models.Progress, error) {
	if !validID(id) {
		return nil, invalid("Invalid progressId")
	}
	p, err := s.entries.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProgressNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *ProgressService) Update(id string, req dto.UpdateProgressRequest) (*models.Progress, error) {
	if !validID(id) {
		return nil, invalid("Invalid progressId")
	}

	updates := map[string]any{}
	if req.Date != nil && *req.Date != "" {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, invalid("Invalid date")
		}
		updates["date"] = date
	}
	if req.Value != nil {
		if *req.Value <= 0 {
			return nil, invalid("value must be a positive number")
		}
		updates["value"] = *req.Value
	}

	if _, err := s.entries.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProgressNotFound
		}
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.entries.Update(id, updates); err != nil {
			return nil, err
		}
	}
	return s.entries.FindByID(id)
}

func (s *ProgressService) Delete(id string) error {
	if !validID(id) {
		return invalid("Invalid progressId")
	}
	if err := s.entries.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProgressNotFound
		}
		return err
	}
	return nil
}
