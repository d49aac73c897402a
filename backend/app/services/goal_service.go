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

type GoalService struct {
	goals *repo.GoalRepository
	users *repo.UserRepository
}

func NewGoalService(goals *repo.GoalRepository, users *repo.UserRepository) *GoalService {
	return &GoalService{goals: goals, users: users}
}

func (s *GoalService) Create(req dto.CreateGoalRequest) (*models.Goal, error) {
	name := strings.TrimSpace(req.Name)
	userID := strings.TrimSpace(req.UserID)
	if userID == "" || name == "" || req.StartDate == "" || req.TargetDate == "" || req.TargetValue == nil || req.Unit == "" {
		return nil, invalid("All fields are required")
	}
	if !validID(userID) {
		return nil, invalid("Invalid userId")
	}
	if len(name) > 255 {
		return nil, invalid("name must be less than 255 characters")
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, invalid("Invalid startDate")
	}
	targetDate, err := parseDate(req.TargetDate)
	if err != nil {
		return nil, invalid("Invalid targetDate")
	}
	if *req.TargetValue <= 0 {
		return nil, invalid("targetValue must be a positive number")
	}
	if !validUnits[req.Unit] {
		return nil, invalid("Invalid unit")
	}

	if _, err := s.users.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalid("Invalid userId")
		}
		return nil, err
	}

	g := &models.Goal{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		StartDate:   startDate,
		TargetDate:  targetDate,
		TargetValue: *req.TargetValue,
		Unit:        req.Unit,
	}
	if err := s.goals.Create(g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *GoalService) List(userID string) ([]models.Goal, error) {
	goals, err := s.goals.List(strings.TrimSpace(userID))
	if err != nil {
		return nil, err
	}
	if goals == nil {
		goals = []models.Goal{}
	}
	return goals, nil
}

func (s *GoalService) Get(id string) (*models.Goal, error) {
	if !validID(id) {
		return nil, invalid("Invalid goalId")
	}
	g, err := s.goals.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return g, nil
}

// Update applies only the supplied fields; empty-string optional values count
// as absent.
func (s *GoalService) Update(id string, req dto.UpdateGoalRequest) (*models.Goal, error) {
	if !validID(id) {
		return nil, invalid("Invalid goalId")
	}

	updates := map[string]any{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name != "" {
			if len(name) > 255 {
				return nil, invalid("name must be less than 255 characters")
			}
			updates["name"] = name
		}
	}
	if req.Description != nil {
		if desc := strings.TrimSpace(*req.Description); desc != "" {
			updates["description"] = desc
		}
	}
	if req.StartDate != nil && *req.StartDate != "" {
		startDate, err := parseDate(*req.StartDate)
		if err != nil {
			return nil, invalid("Invalid startDate")
		}
		updates["start_date"] = startDate
	}
	if req.TargetDate != nil && *req.TargetDate != "" {
		targetDate, err := parseDate(*req.TargetDate)
		if err != nil {
			return nil, invalid("Invalid targetDate")
		}
		updates["target_date"] = targetDate
	}
	if req.TargetValue != nil {
		if *req.TargetValue <= 0 {
			return nil, invalid("targetValue must be a positive number")
		}
		updates["target_value"] = *req.TargetValue
	}
	if req.Unit != nil && *req.Unit != "" {
		if !validUnits[*req.Unit] {
			return nil, invalid("Invalid unit")
		}
		updates["unit"] = *req.Unit
	}

	if _, err := s.goals.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.goals.Update(id, updates); err != nil {
			return nil, err
		}
	}
	return s.goals.FindByID(id)
}

func (s *GoalService) Delete(id string) error {
	if !validID(id) {
		return invalid("Invalid goalId")
	}
	if err := s.goals.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGoalNotFound
		}
		return err
	}
	return nil
}
