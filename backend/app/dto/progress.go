package dto

type CreateProgressRequest struct {
	UserID string   `json:"userId"`
	GoalID string   `json:"goalId"`
	Date   string   `json:"date"`
	Value  *float64 `json:"value"`
}

type UpdateProgressRequest struct {
	Date  *string  `json:"date"`
	Value *float64 `json:"value"`
}
