package dto

type CreateGoalRequest struct {
	UserID      string   `json:"userId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	StartDate   string   `json:"startDate"`
	TargetDate  string   `json:"targetDate"`
	TargetValue *float64 `json:"targetValue"`
	Unit        string   `json:"unit"`
}

// UpdateGoalRequest uses pointers so absent fields stay untouched.
type UpdateGoalRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	StartDate   *string  `json:"startDate"`
	TargetDate  *string  `json:"targetDate"`
	TargetValue *float64 `json:"targetValue"`
	Unit        *string  `json:"unit"`
}
