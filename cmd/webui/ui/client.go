package ui

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrSessionExpired is returned whenever the server answers 401; the root
// model reacts by clearing the session and returning to the login view.
var ErrSessionExpired = errors.New("session expired, please log in again")

// Session is the single outbound seam to the backend: it holds the bearer
// token and attaches it to every request.
type Session struct {
	BaseURL  string
	Token    string
	UserID   string
	Username string

	http *http.Client
}

func NewSession(baseURL string) *Session {
	return &Session{BaseURL: baseURL, http: &http.Client{Timeout: 10 * time.Second}}
}

func (s *Session) LoggedIn() bool { return s.Token != "" }

func (s *Session) Clear() {
	s.Token = ""
	s.UserID = ""
	s.Username = ""
}

// do sends one request. Non-2xx responses become errors carrying the server's
// message when present; a 401 clears the session and yields ErrSessionExpired.
func (s *Session) do(method, path string, body any, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequest(method, s.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		s.Clear()
		return ErrSessionExpired
	}
	if resp.StatusCode >= 300 {
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
			return errors.New(payload.Error)
		}
		return errors.New("internal server error")
	}
	if out != nil && resp.StatusCode != http.StatusNoContent {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

type AuthResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

type Goal struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate"`
	TargetDate  time.Time `json:"targetDate"`
	TargetValue float64   `json:"targetValue"`
	Unit        string    `json:"unit"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Progress struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	GoalID    string    `json:"goalId"`
	Date      time.Time `json:"date"`
	Value     float64   `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s *Session) Signup(username, email, password string) error {
	var resp AuthResponse
	err := s.do(http.MethodPost, "/api/auth/signup", map[string]string{
		"username": username, "email": email, "password": password,
	}, &resp)
	if err != nil {
		return err
	}
	s.Token, s.UserID, s.Username = resp.Token, resp.UserID, resp.Username
	return nil
}

func (s *Session) Login(email, password string) error {
	var resp AuthResponse
	err := s.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email": email, "password": password,
	}, &resp)
	if err != nil {
		return err
	}
	s.Token, s.UserID, s.Username = resp.Token, resp.UserID, resp.Username
	return nil
}

func (s *Session) ListGoals() ([]Goal, error) {
	var goals []Goal
	path := "/api/goals?userId=" + url.QueryEscape(s.UserID)
	if err := s.do(http.MethodGet, path, nil, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

func (s *Session) CreateGoal(name, description, startDate, targetDate string, targetValue float64, unit string) (*Goal, error) {
	var g Goal
	err := s.do(http.MethodPost, "/api/goals", map[string]any{
		"userId": s.UserID, "name": name, "description": description,
		"startDate": startDate, "targetDate": targetDate,
		"targetValue": targetValue, "unit": unit,
	}, &g)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *Session) DeleteGoal(id string) error {
	return s.do(http.MethodDelete, "/api/goals/"+url.PathEscape(id), nil, nil)
}

func (s *Session) ListProgress() ([]Progress, error) {
	var entries []Progress
	path := "/api/progress?userId=" + url.QueryEscape(s.UserID)
	if err := s.do(http.MethodGet, path, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Session) CreateProgress(goalID, date string, value float64) (*Progress, error) {
	var p Progress
	err := s.do(http.MethodPost, "/api/progress", map[string]any{
		"userId": s.UserID, "goalId": goalID, "date": date, "value": value,
	}, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Session) String() string {
	if !s.LoggedIn() {
		return "not logged in"
	}
	return fmt.Sprintf("%s (%s)", s.Username, s.UserID)
}
