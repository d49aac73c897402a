package services

import (
	"errors"
	"testing"

	"trackfitnessgoals/backend/app/dto"
	"trackfitnessgoals/backend/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f fixture) createGoal(t *testing.T, userID string) *models.Goal {
	t.Helper()
	g, err := f.goals.Create(validGoalReq(userID))
	require.NoError(t, err)
	return g
}

func TestProgressCreateAndGet(t *testing.T) {
	f := newFixture(t)
	u := f.signup(t, "alice", "a@x.com")
	g := f.createGoal(t, u.ID)

	created, err := f.progress.Create(dto.CreateProgressRequest{
		UserID: u.ID, GoalID: g.ID, Date: "2026-03-15", Value: float(5),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := f.progress.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, g.ID, got.GoalID)
	assert.Equal(t, u.ID, got.UserID)
	assert.Equal(t, 5.0, got.Value)
}

func TestProgressCreateValidation(t *testing.T) {
	f := newFixture(t)
	u := f.signup(t, "alice", "a@x.com")
	g := f.createGoal(t, u.ID)

	cases := []struct {
		name string
		req  dto.CreateProgressRequest
		want string
	}{
		{"missing goalId", dto.CreateProgressRequest{UserID: u.ID, Date: "2026-03-15", Value: float(5)}, "All fields are required"},
		{"missing value", dto.CreateProgressRequest{UserID: u.ID, GoalID: g.ID, Date: "2026-03-15"}, "All fields are required"},
		{"zero value", dto.CreateProgressRequest{UserID: u.ID, GoalID: g.ID, Date: "2026-03-15", Value: float(0)}, "value must be a positive number"},
		{"negative value", dto.CreateProgressRequest{UserID: u.ID, GoalID: g.ID, Date: "2026-03-15", Value: float(-1)}, "value must be a positive number"},
		{"bad date", dto.CreateProgressRequest{UserID: u.ID, GoalID: g.ID, Date: "soon", Value: float(5)}, "Invalid date"},
		{"malformed goalId", dto.CreateProgressRequest{UserID: u.ID, GoalID: "nope", Date: "2026-03-15", Value: float(5)}, "Invalid goalId"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.progress.Create(tc.req)
			require.Error(t, err)
			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "expected validation error, got %v", err)
			assert.Equal(t, tc.want, ve.Error())
		})
	}
}

func TestProgressCreateRequiresExistingRefs(t *testing.T) {
	f := newFixture(t)
	u := f.signup(t, "alice", "a@x.com")
	g := f.createGoal(t, u.ID)
	ghost := "8d4f9a9e-0000-4000-8000-000000000001"

	_, err := f.progress.Create(dto.CreateProgressRequest{UserID: ghost, GoalID: g.ID, Date: "2026-03-15", Value: float(5)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid userId")

	_, err = f.progress.Create(dto.CreateProgressRequest{UserID: u.ID, GoalID: ghost, Date: "2026-03-15", Value: float(5)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid goalId")
}

func TestProgressPartialUpdate(t *testing.T) {
	f := newFixture(t)
	u := f.signup(t, "alice", "a@x.com")
	g := f.createGoal(t, u.ID)
	created, err := f.progress.Create(dto.CreateProgressRequest{UserID: u.ID, GoalID: g.ID, Date: "2026-03-15", Value: float(5)})
	require.NoError(t, err)

	updated, err := f.progress.Update(created.ID, dto.UpdateProgressRequest{Value: float(7.5)})
	require.NoError(t, err)
	assert.Equal(t, 7.5, updated.Value)
	assert.Equal(t, created.Date.Unix(), updated.Date.Unix())

	_, err = f.progress.Update(created.ID, dto.UpdateProgressRequest{Value: float(0)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positive number")
}

func TestProgressDeleteAbsent(t *testing.T) {
	f := newFixture(t)
	err := f.progress.Delete("8d4f9a9e-0000-4000-8000-000000000001")
	assert.ErrorIs(t, err, ErrProgressNotFound)
}

func TestGoalDeleteDoesNotCascade(t *testing.T) {
	f := newFixture(t)
	u := f.signup(t, "alice", "a@x.com")
	g := f.createGoal(t, u.ID)
	created, err := f.progress.Create(dto.CreateProgressRequest{UserID: u.ID, GoalID: g.ID, Date: "2026-03-15", Value: float(5)})
	require.NoError(t, err)

	require.NoError(t, f.goals.Delete(g.ID))

	// progress entries survive their goal
	got, err := f.progress.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, g.ID, got.GoalID)
}
