package services

import (
	"fmt"
	"testing"

	"trackfitnessgoals/backend/app/models"
	"trackfitnessgoals/backend/app/repo"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testDB opens a fresh in-memory database per test.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.Goal{}, &models.Progress{}))
	return gdb
}

type fixture struct {
	users    *UserService
	goals    *GoalService
	progress *ProgressService
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	gdb := testDB(t)
	userRepo := repo.NewUserRepository(gdb)
	goalRepo := repo.NewGoalRepository(gdb)
	progressRepo := repo.NewProgressRepository(gdb)
	return fixture{
		users:    NewUserService(userRepo),
		goals:    NewGoalService(goalRepo, userRepo),
		progress: NewProgressService(progressRepo, goalRepo, userRepo),
	}
}

func (f fixture) signup(t *testing.T, username, email string) *models.User {
	t.Helper()
	u, err := f.users.Signup(username, email, "secret1")
	require.NoError(t, err)
	return u
}

func float(v float64) *float64 { return &v }

func str(s string) *string { return &s }
