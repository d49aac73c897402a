package initialize

import (
	"fmt"
	"net/http"

	"trackfitnessgoals/backend/app/controllers"
	"trackfitnessgoals/backend/app/db"
	jwtutil "trackfitnessgoals/backend/app/jwt"
	"trackfitnessgoals/backend/app/middleware"
	"trackfitnessgoals/backend/app/models"
	"trackfitnessgoals/backend/app/repo"
	"trackfitnessgoals/backend/app/services"
	"trackfitnessgoals/backend/config"
	"trackfitnessgoals/backend/global"
	"trackfitnessgoals/backend/router"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	Cfg         config.Config
	DB          *gorm.DB
	Router      http.Handler
	Auth        *controllers.AuthController
	Goals       *controllers.GoalController
	Progress    *controllers.ProgressController
	UserSvc     *services.UserService
	GoalSvc     *services.GoalService
	ProgressSvc *services.ProgressService
}

func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath, func() {
		global.Logger.Info().Msg("config file changed")
	})
	if err != nil {
		return nil, err
	}
	global.Config = *cfg

	gdb, err := db.Connect(db.Config{Driver: cfg.DB.Driver, Host: cfg.DB.Host, Port: cfg.DB.Port, User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name, Path: cfg.DB.Path})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	if err := gdb.AutoMigrate(&models.User{}, &models.Goal{}, &models.Progress{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	if cfg.Redis.Addr != "" {
		global.Rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	}

	// Repositories and services
	userRepo := repo.NewUserRepository(gdb)
	goalRepo := repo.NewGoalRepository(gdb)
	progressRepo := repo.NewProgressRepository(gdb)
	userSvc := services.NewUserService(userRepo)
	goalSvc := services.NewGoalService(goalRepo, userRepo)
	progressSvc := services.NewProgressService(progressRepo, goalRepo, userRepo)

	// Controllers
	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, ExpMin: cfg.JWT.ExpMin}
	authCtrl := controllers.NewAuthController(userSvc, signer)
	goalCtrl := controllers.NewGoalController(goalSvc)
	progressCtrl := controllers.NewProgressController(progressSvc)
	mw := &middleware.Auth{Signer: signer}
	limit := middleware.RateLimit(global.Rdb, cfg.AuthRateLimit)

	h := router.NewRouter(authCtrl, goalCtrl, progressCtrl, mw, limit)
	h = middleware.Logging(h)

	return &App{
		Cfg: *cfg, DB: gdb, Router: h,
		Auth: authCtrl, Goals: goalCtrl, Progress: progressCtrl,
		UserSvc: userSvc, GoalSvc: goalSvc, ProgressSvc: progressSvc,
	}, nil
}
