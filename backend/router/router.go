package router

import (
	"net/http"

	"trackfitnessgoals/backend/app/controllers"
	"trackfitnessgoals/backend/app/middleware"
)

func NewRouter(authCtrl *controllers.AuthController, goalCtrl *controllers.GoalController, progressCtrl *controllers.ProgressController, mw *middleware.Auth, limit func(http.Handler) http.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /ping", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("pong"))
	})

	// auth (rate limited)
	mux.Handle("POST /api/auth/signup", limit(http.HandlerFunc(authCtrl.Signup)))
	mux.Handle("POST /api/auth/login", limit(http.HandlerFunc(authCtrl.Login)))

	// goals
	mux.Handle("POST /api/goals", mw.RequireAuth(http.HandlerFunc(goalCtrl.Create)))
	mux.HandleFunc("GET /api/goals", goalCtrl.List)
	mux.HandleFunc("GET /api/goals/{id}", goalCtrl.Get)
	mux.Handle("PUT /api/goals/{id}", mw.RequireAuth(http.HandlerFunc(goalCtrl.Update)))
	mux.Handle("DELETE /api/goals/{id}", mw.RequireAuth(http.HandlerFunc(goalCtrl.Delete)))

	// progress
	mux.Handle("POST /api/progress", mw.RequireAuth(http.HandlerFunc(progressCtrl.Create)))
	mux.HandleFunc("GET /api/progress", progressCtrl.List)
	mux.HandleFunc("GET /api/progress/{id}", progressCtrl.Get)
	mux.Handle("PUT /api/progress/{id}", mw.RequireAuth(http.HandlerFunc(progressCtrl.Update)))
	mux.Handle("DELETE /api/progress/{id}", mw.RequireAuth(http.HandlerFunc(progressCtrl.Delete)))

	return mux
}
