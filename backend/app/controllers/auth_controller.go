package controllers

import (
	"encoding/json"
	"net/http"

	"trackfitnessgoals/backend/app/dto"
	jwtutil "trackfitnessgoals/backend/app/jwt"
	"trackfitnessgoals/backend/app/services"
	"trackfitnessgoals/backend/global"
)

type AuthController struct {
	Users  *services.UserService
	Signer *jwtutil.Signer
}

func NewAuthController(users *services.UserService, signer *jwtutil.Signer) *AuthController {
	return &AuthController{Users: users, Signer: signer}
}

func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	u, err := c.Users.Signup(req.Username, req.Email, req.Password)
	if err != nil {
		renderServiceError(w, err)
		return
	}
	token, err := c.Signer.Sign(u.ID, u.Username)
	if err != nil {
		global.Logger.Error().Err(err).Msg("failed to sign token")
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, dto.AuthResponse{Token: token, UserID: u.ID, Username: u.Username})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	u, err := c.Users.ValidateCredentials(req.Email, req.Password)
	if err != nil {
		renderServiceError(w, err)
		return
	}
	token, err := c.Signer.Sign(u.ID, u.Username)
	if err != nil {
		global.Logger.Error().Err(err).Msg("failed to sign token")
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, dto.AuthResponse{Token: token, UserID: u.ID, Username: u.Username})
}
