package controllers

import (
	"encoding/json"
	"net/http"

	"trackfitnessgoals/backend/app/dto"
	"trackfitnessgoals/backend/app/services"
)

type GoalController struct{ Goals *services.GoalService }

func NewGoalController(goals *services.GoalService) *GoalController {
	return &GoalController{Goals: goals}
}

func (c *GoalController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	g, err := c.Goals.Create(req)
	if err != nil {
		renderServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, g)
}

func (c *GoalController) List(w http.ResponseWriter, r *http.Request) {
	goals, err := c.Goals.List(r.URL.Query().Get("userId"))
	if err != nil {
		renderServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, goals)
}

func (c *GoalController) Get(w http.ResponseWriter, r *http.Request) {
	g, err := c.Goals.Get(r.PathValue("id"))
	if err != nil {
		renderServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (c *GoalController) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	g, err := c.Goals.Update(r.PathValue("id"), req)
	if err != nil {
		renderServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (c *GoalController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Goals.Delete(r.PathValue("id")); err != nil {
		renderServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
