package controllers

import (
	"encoding/json"
	"net/http"

	"trackfitnessgoals/backend/app/dto"
	"trackfitnessgoals/backend/app/services"
)

type ProgressController struct{ Progress *services.ProgressService }

func NewProgressController(progress *services.ProgressService) *ProgressController {
	return &ProgressController{Progress: progress}
}

func (c *ProgressController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	p, err := c.Progress.Create(req)
	if err != nil {
		renderServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (c *ProgressController) List(w http.ResponseWriter, r *http.Request) {
	entries, err := c.Progress.List(r.URL.Query().Get("userId"))
	if err != nil {
		renderServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (c *ProgressController) Get(w http.ResponseWriter, r *http.Request) {
	p, err := c.Progress.Get(r.PathValue("id"))
	if err != nil {
		renderServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (c *ProgressController) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	p, err := c.Progress.Update(r.PathValue("id"), req)
	if err != nil {
		renderServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (c *ProgressController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Progress.Delete(r.PathValue("id")); err != nil {
		renderServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
