package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/qbyten/site-api/internal/models"
	repo "github.com/qbyten/site-api/internal/repo"
)

// The services endpoint mirrors the products one without the color field.

func GetServicesHandler(w http.ResponseWriter, r *http.Request) {
	if !storeReady(w, serviceRepo != nil) {
		return
	}

	if idStr := r.URL.Query().Get("id"); idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid service ID")
			return
		}

		service, err := serviceRepo.GetByID(id)
		if err != nil {
			if errors.Is(err, repo.ErrServiceNotFound) {
				writeJSON(w, http.StatusOK, map[string]any{"service": nil})
				return
			}
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"service": service})
		return
	}

	services, err := serviceRepo.GetAll()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if services == nil {
		services = []models.Service{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"services": services})
}

func CreateServiceHandler(w http.ResponseWriter, r *http.Request) {
	if !storeReady(w, serviceRepo != nil) {
		return
	}

	var req ServiceRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	if req.Slug == "" || req.Title == "" {
		writeError(w, http.StatusBadRequest, "slug and title required")
		return
	}

	exists, err := serviceRepo.SlugExists(req.Slug)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if exists {
		writeError(w, http.StatusConflict, "Service with this slug already exists")
		return
	}

	created, err := serviceRepo.Create(models.Service{
		Slug:        req.Slug,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateSlug) {
			writeError(w, http.StatusConflict, "Service with this slug already exists")
			return
		}
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, MutationResult{
		Success: true,
		Message: "Service created successfully",
		Data:    created,
	})
}

func UpdateServiceHandler(w http.ResponseWriter, r *http.Request) {
	if !storeReady(w, serviceRepo != nil) {
		return
	}

	var req ServiceRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	if req.ID == 0 {
		writeError(w, http.StatusBadRequest, "id required")
		return
	}

	updated, err := serviceRepo.Update(models.Service{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, repo.ErrServiceNotFound) {
			writeError(w, http.StatusNotFound, "Service not found")
			return
		}
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MutationResult{
		Success: true,
		Message: "Service updated successfully",
		Data: map[string]any{
			"id":          updated.ID,
			"title":       updated.Title,
			"description": updated.Description,
		},
	})
}

func DeleteServiceHandler(w http.ResponseWriter, r *http.Request) {
	if !storeReady(w, serviceRepo != nil) {
		return
	}

	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		writeError(w, http.StatusBadRequest, "id required")
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid service ID")
		return
	}

	if err := serviceRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrServiceNotFound) {
			writeError(w, http.StatusNotFound, "Service not found")
			return
		}
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MutationResult{
		Success: true,
		Message: "Service deleted successfully",
	})
}
