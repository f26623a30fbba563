package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/qbyten/site-api/internal/models"
	repo "github.com/qbyten/site-api/internal/repo"
)

// GetMenusHandler godoc
// @Summary Navigation menus as a nested tree
// @Description Returns both the derived tree and the flat rows; the flat
// list feeds the admin parent-select dropdowns.
// @Tags menus
// @Produce json
// @Param id query int false "Single menu ID"
// @Success 200 {object} MenusResult
// @Failure 404 {object} ErrorResponse
// @Router /api/menus [get]
func GetMenusHandler(w http.ResponseWriter, r *http.Request) {
	if !storeReady(w, menuRepo != nil) {
		return
	}

	if idStr := r.URL.Query().Get("id"); idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid menu ID")
			return
		}

		menu, err := menuRepo.GetByID(id)
		if err != nil {
			if errors.Is(err, repo.ErrMenuNotFound) {
				writeError(w, http.StatusNotFound, "Menu not found")
				return
			}
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"menu": menu})
		return
	}

	if payload, ok := menuCache.Get(); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(payload)
		return
	}

	flat, err := menuRepo.GetAll()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if flat == nil {
		flat = []models.Menu{}
	}

	result := MenusResult{
		Menus: models.BuildMenuTree(flat),
		Flat:  flat,
	}
	payload, err := json.Marshal(result)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	menuCache.Set(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

func CreateMenuHandler(w http.ResponseWriter, r *http.Request) {
	if !storeReady(w, menuRepo != nil) {
		return
	}

	var req MenuRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "Title is required")
		return
	}
	if ok, err := parentExists(req.ParentID); err != nil {
		writeStoreError(w, err)
		return
	} else if !ok {
		writeError(w, http.StatusBadRequest, "parent menu does not exist")
		return
	}

	created, err := menuRepo.Create(models.Menu{
		Title:     req.Title,
		URL:       req.URL,
		ParentID:  req.ParentID,
		SortOrder: req.SortOrder,
		IsActive:  req.IsActive == nil || *req.IsActive,
		Target:    defaultTarget(req.Target),
		Icon:      req.Icon,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}

	menuCache.Invalidate()
	writeJSON(w, http.StatusCreated, MutationResult{
		Success: true,
		Message: "Menu created successfully",
		ID:      created.ID,
	})
}

// UpdateMenuHandler overwrites every field of the row. An id that matches
// nothing is a silent no-op, not an error.
func UpdateMenuHandler(w http.ResponseWriter, r *http.Request) {
	if !storeReady(w, menuRepo != nil) {
		return
	}

	var req MenuRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	if req.ID == 0 {
		writeError(w, http.StatusBadRequest, "ID is required")
		return
	}
	if ok, err := parentExists(req.ParentID); err != nil {
		writeStoreError(w, err)
		return
	} else if !ok {
		writeError(w, http.StatusBadRequest, "parent menu does not exist")
		return
	}

	err := menuRepo.Update(models.Menu{
		ID:        req.ID,
		Title:     req.Title,
		URL:       req.URL,
		ParentID:  req.ParentID,
		SortOrder: req.SortOrder,
		IsActive:  req.IsActive == nil || *req.IsActive,
		Target:    defaultTarget(req.Target),
		Icon:      req.Icon,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}

	menuCache.Invalidate()
	writeJSON(w, http.StatusOK, MutationResult{
		Success: true,
		Message: "Menu updated successfully",
	})
}

func DeleteMenuHandler(w http.ResponseWriter, r *http.Request) {
	if !storeReady(w, menuRepo != nil) {
		return
	}

	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		writeError(w, http.StatusBadRequest, "ID is required")
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid menu ID")
		return
	}

	if err := menuRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrMenuNotFound) {
			writeError(w, http.StatusNotFound, "Menu not found")
			return
		}
		writeStoreError(w, err)
		return
	}

	menuCache.Invalidate()
	writeJSON(w, http.StatusOK, MutationResult{
		Success: true,
		Message: "Menu deleted successfully",
	})
}

// parentExists validates a referenced parent at write time instead of
// deferring the inconsistency to the tree view.
func parentExists(parentID *int) (bool, error) {
	if parentID == nil {
		return true, nil
	}
	return menuRepo.Exists(*parentID)
}

func defaultTarget(target string) string {
	if target == "" {
		return "_self"
	}
	return target
}
