package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/qbyten/site-api/internal/models"
	repo "github.com/qbyten/site-api/internal/repo"
)

func GetSettingsHandler(w http.ResponseWriter, r *http.Request) {
	if !storeReady(w, settingRepo != nil) {
		return
	}

	if key := r.URL.Query().Get("key"); key != "" {
		setting, err := settingRepo.GetByKey(key)
		if err != nil {
			if errors.Is(err, repo.ErrSettingNotFound) {
				writeError(w, http.StatusNotFound, "Setting not found")
				return
			}
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"key":   setting.Key,
			"value": setting.Value,
		})
		return
	}

	settings, err := settingRepo.GetAll()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if settings == nil {
		settings = []models.Setting{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"settings": settings})
}

// UpsertSettingHandler serves both POST and PUT: an existing key is
// overwritten (200), a new one inserted (201). Non-string values are
// JSON-encoded so the store only ever holds strings.
func UpsertSettingHandler(w http.ResponseWriter, r *http.Request) {
	if !storeReady(w, settingRepo != nil) {
		return
	}

	var req SettingRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	if req.Key == "" {
		writeError(w, http.StatusBadRequest, "key is required and must be a string")
		return
	}

	value, err := coerceToString(req.Value)
	if err != nil {
		writeError(w, http.StatusBadRequest, "value could not be serialized")
		return
	}

	created, err := settingRepo.Upsert(req.Key, value)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	status := http.StatusOK
	message := "Setting updated successfully"
	if created {
		status = http.StatusCreated
		message = "Setting created successfully"
	}
	writeJSON(w, status, MutationResult{
		Success: true,
		Message: message,
		Data:    map[string]string{"key": req.Key, "value": value},
	})
}

func DeleteSettingHandler(w http.ResponseWriter, r *http.Request) {
	if !storeReady(w, settingRepo != nil) {
		return
	}

	key := r.URL.Query().Get("key")
	if key == "" {
		writeError(w, http.StatusBadRequest, "key parameter is required")
		return
	}

	if err := settingRepo.Delete(key); err != nil {
		if errors.Is(err, repo.ErrSettingNotFound) {
			writeError(w, http.StatusNotFound, "Setting not found")
			return
		}
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MutationResult{
		Success: true,
		Message: "Setting deleted successfully",
	})
}

// coerceToString passes strings through untouched and JSON-encodes
// everything else, a missing value included.
func coerceToString(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	if v == nil {
		v = ""
	}
	encoded, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}
