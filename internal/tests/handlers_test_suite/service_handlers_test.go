package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	api "github.com/qbyten/site-api/internal/http"
	handler "github.com/qbyten/site-api/internal/http/handlers"
	"github.com/qbyten/site-api/internal/models"
)

func TestCreateServiceHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllServices)
	r := api.NewRouter()

	w := createService(r, handler.ServiceRequest{Slug: "consulting", Title: "Consulting"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	var resp struct {
		Data models.Service `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/services?id=%d", resp.Data.ID), nil, false)
	var got struct {
		Service *models.Service `json:"service"`
	}
	json.NewDecoder(w.Body).Decode(&got)
	if got.Service == nil || got.Service.Title != "Consulting" {
		t.Errorf("expected the created service back, got %+v", got.Service)
	}
}

func TestCreateServiceHandler_DuplicateSlug(t *testing.T) {
	t.Cleanup(clearAllServices)
	r := api.NewRouter()

	createService(r, handler.ServiceRequest{Slug: "audit", Title: "Audit"})
	w := createService(r, handler.ServiceRequest{Slug: "audit", Title: "Audit again"})
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
}

func TestServiceLifecycle(t *testing.T) {
	t.Cleanup(clearAllServices)
	r := api.NewRouter()

	w := createService(r, handler.ServiceRequest{Slug: "design", Title: "Design"})
	var created struct {
		Data models.Service `json:"data"`
	}
	json.NewDecoder(w.Body).Decode(&created)

	w = doJSON(r, http.MethodPut, "/api/services",
		handler.ServiceRequest{ID: created.Data.ID, Title: "Design v2", Description: "refresh"}, true)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on update, got %d", w.Code)
	}

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/services?id=%d", created.Data.ID), nil, true)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on delete, got %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/api/services", nil, false)
	var list struct {
		Services []models.Service `json:"services"`
	}
	json.NewDecoder(w.Body).Decode(&list)
	if len(list.Services) != 0 {
		t.Errorf("expected no services left, got %d", len(list.Services))
	}
}

func TestServiceMutationsRequireAuth(t *testing.T) {
	t.Cleanup(clearAllServices)
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/api/services", handler.ServiceRequest{Slug: "s", Title: "S"}, false)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	if serviceRepo.Count() != 0 {
		t.Errorf("rejected request must not create a row")
	}
}
