package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/qbyten/site-api/internal/models"
	repo "github.com/qbyten/site-api/internal/repo"
)

// GetProductsHandler godoc
// @Summary List products, or fetch one by id
// @Description Without ?id lists all products newest first; with ?id returns {product: null} when absent
// @Tags products
// @Produce json
// @Param id query int false "Product ID"
// @Success 200 {object} map[string]any
// @Failure 500 {object} ErrorResponse
// @Router /api/products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	if !storeReady(w, productRepo != nil) {
		return
	}

	if idStr := r.URL.Query().Get("id"); idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid product ID")
			return
		}

		product, err := productRepo.GetByID(id)
		if err != nil {
			if errors.Is(err, repo.ErrProductNotFound) {
				// absence is modeled as null here, not 404
				writeJSON(w, http.StatusOK, map[string]any{"product": nil})
				return
			}
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"product": product})
		return
	}

	products, err := productRepo.GetAll()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": products})
}

// CreateProductHandler godoc
// @Summary Create a new product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} MutationResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	if !storeReady(w, productRepo != nil) {
		return
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	if req.Slug == "" || req.Title == "" {
		writeError(w, http.StatusBadRequest, "slug and title required")
		return
	}

	exists, err := productRepo.SlugExists(req.Slug)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if exists {
		writeError(w, http.StatusConflict, "Product with this slug already exists")
		return
	}

	created, err := productRepo.Create(models.Product{
		Slug:        req.Slug,
		Title:       req.Title,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		// the schema-level unique constraint closes the pre-check race
		if errors.Is(err, repo.ErrDuplicateSlug) {
			writeError(w, http.StatusConflict, "Product with this slug already exists")
			return
		}
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, MutationResult{
		Success: true,
		Message: "Product created successfully",
		Data:    created,
	})
}

// UpdateProductHandler godoc
// @Summary Update a product's display fields
// @Description Slug is immutable; only title, description and color change
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Fields to update (id required)"
// @Success 200 {object} MutationResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/products [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	if !storeReady(w, productRepo != nil) {
		return
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	if req.ID == 0 {
		writeError(w, http.StatusBadRequest, "id required")
		return
	}

	updated, err := productRepo.Update(models.Product{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MutationResult{
		Success: true,
		Message: "Product updated successfully",
		Data: map[string]any{
			"id":          updated.ID,
			"title":       updated.Title,
			"description": updated.Description,
			"color":       updated.Color,
		},
	})
}

// DeleteProductHandler godoc
// @Summary Delete a product by id
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id query int true "Product ID"
// @Success 200 {object} MutationResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/products [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	if !storeReady(w, productRepo != nil) {
		return
	}

	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		writeError(w, http.StatusBadRequest, "id required")
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	if err := productRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MutationResult{
		Success: true,
		Message: "Product deleted successfully",
	})
}
