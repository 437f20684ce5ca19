package wire

import (
	"car-rental/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCategory(r chi.Router, categoryHandler *adaptor.CategoryHandler) {
	r.Get("/api/categories", categoryHandler.GetCategories)
	r.Get("/api/categories/{id}", categoryHandler.GetCategoryByID)
}
