package response

import (
	"car-rental/internal/data/entity"
)

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

func CategoryToResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Icon:        category.Icon,
		Description: category.Description,
	}
}
