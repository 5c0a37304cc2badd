package api

import (
	"bluedock/models"
	"bluedock/store"

	"github.com/gin-gonic/gin"
)

// CategoryHandler category lookups
type CategoryHandler struct {
	store store.Store
}

func NewCategoryHandler(st store.Store) *CategoryHandler {
	return &CategoryHandler{store: st}
}

// List lists every category by name
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {object} Response{data=[]models.Category}
// @Failure 500 {object} ErrorResponse
// @Router /api/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	list, err := h.store.ListCategories(c.Request.Context())
	if err != nil {
		storageError(c, "list categories", err, "Erro ao buscar categorias")
		return
	}
	if list == nil {
		list = []models.Category{}
	}
	Success(c, list)
}
