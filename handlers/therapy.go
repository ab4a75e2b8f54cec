package handlers

import (
	"errors"
	"net/http"

	therapyRepo "ayursutra/database/repository/therapy"
	"ayursutra/middleware"
	"ayursutra/services/therapy"
	"ayursutra/utils"

	"github.com/gin-gonic/gin"
)

// TherapyHandler exposes therapy catalog endpoints.
type TherapyHandler struct {
	Service therapy.TherapyService
}

func NewTherapyHandler(svc therapy.TherapyService) *TherapyHandler {
	return &TherapyHandler{Service: svc}
}

// CreateHandler adds a therapy to the catalog. Practitioner only.
func (h *TherapyHandler) CreateHandler(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)

	var input therapy.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	t, err := h.Service.Create(identity.ID, input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create therapy", err.Error())
		return
	}
	c.JSON(http.StatusCreated, t)
}

// ListHandler returns all active therapies.
func (h *TherapyHandler) ListHandler(c *gin.Context) {
	therapies, err := h.Service.ListActive()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list therapies", err.Error())
		return
	}
	c.JSON(http.StatusOK, therapies)
}

// GetHandler returns one therapy by id.
func (h *TherapyHandler) GetHandler(c *gin.Context) {
	t, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, therapyRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "therapy not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load therapy", err.Error())
		return
	}
	c.JSON(http.StatusOK, t)
}
