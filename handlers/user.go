package handlers

import (
	"errors"
	"net/http"

	userRepo "ayursutra/database/repository/user"
	"ayursutra/middleware"
	"ayursutra/services/user"
	"ayursutra/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes account endpoints.
type UserHandler struct {
	Service user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// RegisterHandler creates a patient or practitioner account.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var input user.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Service.Register(input)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			utils.JSONError(c, http.StatusConflict, "registration failed", err.Error())
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, result)
}

// LoginHandler exchanges credentials for a token.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Service.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "authentication failed", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "authentication failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// PractitionersHandler lists practitioner accounts for booking selection.
func (h *UserHandler) PractitionersHandler(c *gin.Context) {
	practitioners, err := h.Service.ListPractitioners()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list practitioners", err.Error())
		return
	}
	c.JSON(http.StatusOK, practitioners)
}

// MeHandler returns the authenticated account.
func (h *UserHandler) MeHandler(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "missing identity", "")
		return
	}

	u, err := h.Service.GetByID(identity.ID)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "user not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load user", err.Error())
		return
	}
	c.JSON(http.StatusOK, u)
}
