package controllers

import (
	"net/http"

	"github.com/chaiandgrill/pos-api/internal/services"
	"github.com/gin-gonic/gin"
)

// UserController handles staff account management (admin only)
type UserController interface {
	// ListUsers retrieves all accounts
	ListUsers(c *gin.Context)
	// CreateUser creates a new account
	CreateUser(c *gin.Context)
	// UpdateUser edits an account
	UpdateUser(c *gin.Context)
	// DeleteUser removes an account that issued no bills
	DeleteUser(c *gin.Context)
}

type userController struct {
	service services.UserService
}

// NewUserController creates a new instance of UserController
func NewUserController(service services.UserService) UserController {
	return &userController{service: service}
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Security BearerAuth
// @Router /api/v1/admin/users [get]
func (uc *userController) ListUsers(ctx *gin.Context) {
	users, err := uc.service.ListUsers()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// CreateUser godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param user body object true "name, password and role"
// @Success 201 {object} models.User
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/admin/users [post]
func (uc *userController) CreateUser(ctx *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := uc.service.CreateUser(req.Name, req.Password, req.Role)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, user)
}

// UpdateUser godoc
// @Summary Update a user
// @Description An empty password keeps the stored secret unchanged
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body object true "name, optional password, role"
// @Success 204
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/admin/users/{id} [put]
func (uc *userController) UpdateUser(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	var req struct {
		Name     string `json:"name" binding:"required"`
		Password string `json:"password"`
		Role     string `json:"role" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := uc.service.UpdateUser(id, req.Name, req.Password, req.Role); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Fails while any bill references the user as issuer
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/admin/users/{id} [delete]
func (uc *userController) DeleteUser(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	if err := uc.service.DeleteUser(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
