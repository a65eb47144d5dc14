package controllers

import (
	"net/http"
	"time"

	"github.com/chaiandgrill/pos-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthController handles sign-in for cashiers and admins
type AuthController struct {
	userService services.UserService
	jwtSecret   []byte
	tokenTTL    time.Duration
}

// NewAuthController creates a new instance of AuthController
func NewAuthController(userService services.UserService, jwtSecret string, tokenTTL time.Duration) *AuthController {
	return &AuthController{
		userService: userService,
		jwtSecret:   []byte(jwtSecret),
		tokenTTL:    tokenTTL,
	}
}

// Login godoc
// @Summary Sign in
// @Description Authenticate with user name and password, returns a Bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body object true "name and password"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.APIError
// @Router /api/v1/auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.userService.Authenticate(req.Name, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":  user.ID,
		"name": user.Name,
		"role": user.Role,
		"jti":  uuid.NewString(),
		"exp":  now.Add(ac.tokenTTL).Unix(),
		"iat":  now.Unix(),
	})

	tokenString, err := token.SignedString(ac.jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token_generation_failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": tokenString,
		"token_type":   "Bearer",
		"expires_in":   int64(ac.tokenTTL.Seconds()),
		"user": gin.H{
			"id":   user.ID,
			"name": user.Name,
			"role": user.Role,
		},
	})
}
