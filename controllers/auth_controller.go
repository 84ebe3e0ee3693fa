// controllers/auth_controller.go
package controllers

import (
	"net/http"
	"time"

	"pupinn-backend/services"
	"pupinn-backend/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthController issues the access tokens everything else consumes as an
// opaque actor.
type AuthController struct {
	UserSvc *services.UserService
	Secret  string
	TTL     time.Duration
}

func NewAuthController(userSvc *services.UserService, secret string, ttl time.Duration) *AuthController {
	return &AuthController{UserSvc: userSvc, Secret: secret, TTL: ttl}
}

// Register creates a guest self-service account and logs it in.
func (ctrl *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "username and password are required")
		return
	}

	user, err := ctrl.UserSvc.RegisterGuest(req.Username, req.Password, req.FullName, req.Phone)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	token, exp, err := utils.NewAccessToken(ctrl.Secret, user.ID, user.Role, user.FullName, ctrl.TTL)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token, "expires_at": exp})
}

// Login authenticates staff and guests alike.
func (ctrl *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "username and password are required")
		return
	}

	user, err := ctrl.UserSvc.Authenticate(req.Username, req.Password)
	if err != nil {
		// Do not reveal whether the username exists.
		utils.JSONError(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid credentials")
		return
	}

	token, exp, err := utils.NewAccessToken(ctrl.Secret, user.ID, user.Role, user.FullName, ctrl.TTL)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token, "expires_at": exp})
}
