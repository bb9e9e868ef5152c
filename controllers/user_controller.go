// controllers/user_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rental-backend/models"
	"rental-backend/services"
	"rental-backend/utils"
)

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email"`
}

type UserController struct {
	UserSvc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{UserSvc: svc}
}

func (uc *UserController) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	user := models.User{Name: req.Name, Phone: req.Phone, Email: req.Email}
	if err := uc.UserSvc.Create(&user); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, user)
}

func (uc *UserController) GetUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	user, err := uc.UserSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}
