// controllers/comment_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rental-backend/services"
	"rental-backend/utils"
)

type CreateCommentRequest struct {
	PropertyID uint   `json:"property_id" binding:"required"`
	UserID     uint   `json:"user_id" binding:"required"`
	ReplyID    *uint  `json:"reply_id"`
	Content    string `json:"content" binding:"required"`
}

type CommentController struct {
	CommentSvc *services.CommentService
}

func NewCommentController(svc *services.CommentService) *CommentController {
	return &CommentController{CommentSvc: svc}
}

func (cc *CommentController) CreateComment(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	comment, err := cc.CommentSvc.Create(req.PropertyID, req.UserID, req.ReplyID, req.Content)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, comment)
}

func (cc *CommentController) DeleteComment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := cc.CommentSvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "comment deleted"})
}

func (cc *CommentController) PropertyComments(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	limit, offset := utils.ParsePagination(c.Request.URL.Query())
	comments, count, err := cc.CommentSvc.ListByProperty(id, limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONPage(c, count, comments)
}
