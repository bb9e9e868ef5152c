// controllers/image_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"rental-backend/services"
	"rental-backend/utils"
)

// CreateImageRequest records a processed image; the URLs point at media
// pipeline output, this service never touches image bytes.
type CreateImageRequest struct {
	PropertyID uint           `json:"property_id" binding:"required"`
	Original   string         `json:"original" binding:"required"`
	Thumbnail  string         `json:"thumbnail"`
	Meta       datatypes.JSON `json:"meta"`
}

type ImageController struct {
	ImageSvc *services.ImageService
}

func NewImageController(svc *services.ImageService) *ImageController {
	return &ImageController{ImageSvc: svc}
}

func (ic *ImageController) CreateImage(c *gin.Context) {
	var req CreateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	image, err := ic.ImageSvc.Create(req.PropertyID, req.Original, req.Thumbnail, req.Meta)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, image)
}

// SetMainImage promotes one image to the listing label.
func (ic *ImageController) SetMainImage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ic.ImageSvc.SetMain(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "main image set"})
}

func (ic *ImageController) DeleteImage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ic.ImageSvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "image deleted"})
}
