// controllers/catalog_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rental-backend/services"
	"rental-backend/utils"
)

type CatalogController struct {
	CatalogSvc *services.CatalogService
}

func NewCatalogController(svc *services.CatalogService) *CatalogController {
	return &CatalogController{CatalogSvc: svc}
}

func (cc *CatalogController) GetCategories(c *gin.Context) {
	categories, err := cc.CatalogSvc.Categories(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, categories)
}

func (cc *CatalogController) GetConveniences(c *gin.Context) {
	conveniences, err := cc.CatalogSvc.Conveniences(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, conveniences)
}

func (cc *CatalogController) GetTypes(c *gin.Context) {
	types, err := cc.CatalogSvc.Types(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}
