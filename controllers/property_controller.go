// controllers/property_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rental-backend/services"
	"rental-backend/utils"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type PropertyRequest struct {
	Name             string  `json:"name" binding:"required"`
	PricePerNight    uint    `json:"price_per_night" binding:"required"`
	PricePerWeek     *uint   `json:"price_per_week"`
	PricePerMonth    *uint   `json:"price_per_month"`
	OwnerID          uint    `json:"owner_id" binding:"required"`
	RoomsQty         uint    `json:"rooms_qty" binding:"required"`
	GuestQty         uint    `json:"guest_qty" binding:"required"`
	BedQty           uint    `json:"bed_qty"`
	BedroomQty       uint    `json:"bedroom_qty"`
	ToiletQty        *uint   `json:"toilet_qty"`
	BathQty          *uint   `json:"bath_qty"`
	GuestsWithBabies *bool   `json:"guests_with_babies"`
	GuestsWithPets   *bool   `json:"guests_with_pets"`
	Description      string  `json:"description"`
	City             string  `json:"city" binding:"required"`
	Address          string  `json:"address" binding:"required"`
	Lng              *string `json:"lng"`
	Lat              *string `json:"lat"`
	TypeID           uint    `json:"type_id" binding:"required"`
	CategoryIDs      []uint  `json:"category_ids"`
	ConvenienceIDs   []uint  `json:"convenience_ids"`
	IsActive         *bool   `json:"is_active"`
}

func (req PropertyRequest) toInput() services.PropertyInput {
	in := services.PropertyInput{
		Name:           req.Name,
		PricePerNight:  req.PricePerNight,
		PricePerWeek:   req.PricePerWeek,
		PricePerMonth:  req.PricePerMonth,
		OwnerID:        req.OwnerID,
		RoomsQty:       req.RoomsQty,
		GuestQty:       req.GuestQty,
		BedQty:         req.BedQty,
		BedroomQty:     req.BedroomQty,
		ToiletQty:      req.ToiletQty,
		BathQty:        req.BathQty,
		Description:    req.Description,
		City:           req.City,
		Address:        req.Address,
		Lng:            req.Lng,
		Lat:            req.Lat,
		TypeID:         req.TypeID,
		CategoryIDs:    req.CategoryIDs,
		ConvenienceIDs: req.ConvenienceIDs,

		// babies default to welcome, pets to not, matching the column defaults
		GuestsWithBabies: true,
		GuestsWithPets:   false,
	}
	if req.GuestsWithBabies != nil {
		in.GuestsWithBabies = *req.GuestsWithBabies
	}
	if req.GuestsWithPets != nil {
		in.GuestsWithPets = *req.GuestsWithPets
	}
	return in
}

type LikeRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

type FavoriteRequest struct {
	PropertyID uint `json:"property_id" binding:"required"`
	UserID     uint `json:"user_id" binding:"required"`
}

// ---------------------------
// Controller
// ---------------------------

type PropertyController struct {
	PropertySvc *services.PropertyService
	LikeSvc     *services.LikeService
}

func NewPropertyController(propertySvc *services.PropertyService, likeSvc *services.LikeService) *PropertyController {
	return &PropertyController{PropertySvc: propertySvc, LikeSvc: likeSvc}
}

// SearchProperties is the faceted catalog search. Availability filtering only
// joins in when both start_date and end_date are present; with either one
// missing, booking state is ignored.
func (pc *PropertyController) SearchProperties(c *gin.Context) {
	q := services.ParseSearchQuery(c.Request.URL.Query())
	properties, count, err := pc.PropertySvc.Search(q)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONPage(c, count, properties)
}

func (pc *PropertyController) GetProperty(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	property, err := pc.PropertySvc.GetByID(id, uintQuery(c, "user_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, property)
}

func (pc *PropertyController) CreateProperty(c *gin.Context) {
	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	property, err := pc.PropertySvc.Create(req.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, property)
}

func (pc *PropertyController) UpdateProperty(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	property, err := pc.PropertySvc.Update(id, req.toInput(), req.IsActive)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, property)
}

func (pc *PropertyController) DeleteProperty(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := pc.PropertySvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "property deleted"})
}

// ToggleLike likes the property for the user, or removes the like when it is
// already there.
func (pc *PropertyController) ToggleLike(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	liked, err := pc.LikeSvc.Toggle(id, req.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	message := "property like removed"
	if liked {
		message = "property liked"
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": message, "liked": liked})
}

// OwnerProperties lists a user's own listings; ?active=false narrows to the
// inactive drafts.
func (pc *PropertyController) OwnerProperties(c *gin.Context) {
	userID := uintQuery(c, "user_id")
	if userID == nil {
		utils.JSONError(c, http.StatusBadRequest, "user_id is required")
		return
	}
	limit, offset := utils.ParsePagination(c.Request.URL.Query())
	inactiveOnly := c.Query("active") == "false"

	properties, count, err := pc.PropertySvc.OwnerProperties(*userID, inactiveOnly, limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONPage(c, count, properties)
}

func (pc *PropertyController) FavoriteProperties(c *gin.Context) {
	userID := uintQuery(c, "user_id")
	if userID == nil {
		utils.JSONError(c, http.StatusBadRequest, "user_id is required")
		return
	}
	limit, offset := utils.ParsePagination(c.Request.URL.Query())

	properties, count, err := pc.PropertySvc.FavoriteProperties(*userID, limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONPage(c, count, properties)
}

func (pc *PropertyController) AddFavorite(c *gin.Context) {
	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := pc.LikeSvc.AddFavorite(req.PropertyID, req.UserID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"message": "favorite added"})
}

func (pc *PropertyController) RemoveFavorite(c *gin.Context) {
	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := pc.LikeSvc.RemoveFavorite(req.PropertyID, req.UserID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "favorite removed"})
}
