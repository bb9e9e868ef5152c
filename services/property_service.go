// services/property_service.go
package services

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"rental-backend/availability"
	"rental-backend/models"
	"rental-backend/utils"
)

// Facet caps: a quantity facet above its cap is ignored rather than rejected,
// so a crafted query can't force a full-table range scan on an absurd bound.
const (
	roomLimit    = 10
	bedLimit     = 20
	bathLimit    = 10
	bedroomLimit = 10
)

// Listings created within this age get the is_new badge.
const newListingAge = 7 * 24 * time.Hour

type PropertyService struct {
	DB     *gorm.DB
	Policy availability.Policy
}

func NewPropertyService(db *gorm.DB, policy availability.Policy) *PropertyService {
	return &PropertyService{DB: db, Policy: policy}
}

// SearchQuery is the parsed facet set of one search request.
type SearchQuery struct {
	Name       string
	MinPrice   *uint
	MaxPrice   *uint
	GuestCount uint
	WithPets   bool
	WithBabies bool
	RoomsQty   *uint
	BedQty     *uint
	BathQty    *uint
	BedroomQty *uint
	CategoryID *uint
	TypeIDs    []uint

	StartDate *time.Time
	EndDate   *time.Time

	UserID *uint

	Limit  int
	Offset int
}

// HasWindow reports whether availability filtering applies to this search.
// Both dates must be present; with either one missing, booking state is
// ignored entirely.
func (q SearchQuery) HasWindow() bool {
	return q.StartDate != nil && q.EndDate != nil
}

// Window builds the inclusive availability window. Only valid when HasWindow.
func (q SearchQuery) Window() availability.Window {
	return availability.Window{
		Start: availability.DateOf(*q.StartDate),
		End:   availability.DateOf(*q.EndDate),
	}
}

// ParseSearchQuery reads the raw query string leniently: a missing or
// malformed parameter drops that facet, it never fails the request.
func ParseSearchQuery(values url.Values) SearchQuery {
	q := SearchQuery{GuestCount: 1}
	q.Limit, q.Offset = utils.ParsePagination(values)

	q.Name = strings.TrimSpace(values.Get("house_name"))
	q.MinPrice = parseUintParam(values.Get("min_price"))
	q.MaxPrice = parseUintParam(values.Get("max_price"))
	if n := parseUintParam(values.Get("guest_count")); n != nil {
		q.GuestCount = *n
	}
	q.WithPets = isTrueParam(values.Get("guests_with_pets"))
	q.WithBabies = isTrueParam(values.Get("guests_with_babies"))
	q.RoomsQty = parseUintParam(values.Get("rooms_qty"))
	q.BedQty = parseUintParam(values.Get("bed_qty"))
	q.BathQty = parseUintParam(values.Get("bath_qty"))
	q.BedroomQty = parseUintParam(values.Get("bedroom_qty"))
	q.CategoryID = parseUintParam(values.Get("category"))
	q.UserID = parseUintParam(values.Get("user_id"))

	for _, part := range strings.Split(values.Get("house_type"), ",") {
		if id := parseUintParam(part); id != nil {
			q.TypeIDs = append(q.TypeIDs, *id)
		}
	}

	if t, ok := availability.ParseDate(values.Get("start_date")); ok {
		q.StartDate = &t
	}
	if t, ok := availability.ParseDate(values.Get("end_date")); ok {
		q.EndDate = &t
	}

	return q
}

func parseUintParam(s string) *uint {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return nil
	}
	v := uint(n)
	return &v
}

// isTrueParam follows the permissive flag convention: empty and the literal
// string "false" are false, anything else present is true.
func isTrueParam(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && !strings.EqualFold(s, "false")
}

// ApplyFilters composes every facet into one query pass. The availability
// exclusion joins in only when both dates were supplied.
func (s *PropertyService) ApplyFilters(db *gorm.DB, q SearchQuery) *gorm.DB {
	db = db.Where("properties.is_active = ?", true)

	if q.Name != "" {
		db = db.Where("LOWER(properties.name) LIKE LOWER(?)", "%"+q.Name+"%")
	}
	if q.MinPrice != nil {
		db = db.Where("properties.price_per_night >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		db = db.Where("properties.price_per_night <= ?", *q.MaxPrice)
	}
	db = db.Where("properties.guest_qty >= ?", q.GuestCount)
	if q.WithPets {
		db = db.Where("properties.guests_with_pets = ?", true)
	}
	if q.WithBabies {
		db = db.Where("properties.guests_with_babies = ?", true)
	}
	if q.RoomsQty != nil && *q.RoomsQty <= roomLimit {
		db = db.Where("properties.rooms_qty >= ?", *q.RoomsQty)
	}
	if q.BedQty != nil && *q.BedQty <= bedLimit {
		db = db.Where("properties.bed_qty >= ?", *q.BedQty)
	}
	if q.BathQty != nil && *q.BathQty <= bathLimit {
		db = db.Where("properties.bath_qty >= ?", *q.BathQty)
	}
	if q.BedroomQty != nil && *q.BedroomQty <= bedroomLimit {
		db = db.Where("properties.bedroom_qty >= ?", *q.BedroomQty)
	}
	if q.CategoryID != nil {
		db = db.Where(
			"EXISTS (SELECT 1 FROM property_categories pc WHERE pc.property_id = properties.id AND pc.category_id = ?)",
			*q.CategoryID,
		)
	}
	if len(q.TypeIDs) > 0 {
		db = db.Where("properties.type_id IN ?", q.TypeIDs)
	}
	if q.HasWindow() {
		db = db.Scopes(availability.ExcludeBooked(q.Window(), s.Policy))
	}

	return db
}

// Search runs the faceted listing search. Results come back in random order,
// the way the catalog page rotates inventory.
func (s *PropertyService) Search(q SearchQuery) ([]models.Property, int64, error) {
	base := s.ApplyFilters(s.DB.Model(&models.Property{}), q)

	var count int64
	if err := base.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var properties []models.Property
	err := base.Session(&gorm.Session{}).
		Preload("Owner").
		Preload("Images").
		Preload("Type").
		Order("RAND()").
		Limit(q.Limit).
		Offset(q.Offset).
		Find(&properties).Error
	if err != nil {
		return nil, 0, err
	}

	s.annotate(properties, q.UserID)
	return properties, count, nil
}

// GetByID returns one active listing with its relations. Inactive listings
// surface as not found, same as missing ones.
func (s *PropertyService) GetByID(id uint, userID *uint) (models.Property, error) {
	var property models.Property
	err := s.DB.
		Preload("Owner").
		Preload("Type").
		Preload("Categories").
		Preload("Conveniences").
		Preload("Images").
		First(&property, id).Error
	if err != nil {
		return property, err
	}
	if !property.IsActive {
		return property, gorm.ErrRecordNotFound
	}

	list := []models.Property{property}
	s.annotate(list, userID)
	return list[0], nil
}

type PropertyInput struct {
	Name             string
	PricePerNight    uint
	PricePerWeek     *uint
	PricePerMonth    *uint
	OwnerID          uint
	RoomsQty         uint
	GuestQty         uint
	BedQty           uint
	BedroomQty       uint
	ToiletQty        *uint
	BathQty          *uint
	GuestsWithBabies bool
	GuestsWithPets   bool
	Description      string
	City             string
	Address          string
	Lng              *string
	Lat              *string
	TypeID           uint
	CategoryIDs      []uint
	ConvenienceIDs   []uint
}

func (s *PropertyService) Create(in PropertyInput) (models.Property, error) {
	property := models.Property{
		Name:             in.Name,
		PricePerNight:    in.PricePerNight,
		PricePerWeek:     in.PricePerWeek,
		PricePerMonth:    in.PricePerMonth,
		OwnerID:          in.OwnerID,
		RoomsQty:         in.RoomsQty,
		GuestQty:         in.GuestQty,
		BedQty:           in.BedQty,
		BedroomQty:       in.BedroomQty,
		ToiletQty:        in.ToiletQty,
		BathQty:          in.BathQty,
		GuestsWithBabies: in.GuestsWithBabies,
		GuestsWithPets:   in.GuestsWithPets,
		Description:      in.Description,
		City:             in.City,
		Address:          in.Address,
		Lng:              in.Lng,
		Lat:              in.Lat,
		TypeID:           in.TypeID,
		Categories:       categoryRefs(in.CategoryIDs),
		Conveniences:     convenienceRefs(in.ConvenienceIDs),
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&property).Error
	})
	return property, err
}

func (s *PropertyService) Update(id uint, in PropertyInput, isActive *bool) (models.Property, error) {
	var property models.Property
	if err := s.DB.First(&property, id).Error; err != nil {
		return property, err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":               in.Name,
			"price_per_night":    in.PricePerNight,
			"price_per_week":     in.PricePerWeek,
			"price_per_month":    in.PricePerMonth,
			"rooms_qty":          in.RoomsQty,
			"guest_qty":          in.GuestQty,
			"bed_qty":            in.BedQty,
			"bedroom_qty":        in.BedroomQty,
			"toilet_qty":         in.ToiletQty,
			"bath_qty":           in.BathQty,
			"guests_with_babies": in.GuestsWithBabies,
			"guests_with_pets":   in.GuestsWithPets,
			"description":        in.Description,
			"city":               in.City,
			"address":            in.Address,
			"lng":                in.Lng,
			"lat":                in.Lat,
			"type_id":            in.TypeID,
		}
		if isActive != nil {
			updates["is_active"] = *isActive
		}
		if err := tx.Model(&property).Updates(updates).Error; err != nil {
			return err
		}
		if in.CategoryIDs != nil {
			if err := tx.Model(&property).Association("Categories").Replace(categoryRefs(in.CategoryIDs)); err != nil {
				return err
			}
		}
		if in.ConvenienceIDs != nil {
			if err := tx.Model(&property).Association("Conveniences").Replace(convenienceRefs(in.ConvenienceIDs)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return property, err
	}
	return s.reload(id)
}

// Delete removes the listing together with its bookings, images, comments,
// likes and favorites in one transaction.
func (s *PropertyService) Delete(id uint) error {
	var property models.Property
	if err := s.DB.First(&property, id).Error; err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.Image{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		return tx.Delete(&property).Error
	})
}

// OwnerProperties lists a user's own listings. inactiveOnly narrows to drafts
// pending activation.
func (s *PropertyService) OwnerProperties(ownerID uint, inactiveOnly bool, limit, offset int) ([]models.Property, int64, error) {
	db := s.DB.Model(&models.Property{}).Where("properties.owner_id = ?", ownerID)
	if inactiveOnly {
		db = db.Where("properties.is_active = ?", false)
	}

	var count int64
	if err := db.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var properties []models.Property
	err := db.Session(&gorm.Session{}).
		Preload("Owner").
		Preload("Images").
		Order("properties.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&properties).Error
	if err != nil {
		return nil, 0, err
	}

	s.annotate(properties, nil)
	return properties, count, nil
}

// FavoriteProperties lists the active listings a user saved.
func (s *PropertyService) FavoriteProperties(userID uint, limit, offset int) ([]models.Property, int64, error) {
	db := s.DB.Model(&models.Property{}).
		Joins("JOIN favorites ON favorites.property_id = properties.id AND favorites.user_id = ?", userID).
		Where("properties.is_active = ?", true)

	var count int64
	if err := db.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var properties []models.Property
	err := db.Session(&gorm.Session{}).
		Preload("Owner").
		Preload("Images").
		Order("properties.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&properties).Error
	if err != nil {
		return nil, 0, err
	}

	s.annotate(properties, nil)
	for i := range properties {
		properties[i].IsFavorite = true
	}
	return properties, count, nil
}

func (s *PropertyService) reload(id uint) (models.Property, error) {
	var property models.Property
	err := s.DB.
		Preload("Owner").
		Preload("Type").
		Preload("Categories").
		Preload("Conveniences").
		Preload("Images").
		First(&property, id).Error
	return property, err
}

// annotate fills the computed per-request fields and puts the label image
// first, the way listing cards expect.
func (s *PropertyService) annotate(properties []models.Property, userID *uint) {
	favorites := map[uint]bool{}
	if userID != nil && len(properties) > 0 {
		ids := make([]uint, 0, len(properties))
		for _, p := range properties {
			ids = append(ids, p.ID)
		}
		var favIDs []uint
		if err := s.DB.Model(&models.Favorite{}).
			Where("user_id = ? AND property_id IN ?", *userID, ids).
			Pluck("property_id", &favIDs).Error; err == nil {
			for _, id := range favIDs {
				favorites[id] = true
			}
		}
	}

	cutoff := time.Now().Add(-newListingAge)
	for i := range properties {
		properties[i].IsNew = properties[i].CreatedAt.After(cutoff)
		properties[i].IsFavorite = favorites[properties[i].ID]
		sortImagesLabelFirst(properties[i].Images)
	}
}

func sortImagesLabelFirst(images []models.Image) {
	sort.SliceStable(images, func(i, j int) bool {
		return images[i].IsLabel && !images[j].IsLabel
	})
}

func categoryRefs(ids []uint) []models.Category {
	refs := make([]models.Category, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, models.Category{ID: id})
	}
	return refs
}

func convenienceRefs(ids []uint) []models.Convenience {
	refs := make([]models.Convenience, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, models.Convenience{ID: id})
	}
	return refs
}
