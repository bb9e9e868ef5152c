// services/property_service_test.go
package services

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"rental-backend/availability"
	"rental-backend/models"
	"rental-backend/utils"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "tester:tester@tcp(127.0.0.1:3306)/rental_test?charset=utf8mb4&parseTime=True",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	if err != nil {
		t.Fatalf("open dry-run session: %v", err)
	}
	return db
}

func uintPtr(v uint) *uint { return &v }

func TestParseSearchQuery(t *testing.T) {
	t.Run("empty query gets defaults", func(t *testing.T) {
		q := ParseSearchQuery(url.Values{})
		if q.GuestCount != 1 {
			t.Errorf("GuestCount = %d, want 1", q.GuestCount)
		}
		if q.Limit != utils.DefaultLimit || q.Offset != 0 {
			t.Errorf("pagination = (%d, %d), want (%d, 0)", q.Limit, q.Offset, utils.DefaultLimit)
		}
		if q.HasWindow() {
			t.Error("no dates supplied, HasWindow must be false")
		}
		if q.WithPets || q.WithBabies {
			t.Error("flags must default off")
		}
	})

	t.Run("facets parse", func(t *testing.T) {
		q := ParseSearchQuery(url.Values{
			"house_name":  {"  lakeside  "},
			"min_price":   {"50"},
			"max_price":   {"200"},
			"guest_count": {"4"},
			"rooms_qty":   {"3"},
			"category":    {"2"},
			"house_type":  {"1,3,nonsense,5"},
		})
		if q.Name != "lakeside" {
			t.Errorf("Name = %q, want trimmed \"lakeside\"", q.Name)
		}
		if q.MinPrice == nil || *q.MinPrice != 50 || q.MaxPrice == nil || *q.MaxPrice != 200 {
			t.Errorf("price range = (%v, %v), want (50, 200)", q.MinPrice, q.MaxPrice)
		}
		if q.GuestCount != 4 {
			t.Errorf("GuestCount = %d, want 4", q.GuestCount)
		}
		if q.CategoryID == nil || *q.CategoryID != 2 {
			t.Errorf("CategoryID = %v, want 2", q.CategoryID)
		}
		if len(q.TypeIDs) != 3 || q.TypeIDs[0] != 1 || q.TypeIDs[1] != 3 || q.TypeIDs[2] != 5 {
			t.Errorf("TypeIDs = %v, want [1 3 5]", q.TypeIDs)
		}
	})

	t.Run("literal false strings are false", func(t *testing.T) {
		q := ParseSearchQuery(url.Values{
			"guests_with_pets":   {"false"},
			"guests_with_babies": {"False"},
		})
		if q.WithPets || q.WithBabies {
			t.Errorf("pets=%v babies=%v, want both false", q.WithPets, q.WithBabies)
		}
	})

	t.Run("any other flag value is true", func(t *testing.T) {
		q := ParseSearchQuery(url.Values{
			"guests_with_pets":   {"true"},
			"guests_with_babies": {"1"},
		})
		if !q.WithPets || !q.WithBabies {
			t.Errorf("pets=%v babies=%v, want both true", q.WithPets, q.WithBabies)
		}
	})

	t.Run("malformed numbers drop the facet", func(t *testing.T) {
		q := ParseSearchQuery(url.Values{
			"min_price":   {"cheap"},
			"guest_count": {"-2"},
			"rooms_qty":   {"3.5"},
		})
		if q.MinPrice != nil || q.RoomsQty != nil {
			t.Errorf("malformed facets must be dropped, got min=%v rooms=%v", q.MinPrice, q.RoomsQty)
		}
		if q.GuestCount != 1 {
			t.Errorf("GuestCount = %d, want default 1 on malformed input", q.GuestCount)
		}
	})

	t.Run("window needs both dates", func(t *testing.T) {
		q := ParseSearchQuery(url.Values{"start_date": {"2024-03-01"}})
		if q.HasWindow() {
			t.Error("start_date alone must not enable availability filtering")
		}
		q = ParseSearchQuery(url.Values{"end_date": {"2024-03-12"}})
		if q.HasWindow() {
			t.Error("end_date alone must not enable availability filtering")
		}
		q = ParseSearchQuery(url.Values{
			"start_date": {"2024-03-01"},
			"end_date":   {"2024-03-12"},
		})
		if !q.HasWindow() {
			t.Fatal("both dates supplied, HasWindow must be true")
		}
		w := q.Window()
		if w.Start.Format(availability.DateLayout) != "2024-03-01" ||
			w.End.Format(availability.DateLayout) != "2024-03-12" {
			t.Errorf("window = [%s, %s]", w.Start.Format(availability.DateLayout), w.End.Format(availability.DateLayout))
		}
	})

	t.Run("malformed date drops the window", func(t *testing.T) {
		q := ParseSearchQuery(url.Values{
			"start_date": {"03/01/2024"},
			"end_date":   {"2024-03-12"},
		})
		if q.HasWindow() {
			t.Error("malformed start_date must disable availability filtering")
		}
	})
}

func TestApplyFiltersSQL(t *testing.T) {
	start := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC)

	buildSQL := func(t *testing.T, q SearchQuery) string {
		t.Helper()
		svc := NewPropertyService(dryRunDB(t), availability.DefaultPolicy())
		tx := svc.ApplyFilters(svc.DB.Model(&models.Property{}), q).Find(&[]models.Property{})
		if tx.Error != nil {
			t.Fatalf("build query: %v", tx.Error)
		}
		return tx.Statement.SQL.String()
	}

	t.Run("availability clause only with full window", func(t *testing.T) {
		sql := buildSQL(t, SearchQuery{GuestCount: 1, StartDate: &start, EndDate: &end})
		if !strings.Contains(sql, "NOT EXISTS") {
			t.Errorf("full window must push down an exclusion subquery:\n%s", sql)
		}

		sql = buildSQL(t, SearchQuery{GuestCount: 1, StartDate: &start})
		if strings.Contains(sql, "NOT EXISTS") {
			t.Errorf("start date alone must not filter on bookings:\n%s", sql)
		}
	})

	t.Run("quantity facets above cap are ignored", func(t *testing.T) {
		sql := buildSQL(t, SearchQuery{GuestCount: 1, RoomsQty: uintPtr(11), BedQty: uintPtr(21)})
		if strings.Contains(sql, "rooms_qty") || strings.Contains(sql, "bed_qty") {
			t.Errorf("over-cap facets must not reach the query:\n%s", sql)
		}

		sql = buildSQL(t, SearchQuery{GuestCount: 1, RoomsQty: uintPtr(10), BedQty: uintPtr(20)})
		if !strings.Contains(sql, "properties.rooms_qty >= ?") || !strings.Contains(sql, "properties.bed_qty >= ?") {
			t.Errorf("at-cap facets must be applied:\n%s", sql)
		}
	})

	t.Run("base clauses always present", func(t *testing.T) {
		sql := buildSQL(t, SearchQuery{GuestCount: 2})
		if !strings.Contains(sql, "properties.is_active = ?") {
			t.Errorf("inactive listings must be filtered out:\n%s", sql)
		}
		if !strings.Contains(sql, "properties.guest_qty >= ?") {
			t.Errorf("guest capacity clause missing:\n%s", sql)
		}
	})

	t.Run("category joins through the link table", func(t *testing.T) {
		sql := buildSQL(t, SearchQuery{GuestCount: 1, CategoryID: uintPtr(2)})
		if !strings.Contains(sql, "property_categories") {
			t.Errorf("category facet must go through the join table:\n%s", sql)
		}
	})
}

func TestSortImagesLabelFirst(t *testing.T) {
	images := []models.Image{
		{ID: 1, IsLabel: false},
		{ID: 2, IsLabel: false},
		{ID: 3, IsLabel: true},
	}
	sortImagesLabelFirst(images)
	if images[0].ID != 3 {
		t.Errorf("label image must sort first, got ID %d", images[0].ID)
	}
	if images[1].ID != 1 || images[2].ID != 2 {
		t.Errorf("non-label order must be stable, got %d, %d", images[1].ID, images[2].ID)
	}
}
