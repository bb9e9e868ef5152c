package controllers

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gorm.io/datatypes"

	"rental-backend/models"
)

func TestBookingResponseWireFormat(t *testing.T) {
	name := "Anna"
	booking := models.Booking{
		ID:            42,
		PropertyID:    7,
		StartDate:     datatypes.Date(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)),
		EndDate:       datatypes.Date(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)),
		ReferenceCode: "ref-123",
		UserName:      &name,
	}

	resp := toBookingResponse(booking)
	if resp.StartDate != "2024-03-10" || resp.EndDate != "2024-03-15" {
		t.Fatalf("dates = (%q, %q), want date-only wire format", resp.StartDate, resp.EndDate)
	}

	body, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(body), `"start_date":"2024-03-10"`) {
		t.Errorf("payload must carry YYYY-MM-DD dates: %s", body)
	}
	if strings.Contains(string(body), `"phone"`) {
		t.Errorf("unset phone must be omitted: %s", body)
	}
}
