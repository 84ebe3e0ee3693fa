package services

import (
	"testing"
	"time"

	"pupinn-backend/models"
)

func TestParseProposalValid(t *testing.T) {
	payload := `Here are my suggestions. BOOKING_PROPOSAL:{"room_id":7,"check_in_date":"2026-09-01","check_out_date":"2026-09-04","nights":99,"price_per_night":1500000,"total_price":1} Let me know!`

	p := ParseProposal(payload)
	if p == nil {
		t.Fatal("ParseProposal returned nil for a valid payload")
	}
	if p.RoomID != 7 {
		t.Errorf("RoomID = %d, want 7", p.RoomID)
	}
	// derived fields are recomputed, not trusted
	if p.Nights != 3 {
		t.Errorf("Nights = %d, want 3", p.Nights)
	}
	if p.TotalPrice != 4500000 {
		t.Errorf("TotalPrice = %v, want 4500000", p.TotalPrice)
	}
}

func TestParseProposalMalformed(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"no marker", `just a chat message about rooms`},
		{"marker without json", `BOOKING_PROPOSAL: sure thing`},
		{"truncated json", `BOOKING_PROPOSAL:{"room_id":7,"check_in_date":"2026-09-01"`},
		{"invalid json", `BOOKING_PROPOSAL:{room_id 7}`},
		{"missing room", `BOOKING_PROPOSAL:{"check_in_date":"2026-09-01","check_out_date":"2026-09-04"}`},
		{"bad dates", `BOOKING_PROPOSAL:{"room_id":7,"check_in_date":"tomorrow","check_out_date":"2026-09-04"}`},
		{"checkout before checkin", `BOOKING_PROPOSAL:{"room_id":7,"check_in_date":"2026-09-04","check_out_date":"2026-09-01"}`},
		{"zero nights", `BOOKING_PROPOSAL:{"room_id":7,"check_in_date":"2026-09-04","check_out_date":"2026-09-04"}`},
		{"negative price", `BOOKING_PROPOSAL:{"room_id":7,"check_in_date":"2026-09-01","check_out_date":"2026-09-04","price_per_night":-5}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if p := ParseProposal(c.payload); p != nil {
				t.Errorf("ParseProposal(%q) = %+v, want nil", c.payload, p)
			}
		})
	}
}

func TestResolveProposalStatus(t *testing.T) {
	ci := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	co := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)

	p := &BookingProposal{
		RoomID:       7,
		CheckInDate:  "2026-09-01",
		CheckOutDate: "2026-09-04",
	}

	if got := ResolveProposalStatus(p, nil); got != ProposalStatusPending {
		t.Errorf("no bookings: status = %s, want pending", got)
	}

	otherRoom := models.Booking{RoomID: 8, CheckInDate: ci, CheckOutDate: co, Status: models.BookingStatusUpcoming}
	if got := ResolveProposalStatus(p, []models.Booking{otherRoom}); got != ProposalStatusPending {
		t.Errorf("other room: status = %s, want pending", got)
	}

	otherDates := models.Booking{RoomID: 7, CheckInDate: ci.AddDate(0, 0, 1), CheckOutDate: co, Status: models.BookingStatusUpcoming}
	if got := ResolveProposalStatus(p, []models.Booking{otherDates}); got != ProposalStatusPending {
		t.Errorf("other dates: status = %s, want pending", got)
	}

	booked := models.Booking{RoomID: 7, CheckInDate: ci, CheckOutDate: co, Status: models.BookingStatusUpcoming}
	if got := ResolveProposalStatus(p, []models.Booking{booked}); got != ProposalStatusBooked {
		t.Errorf("matching upcoming: status = %s, want booked", got)
	}

	cancelled := models.Booking{RoomID: 7, CheckInDate: ci, CheckOutDate: co, Status: models.BookingStatusCancelled}
	if got := ResolveProposalStatus(p, []models.Booking{cancelled}); got != ProposalStatusDeclined {
		t.Errorf("matching cancelled: status = %s, want declined", got)
	}

	// a live rebooking after a cancellation wins over the cancelled match
	if got := ResolveProposalStatus(p, []models.Booking{cancelled, booked}); got != ProposalStatusBooked {
		t.Errorf("cancelled then rebooked: status = %s, want booked", got)
	}

	if got := ResolveProposalStatus(nil, []models.Booking{booked}); got != ProposalStatusPending {
		t.Errorf("nil proposal: status = %s, want pending", got)
	}
}
