package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"pupinn-backend/models"
	"pupinn-backend/utils"
)

// Proposal payload marker inside chat message content. The assistant emits
// "BOOKING_PROPOSAL:" followed by a single JSON object; any trailing prose
// after the closing brace belongs to the surrounding message.
const ProposalMarker = "BOOKING_PROPOSAL:"

// Proposal resolution outcomes.
const (
	ProposalStatusPending  = "pending"
	ProposalStatusBooked   = "booked"
	ProposalStatusDeclined = "declined"
)

// BookingProposal is a transient booking suggestion carried inside a chat
// message. It has no identity of its own and is never persisted; accepting
// one goes through the normal creation rules.
type BookingProposal struct {
	RoomID        uint    `json:"room_id"`
	CheckInDate   string  `json:"check_in_date"`
	CheckOutDate  string  `json:"check_out_date"`
	Nights        int     `json:"nights"`
	PricePerNight float64 `json:"price_per_night"`
	TotalPrice    float64 `json:"total_price"`
}

// ParseProposal extracts a proposal from a chat message payload. Returns
// nil for anything malformed — a broken proposal must never abort rendering
// of the conversation around it. Derived fields (nights, total) are
// recomputed from the dates rather than trusted.
func ParseProposal(payload string) *BookingProposal {
	idx := strings.Index(payload, ProposalMarker)
	if idx < 0 {
		return nil
	}
	rest := payload[idx+len(ProposalMarker):]
	end := strings.Index(rest, "}")
	if end < 0 {
		return nil
	}

	var p BookingProposal
	if err := json.Unmarshal([]byte(rest[:end+1]), &p); err != nil {
		return nil
	}
	if p.RoomID == 0 {
		return nil
	}
	ci, co, err := utils.ParseStayDates(p.CheckInDate, p.CheckOutDate)
	if err != nil {
		return nil
	}
	p.Nights = int(co.Sub(ci).Hours() / 24)
	if p.PricePerNight < 0 {
		return nil
	}
	p.TotalPrice = p.PricePerNight * float64(p.Nights)
	return &p
}

// ResolveProposalStatus infers whether a proposal became a real booking, by
// matching (room_id, check_in_date, check_out_date) against the guest's
// already-fetched booking list. Pure function — no query per proposal.
//
// A non-cancelled match means booked; a cancelled match means the guest
// accepted and later declined; no match means the proposal is still open.
func ResolveProposalStatus(p *BookingProposal, guestBookings []models.Booking) string {
	if p == nil {
		return ProposalStatusPending
	}
	status := ProposalStatusPending
	for i := range guestBookings {
		b := &guestBookings[i]
		if b.RoomID != p.RoomID {
			continue
		}
		if b.CheckInDate.Format(utils.DateLayout) != p.CheckInDate ||
			b.CheckOutDate.Format(utils.DateLayout) != p.CheckOutDate {
			continue
		}
		if b.Status != models.BookingStatusCancelled {
			return ProposalStatusBooked
		}
		status = ProposalStatusDeclined
	}
	return status
}

// AcceptProposal turns a proposal into a real booking for the guest. It
// delegates straight to CreateBooking with creation_source=guest, so the
// conflict guard and all creation rules apply unchanged. On
// ErrRoomUnavailable the controller surfaces a distinct "room no longer
// available" outcome — the guest's next action is to search again.
func (s *BookingService) AcceptProposal(p *BookingProposal, userID uint, guestName string) (*models.Booking, error) {
	if p == nil {
		return nil, ErrValidation
	}
	ci, co, err := utils.ParseStayDates(p.CheckInDate, p.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	uid := userID
	return s.CreateBooking(guestName, p.RoomID, ci, co, nil, &uid, models.CreationSourceGuest)
}
