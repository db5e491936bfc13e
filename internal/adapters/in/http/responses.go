package http

import (
	"parcellocker/internal/core/application/usecases/queries"
)

// ErrorResponse is the wire shape of every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// TokenResponse carries the JWT issued on registration and login.
type TokenResponse struct {
	Token string `json:"token"`
}

// CreatedResponse carries the identifier of a freshly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// BloqResponse is the wire shape of a site.
type BloqResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Address string `json:"address"`
	Country string `json:"country"`
}

// LockerResponse is the wire shape of a compartment.
type LockerResponse struct {
	ID         string `json:"id"`
	BloqID     string `json:"bloqId"`
	Size       string `json:"size"`
	Status     string `json:"status"`
	IsOccupied bool   `json:"isOccupied"`
}

// RentResponse is the wire shape of a rent. The pickup code is deliberately
// absent: it travels to the receiver by notification only.
type RentResponse struct {
	ID            string  `json:"id"`
	LockerID      *string `json:"lockerId"`
	Weight        float64 `json:"weight"`
	Size          string  `json:"size"`
	Status        string  `json:"status"`
	SenderEmail   string  `json:"senderEmail"`
	ReceiverEmail string  `json:"receiverEmail"`
}

func toBloqResponse(b queries.BloqResponse) BloqResponse {
	return BloqResponse{
		ID:      b.ID.String(),
		Title:   b.Title,
		Address: b.Address,
		Country: b.Country.String(),
	}
}

func toBloqResponses(bloqs []queries.BloqResponse) []BloqResponse {
	response := make([]BloqResponse, len(bloqs))
	for i, b := range bloqs {
		response[i] = toBloqResponse(b)
	}
	return response
}

func toLockerResponse(l queries.LockerResponse) LockerResponse {
	return LockerResponse{
		ID:         l.ID.String(),
		BloqID:     l.BloqID.String(),
		Size:       l.Size.String(),
		Status:     l.Status.String(),
		IsOccupied: l.IsOccupied,
	}
}

func toLockerResponses(lockers []queries.LockerResponse) []LockerResponse {
	response := make([]LockerResponse, len(lockers))
	for i, l := range lockers {
		response[i] = toLockerResponse(l)
	}
	return response
}

func toRentResponse(r queries.RentResponse) RentResponse {
	var lockerID *string
	if r.LockerID != nil {
		id := r.LockerID.String()
		lockerID = &id
	}

	return RentResponse{
		ID:            r.ID.String(),
		LockerID:      lockerID,
		Weight:        r.Weight,
		Size:          r.Size.String(),
		Status:        r.Status.String(),
		SenderEmail:   r.SenderEmail,
		ReceiverEmail: r.ReceiverEmail,
	}
}

func toRentResponses(rents []queries.RentResponse) []RentResponse {
	response := make([]RentResponse, len(rents))
	for i, r := range rents {
		response[i] = toRentResponse(r)
	}
	return response
}
