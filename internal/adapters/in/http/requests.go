package http

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator adapts go-playground/validator to echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewCustomValidator creates the request validator used by the server.
func NewCustomValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate runs struct tag validation on a bound request body.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// RegisterRequest is the body of POST /api/v1/auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required"`
	Country  string `json:"country" validate:"required"`
}

// LoginRequest is the body of POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateBloqRequest is the body of POST /api/v1/bloqs.
type CreateBloqRequest struct {
	Title   string `json:"title" validate:"required"`
	Address string `json:"address" validate:"required"`
	Country string `json:"country" validate:"required"`
}

// UpdateBloqRequest is the body of PATCH /api/v1/bloqs/:bloqId. Absent fields
// are left untouched; country is immutable after creation.
type UpdateBloqRequest struct {
	Title   *string `json:"title,omitempty"`
	Address *string `json:"address,omitempty"`
}

// CreateLockerRequest is the body of POST /api/v1/lockers.
type CreateLockerRequest struct {
	BloqID string `json:"bloqId" validate:"required,uuid"`
	Size   string `json:"size" validate:"required"`
}

// UpdateLockerRequest is the body of PATCH /api/v1/lockers/:lockerId. Absent
// fields are left untouched.
type UpdateLockerRequest struct {
	Status     *string `json:"status,omitempty"`
	IsOccupied *bool   `json:"isOccupied,omitempty"`
}

// CreateRentRequest is the body of POST /api/v1/rents. The sender is the
// authenticated principal; allocation runs in the principal's country.
type CreateRentRequest struct {
	Weight        float64 `json:"weight" validate:"required,gt=0"`
	Size          string  `json:"size" validate:"required"`
	ReceiverEmail string  `json:"receiverEmail" validate:"required,email"`
}

// UpdateRentRequest is the body of PATCH /api/v1/rents/:rentId. Absent fields
// are left untouched.
type UpdateRentRequest struct {
	Weight   *float64 `json:"weight,omitempty" validate:"omitempty,gt=0"`
	Size     *string  `json:"size,omitempty"`
	LockerID *string  `json:"lockerId,omitempty" validate:"omitempty,uuid"`
}

// PickupRentRequest is the body of POST /api/v1/rents/:rentId/pickup.
type PickupRentRequest struct {
	Code string `json:"code" validate:"required"`
}
