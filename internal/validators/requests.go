package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-trips/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the display name of a registering user.
	FieldName = "name"

	// FieldEmail targets the login email.
	FieldEmail = "email"

	// FieldPassword targets the plain-text password.
	FieldPassword = "password"

	// FieldTitle targets the required trip title.
	FieldTitle = "title"

	// FieldStartDate targets the trip start date. On create it is required,
	// on update and search it is checked only when present.
	FieldStartDate = "start_date"

	// FieldEndDate targets the optional trip end date.
	FieldEndDate = "end_date"
)

// RequestValidator implements the Validator interface for the API request
// models: RegisterRequest, LoginRequest, CreateTripRequest,
// UpdateTripRequest and TripSearchQuery.
//
// It accepts both value and pointer forms of every model.
type RequestValidator struct {
}

// NewRequestValidator constructs a new RequestValidator
// and returns it as the Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// the default set for the model is validated.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)

	case models.CreateTripRequest:
		return v.validateCreateTripRequest(value, fields...)
	case *models.CreateTripRequest:
		return v.validateCreateTripRequest(*value, fields...)

	case models.UpdateTripRequest:
		return v.validateUpdateTripRequest(value, fields...)
	case *models.UpdateTripRequest:
		return v.validateUpdateTripRequest(*value, fields...)

	case models.TripSearchQuery:
		return v.validateTripSearchQuery(value, fields...)
	case *models.TripSearchQuery:
		return v.validateTripSearchQuery(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateRegisterRequest requires name, email and password.
func (v *RequestValidator) validateRegisterRequest(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if req.Name == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if req.Email == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateLoginRequest requires email and password.
func (v *RequestValidator) validateLoginRequest(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if req.Email == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCreateTripRequest requires a title and a parsable start date.
// A non-empty end date must parse too.
func (v *RequestValidator) validateCreateTripRequest(req models.CreateTripRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldStartDate, FieldEndDate}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if req.Title == "" {
				return ErrEmptyTitle
			}
		case FieldStartDate:
			if req.StartDate == "" {
				return ErrEmptyStartDate
			}
			if err := validateDate(FieldStartDate, req.StartDate); err != nil {
				return err
			}
		case FieldEndDate:
			if req.EndDate != nil {
				if err := validateDate(FieldEndDate, *req.EndDate); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUpdateTripRequest checks the dates that are present.
// Every field of an update is optional.
func (v *RequestValidator) validateUpdateTripRequest(req models.UpdateTripRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStartDate, FieldEndDate}
	}

	for _, f := range fields {
		switch f {
		case FieldStartDate:
			if req.StartDate != nil {
				if err := validateDate(FieldStartDate, *req.StartDate); err != nil {
					return err
				}
			}
		case FieldEndDate:
			if req.EndDate != nil {
				if err := validateDate(FieldEndDate, *req.EndDate); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateTripSearchQuery checks that supplied date bounds parse.
func (v *RequestValidator) validateTripSearchQuery(q models.TripSearchQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStartDate, FieldEndDate}
	}

	for _, f := range fields {
		switch f {
		case FieldStartDate:
			if err := validateDate(FieldStartDate, q.StartDate); err != nil {
				return err
			}
		case FieldEndDate:
			if err := validateDate(FieldEndDate, q.EndDate); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateDate accepts an empty value; anything else must be a calendar
// date or an RFC 3339 timestamp.
func validateDate(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	if _, err := models.ParseDate(value); err != nil {
		return fmt.Errorf("%w: %s %q", ErrInvalidDate, field, value)
	}
	return nil
}
