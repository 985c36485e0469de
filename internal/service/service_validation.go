package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-trips/internal/validators"
	"github.com/MKhiriev/go-trips/models"
)

// AuthValidationService validates credential requests before they reach
// the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, validationError("register request", err)
	}
	return v.inner.RegisterUser(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, validationError("login request", err)
	}
	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(wrapper AuthService) AuthService {
	v.inner = wrapper
	return v
}

// TripValidationService validates trip requests before they reach the
// wrapped TripService.
type TripValidationService struct {
	inner     TripService
	validator validators.Validator
}

func NewTripValidationService() TripServiceWrapper {
	return &TripValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *TripValidationService) SearchTrips(ctx context.Context, query models.TripSearchQuery) (models.TripPage, error) {
	if err := v.validator.Validate(ctx, query); err != nil {
		return models.TripPage{}, validationError("trip search query", err)
	}
	return v.inner.SearchTrips(ctx, query)
}

func (v *TripValidationService) GetTrip(ctx context.Context, id int64) (models.Trip, error) {
	return v.inner.GetTrip(ctx, id)
}

func (v *TripValidationService) CreateTrip(ctx context.Context, req models.CreateTripRequest) (models.Trip, error) {
	// title and start date go first so a request missing both reports the
	// missing field rather than a date error
	if err := v.validator.Validate(ctx, req, validators.FieldTitle, validators.FieldStartDate, validators.FieldEndDate); err != nil {
		return models.Trip{}, validationError("create trip request", err)
	}
	return v.inner.CreateTrip(ctx, req)
}

func (v *TripValidationService) UpdateTrip(ctx context.Context, id int64, req models.UpdateTripRequest) (models.Trip, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Trip{}, validationError("update trip request", err)
	}
	return v.inner.UpdateTrip(ctx, id, req)
}

func (v *TripValidationService) DeleteTrip(ctx context.Context, id int64) error {
	return v.inner.DeleteTrip(ctx, id)
}

func (v *TripValidationService) Wrap(wrapper TripService) TripService {
	v.inner = wrapper
	return v
}

// validationError classifies a validator error as ErrInvalidDate or
// ErrInvalidDataProvided.
func validationError(what string, err error) error {
	if errors.Is(err, validators.ErrInvalidDate) {
		return fmt.Errorf("%w: %s: %w", ErrInvalidDate, what, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrInvalidDataProvided, what, err)
}
