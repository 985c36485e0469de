// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Trip is a travel listing with an ordered collection of images.
//
// Description, Location, EndDate and Price are nullable. A nil EndDate
// means the trip is open-ended.
type Trip struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Description *string     `json:"description"`
	Location    *string     `json:"location"`
	StartDate   time.Time   `json:"startDate"`
	EndDate     *time.Time  `json:"endDate"`
	Price       *float64    `json:"price"`
	Images      []TripImage `json:"images"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// TripImage is an image exclusively owned by one Trip.
type TripImage struct {
	ID     int64  `json:"id"`
	TripID int64  `json:"tripId"`
	URL    string `json:"url"`
}

// TableName returns the name of the database table
// associated with the Trip model.
func (t Trip) TableName() string {
	return "trips"
}

// CreateTripRequest is the body of POST /api/trips.
// Images is an ordered list of image URLs.
type CreateTripRequest struct {
	Title       string        `json:"title"`
	Description *string       `json:"description"`
	Location    *string       `json:"location"`
	StartDate   string        `json:"startDate"`
	EndDate     *string       `json:"endDate"`
	Price       OptionalFloat `json:"price"`
	Images      []string      `json:"images"`
}

// UpdateTripRequest is the body of PUT /api/trips/{id}.
// Every field is optional; nil pointers keep the stored value.
// Price is replaced whenever it is present in the body, even when null.
type UpdateTripRequest struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	Location    *string       `json:"location"`
	StartDate   *string       `json:"startDate"`
	EndDate     *string       `json:"endDate"`
	Price       OptionalFloat `json:"price"`
}

// TripSearchQuery holds the raw query parameters of GET /api/trips.
type TripSearchQuery struct {
	Keyword   string
	StartDate string
	EndDate   string
	Page      string
	PageSize  string
}

// TripFilter is the validated search criteria passed to the trip store.
//
// The date range is applied only when both bounds are set. Keyword is
// matched case-insensitively against title, description and location.
type TripFilter struct {
	Keyword    string
	StartDate  *time.Time
	EndDate    *time.Time
	Pagination Pagination
}

// HasDateRange reports whether both date bounds are present.
func (f TripFilter) HasDateRange() bool {
	return f.StartDate != nil && f.EndDate != nil
}

// TripPage is a window of search results.
type TripPage struct {
	Items    []Trip `json:"items"`
	Total    int64  `json:"total"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
}
