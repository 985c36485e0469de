// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-trips HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them
// in one place keeps the wording consistent throughout the API. Internal
// error details are logged, never returned.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInternalError is returned by the auth endpoints on unexpected
	// server-side failures.
	MsgInternalError = "Internal server error"

	// MsgServerError is returned by the listing endpoints on unexpected
	// server-side failures.
	MsgServerError = "Server error"

	// MsgNotFound is returned for unknown routes, unsupported methods and
	// unknown trip ids on GET.
	MsgNotFound = "Not found"

	// MsgInvalidDate is returned when a date is neither YYYY-MM-DD nor RFC 3339.
	MsgInvalidDate = "Invalid date"

	// MsgTokenRequired is returned when the Authorization header is missing
	// or malformed.
	MsgTokenRequired = "Access token required"

	// MsgInvalidToken is returned when a bearer token is expired or cannot be
	// verified.
	MsgInvalidToken = "Invalid or expired token"

	MsgAllFieldsRequired  = "All fields are required"
	MsgEmailRegistered    = "Email already registered"
	MsgUserRegistered     = "User registered successfully"
	MsgCredentialsMissing = "Email and password are required"

	// MsgInvalidCredentials is the single message for unknown email and
	// wrong password alike.
	MsgInvalidCredentials = "Invalid credentials"

	MsgTripFieldsRequired = "Title and startDate are required"
	MsgTripNotFound       = "Trip not found"
	MsgCreateTripFailed   = "Failed to create trip"
	MsgUpdateTripFailed   = "Failed to update trip"
	MsgDeleteTripFailed   = "Failed to delete trip"
	MsgTripDeleted        = "Trip deleted successfully"
)
