// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming request payloads (registration, login,
// trip create/update and trip search) before they reach the service layer.
//
// Validation failures are reported as sentinel errors from errors.go so the
// service layer can map them to its own error kinds with errors.Is.
package validators

import "context"

// Validator validates a request value. When fields are given, only those
// fields are checked; otherwise every rule for the value's type applies.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
