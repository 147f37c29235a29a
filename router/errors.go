/*
 * Radon
 *
 * Copyright 2018 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package router

import (
	"github.com/pkg/errors"
)

// Errors returned by the router, wrapped with the offending detail.
// Test them with errors.Cause.
var (
	// ErrMalformedPlan is a load time failure, no plan is returned.
	ErrMalformedPlan = errors.New("malformed.plan")

	// ErrMalformedRange is a range spec that can not be parsed.
	ErrMalformedRange = errors.New("malformed.range")

	// ErrUnknownTable is a table the active phase has no entry for.
	ErrUnknownTable = errors.New("unknown.table")

	// ErrUnknownPhase is a phase the plan does not have.
	ErrUnknownPhase = errors.New("unknown.phase")

	// ErrUnknownEntity is an entity the catalog never declared.
	ErrUnknownEntity = errors.New("unknown.entity")

	// ErrTypeMismatch is a key that is not of the table key type.
	ErrTypeMismatch = errors.New("type.mismatch")

	// ErrDomainMismatch is a diff between tables covering different domains.
	ErrDomainMismatch = errors.New("domain.mismatch")
)
