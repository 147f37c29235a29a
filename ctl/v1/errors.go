/*
 * Radon
 *
 * Copyright 2018 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package v1

import (
	"net/http"

	"github.com/guojianwei001/h-store/router"

	"github.com/pkg/errors"
)

// httpStatus maps the router errors to the http status code.
func httpStatus(err error) int {
	switch errors.Cause(err) {
	case router.ErrUnknownTable, router.ErrUnknownPhase, router.ErrUnknownEntity:
		return http.StatusNotFound
	case router.ErrTypeMismatch, router.ErrMalformedRange:
		return http.StatusBadRequest
	case router.ErrDomainMismatch:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
