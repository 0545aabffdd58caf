// Package httperr maps storage-layer errors to structured HTTP error
// responses.
package httperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes surfaced by the driver.
const (
	codeStringDataTooLong   = "22001"
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// Response is the uniform body for all non-2xx responses.
type Response struct {
	Title  string         `json:"title"`
	Status int            `json:"status"`
	Detail string         `json:"detail"`
	Code   string         `json:"code,omitempty"`
	Meta   map[string]any `json:"meta,omitempty"`
}

// New builds a Response for a status code with the standard title.
func New(status int, detail string) Response {
	return Response{
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	}
}

// Format maps a storage or application error to a Response.
//
// Known constraint violations map to client errors, missing records map to
// 404, and anything unrecognized falls through to 500 so that internal
// details never leak with a misleading status.
func Format(err error) Response {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return New(http.StatusNotFound, "The record could not be found.")
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return New(http.StatusConflict, "A unique constraint failed for the provided value.")
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return New(http.StatusConflict, "A foreign key constraint failed for the provided value.")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		resp := formatPgError(pgErr)
		resp.Code = pgErr.Code
		if pgErr.ConstraintName != "" {
			resp.Meta = map[string]any{"constraint": pgErr.ConstraintName}
		}
		return resp
	}

	return New(http.StatusInternalServerError, "An unexpected error occurred.")
}

func formatPgError(pgErr *pgconn.PgError) Response {
	switch pgErr.Code {
	case codeStringDataTooLong:
		return New(http.StatusBadRequest, "The provided value for a column is too long.")
	case codeUniqueViolation:
		return New(http.StatusConflict, fmt.Sprintf("A unique constraint failed: %s", pgErr.ConstraintName))
	case codeForeignKeyViolation:
		return New(http.StatusConflict, fmt.Sprintf("A foreign key constraint failed: %s", pgErr.ConstraintName))
	default:
		return New(http.StatusBadRequest, fmt.Sprintf("Storage error: %s", pgErr.Message))
	}
}
