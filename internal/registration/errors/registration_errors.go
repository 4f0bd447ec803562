package registrationerrors

import (
	"net/http"

	"transferdesk/internal/shared/apperror"
)

var (
	ErrDraftNotFound = apperror.New(
		apperror.CodeNotFound,
		"Registration draft not found or expired",
		http.StatusNotFound,
	)
	ErrInvalidStep = apperror.New(
		apperror.CodeInvalidState,
		"Operation not allowed in the current wizard step",
		http.StatusConflict,
	)
	ErrInvalidSection = apperror.New(
		apperror.CodeInvalidInput,
		"Section number must be between 1 and 7",
		http.StatusBadRequest,
	)
	ErrEntryIndexOutOfRange = apperror.New(
		apperror.CodeInvalidInput,
		"Service entry index out of range",
		http.StatusBadRequest,
	)
	ErrLastEntry = apperror.New(
		apperror.CodeInvalidState,
		"At least one service entry must remain",
		http.StatusConflict,
	)
)
