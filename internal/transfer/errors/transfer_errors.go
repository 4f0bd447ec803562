package transfererrors

import (
	"net/http"

	"transferdesk/internal/shared/apperror"
)

var (
	ErrTransferNotFound = apperror.New(
		apperror.CodeNotFound,
		"Transfer order not found",
		http.StatusNotFound,
	)
	ErrInvalidEffectiveDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid effective date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrSameCityAndPosition = apperror.New(
		apperror.CodeInvalidState,
		"Transfer must change the institution, city or position",
		http.StatusConflict,
	)
)
