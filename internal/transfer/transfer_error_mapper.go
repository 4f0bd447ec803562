package transfer

import (
	"errors"

	employeeerrors "transferdesk/internal/employee/errors"
	transfererrors "transferdesk/internal/transfer/errors"

	"gorm.io/gorm"
)

func mapEmployeeLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}
	return err
}

func mapTransferLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return transfererrors.ErrTransferNotFound
	}
	return err
}
