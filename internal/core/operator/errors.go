package operator

import (
	"errors"

	"github.com/ogurasousui/operator-registry/internal/core/catalog"
)

var (
	ErrInvalidID               = errors.New("operator: invalid id")
	ErrInvalidRegionID         = errors.New("operator: invalid region id")
	ErrInvalidNationalID       = errors.New("operator: invalid national id")
	ErrInvalidFirstName        = errors.New("operator: invalid first name")
	ErrInvalidLastName         = errors.New("operator: invalid last name")
	ErrInvalidStatus           = errors.New("operator: invalid status")
	ErrInvalidDeleteMode       = errors.New("operator: invalid delete mode")
	ErrInvalidPageSize         = errors.New("operator: invalid page size")
	ErrInvalidPageToken        = errors.New("operator: invalid page token")
	ErrNationalIDAlreadyExists = errors.New("operator: national id already exists")
	ErrOperatorNotFound        = errors.New("operator: not found")
	ErrNoCodeAvailable         = errors.New("operator: no code available in region")
	ErrCodeConflict            = errors.New("operator: code already assigned in region")
)

// IsValidation は入力検証エラーかどうかを返します。
func IsValidation(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidID),
		errors.Is(err, ErrInvalidRegionID),
		errors.Is(err, ErrInvalidNationalID),
		errors.Is(err, ErrInvalidFirstName),
		errors.Is(err, ErrInvalidLastName),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrInvalidDeleteMode),
		errors.Is(err, ErrInvalidPageSize),
		errors.Is(err, ErrInvalidPageToken),
		errors.Is(err, ErrNationalIDAlreadyExists),
		errors.Is(err, catalog.ErrRegionNotFound),
		errors.Is(err, catalog.ErrStatusNotFound),
		errors.Is(err, catalog.ErrInvalidRegionID):
		return true
	default:
		return false
	}
}

// IsCapacity は地域内のコードが枯渇したことを示すかを返します。
func IsCapacity(err error) bool {
	return errors.Is(err, ErrNoCodeAvailable)
}

// IsConflict はコード割り当ての競合かどうかを返します。呼び出し側は再試行できます。
func IsConflict(err error) bool {
	return errors.Is(err, ErrCodeConflict)
}

// IsNotFound はオペレーターが見つからないことを示すかを返します。
func IsNotFound(err error) bool {
	return errors.Is(err, ErrOperatorNotFound)
}
