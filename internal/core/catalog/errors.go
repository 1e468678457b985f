package catalog

import "errors"

var (
	// ErrRegionNotFound は地域が存在しない場合に返却されます。
	ErrRegionNotFound = errors.New("catalog: region not found")
	// ErrStatusNotFound はステータスが存在しない場合に返却されます。
	ErrStatusNotFound = errors.New("catalog: status not found")
	// ErrInvalidRegionID は地域 ID が不正な場合に返却されます。
	ErrInvalidRegionID = errors.New("catalog: invalid region id")
)
