package operator

import (
	"fmt"
	"time"

	"github.com/ogurasousui/operator-registry/internal/core/catalog"
)

const (
	// MinCode は割り当て可能な最小コードです。
	MinCode = 0
	// MaxCode は割り当て可能な最大コードです。
	MaxCode = 999
)

// Operator はオペレーター（現場担当者）エンティティです。
// DeletedAt が設定されている場合はゴミ箱に入っている状態で、StatusID とは独立しています。
type Operator struct {
	ID         string
	Code       int
	NationalID string
	FirstName  string
	LastName   string
	RegionID   int64
	StatusID   catalog.BusinessStatus
	CreatedBy  string
	ModifiedBy string
	DeletedBy  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

// Trashed はゴミ箱に入っているかを返します。
func (o *Operator) Trashed() bool {
	return o.DeletedAt != nil
}

// Clone は DeletedAt を含めて複製します。
func (o *Operator) Clone() *Operator {
	if o == nil {
		return nil
	}
	c := *o
	if o.DeletedAt != nil {
		deleted := *o.DeletedAt
		c.DeletedAt = &deleted
	}
	return &c
}

// DeleteMode は削除方式です。
type DeleteMode string

const (
	DeleteModeSoft  DeleteMode = "soft_delete"
	DeleteModeForce DeleteMode = "force_delete"
)

// ParseDeleteMode は "soft_delete" / "force_delete" のみを受け付けます。
func ParseDeleteMode(raw string) (DeleteMode, error) {
	switch mode := DeleteMode(raw); mode {
	case DeleteModeSoft, DeleteModeForce:
		return mode, nil
	default:
		return "", fmt.Errorf("mode %q: %w", raw, ErrInvalidDeleteMode)
	}
}
