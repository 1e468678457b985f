package operator

import (
	"context"
	"time"

	"github.com/ogurasousui/operator-registry/internal/core/catalog"
)

// Repository はオペレーター永続化の抽象です。
// 明示しない限り、読み取りはゴミ箱のレコードを含みません。
type Repository interface {
	Create(ctx context.Context, op *Operator) (*Operator, error)
	Update(ctx context.Context, op *Operator) (*Operator, error)
	FindByID(ctx context.Context, id string, includeTrashed bool) (*Operator, error)
	FindActiveByNationalID(ctx context.Context, nationalID string) (*Operator, error)
	List(ctx context.Context, filter ListOperatorsFilter) ([]*Operator, string, error)
	SoftDelete(ctx context.Context, id, deletedBy string, at time.Time) (*Operator, error)
	ForceDelete(ctx context.Context, id string) error
	Restore(ctx context.Context, id, modifiedBy string, at time.Time) (*Operator, error)
	PurgeTrashed(ctx context.Context) (int, error)
	CodesInUse(ctx context.Context, regionID int64) ([]int, error)
	// LockRegion は現在のトランザクションが終わるまで地域単位のコード割り当てを直列化します。
	LockRegion(ctx context.Context, regionID int64) error
}

// ListOperatorsFilter は一覧取得用フィルタです。
type ListOperatorsFilter struct {
	RegionID *int64
	Status   *catalog.BusinessStatus
	Trashed  bool
	Limit    int
	Offset   int
}
