package catalog

import "context"

// Repository は地域とステータスの参照データ取得の抽象です。
type Repository interface {
	ListRegions(ctx context.Context) ([]*Region, error)
	FindRegion(ctx context.Context, id int64) (*Region, error)
	ListStatuses(ctx context.Context) ([]*Status, error)
	FindStatus(ctx context.Context, id BusinessStatus) (*Status, error)
}
