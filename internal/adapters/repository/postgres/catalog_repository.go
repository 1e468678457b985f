package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/operator-registry/internal/core/catalog"
	pgdb "github.com/ogurasousui/operator-registry/internal/platform/db/postgres"
)

// CatalogRepository は regions / operator_statuses テーブルを参照する実装です。
type CatalogRepository struct {
	pool pgdb.Queryer
}

// NewCatalogRepository は CatalogRepository を生成します。
func NewCatalogRepository(pool pgdb.Queryer) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

var _ catalog.Repository = (*CatalogRepository)(nil)

// ListRegions は地域を ID 順に返します。
func (r *CatalogRepository) ListRegions(ctx context.Context) ([]*catalog.Region, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `SELECT id, name FROM regions ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regions := make([]*catalog.Region, 0)
	for rows.Next() {
		region, err := scanRegion(rows)
		if err != nil {
			return nil, err
		}
		regions = append(regions, region)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return regions, nil
}

// FindRegion は ID で地域を取得します。
func (r *CatalogRepository) FindRegion(ctx context.Context, id int64) (*catalog.Region, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	region, err := scanRegion(exec.QueryRow(ctx, `SELECT id, name FROM regions WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrRegionNotFound
		}
		return nil, err
	}
	return region, nil
}

// ListStatuses はステータスを ID 順に返します。
func (r *CatalogRepository) ListStatuses(ctx context.Context) ([]*catalog.Status, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `SELECT id, description FROM operator_statuses ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statuses := make([]*catalog.Status, 0, 4)
	for rows.Next() {
		status, err := scanStatus(rows)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return statuses, nil
}

// FindStatus は ID でステータスを取得します。
func (r *CatalogRepository) FindStatus(ctx context.Context, id catalog.BusinessStatus) (*catalog.Status, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	status, err := scanStatus(exec.QueryRow(ctx, `SELECT id, description FROM operator_statuses WHERE id = $1`, int32(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrStatusNotFound
		}
		return nil, err
	}
	return status, nil
}

func scanRegion(row pgx.Row) (*catalog.Region, error) {
	var region catalog.Region
	if err := row.Scan(&region.ID, &region.Name); err != nil {
		return nil, err
	}
	return &region, nil
}

func scanStatus(row pgx.Row) (*catalog.Status, error) {
	var (
		id          int32
		description string
	)
	if err := row.Scan(&id, &description); err != nil {
		return nil, err
	}
	return &catalog.Status{ID: catalog.BusinessStatus(id), Description: description}, nil
}
