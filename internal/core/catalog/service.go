package catalog

import (
	"context"
	"fmt"
)

// Service は参照データの読み取りユースケースです。
type Service struct {
	repo Repository
}

// NewService は Service を生成します。
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListRegions は地域一覧を返します。
func (s *Service) ListRegions(ctx context.Context) ([]*Region, error) {
	return s.repo.ListRegions(ctx)
}

// GetRegion は ID で地域を取得します。
func (s *Service) GetRegion(ctx context.Context, id int64) (*Region, error) {
	if id <= 0 {
		return nil, fmt.Errorf("region_id: %w", ErrInvalidRegionID)
	}
	return s.repo.FindRegion(ctx, id)
}

// ListStatuses はステータス一覧を返します。
func (s *Service) ListStatuses(ctx context.Context) ([]*Status, error) {
	return s.repo.ListStatuses(ctx)
}

// GetStatus は ID でステータスを取得します。
func (s *Service) GetStatus(ctx context.Context, id BusinessStatus) (*Status, error) {
	if !id.Valid() {
		return nil, ErrStatusNotFound
	}
	return s.repo.FindStatus(ctx, id)
}

// EnsureRegion は地域が存在することを確認します。
func (s *Service) EnsureRegion(ctx context.Context, id int64) error {
	_, err := s.GetRegion(ctx, id)
	return err
}

// EnsureStatus はステータスが存在することを確認します。
func (s *Service) EnsureStatus(ctx context.Context, id BusinessStatus) error {
	_, err := s.GetStatus(ctx, id)
	return err
}
