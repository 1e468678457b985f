package memory

import (
	"context"
	"sort"

	"github.com/ogurasousui/operator-registry/internal/core/catalog"
)

// Catalog は設定ファイルなどから与えられる静的な参照データです。
type Catalog struct {
	regions  map[int64]catalog.Region
	statuses map[catalog.BusinessStatus]catalog.Status
}

// NewCatalog は地域一覧と固定ステータスから Catalog を生成します。
func NewCatalog(regions []catalog.Region) *Catalog {
	c := &Catalog{
		regions:  make(map[int64]catalog.Region, len(regions)),
		statuses: make(map[catalog.BusinessStatus]catalog.Status),
	}
	for _, r := range regions {
		c.regions[r.ID] = r
	}
	for _, s := range catalog.DefaultStatuses() {
		c.statuses[s.ID] = s
	}
	return c
}

var _ catalog.Repository = (*Catalog)(nil)

func (c *Catalog) ListRegions(context.Context) ([]*catalog.Region, error) {
	out := make([]*catalog.Region, 0, len(c.regions))
	for _, r := range c.regions {
		r := r
		out = append(out, &r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (c *Catalog) FindRegion(_ context.Context, id int64) (*catalog.Region, error) {
	r, ok := c.regions[id]
	if !ok {
		return nil, catalog.ErrRegionNotFound
	}
	return &r, nil
}

func (c *Catalog) ListStatuses(context.Context) ([]*catalog.Status, error) {
	out := make([]*catalog.Status, 0, len(c.statuses))
	for _, s := range c.statuses {
		s := s
		out = append(out, &s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (c *Catalog) FindStatus(_ context.Context, id catalog.BusinessStatus) (*catalog.Status, error) {
	s, ok := c.statuses[id]
	if !ok {
		return nil, catalog.ErrStatusNotFound
	}
	return &s, nil
}
