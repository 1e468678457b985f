package catalog

import (
	"context"
	"errors"
	"testing"
)

type fakeCatalogRepo struct {
	regions map[int64]*Region
}

func (f fakeCatalogRepo) ListRegions(context.Context) ([]*Region, error) {
	out := make([]*Region, 0, len(f.regions))
	for _, r := range f.regions {
		out = append(out, r)
	}
	return out, nil
}

func (f fakeCatalogRepo) FindRegion(_ context.Context, id int64) (*Region, error) {
	r, ok := f.regions[id]
	if !ok {
		return nil, ErrRegionNotFound
	}
	return r, nil
}

func (f fakeCatalogRepo) ListStatuses(context.Context) ([]*Status, error) {
	var out []*Status
	for _, s := range DefaultStatuses() {
		s := s
		out = append(out, &s)
	}
	return out, nil
}

func (f fakeCatalogRepo) FindStatus(_ context.Context, id BusinessStatus) (*Status, error) {
	for _, s := range DefaultStatuses() {
		if s.ID == id {
			s := s
			return &s, nil
		}
	}
	return nil, ErrStatusNotFound
}

func TestService_EnsureRegion(t *testing.T) {
	t.Parallel()

	svc := NewService(fakeCatalogRepo{regions: map[int64]*Region{1: {ID: 1, Name: "Antioquia"}}})

	if err := svc.EnsureRegion(context.Background(), 1); err != nil {
		t.Fatalf("EnsureRegion returned error: %v", err)
	}
	if err := svc.EnsureRegion(context.Background(), 2); !errors.Is(err, ErrRegionNotFound) {
		t.Fatalf("expected ErrRegionNotFound, got %v", err)
	}
	if err := svc.EnsureRegion(context.Background(), 0); !errors.Is(err, ErrInvalidRegionID) {
		t.Fatalf("expected ErrInvalidRegionID, got %v", err)
	}
}

func TestService_GetStatus(t *testing.T) {
	t.Parallel()

	svc := NewService(fakeCatalogRepo{})

	st, err := svc.GetStatus(context.Background(), StatusCreated)
	if err != nil {
		t.Fatalf("GetStatus returned error: %v", err)
	}
	if st.Description != "Creado" {
		t.Fatalf("unexpected description %q", st.Description)
	}

	if err := svc.EnsureStatus(context.Background(), BusinessStatus(42)); !errors.Is(err, ErrStatusNotFound) {
		t.Fatalf("expected ErrStatusNotFound, got %v", err)
	}
}

func TestBusinessStatus_Valid(t *testing.T) {
	t.Parallel()

	for _, s := range DefaultStatuses() {
		if !s.ID.Valid() {
			t.Fatalf("expected %v to be valid", s.ID)
		}
	}
	if BusinessStatus(0).Valid() || BusinessStatus(5).Valid() {
		t.Fatalf("expected out of range statuses to be invalid")
	}
}
