package operator

import (
	"context"
	"errors"
	"testing"
)

type staticCodeSource map[int64][]int

func (s staticCodeSource) CodesInUse(_ context.Context, regionID int64) ([]int, error) {
	return s[regionID], nil
}

type failingCodeSource struct{ err error }

func (f failingCodeSource) CodesInUse(context.Context, int64) ([]int, error) {
	return nil, f.err
}

func TestCodeAllocator_Allocate(t *testing.T) {
	t.Parallel()

	full := make([]int, 0, MaxCode+1)
	for code := MinCode; code <= MaxCode; code++ {
		full = append(full, code)
	}

	tests := []struct {
		name    string
		inUse   []int
		want    int
		wantErr error
	}{
		{name: "empty region", inUse: nil, want: 0},
		{name: "fills lowest gap", inUse: []int{0, 1, 2, 5}, want: 3},
		{name: "unordered input", inUse: []int{5, 2, 0, 1}, want: 3},
		{name: "reuses zero", inUse: []int{1, 2, 3}, want: 0},
		{name: "duplicates ignored", inUse: []int{0, 0, 1, 1}, want: 2},
		{name: "out of range ignored", inUse: []int{-1, 1000, 0}, want: 1},
		{name: "last code", inUse: full[:MaxCode], want: MaxCode},
		{name: "exhausted", inUse: full, wantErr: ErrNoCodeAvailable},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			alloc := NewCodeAllocator(staticCodeSource{1: tt.inUse})
			got, err := alloc.Allocate(context.Background(), 1)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Allocate returned error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected code %d, got %d", tt.want, got)
			}
		})
	}
}

func TestCodeAllocator_PerRegionIndependence(t *testing.T) {
	t.Parallel()

	alloc := NewCodeAllocator(staticCodeSource{
		1: {0, 1, 2, 3, 4, 5, 6, 7},
		2: {0, 1, 2, 3, 4, 5, 6},
	})

	a, err := alloc.Allocate(context.Background(), 1)
	if err != nil {
		t.Fatalf("Allocate region 1 returned error: %v", err)
	}
	b, err := alloc.Allocate(context.Background(), 2)
	if err != nil {
		t.Fatalf("Allocate region 2 returned error: %v", err)
	}

	if a != 8 {
		t.Fatalf("expected 8 in region 1, got %d", a)
	}
	if b != 7 {
		t.Fatalf("expected 7 to be free in region 2, got %d", b)
	}
}

func TestCodeAllocator_InvalidRegion(t *testing.T) {
	t.Parallel()

	_, err := NewCodeAllocator(staticCodeSource{}).Allocate(context.Background(), 0)
	if !errors.Is(err, ErrInvalidRegionID) {
		t.Fatalf("expected ErrInvalidRegionID, got %v", err)
	}
}

func TestCodeAllocator_SourceError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := NewCodeAllocator(failingCodeSource{err: boom}).Allocate(context.Background(), 1)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped source error, got %v", err)
	}
}
