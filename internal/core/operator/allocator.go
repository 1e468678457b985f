package operator

import (
	"context"
	"fmt"
	"sync"
)

// CodeSource は地域内で使用中のコードを提供します。
type CodeSource interface {
	CodesInUse(ctx context.Context, regionID int64) ([]int, error)
}

// CodeAllocator は地域内で未使用の最小コードを求めます。
type CodeAllocator struct {
	source CodeSource
}

// NewCodeAllocator は CodeAllocator を生成します。
func NewCodeAllocator(source CodeSource) *CodeAllocator {
	return &CodeAllocator{source: source}
}

// Allocate は [MinCode, MaxCode] を昇順に走査し、最初の空きコードを返します。
// 全コードが使用中の場合は ErrNoCodeAvailable を返します。予約は行いません。
func (a *CodeAllocator) Allocate(ctx context.Context, regionID int64) (int, error) {
	if regionID <= 0 {
		return 0, ErrInvalidRegionID
	}

	codes, err := a.source.CodesInUse(ctx, regionID)
	if err != nil {
		return 0, fmt.Errorf("operator: codes in use: %w", err)
	}

	return firstFreeCode(codes)
}

func firstFreeCode(inUse []int) (int, error) {
	var used [MaxCode - MinCode + 1]bool
	for _, code := range inUse {
		if code < MinCode || code > MaxCode {
			continue
		}
		used[code-MinCode] = true
	}
	for i, taken := range used {
		if !taken {
			return MinCode + i, nil
		}
	}
	return 0, ErrNoCodeAvailable
}

// regionLocks はプロセス内で地域ごとの割り当てを直列化します。
type regionLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newRegionLocks() *regionLocks {
	return &regionLocks{locks: make(map[int64]*sync.Mutex)}
}

func (l *regionLocks) lock(regionID int64) func() {
	l.mu.Lock()
	m, ok := l.locks[regionID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[regionID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
