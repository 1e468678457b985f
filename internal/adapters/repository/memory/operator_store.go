package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/ogurasousui/operator-registry/internal/core/operator"
)

// Snapshot はストアの全状態です。
type Snapshot struct {
	Operators []*operator.Operator `json:"operators"`
}

// OperatorStore はメモリ上のオペレーター永続化実装です。
// PostgreSQL の部分ユニークインデックスと同じ一意性制約を検証します。
type OperatorStore struct {
	mu        sync.RWMutex
	operators map[string]*operator.Operator
}

// NewOperatorStore は OperatorStore を生成します。
func NewOperatorStore() *OperatorStore {
	return &OperatorStore{operators: make(map[string]*operator.Operator)}
}

var _ operator.Repository = (*OperatorStore)(nil)

func (s *OperatorStore) checkUnique(op *operator.Operator) error {
	for _, existing := range s.operators {
		if existing.ID == op.ID || existing.Trashed() {
			continue
		}
		if existing.RegionID == op.RegionID && existing.Code == op.Code {
			return operator.ErrCodeConflict
		}
		if existing.NationalID == op.NationalID {
			return operator.ErrNationalIDAlreadyExists
		}
	}
	return nil
}

// Create はオペレーターを新規作成します。
func (s *OperatorStore) Create(_ context.Context, op *operator.Operator) (*operator.Operator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.operators[op.ID]; exists {
		return nil, operator.ErrCodeConflict
	}
	if err := s.checkUnique(op); err != nil {
		return nil, err
	}
	s.operators[op.ID] = op.Clone()
	return op.Clone(), nil
}

// Update はゴミ箱にないオペレーターを更新します。
func (s *OperatorStore) Update(_ context.Context, op *operator.Operator) (*operator.Operator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.operators[op.ID]
	if !ok || existing.Trashed() {
		return nil, operator.ErrOperatorNotFound
	}
	if err := s.checkUnique(op); err != nil {
		return nil, err
	}

	updated := op.Clone()
	updated.Code = existing.Code
	updated.CreatedBy = existing.CreatedBy
	updated.CreatedAt = existing.CreatedAt
	updated.DeletedAt = nil
	updated.DeletedBy = existing.DeletedBy
	s.operators[op.ID] = updated
	return updated.Clone(), nil
}

// FindByID は ID でオペレーターを取得します。
func (s *OperatorStore) FindByID(_ context.Context, id string, includeTrashed bool) (*operator.Operator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	op, ok := s.operators[id]
	if !ok || (op.Trashed() && !includeTrashed) {
		return nil, operator.ErrOperatorNotFound
	}
	return op.Clone(), nil
}

// FindActiveByNationalID はゴミ箱にないオペレーターを身分証番号で検索します。
func (s *OperatorStore) FindActiveByNationalID(_ context.Context, nationalID string) (*operator.Operator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, op := range s.operators {
		if !op.Trashed() && op.NationalID == nationalID {
			return op.Clone(), nil
		}
	}
	return nil, operator.ErrOperatorNotFound
}

// List はコード順にオペレーターを返します。
func (s *OperatorStore) List(_ context.Context, filter operator.ListOperatorsFilter) ([]*operator.Operator, string, error) {
	if filter.Limit <= 0 {
		return nil, "", operator.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", operator.ErrInvalidPageToken
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := make([]*operator.Operator, 0, len(s.operators))
	for _, op := range s.operators {
		if op.Trashed() != filter.Trashed {
			continue
		}
		if filter.RegionID != nil && op.RegionID != *filter.RegionID {
			continue
		}
		if filter.Status != nil && op.StatusID != *filter.Status {
			continue
		}
		filtered = append(filtered, op.Clone())
	}
	sortOperators(filtered)

	if filter.Offset >= len(filtered) {
		return []*operator.Operator{}, "", nil
	}
	end := filter.Offset + filter.Limit
	if end > len(filtered) {
		end = len(filtered)
	}

	nextToken := ""
	if end < len(filtered) {
		nextToken = strconv.Itoa(end)
	}
	return filtered[filter.Offset:end], nextToken, nil
}

// SoftDelete はオペレーターをゴミ箱に移動します。
func (s *OperatorStore) SoftDelete(_ context.Context, id, deletedBy string, at time.Time) (*operator.Operator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	op, ok := s.operators[id]
	if !ok || op.Trashed() {
		return nil, operator.ErrOperatorNotFound
	}
	deletedAt := at
	op.DeletedAt = &deletedAt
	op.DeletedBy = deletedBy
	return op.Clone(), nil
}

// ForceDelete はゴミ箱の有無にかかわらずオペレーターを完全削除します。
func (s *OperatorStore) ForceDelete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.operators[id]; !ok {
		return operator.ErrOperatorNotFound
	}
	delete(s.operators, id)
	return nil
}

// Restore はゴミ箱のオペレーターを復元します。
func (s *OperatorStore) Restore(_ context.Context, id, modifiedBy string, at time.Time) (*operator.Operator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	op, ok := s.operators[id]
	if !ok || !op.Trashed() {
		return nil, operator.ErrOperatorNotFound
	}
	if err := s.checkUnique(op); err != nil {
		return nil, err
	}
	op.DeletedAt = nil
	op.DeletedBy = ""
	op.ModifiedBy = modifiedBy
	op.UpdatedAt = at
	return op.Clone(), nil
}

// PurgeTrashed はゴミ箱のオペレーターをすべて削除します。
func (s *OperatorStore) PurgeTrashed(context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for id, op := range s.operators {
		if op.Trashed() {
			delete(s.operators, id)
			count++
		}
	}
	return count, nil
}

// CodesInUse は地域内でゴミ箱にないオペレーターのコードを返します。
func (s *OperatorStore) CodesInUse(_ context.Context, regionID int64) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	codes := make([]int, 0)
	for _, op := range s.operators {
		if op.RegionID == regionID && !op.Trashed() {
			codes = append(codes, op.Code)
		}
	}
	sort.Ints(codes)
	return codes, nil
}

// LockRegion は何もしません。プロセス内の直列化はサービス側で行います。
func (s *OperatorStore) LockRegion(context.Context, int64) error {
	return nil
}

// ExportState は現在の状態を複製して返します。
func (s *OperatorStore) ExportState() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ops := make([]*operator.Operator, 0, len(s.operators))
	for _, op := range s.operators {
		ops = append(ops, op.Clone())
	}
	sortOperators(ops)
	return Snapshot{Operators: ops}
}

// ImportState は状態を置き換えます。
func (s *OperatorStore) ImportState(snapshot Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.operators = make(map[string]*operator.Operator, len(snapshot.Operators))
	for _, op := range snapshot.Operators {
		if op == nil {
			continue
		}
		s.operators[op.ID] = op.Clone()
	}
}

func sortOperators(ops []*operator.Operator) {
	sort.Slice(ops, func(i, j int) bool {
		if ops[i].Code != ops[j].Code {
			return ops[i].Code < ops[j].Code
		}
		if ops[i].RegionID != ops[j].RegionID {
			return ops[i].RegionID < ops[j].RegionID
		}
		return ops[i].ID < ops[j].ID
	})
}
