package operator

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/ogurasousui/operator-registry/internal/core/access"
	"github.com/ogurasousui/operator-registry/internal/core/catalog"
	"go.uber.org/zap"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Catalog は地域とステータスの存在確認を提供します。
type Catalog interface {
	EnsureRegion(ctx context.Context, id int64) error
	EnsureStatus(ctx context.Context, id catalog.BusinessStatus) error
}

// Recorder は操作結果を計測します。
type Recorder interface {
	ObserveOperation(operation, outcome string)
	ObserveAllocation(outcome string)
}

type noopRecorder struct{}

func (noopRecorder) ObserveOperation(string, string) {}
func (noopRecorder) ObserveAllocation(string)        {}

const (
	defaultListPageSize = 50
	maxListPageSize     = 200
	maxNameLength       = 100
	maxNationalIDLength = 15
)

// transitions は AdvanceStatus の固定遷移表です。表にないステータスは変化しません。
var transitions = map[catalog.BusinessStatus]catalog.BusinessStatus{
	catalog.StatusPendingCreate: catalog.StatusCreated,
	catalog.StatusCreated:       catalog.StatusPendingDelete,
}

// NextStatus は遷移表に従った次のステータスと、変化したかどうかを返します。
func NextStatus(current catalog.BusinessStatus) (catalog.BusinessStatus, bool) {
	next, ok := transitions[current]
	if !ok {
		return current, false
	}
	return next, true
}

// Service はオペレーターのライフサイクルに関するユースケースをまとめます。
type Service struct {
	repo      Repository
	catalog   Catalog
	allocator *CodeAllocator
	gate      *access.Gate
	clock     Clock
	tx        TransactionManager
	locks     *regionLocks
	logger    *zap.Logger
	recorder  Recorder
}

// UseCase はオペレーターユースケースの公開インターフェースです。
type UseCase interface {
	CreateOperator(ctx context.Context, in CreateOperatorInput) (*Operator, error)
	GetOperator(ctx context.Context, in GetOperatorInput) (*Operator, error)
	ListOperators(ctx context.Context, in ListOperatorsInput) (*ListOperatorsResult, error)
	UpdateOperator(ctx context.Context, in UpdateOperatorInput) (*Operator, error)
	AdvanceStatus(ctx context.Context, in AdvanceStatusInput) (*Operator, error)
	RemoveOperator(ctx context.Context, in RemoveOperatorInput) (*Operator, error)
	RestoreOperator(ctx context.Context, in RestoreOperatorInput) (*Operator, error)
	PurgeTrash(ctx context.Context) (int, error)
}

// Option は Service の任意設定です。
type Option func(*Service)

// WithLogger はロガーを設定します。
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRecorder はメトリクス記録先を設定します。
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

// NewService は Service を生成します。
func NewService(repo Repository, cat Catalog, clock Clock, tx TransactionManager, opts ...Option) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	s := &Service{
		repo:      repo,
		catalog:   cat,
		allocator: NewCodeAllocator(repo),
		gate:      access.NewGate(),
		clock:     clock,
		tx:        tx,
		locks:     newRegionLocks(),
		logger:    zap.NewNop(),
		recorder:  noopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateOperatorInput はオペレーター作成時の入力です。コードは自動で割り当てられます。
type CreateOperatorInput struct {
	RegionID   int64
	NationalID string
	FirstName  string
	LastName   string
	StatusID   *catalog.BusinessStatus
}

// UpdateOperatorInput はオペレーター更新時の入力です。コードは変更できません。
type UpdateOperatorInput struct {
	ID         string
	NationalID *string
	FirstName  *string
	LastName   *string
	RegionID   *int64
	StatusID   *catalog.BusinessStatus
}

// GetOperatorInput はオペレーター取得時の入力です。
type GetOperatorInput struct {
	ID             string
	IncludeTrashed bool
}

// ListOperatorsInput は一覧取得時の入力です。Trashed が true の場合はゴミ箱を一覧します。
type ListOperatorsInput struct {
	RegionID  *int64
	Status    *catalog.BusinessStatus
	Trashed   bool
	PageSize  int
	PageToken string
}

// ListOperatorsResult は一覧取得結果を表します。
type ListOperatorsResult struct {
	Operators     []*Operator
	NextPageToken string
}

// AdvanceStatusInput はステータス遷移時の入力です。
type AdvanceStatusInput struct {
	ID string
}

// RemoveOperatorInput は削除時の入力です。
type RemoveOperatorInput struct {
	ID   string
	Mode DeleteMode
}

// RestoreOperatorInput はゴミ箱からの復元時の入力です。
type RestoreOperatorInput struct {
	ID string
}

// CreateOperator は空きコードを割り当ててオペレーターを作成します。
func (s *Service) CreateOperator(ctx context.Context, in CreateOperatorInput) (_ *Operator, err error) {
	defer s.observe("create", &err)

	actor, err := s.gate.CheckContext(ctx, access.ActionCreate)
	if err != nil {
		return nil, err
	}

	if in.RegionID <= 0 {
		return nil, fmt.Errorf("region_id: %w", ErrInvalidRegionID)
	}
	nationalID, err := normalizeNationalID(in.NationalID)
	if err != nil {
		return nil, err
	}
	firstName, err := normalizeName(in.FirstName, ErrInvalidFirstName)
	if err != nil {
		return nil, err
	}
	lastName, err := normalizeName(in.LastName, ErrInvalidLastName)
	if err != nil {
		return nil, err
	}

	status := catalog.StatusPendingCreate
	if in.StatusID != nil {
		if !in.StatusID.Valid() || *in.StatusID == catalog.StatusDeleted {
			return nil, ErrInvalidStatus
		}
		status = *in.StatusID
	}

	if err := s.catalog.EnsureRegion(ctx, in.RegionID); err != nil {
		return nil, err
	}
	if err := s.catalog.EnsureStatus(ctx, status); err != nil {
		return nil, err
	}

	unlock := s.locks.lock(in.RegionID)
	defer unlock()

	var created *Operator
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		if err := s.ensureNationalIDAvailable(txCtx, nationalID, ""); err != nil {
			return err
		}

		if err := s.repo.LockRegion(txCtx, in.RegionID); err != nil {
			return err
		}

		code, err := s.allocator.Allocate(txCtx, in.RegionID)
		if err != nil {
			if errors.Is(err, ErrNoCodeAvailable) {
				s.recorder.ObserveAllocation("exhausted")
				s.logger.Warn("no operator code available", zap.Int64("region_id", in.RegionID))
			}
			return err
		}
		s.recorder.ObserveAllocation("allocated")

		now := s.clock.Now()
		op := &Operator{
			ID:         uuid.NewString(),
			Code:       code,
			NationalID: nationalID,
			FirstName:  firstName,
			LastName:   lastName,
			RegionID:   in.RegionID,
			StatusID:   status,
			CreatedBy:  actor.Username,
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		result, err := s.repo.Create(txCtx, op)
		if err != nil {
			return err
		}

		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	s.logger.Info("operator created",
		zap.String("id", created.ID),
		zap.Int64("region_id", created.RegionID),
		zap.Int("code", created.Code),
		zap.String("actor", actor.Username))

	return created, nil
}

// AdvanceStatus は固定遷移表に従って業務ステータスを進めます。
// 遷移表にないステータスの場合は変更せずにそのまま返します。ゴミ箱のオペレーターは対象外です。
func (s *Service) AdvanceStatus(ctx context.Context, in AdvanceStatusInput) (_ *Operator, err error) {
	defer s.observe("advance_status", &err)

	actor, err := s.gate.CheckContext(ctx, access.ActionAdvanceStatus)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var result *Operator
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, in.ID, false)
		if err != nil {
			return err
		}

		next, changed := NextStatus(existing.StatusID)
		if !changed {
			result = existing
			return nil
		}

		existing.StatusID = next
		existing.ModifiedBy = actor.Username
		existing.UpdatedAt = s.clock.Now()

		updated, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}
		result = updated
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// UpdateOperator はオペレーター情報を更新します。
func (s *Service) UpdateOperator(ctx context.Context, in UpdateOperatorInput) (_ *Operator, err error) {
	defer s.observe("update", &err)

	actor, err := s.gate.CheckContext(ctx, access.ActionUpdate)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var nationalID, firstName, lastName string
	if in.NationalID != nil {
		if nationalID, err = normalizeNationalID(*in.NationalID); err != nil {
			return nil, err
		}
	}
	if in.FirstName != nil {
		if firstName, err = normalizeName(*in.FirstName, ErrInvalidFirstName); err != nil {
			return nil, err
		}
	}
	if in.LastName != nil {
		if lastName, err = normalizeName(*in.LastName, ErrInvalidLastName); err != nil {
			return nil, err
		}
	}
	if in.RegionID != nil {
		if *in.RegionID <= 0 {
			return nil, fmt.Errorf("region_id: %w", ErrInvalidRegionID)
		}
		if err := s.catalog.EnsureRegion(ctx, *in.RegionID); err != nil {
			return nil, err
		}
		unlock := s.locks.lock(*in.RegionID)
		defer unlock()
	}
	if in.StatusID != nil {
		if !in.StatusID.Valid() {
			return nil, ErrInvalidStatus
		}
		if err := s.catalog.EnsureStatus(ctx, *in.StatusID); err != nil {
			return nil, err
		}
	}

	var updated *Operator
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, in.ID, false)
		if err != nil {
			return err
		}

		if in.NationalID != nil && nationalID != existing.NationalID {
			if err := s.ensureNationalIDAvailable(txCtx, nationalID, existing.ID); err != nil {
				return err
			}
			existing.NationalID = nationalID
		}
		if in.FirstName != nil {
			existing.FirstName = firstName
		}
		if in.LastName != nil {
			existing.LastName = lastName
		}
		if in.StatusID != nil {
			existing.StatusID = *in.StatusID
		}
		if in.RegionID != nil && *in.RegionID != existing.RegionID {
			if err := s.ensureCodeFree(txCtx, *in.RegionID, existing.Code); err != nil {
				return err
			}
			existing.RegionID = *in.RegionID
		}

		existing.ModifiedBy = actor.Username
		existing.UpdatedAt = s.clock.Now()

		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}
		updated = result
		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// RemoveOperator はゴミ箱への移動または完全削除を行い、削除前のオペレーターを返します。
func (s *Service) RemoveOperator(ctx context.Context, in RemoveOperatorInput) (_ *Operator, err error) {
	defer s.observe("remove", &err)

	actor, err := s.gate.CheckContext(ctx, access.ActionRemove)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	mode, err := ParseDeleteMode(string(in.Mode))
	if err != nil {
		return nil, err
	}

	var removed *Operator
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		if mode == DeleteModeSoft {
			result, err := s.repo.SoftDelete(txCtx, in.ID, actor.Username, s.clock.Now())
			if err != nil {
				return err
			}
			removed = result
			return nil
		}

		existing, err := s.repo.FindByID(txCtx, in.ID, true)
		if err != nil {
			return err
		}
		if err := s.repo.ForceDelete(txCtx, in.ID); err != nil {
			return err
		}
		removed = existing
		return nil
	}); err != nil {
		return nil, err
	}

	s.logger.Info("operator removed",
		zap.String("id", removed.ID),
		zap.Int("code", removed.Code),
		zap.String("mode", string(mode)),
		zap.String("actor", actor.Username))

	return removed, nil
}

// RestoreOperator はゴミ箱のオペレーターを復元します。
// 削除中にコードや身分証番号が再利用されていた場合は復元できません。
func (s *Service) RestoreOperator(ctx context.Context, in RestoreOperatorInput) (_ *Operator, err error) {
	defer s.observe("restore", &err)

	actor, err := s.gate.CheckContext(ctx, access.ActionRestore)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var restored *Operator
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		result, err := s.repo.Restore(txCtx, in.ID, actor.Username, s.clock.Now())
		if err != nil {
			return err
		}
		restored = result
		return nil
	}); err != nil {
		return nil, err
	}

	return restored, nil
}

// PurgeTrash はゴミ箱のオペレーターをすべて完全削除し、件数を返します。
func (s *Service) PurgeTrash(ctx context.Context) (_ int, err error) {
	defer s.observe("purge_trash", &err)

	actor, err := s.gate.CheckContext(ctx, access.ActionPurgeTrash)
	if err != nil {
		return 0, err
	}

	var count int
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		n, err := s.repo.PurgeTrashed(txCtx)
		if err != nil {
			return err
		}
		count = n
		return nil
	}); err != nil {
		return 0, err
	}

	s.logger.Info("trash purged", zap.Int("count", count), zap.String("actor", actor.Username))
	return count, nil
}

// GetOperator はオペレーターを取得します。
func (s *Service) GetOperator(ctx context.Context, in GetOperatorInput) (_ *Operator, err error) {
	defer s.observe("get", &err)

	if _, err := s.gate.CheckContext(ctx, access.ActionView); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var result *Operator
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.FindByID(txCtx, in.ID, in.IncludeTrashed)
		if err != nil {
			return err
		}
		result = found
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// ListOperators はオペレーターの一覧をコード順に取得します。
func (s *Service) ListOperators(ctx context.Context, in ListOperatorsInput) (_ *ListOperatorsResult, err error) {
	defer s.observe("list", &err)

	if _, err := s.gate.CheckContext(ctx, access.ActionList); err != nil {
		return nil, err
	}

	limit, err := normalizePageSize(in.PageSize)
	if err != nil {
		return nil, err
	}
	offset, err := parsePageToken(in.PageToken)
	if err != nil {
		return nil, err
	}

	filter := ListOperatorsFilter{Trashed: in.Trashed, Limit: limit, Offset: offset}
	if in.RegionID != nil {
		if *in.RegionID <= 0 {
			return nil, fmt.Errorf("region_id: %w", ErrInvalidRegionID)
		}
		region := *in.RegionID
		filter.RegionID = &region
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		status := *in.Status
		filter.Status = &status
	}

	var (
		operators []*Operator
		nextToken string
	)
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, token, err := s.repo.List(txCtx, filter)
		if err != nil {
			return err
		}
		operators = result
		nextToken = token
		return nil
	}); err != nil {
		return nil, err
	}

	return &ListOperatorsResult{Operators: operators, NextPageToken: nextToken}, nil
}

func (s *Service) ensureNationalIDAvailable(ctx context.Context, nationalID, selfID string) error {
	found, err := s.repo.FindActiveByNationalID(ctx, nationalID)
	if err != nil && !errors.Is(err, ErrOperatorNotFound) {
		return err
	}
	if found != nil && found.ID != selfID {
		return ErrNationalIDAlreadyExists
	}
	return nil
}

func (s *Service) ensureCodeFree(ctx context.Context, regionID int64, code int) error {
	if err := s.repo.LockRegion(ctx, regionID); err != nil {
		return err
	}
	codes, err := s.repo.CodesInUse(ctx, regionID)
	if err != nil {
		return err
	}
	for _, used := range codes {
		if used == code {
			return ErrCodeConflict
		}
	}
	return nil
}

func (s *Service) observe(operation string, errp *error) {
	var err error
	if errp != nil {
		err = *errp
	}
	outcome := Outcome(err)
	s.recorder.ObserveOperation(operation, outcome)
	if outcome == "conflict" {
		s.logger.Warn("operator code conflict", zap.String("operation", operation), zap.Error(err))
	}
}

// Outcome はエラーを計測用の結果ラベルに変換します。
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, access.ErrForbidden), errors.Is(err, access.ErrUnknownAction):
		return "forbidden"
	case IsCapacity(err):
		return "capacity"
	case IsConflict(err):
		return "conflict"
	case IsNotFound(err):
		return "not_found"
	case IsValidation(err):
		return "invalid"
	default:
		return "error"
	}
}

func normalizeNationalID(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || len(trimmed) > maxNationalIDLength {
		return "", ErrInvalidNationalID
	}
	for _, r := range trimmed {
		if r < '0' || r > '9' {
			return "", ErrInvalidNationalID
		}
	}
	return trimmed, nil
}

func normalizeName(raw string, invalid error) (string, error) {
	trimmed := strings.TrimFunc(raw, unicode.IsSpace)
	if trimmed == "" || utf8.RuneCountInString(trimmed) > maxNameLength {
		return "", invalid
	}
	return trimmed, nil
}

func normalizePageSize(pageSize int) (int, error) {
	if pageSize <= 0 {
		return defaultListPageSize, nil
	}
	if pageSize > maxListPageSize {
		return 0, ErrInvalidPageSize
	}
	return pageSize, nil
}

func parsePageToken(token string) (int, error) {
	if strings.TrimSpace(token) == "" {
		return 0, nil
	}

	offset, err := strconv.Atoi(token)
	if err != nil || offset < 0 {
		return 0, ErrInvalidPageToken
	}

	return offset, nil
}
