package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ogurasousui/operator-registry/internal/adapters/repository/memory"
	"github.com/ogurasousui/operator-registry/internal/core/operator"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

const operatorsBucket = "operators"

// OperatorStore はメモリストアの状態を SQLite の 1 テーブルに JSON で保存する実装です。
// 書き込みが成功するたびに全状態をスナップショットし、保存に失敗した場合はメモリ側も元に戻します。
type OperatorStore struct {
	*memory.OperatorStore
	db   *sql.DB
	mu   sync.Mutex
	path string
}

var _ operator.Repository = (*OperatorStore)(nil)

// Open は path の SQLite ファイルを開き、保存済みの状態を読み込みます。
func Open(ctx context.Context, path string) (*OperatorStore, error) {
	if path == "" {
		path = "operators.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("sqlite: create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: create state table: %w", err)
	}

	s := &OperatorStore{OperatorStore: memory.NewOperatorStore(), db: db, path: path}
	if err := s.load(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *OperatorStore) load(ctx context.Context) error {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM state WHERE bucket = ?`, operatorsBucket).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("sqlite: select state: %w", err)
	}

	var snapshot memory.Snapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return fmt.Errorf("sqlite: decode %s: %w", operatorsBucket, err)
	}
	s.ImportState(snapshot)
	return nil
}

func (s *OperatorStore) persist(ctx context.Context) error {
	data, err := json.Marshal(s.ExportState())
	if err != nil {
		return fmt.Errorf("sqlite: encode %s: %w", operatorsBucket, err)
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO state(bucket,payload) VALUES(?,?) ON CONFLICT(bucket) DO UPDATE SET payload=excluded.payload`,
		operatorsBucket, data,
	); err != nil {
		return fmt.Errorf("sqlite: upsert %s: %w", operatorsBucket, err)
	}
	return nil
}

// mutate は fn を実行し、成功した場合のみ状態を保存します。
func (s *OperatorStore) mutate(ctx context.Context, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.ExportState()
	if err := fn(); err != nil {
		return err
	}
	if err := s.persist(ctx); err != nil {
		s.ImportState(before)
		return err
	}
	return nil
}

func (s *OperatorStore) Create(ctx context.Context, op *operator.Operator) (created *operator.Operator, err error) {
	err = s.mutate(ctx, func() error {
		created, err = s.OperatorStore.Create(ctx, op)
		return err
	})
	return created, err
}

func (s *OperatorStore) Update(ctx context.Context, op *operator.Operator) (updated *operator.Operator, err error) {
	err = s.mutate(ctx, func() error {
		updated, err = s.OperatorStore.Update(ctx, op)
		return err
	})
	return updated, err
}

func (s *OperatorStore) SoftDelete(ctx context.Context, id, deletedBy string, at time.Time) (trashed *operator.Operator, err error) {
	err = s.mutate(ctx, func() error {
		trashed, err = s.OperatorStore.SoftDelete(ctx, id, deletedBy, at)
		return err
	})
	return trashed, err
}

func (s *OperatorStore) ForceDelete(ctx context.Context, id string) error {
	return s.mutate(ctx, func() error {
		return s.OperatorStore.ForceDelete(ctx, id)
	})
}

func (s *OperatorStore) Restore(ctx context.Context, id, modifiedBy string, at time.Time) (restored *operator.Operator, err error) {
	err = s.mutate(ctx, func() error {
		restored, err = s.OperatorStore.Restore(ctx, id, modifiedBy, at)
		return err
	})
	return restored, err
}

func (s *OperatorStore) PurgeTrashed(ctx context.Context) (count int, err error) {
	err = s.mutate(ctx, func() error {
		count, err = s.OperatorStore.PurgeTrashed(ctx)
		return err
	})
	return count, err
}

// Close はデータベースを閉じます。
func (s *OperatorStore) Close() error {
	return s.db.Close()
}

// Path は設定されたファイルパスを返します。
func (s *OperatorStore) Path() string { return s.path }
