package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/operator-registry/internal/core/catalog"
	"github.com/ogurasousui/operator-registry/internal/core/operator"
	pgdb "github.com/ogurasousui/operator-registry/internal/platform/db/postgres"
)

const (
	uniqueViolationCode           = "23505"
	foreignKeyViolationCode       = "23503"
	invalidTextRepresentationCode = "22P02"
	nationalIDActiveConstraint    = "operators_national_id_active_key"
	operatorRegionForeignKey      = "operators_region_id_fkey"
	operatorStatusForeignKey      = "operators_status_id_fkey"
	operatorRegionLockNamespace   = "operators:region:"
	operatorColumns               = `id::text, code, national_id, first_name, last_name, region_id, status_id, created_by, modified_by, deleted_by, created_at, updated_at, deleted_at`
)

// OperatorRepository は PostgreSQL を利用したオペレーター永続化の実装です。
type OperatorRepository struct {
	pool pgdb.Queryer
}

// NewOperatorRepository は OperatorRepository を生成します。
func NewOperatorRepository(pool pgdb.Queryer) *OperatorRepository {
	return &OperatorRepository{pool: pool}
}

var _ operator.Repository = (*OperatorRepository)(nil)

// Create はオペレーターを新規作成します。
func (r *OperatorRepository) Create(ctx context.Context, op *operator.Operator) (*operator.Operator, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO operators (id, code, national_id, first_name, last_name, region_id, status_id, created_by, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING `+operatorColumns,
		op.ID,
		op.Code,
		op.NationalID,
		op.FirstName,
		op.LastName,
		op.RegionID,
		int32(op.StatusID),
		op.CreatedBy,
		op.CreatedAt,
		op.UpdatedAt,
	)

	created, err := scanOperator(row)
	if err != nil {
		return nil, translateOperatorPgError(err)
	}
	return created, nil
}

// Update はゴミ箱にないオペレーターを更新します。コードは更新しません。
func (r *OperatorRepository) Update(ctx context.Context, op *operator.Operator) (*operator.Operator, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE operators
           SET national_id = $1,
               first_name = $2,
               last_name = $3,
               region_id = $4,
               status_id = $5,
               modified_by = $6,
               updated_at = $7
         WHERE id = $8 AND deleted_at IS NULL
        RETURNING `+operatorColumns,
		op.NationalID,
		op.FirstName,
		op.LastName,
		op.RegionID,
		int32(op.StatusID),
		nullableString(op.ModifiedBy),
		op.UpdatedAt,
		op.ID,
	)

	updated, err := scanOperator(row)
	if err != nil {
		return nil, translateOperatorPgError(err)
	}
	return updated, nil
}

// FindByID は ID でオペレーターを取得します。
func (r *OperatorRepository) FindByID(ctx context.Context, id string, includeTrashed bool) (*operator.Operator, error) {
	query := `SELECT ` + operatorColumns + ` FROM operators WHERE id = $1`
	if !includeTrashed {
		query += ` AND deleted_at IS NULL`
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	found, err := scanOperator(exec.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateOperatorPgError(err)
	}
	return found, nil
}

// FindActiveByNationalID はゴミ箱にないオペレーターを身分証番号で検索します。
func (r *OperatorRepository) FindActiveByNationalID(ctx context.Context, nationalID string) (*operator.Operator, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `SELECT `+operatorColumns+` FROM operators WHERE national_id = $1 AND deleted_at IS NULL LIMIT 1`, nationalID)

	found, err := scanOperator(row)
	if err != nil {
		return nil, translateOperatorPgError(err)
	}
	return found, nil
}

// List はオペレーターの一覧をコード順に取得します。
func (r *OperatorRepository) List(ctx context.Context, filter operator.ListOperatorsFilter) ([]*operator.Operator, string, error) {
	if filter.Limit <= 0 {
		return nil, "", operator.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", operator.ErrInvalidPageToken
	}

	limitWithBuffer := filter.Limit + 1

	args := make([]any, 0, 4)
	conditions := make([]string, 0, 3)

	if filter.Trashed {
		conditions = append(conditions, "deleted_at IS NOT NULL")
	} else {
		conditions = append(conditions, "deleted_at IS NULL")
	}

	if filter.RegionID != nil {
		placeholder := "$" + strconv.Itoa(len(args)+1)
		conditions = append(conditions, "region_id = "+placeholder)
		args = append(args, *filter.RegionID)
	}

	if filter.Status != nil {
		placeholder := "$" + strconv.Itoa(len(args)+1)
		conditions = append(conditions, "status_id = "+placeholder)
		args = append(args, int32(*filter.Status))
	}

	limitPlaceholder := "$" + strconv.Itoa(len(args)+1)
	args = append(args, limitWithBuffer)
	offsetPlaceholder := "$" + strconv.Itoa(len(args)+1)
	args = append(args, filter.Offset)

	query := `
        SELECT ` + operatorColumns + `
          FROM operators WHERE ` + strings.Join(conditions, " AND ") + `
         ORDER BY code ASC, region_id ASC, id ASC
         LIMIT ` + limitPlaceholder + `
        OFFSET ` + offsetPlaceholder + `
    `

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, "", translateOperatorPgError(err)
	}
	defer rows.Close()

	operators := make([]*operator.Operator, 0, filter.Limit)
	for rows.Next() {
		op, err := scanOperator(rows)
		if err != nil {
			return nil, "", translateOperatorPgError(err)
		}
		operators = append(operators, op)
	}

	if err := rows.Err(); err != nil {
		return nil, "", translateOperatorPgError(err)
	}

	var nextToken string
	if len(operators) == limitWithBuffer {
		operators = operators[:filter.Limit]
		nextToken = strconv.Itoa(filter.Offset + filter.Limit)
	}

	return operators, nextToken, nil
}

// SoftDelete はオペレーターをゴミ箱に移動します。
func (r *OperatorRepository) SoftDelete(ctx context.Context, id, deletedBy string, at time.Time) (*operator.Operator, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE operators
           SET deleted_at = $1,
               deleted_by = $2
         WHERE id = $3 AND deleted_at IS NULL
        RETURNING `+operatorColumns, at, deletedBy, id)

	trashed, err := scanOperator(row)
	if err != nil {
		return nil, translateOperatorPgError(err)
	}
	return trashed, nil
}

// ForceDelete はオペレーターを完全削除します。
func (r *OperatorRepository) ForceDelete(ctx context.Context, id string) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM operators WHERE id = $1`, id)
	if err != nil {
		return translateOperatorPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return operator.ErrOperatorNotFound
	}
	return nil
}

// Restore はゴミ箱のオペレーターを復元します。
func (r *OperatorRepository) Restore(ctx context.Context, id, modifiedBy string, at time.Time) (*operator.Operator, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE operators
           SET deleted_at = NULL,
               deleted_by = NULL,
               modified_by = $1,
               updated_at = $2
         WHERE id = $3 AND deleted_at IS NOT NULL
        RETURNING `+operatorColumns, modifiedBy, at, id)

	restored, err := scanOperator(row)
	if err != nil {
		return nil, translateOperatorPgError(err)
	}
	return restored, nil
}

// PurgeTrashed はゴミ箱のオペレーターをすべて削除し、件数を返します。
func (r *OperatorRepository) PurgeTrashed(ctx context.Context) (int, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM operators WHERE deleted_at IS NOT NULL`)
	if err != nil {
		return 0, translateOperatorPgError(err)
	}
	return int(tag.RowsAffected()), nil
}

// CodesInUse は地域内でゴミ箱にないオペレーターのコードを返します。
func (r *OperatorRepository) CodesInUse(ctx context.Context, regionID int64) ([]int, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT code
          FROM operators
         WHERE region_id = $1 AND deleted_at IS NULL
         ORDER BY code
    `, regionID)
	if err != nil {
		return nil, translateOperatorPgError(err)
	}
	defer rows.Close()

	codes := make([]int, 0)
	for rows.Next() {
		var code int32
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		codes = append(codes, int(code))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return codes, nil
}

// LockRegion は地域単位のアドバイザリロックを取得します。ロックはトランザクション終了時に解放されます。
func (r *OperatorRepository) LockRegion(ctx context.Context, regionID int64) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	if _, err := exec.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, operatorRegionLockNamespace+strconv.FormatInt(regionID, 10)); err != nil {
		return translateOperatorPgError(err)
	}
	return nil
}

func scanOperator(row pgx.Row) (*operator.Operator, error) {
	var (
		id         string
		code       int32
		nationalID string
		firstName  string
		lastName   string
		regionID   int64
		statusID   int32
		createdBy  string
		modifiedBy sql.NullString
		deletedBy  sql.NullString
		createdAt  time.Time
		updatedAt  time.Time
		deletedAt  sql.NullTime
	)

	if err := row.Scan(
		&id,
		&code,
		&nationalID,
		&firstName,
		&lastName,
		&regionID,
		&statusID,
		&createdBy,
		&modifiedBy,
		&deletedBy,
		&createdAt,
		&updatedAt,
		&deletedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, operator.ErrOperatorNotFound
		}
		return nil, err
	}

	var deletedPtr *time.Time
	if deletedAt.Valid {
		t := deletedAt.Time.UTC()
		deletedPtr = &t
	}

	return &operator.Operator{
		ID:         id,
		Code:       int(code),
		NationalID: nationalID,
		FirstName:  firstName,
		LastName:   lastName,
		RegionID:   regionID,
		StatusID:   catalog.BusinessStatus(statusID),
		CreatedBy:  createdBy,
		ModifiedBy: modifiedBy.String,
		DeletedBy:  deletedBy.String,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedPtr,
	}, nil
}

func translateOperatorPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return operator.ErrOperatorNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			switch pgErr.ConstraintName {
			case nationalIDActiveConstraint:
				return operator.ErrNationalIDAlreadyExists
			default:
				return operator.ErrCodeConflict
			}
		case foreignKeyViolationCode:
			switch pgErr.ConstraintName {
			case operatorRegionForeignKey:
				return catalog.ErrRegionNotFound
			case operatorStatusForeignKey:
				return catalog.ErrStatusNotFound
			default:
				return err
			}
		case invalidTextRepresentationCode:
			return operator.ErrOperatorNotFound
		}
	}

	return err
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
