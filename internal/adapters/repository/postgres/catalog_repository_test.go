package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/operator-registry/internal/core/catalog"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func TestCatalogRepository_ListRegions(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewCatalogRepository(mock)

	rows := pgxmock.NewRows([]string{"id", "name"}).
		AddRow(int64(1), "Norte").
		AddRow(int64(2), "Sur")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name FROM regions ORDER BY id`)).
		WillReturnRows(rows)

	regions, err := repo.ListRegions(context.Background())
	if err != nil {
		t.Fatalf("ListRegions returned error: %v", err)
	}

	if len(regions) != 2 {
		t.Fatalf("expected 2 regions, got %d", len(regions))
	}
	if regions[1].ID != 2 || regions[1].Name != "Sur" {
		t.Fatalf("unexpected region: %+v", regions[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCatalogRepository_FindRegion_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewCatalogRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name FROM regions WHERE id = $1`)).
		WithArgs(int64(9)).
		WillReturnError(pgx.ErrNoRows)

	if _, err := repo.FindRegion(context.Background(), 9); !errors.Is(err, catalog.ErrRegionNotFound) {
		t.Fatalf("expected ErrRegionNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCatalogRepository_FindStatus(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewCatalogRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, description FROM operator_statuses WHERE id = $1`)).
		WithArgs(int32(2)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "description"}).AddRow(int32(2), "Creado"))

	status, err := repo.FindStatus(context.Background(), catalog.StatusCreated)
	if err != nil {
		t.Fatalf("FindStatus returned error: %v", err)
	}
	if status.ID != catalog.StatusCreated || status.Description != "Creado" {
		t.Fatalf("unexpected status: %+v", status)
	}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, description FROM operator_statuses WHERE id = $1`)).
		WithArgs(int32(7)).
		WillReturnError(pgx.ErrNoRows)

	if _, err := repo.FindStatus(context.Background(), catalog.BusinessStatus(7)); !errors.Is(err, catalog.ErrStatusNotFound) {
		t.Fatalf("expected ErrStatusNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
