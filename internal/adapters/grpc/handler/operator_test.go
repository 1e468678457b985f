package handler

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	operatorv1 "github.com/ogurasousui/operator-registry/internal/adapters/grpc/api/operator/v1"
	"github.com/ogurasousui/operator-registry/internal/adapters/repository/memory"
	"github.com/ogurasousui/operator-registry/internal/core/access"
	"github.com/ogurasousui/operator-registry/internal/core/catalog"
	"github.com/ogurasousui/operator-registry/internal/core/operator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type stubOperatorUseCase struct {
	createInput operator.CreateOperatorInput
	createOut   *operator.Operator
	createErr   error

	getInput operator.GetOperatorInput
	getOut   *operator.Operator
	getErr   error

	listInput operator.ListOperatorsInput
	listOut   *operator.ListOperatorsResult
	listErr   error

	updateInput operator.UpdateOperatorInput
	updateOut   *operator.Operator
	updateErr   error

	advanceInput operator.AdvanceStatusInput
	advanceOut   *operator.Operator
	advanceErr   error

	removeInput operator.RemoveOperatorInput
	removeOut   *operator.Operator
	removeErr   error
	removeCalls int

	restoreInput operator.RestoreOperatorInput
	restoreOut   *operator.Operator
	restoreErr   error

	purgeOut int
	purgeErr error
}

func (s *stubOperatorUseCase) CreateOperator(ctx context.Context, in operator.CreateOperatorInput) (*operator.Operator, error) {
	s.createInput = in
	return s.createOut, s.createErr
}

func (s *stubOperatorUseCase) GetOperator(ctx context.Context, in operator.GetOperatorInput) (*operator.Operator, error) {
	s.getInput = in
	return s.getOut, s.getErr
}

func (s *stubOperatorUseCase) ListOperators(ctx context.Context, in operator.ListOperatorsInput) (*operator.ListOperatorsResult, error) {
	s.listInput = in
	return s.listOut, s.listErr
}

func (s *stubOperatorUseCase) UpdateOperator(ctx context.Context, in operator.UpdateOperatorInput) (*operator.Operator, error) {
	s.updateInput = in
	return s.updateOut, s.updateErr
}

func (s *stubOperatorUseCase) AdvanceStatus(ctx context.Context, in operator.AdvanceStatusInput) (*operator.Operator, error) {
	s.advanceInput = in
	return s.advanceOut, s.advanceErr
}

func (s *stubOperatorUseCase) RemoveOperator(ctx context.Context, in operator.RemoveOperatorInput) (*operator.Operator, error) {
	s.removeInput = in
	s.removeCalls++
	return s.removeOut, s.removeErr
}

func (s *stubOperatorUseCase) RestoreOperator(ctx context.Context, in operator.RestoreOperatorInput) (*operator.Operator, error) {
	s.restoreInput = in
	return s.restoreOut, s.restoreErr
}

func (s *stubOperatorUseCase) PurgeTrash(ctx context.Context) (int, error) {
	return s.purgeOut, s.purgeErr
}

type stubCatalogReader struct{}

func (stubCatalogReader) ListRegions(context.Context) ([]*catalog.Region, error) {
	return []*catalog.Region{{ID: 1, Name: "Norte"}, {ID: 2, Name: "Sur"}}, nil
}

func (stubCatalogReader) ListStatuses(context.Context) ([]*catalog.Status, error) {
	statuses := catalog.DefaultStatuses()
	out := make([]*catalog.Status, 0, len(statuses))
	for i := range statuses {
		out = append(out, &statuses[i])
	}
	return out, nil
}

func sampleOperator() *operator.Operator {
	now := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	return &operator.Operator{
		ID:         "op-1",
		Code:       7,
		NationalID: "12345678",
		FirstName:  "Ana",
		LastName:   "Ruiz",
		RegionID:   1,
		StatusID:   catalog.StatusPendingCreate,
		CreatedBy:  "maria",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestOperatorGrpcHandler_CreateOperator_Success(t *testing.T) {
	t.Parallel()

	stub := &stubOperatorUseCase{createOut: sampleOperator()}
	h := NewOperatorGrpcHandler(stub, stubCatalogReader{})

	resp, err := h.CreateOperator(context.Background(), &operatorv1.CreateOperatorRequest{
		RegionId:   1,
		NationalId: "12345678",
		FirstName:  "Ana",
		LastName:   "Ruiz",
	})
	if err != nil {
		t.Fatalf("CreateOperator returned error: %v", err)
	}

	if stub.createInput.StatusID != nil {
		t.Fatalf("expected nil status when unspecified, got %v", *stub.createInput.StatusID)
	}
	if stub.createInput.RegionID != 1 || stub.createInput.NationalID != "12345678" {
		t.Fatalf("unexpected input: %+v", stub.createInput)
	}
	if resp.Operator == nil || resp.Operator.Code != 7 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Operator.DeletedAt != nil {
		t.Fatalf("expected nil deleted_at, got %v", resp.Operator.DeletedAt)
	}
}

func TestOperatorGrpcHandler_CreateOperator_WithStatus(t *testing.T) {
	t.Parallel()

	stub := &stubOperatorUseCase{createOut: sampleOperator()}
	h := NewOperatorGrpcHandler(stub, stubCatalogReader{})

	if _, err := h.CreateOperator(context.Background(), &operatorv1.CreateOperatorRequest{RegionId: 1, StatusId: 2}); err != nil {
		t.Fatalf("CreateOperator returned error: %v", err)
	}

	if stub.createInput.StatusID == nil || *stub.createInput.StatusID != catalog.StatusCreated {
		t.Fatalf("expected status created, got %+v", stub.createInput.StatusID)
	}
}

func TestOperatorGrpcHandler_CreateOperator_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantCode   codes.Code
		wantReason string
	}{
		{name: "capacity", err: operator.ErrNoCodeAvailable, wantCode: codes.ResourceExhausted, wantReason: ReasonNoCodeAvailable},
		{name: "conflict", err: operator.ErrCodeConflict, wantCode: codes.Aborted, wantReason: ReasonCodeConflict},
		{name: "duplicate national id", err: operator.ErrNationalIDAlreadyExists, wantCode: codes.AlreadyExists, wantReason: ReasonNationalIDExists},
		{name: "forbidden", err: access.ErrForbidden, wantCode: codes.PermissionDenied, wantReason: ReasonForbidden},
		{name: "unknown region", err: catalog.ErrRegionNotFound, wantCode: codes.InvalidArgument, wantReason: ReasonRegionNotFound},
		{name: "validation", err: operator.ErrInvalidFirstName, wantCode: codes.InvalidArgument, wantReason: ReasonInvalidArgument},
		{name: "internal", err: errors.New("boom"), wantCode: codes.Internal, wantReason: ReasonInternal},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewOperatorGrpcHandler(&stubOperatorUseCase{createErr: tt.err}, stubCatalogReader{})
			_, err := h.CreateOperator(context.Background(), &operatorv1.CreateOperatorRequest{RegionId: 1})

			if status.Code(err) != tt.wantCode {
				t.Fatalf("expected %v, got %v", tt.wantCode, status.Code(err))
			}
			if got := ReasonOf(err); got != tt.wantReason {
				t.Fatalf("expected reason %s, got %s", tt.wantReason, got)
			}
		})
	}
}

func TestOperatorGrpcHandler_NilRequest(t *testing.T) {
	t.Parallel()

	h := NewOperatorGrpcHandler(&stubOperatorUseCase{}, stubCatalogReader{})

	if _, err := h.CreateOperator(context.Background(), nil); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
	if _, err := h.RemoveOperator(context.Background(), nil); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestOperatorGrpcHandler_ListOperators(t *testing.T) {
	t.Parallel()

	trashedAt := time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)
	trashed := sampleOperator()
	trashed.DeletedAt = &trashedAt
	trashed.DeletedBy = "maria"

	stub := &stubOperatorUseCase{listOut: &operator.ListOperatorsResult{
		Operators:     []*operator.Operator{trashed},
		NextPageToken: "10",
	}}
	h := NewOperatorGrpcHandler(stub, stubCatalogReader{})

	resp, err := h.ListOperators(context.Background(), &operatorv1.ListOperatorsRequest{
		RegionId:  2,
		StatusId:  3,
		Trashed:   true,
		PageSize:  10,
		PageToken: "0",
	})
	if err != nil {
		t.Fatalf("ListOperators returned error: %v", err)
	}

	if stub.listInput.RegionID == nil || *stub.listInput.RegionID != 2 {
		t.Fatalf("expected region filter 2, got %+v", stub.listInput.RegionID)
	}
	if stub.listInput.Status == nil || *stub.listInput.Status != catalog.StatusPendingDelete {
		t.Fatalf("expected status filter pending delete, got %+v", stub.listInput.Status)
	}
	if !stub.listInput.Trashed || stub.listInput.PageSize != 10 {
		t.Fatalf("unexpected list input: %+v", stub.listInput)
	}
	if resp.NextPageToken != "10" || len(resp.Operators) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Operators[0].DeletedAt == nil || !resp.Operators[0].DeletedAt.AsTime().Equal(trashedAt) {
		t.Fatalf("expected deleted_at %v, got %v", trashedAt, resp.Operators[0].DeletedAt)
	}
}

func TestOperatorGrpcHandler_ListOperators_NoFilters(t *testing.T) {
	t.Parallel()

	stub := &stubOperatorUseCase{listOut: &operator.ListOperatorsResult{}}
	h := NewOperatorGrpcHandler(stub, stubCatalogReader{})

	if _, err := h.ListOperators(context.Background(), &operatorv1.ListOperatorsRequest{}); err != nil {
		t.Fatalf("ListOperators returned error: %v", err)
	}

	if stub.listInput.RegionID != nil || stub.listInput.Status != nil {
		t.Fatalf("expected no filters, got %+v", stub.listInput)
	}
}

func TestOperatorGrpcHandler_UpdateOperator_PartialFields(t *testing.T) {
	t.Parallel()

	stub := &stubOperatorUseCase{updateOut: sampleOperator()}
	h := NewOperatorGrpcHandler(stub, stubCatalogReader{})

	_, err := h.UpdateOperator(context.Background(), &operatorv1.UpdateOperatorRequest{
		Id:        "op-1",
		FirstName: wrapperspb.String("Lucia"),
		RegionId:  wrapperspb.Int64(2),
		StatusId:  wrapperspb.Int32(4),
	})
	if err != nil {
		t.Fatalf("UpdateOperator returned error: %v", err)
	}

	in := stub.updateInput
	if in.ID != "op-1" {
		t.Fatalf("unexpected id: %s", in.ID)
	}
	if in.FirstName == nil || *in.FirstName != "Lucia" {
		t.Fatalf("expected first name Lucia, got %+v", in.FirstName)
	}
	if in.LastName != nil || in.NationalID != nil {
		t.Fatalf("expected unset fields to stay nil, got %+v", in)
	}
	if in.RegionID == nil || *in.RegionID != 2 {
		t.Fatalf("expected region 2, got %+v", in.RegionID)
	}
	if in.StatusID == nil || *in.StatusID != catalog.StatusDeleted {
		t.Fatalf("expected status deleted, got %+v", in.StatusID)
	}
}

func TestOperatorGrpcHandler_RemoveOperator(t *testing.T) {
	t.Parallel()

	stub := &stubOperatorUseCase{removeOut: sampleOperator()}
	h := NewOperatorGrpcHandler(stub, stubCatalogReader{})

	if _, err := h.RemoveOperator(context.Background(), &operatorv1.RemoveOperatorRequest{Id: "op-1", Mode: "force_delete"}); err != nil {
		t.Fatalf("RemoveOperator returned error: %v", err)
	}
	if stub.removeInput.Mode != operator.DeleteModeForce {
		t.Fatalf("expected force delete, got %s", stub.removeInput.Mode)
	}

	stub.removeErr = fmt.Errorf("mode %q: %w", "archive", operator.ErrInvalidDeleteMode)
	_, err := h.RemoveOperator(context.Background(), &operatorv1.RemoveOperatorRequest{Id: "op-1", Mode: "archive"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
	if ReasonOf(err) != ReasonInvalidDeleteMode {
		t.Fatalf("expected reason %s, got %s", ReasonInvalidDeleteMode, ReasonOf(err))
	}
	if stub.removeInput.Mode != operator.DeleteMode("archive") {
		t.Fatalf("expected raw mode to reach use case, got %s", stub.removeInput.Mode)
	}
}

func TestOperatorGrpcHandler_RemoveOperator_ViewerWithInvalidMode(t *testing.T) {
	t.Parallel()

	cat := catalog.NewService(memory.NewCatalog([]catalog.Region{{ID: 1, Name: "Norte"}}))
	svc := operator.NewService(memory.NewOperatorStore(), cat, nil, nil)
	h := NewOperatorGrpcHandler(svc, cat)

	ctx := access.WithActor(context.Background(), access.NewActor("viewer1", "viewer"))
	for _, mode := range []string{"archive", "soft", "force_delete"} {
		_, err := h.RemoveOperator(ctx, &operatorv1.RemoveOperatorRequest{Id: "op-1", Mode: mode})
		if status.Code(err) != codes.PermissionDenied {
			t.Fatalf("mode %q: expected PermissionDenied, got %v", mode, err)
		}
	}
}

func TestOperatorGrpcHandler_AdvanceRestorePurge(t *testing.T) {
	t.Parallel()

	advanced := sampleOperator()
	advanced.StatusID = catalog.StatusCreated
	stub := &stubOperatorUseCase{
		advanceOut: advanced,
		restoreErr: operator.ErrOperatorNotFound,
		purgeOut:   3,
	}
	h := NewOperatorGrpcHandler(stub, stubCatalogReader{})

	resp, err := h.AdvanceOperatorStatus(context.Background(), &operatorv1.AdvanceOperatorStatusRequest{Id: "op-1"})
	if err != nil {
		t.Fatalf("AdvanceOperatorStatus returned error: %v", err)
	}
	if stub.advanceInput.ID != "op-1" || resp.Operator.StatusId != int32(catalog.StatusCreated) {
		t.Fatalf("unexpected advance result: %+v", resp.Operator)
	}

	_, err = h.RestoreOperator(context.Background(), &operatorv1.RestoreOperatorRequest{Id: "op-1"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}

	purged, err := h.PurgeTrash(context.Background(), &operatorv1.PurgeTrashRequest{})
	if err != nil {
		t.Fatalf("PurgeTrash returned error: %v", err)
	}
	if purged.Purged != 3 {
		t.Fatalf("expected 3 purged, got %d", purged.Purged)
	}
}

func TestOperatorGrpcHandler_Catalog(t *testing.T) {
	t.Parallel()

	h := NewOperatorGrpcHandler(&stubOperatorUseCase{}, stubCatalogReader{})

	regions, err := h.ListRegions(context.Background(), &operatorv1.ListRegionsRequest{})
	if err != nil {
		t.Fatalf("ListRegions returned error: %v", err)
	}
	if len(regions.Regions) != 2 || regions.Regions[1].Name != "Sur" {
		t.Fatalf("unexpected regions: %+v", regions.Regions)
	}

	statuses, err := h.ListStatuses(context.Background(), &operatorv1.ListStatusesRequest{})
	if err != nil {
		t.Fatalf("ListStatuses returned error: %v", err)
	}
	if len(statuses.Statuses) != 4 || statuses.Statuses[0].Description != "Pendiente crear" {
		t.Fatalf("unexpected statuses: %+v", statuses.Statuses)
	}
}
