package handler

import (
	"context"

	operatorv1 "github.com/ogurasousui/operator-registry/internal/adapters/grpc/api/operator/v1"
	"github.com/ogurasousui/operator-registry/internal/core/catalog"
	"github.com/ogurasousui/operator-registry/internal/core/operator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// CatalogReader は地域とステータスの一覧を提供します。
type CatalogReader interface {
	ListRegions(ctx context.Context) ([]*catalog.Region, error)
	ListStatuses(ctx context.Context) ([]*catalog.Status, error)
}

// OperatorGrpcHandler は OperatorService の gRPC 実装です。
type OperatorGrpcHandler struct {
	svc     operator.UseCase
	catalog CatalogReader
	operatorv1.UnimplementedOperatorServiceServer
}

// NewOperatorGrpcHandler は OperatorGrpcHandler を生成します。
func NewOperatorGrpcHandler(svc operator.UseCase, cat CatalogReader) *OperatorGrpcHandler {
	return &OperatorGrpcHandler{svc: svc, catalog: cat}
}

var _ operatorv1.OperatorServiceServer = (*OperatorGrpcHandler)(nil)

// ListRegions は地域の一覧を返します。
func (h *OperatorGrpcHandler) ListRegions(ctx context.Context, _ *operatorv1.ListRegionsRequest) (*operatorv1.ListRegionsResponse, error) {
	regions, err := h.catalog.ListRegions(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}

	out := make([]*operatorv1.Region, 0, len(regions))
	for _, r := range regions {
		out = append(out, &operatorv1.Region{Id: r.ID, Name: r.Name})
	}
	return &operatorv1.ListRegionsResponse{Regions: out}, nil
}

// ListStatuses は業務ステータスの一覧を返します。
func (h *OperatorGrpcHandler) ListStatuses(ctx context.Context, _ *operatorv1.ListStatusesRequest) (*operatorv1.ListStatusesResponse, error) {
	statuses, err := h.catalog.ListStatuses(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}

	out := make([]*operatorv1.Status, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, &operatorv1.Status{Id: int32(s.ID), Description: s.Description})
	}
	return &operatorv1.ListStatusesResponse{Statuses: out}, nil
}

// CreateOperator はオペレーターを作成します。
func (h *OperatorGrpcHandler) CreateOperator(ctx context.Context, req *operatorv1.CreateOperatorRequest) (*operatorv1.CreateOperatorResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	var statusPtr *catalog.BusinessStatus
	if req.GetStatusId() != 0 {
		s := catalog.BusinessStatus(req.GetStatusId())
		statusPtr = &s
	}

	created, err := h.svc.CreateOperator(ctx, operator.CreateOperatorInput{
		RegionID:   req.GetRegionId(),
		NationalID: req.GetNationalId(),
		FirstName:  req.GetFirstName(),
		LastName:   req.GetLastName(),
		StatusID:   statusPtr,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &operatorv1.CreateOperatorResponse{Operator: toWireOperator(created)}, nil
}

// GetOperator はオペレーターを取得します。
func (h *OperatorGrpcHandler) GetOperator(ctx context.Context, req *operatorv1.GetOperatorRequest) (*operatorv1.GetOperatorResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetOperator(ctx, operator.GetOperatorInput{
		ID:             req.GetId(),
		IncludeTrashed: req.GetIncludeTrashed(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &operatorv1.GetOperatorResponse{Operator: toWireOperator(found)}, nil
}

// ListOperators はオペレーターの一覧を取得します。
func (h *OperatorGrpcHandler) ListOperators(ctx context.Context, req *operatorv1.ListOperatorsRequest) (*operatorv1.ListOperatorsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	in := operator.ListOperatorsInput{
		Trashed:   req.GetTrashed(),
		PageSize:  int(req.GetPageSize()),
		PageToken: req.GetPageToken(),
	}
	if req.GetRegionId() != 0 {
		region := req.GetRegionId()
		in.RegionID = &region
	}
	if req.GetStatusId() != 0 {
		s := catalog.BusinessStatus(req.GetStatusId())
		in.Status = &s
	}

	result, err := h.svc.ListOperators(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}

	out := make([]*operatorv1.Operator, 0, len(result.Operators))
	for _, op := range result.Operators {
		out = append(out, toWireOperator(op))
	}

	return &operatorv1.ListOperatorsResponse{
		Operators:     out,
		NextPageToken: result.NextPageToken,
	}, nil
}

// UpdateOperator はオペレーター情報を更新します。
func (h *OperatorGrpcHandler) UpdateOperator(ctx context.Context, req *operatorv1.UpdateOperatorRequest) (*operatorv1.UpdateOperatorResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	in := operator.UpdateOperatorInput{ID: req.GetId()}
	if req.NationalId != nil {
		value := req.NationalId.GetValue()
		in.NationalID = &value
	}
	if req.FirstName != nil {
		value := req.FirstName.GetValue()
		in.FirstName = &value
	}
	if req.LastName != nil {
		value := req.LastName.GetValue()
		in.LastName = &value
	}
	if req.RegionId != nil {
		value := req.RegionId.GetValue()
		in.RegionID = &value
	}
	if req.StatusId != nil {
		value := catalog.BusinessStatus(req.StatusId.GetValue())
		in.StatusID = &value
	}

	updated, err := h.svc.UpdateOperator(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &operatorv1.UpdateOperatorResponse{Operator: toWireOperator(updated)}, nil
}

// AdvanceOperatorStatus は業務ステータスを次に進めます。
func (h *OperatorGrpcHandler) AdvanceOperatorStatus(ctx context.Context, req *operatorv1.AdvanceOperatorStatusRequest) (*operatorv1.AdvanceOperatorStatusResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	advanced, err := h.svc.AdvanceStatus(ctx, operator.AdvanceStatusInput{ID: req.GetId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &operatorv1.AdvanceOperatorStatusResponse{Operator: toWireOperator(advanced)}, nil
}

// RemoveOperator はオペレーターをゴミ箱に移動、または完全削除します。
func (h *OperatorGrpcHandler) RemoveOperator(ctx context.Context, req *operatorv1.RemoveOperatorRequest) (*operatorv1.RemoveOperatorResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	// mode の検証は権限チェックの後にサービス側で行う
	removed, err := h.svc.RemoveOperator(ctx, operator.RemoveOperatorInput{ID: req.GetId(), Mode: operator.DeleteMode(req.GetMode())})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &operatorv1.RemoveOperatorResponse{Operator: toWireOperator(removed)}, nil
}

// RestoreOperator はゴミ箱のオペレーターを復元します。
func (h *OperatorGrpcHandler) RestoreOperator(ctx context.Context, req *operatorv1.RestoreOperatorRequest) (*operatorv1.RestoreOperatorResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	restored, err := h.svc.RestoreOperator(ctx, operator.RestoreOperatorInput{ID: req.GetId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &operatorv1.RestoreOperatorResponse{Operator: toWireOperator(restored)}, nil
}

// PurgeTrash はゴミ箱を空にします。
func (h *OperatorGrpcHandler) PurgeTrash(ctx context.Context, _ *operatorv1.PurgeTrashRequest) (*operatorv1.PurgeTrashResponse, error) {
	count, err := h.svc.PurgeTrash(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &operatorv1.PurgeTrashResponse{Purged: int32(count)}, nil
}

func toWireOperator(op *operator.Operator) *operatorv1.Operator {
	if op == nil {
		return nil
	}

	out := &operatorv1.Operator{
		Id:         op.ID,
		Code:       int32(op.Code),
		NationalId: op.NationalID,
		FirstName:  op.FirstName,
		LastName:   op.LastName,
		RegionId:   op.RegionID,
		StatusId:   int32(op.StatusID),
		CreatedBy:  op.CreatedBy,
		ModifiedBy: op.ModifiedBy,
		DeletedBy:  op.DeletedBy,
		CreatedAt:  timestamppb.New(op.CreatedAt),
		UpdatedAt:  timestamppb.New(op.UpdatedAt),
	}
	if op.DeletedAt != nil {
		out.DeletedAt = timestamppb.New(*op.DeletedAt)
	}
	return out
}
