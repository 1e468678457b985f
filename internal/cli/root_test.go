package cli

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/fatih/color"
	operatorv1 "github.com/ogurasousui/operator-registry/internal/adapters/grpc/api/operator/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

type fakeClient struct {
	operatorv1.OperatorServiceClient

	md        metadata.MD
	createReq *operatorv1.CreateOperatorRequest
	updateReq *operatorv1.UpdateOperatorRequest
	removeReq *operatorv1.RemoveOperatorRequest
	listReq   *operatorv1.ListOperatorsRequest
	err       error
}

func (f *fakeClient) capture(ctx context.Context) {
	f.md, _ = metadata.FromOutgoingContext(ctx)
}

func (f *fakeClient) ListRegions(ctx context.Context, _ *operatorv1.ListRegionsRequest, _ ...grpc.CallOption) (*operatorv1.ListRegionsResponse, error) {
	f.capture(ctx)
	return &operatorv1.ListRegionsResponse{Regions: []*operatorv1.Region{{Id: 1, Name: "Norte"}, {Id: 2, Name: "Sur"}}}, nil
}

func (f *fakeClient) CreateOperator(ctx context.Context, in *operatorv1.CreateOperatorRequest, _ ...grpc.CallOption) (*operatorv1.CreateOperatorResponse, error) {
	f.capture(ctx)
	f.createReq = in
	if f.err != nil {
		return nil, f.err
	}
	return &operatorv1.CreateOperatorResponse{Operator: &operatorv1.Operator{
		Id: "op-1", Code: 7, RegionId: in.RegionId, NationalId: in.NationalId,
		FirstName: in.FirstName, LastName: in.LastName, StatusId: 1, CreatedBy: "ana",
	}}, nil
}

func (f *fakeClient) UpdateOperator(ctx context.Context, in *operatorv1.UpdateOperatorRequest, _ ...grpc.CallOption) (*operatorv1.UpdateOperatorResponse, error) {
	f.capture(ctx)
	f.updateReq = in
	return &operatorv1.UpdateOperatorResponse{Operator: &operatorv1.Operator{Id: in.Id, Code: 1, StatusId: 2}}, nil
}

func (f *fakeClient) ListOperators(ctx context.Context, in *operatorv1.ListOperatorsRequest, _ ...grpc.CallOption) (*operatorv1.ListOperatorsResponse, error) {
	f.capture(ctx)
	f.listReq = in
	return &operatorv1.ListOperatorsResponse{
		Operators:     []*operatorv1.Operator{{Id: "op-1", Code: 0, RegionId: 1, FirstName: "Ana", LastName: "Ruiz", StatusId: 2}},
		NextPageToken: "1",
	}, nil
}

func (f *fakeClient) RemoveOperator(ctx context.Context, in *operatorv1.RemoveOperatorRequest, _ ...grpc.CallOption) (*operatorv1.RemoveOperatorResponse, error) {
	f.capture(ctx)
	f.removeReq = in
	return &operatorv1.RemoveOperatorResponse{Operator: &operatorv1.Operator{Id: in.Id, Code: 12}}, nil
}

func (f *fakeClient) PurgeTrash(ctx context.Context, _ *operatorv1.PurgeTrashRequest, _ ...grpc.CallOption) (*operatorv1.PurgeTrashResponse, error) {
	f.capture(ctx)
	return &operatorv1.PurgeTrashResponse{Purged: 3}, nil
}

func execute(t *testing.T, client *fakeClient, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	var dialed string
	cmd := NewRootCmd(func(addr string) (operatorv1.OperatorServiceClient, io.Closer, error) {
		dialed = addr
		return client, nopCloser{}, nil
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		require.NotEmpty(t, dialed)
	}
	return out.String(), err
}

func TestRegionsCmd_SendsActorMetadata(t *testing.T) {
	client := &fakeClient{}
	out, err := execute(t, client, "--user", "ana", "--role", "viewer", "regions")
	require.NoError(t, err)

	assert.Contains(t, out, "Norte")
	assert.Contains(t, out, "Sur")
	assert.Equal(t, []string{"ana"}, client.md.Get(operatorv1.ActorUsernameKey))
	assert.Equal(t, []string{"viewer"}, client.md.Get(operatorv1.ActorRoleKey))
}

func TestCreateCmd(t *testing.T) {
	client := &fakeClient{}
	out, err := execute(t, client, "--user", "ana", "--role", "editor",
		"create", "--region", "3", "--national-id", "12345678", "--first-name", "Ana", "--last-name", "Ruiz")
	require.NoError(t, err)

	require.NotNil(t, client.createReq)
	assert.Equal(t, int64(3), client.createReq.RegionId)
	assert.Equal(t, "12345678", client.createReq.NationalId)
	assert.Contains(t, out, "007")
	assert.Contains(t, out, "pending_create")
}

func TestCreateCmd_RequiresRegion(t *testing.T) {
	client := &fakeClient{}
	_, err := execute(t, client, "create", "--national-id", "1")
	require.Error(t, err)
	assert.Nil(t, client.createReq)
}

func TestCreateCmd_ShowsErrorReason(t *testing.T) {
	st, err := status.New(codes.AlreadyExists, "national id already registered").
		WithDetails(&errdetails.ErrorInfo{Reason: "NATIONAL_ID_ALREADY_EXISTS", Domain: "operator-registry"})
	require.NoError(t, err)

	client := &fakeClient{err: st.Err()}
	_, err = execute(t, client, "create", "--region", "1", "--national-id", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AlreadyExists")
	assert.Contains(t, err.Error(), "NATIONAL_ID_ALREADY_EXISTS")
}

func TestUpdateCmd_OnlySendsChangedFields(t *testing.T) {
	client := &fakeClient{}
	_, err := execute(t, client, "update", "op-1", "--first-name", "Eva", "--status", "2")
	require.NoError(t, err)

	req := client.updateReq
	require.NotNil(t, req)
	assert.Equal(t, "op-1", req.Id)
	require.NotNil(t, req.FirstName)
	assert.Equal(t, "Eva", req.FirstName.GetValue())
	require.NotNil(t, req.StatusId)
	assert.Equal(t, int32(2), req.StatusId.GetValue())
	assert.Nil(t, req.LastName)
	assert.Nil(t, req.NationalId)
	assert.Nil(t, req.RegionId)
}

func TestListCmd(t *testing.T) {
	client := &fakeClient{}
	out, err := execute(t, client, "list", "--region", "1", "--trashed", "--page-size", "5")
	require.NoError(t, err)

	require.NotNil(t, client.listReq)
	assert.Equal(t, int64(1), client.listReq.RegionId)
	assert.True(t, client.listReq.Trashed)
	assert.Equal(t, int32(5), client.listReq.PageSize)
	assert.Contains(t, out, "Ana Ruiz")
	assert.Contains(t, out, "--page-token 1")
}

func TestRemoveCmd_Modes(t *testing.T) {
	client := &fakeClient{}
	out, err := execute(t, client, "remove", "op-1")
	require.NoError(t, err)
	assert.Equal(t, "soft_delete", client.removeReq.Mode)
	assert.Contains(t, out, "trashed")

	out, err = execute(t, client, "remove", "op-1", "--force")
	require.NoError(t, err)
	assert.Equal(t, "force_delete", client.removeReq.Mode)
	assert.Contains(t, out, "deleted")
}

func TestPurgeTrashCmd(t *testing.T) {
	out, err := execute(t, &fakeClient{}, "purge-trash")
	require.NoError(t, err)
	assert.Contains(t, out, "purged 3")
}
