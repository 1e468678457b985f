package operatorv1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestServiceDescriptorRegistered(t *testing.T) {
	t.Parallel()

	desc, err := protoregistry.GlobalFiles.FindDescriptorByName(protoreflect.FullName(ServiceName))
	require.NoError(t, err)

	svc, ok := desc.(protoreflect.ServiceDescriptor)
	require.True(t, ok)
	assert.Equal(t, len(OperatorService_ServiceDesc.Methods), svc.Methods().Len())
	assert.Equal(t, ServiceName, OperatorService_ServiceDesc.ServiceName)

	for _, m := range OperatorService_ServiceDesc.Methods {
		assert.NotNil(t, svc.Methods().ByName(protoreflect.Name(m.MethodName)), m.MethodName)
	}
}

func TestUpdateOperatorRequest_KeepsFieldPresence(t *testing.T) {
	t.Parallel()

	in := &UpdateOperatorRequest{Id: "op-1", FirstName: wrapperspb.String(""), StatusId: wrapperspb.Int32(4)}
	b, err := proto.Marshal(in)
	require.NoError(t, err)

	var out UpdateOperatorRequest
	require.NoError(t, proto.Unmarshal(b, &out))

	require.NotNil(t, out.GetFirstName(), "an explicit empty string is still present")
	assert.Equal(t, "", out.GetFirstName().GetValue())
	assert.Equal(t, int32(4), out.GetStatusId().GetValue())
	assert.Nil(t, out.GetLastName())
	assert.Nil(t, out.GetRegionId())
	assert.True(t, proto.Equal(in, &out))
}
