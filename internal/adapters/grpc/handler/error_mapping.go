package handler

import (
	"errors"

	"github.com/ogurasousui/operator-registry/internal/core/access"
	"github.com/ogurasousui/operator-registry/internal/core/catalog"
	"github.com/ogurasousui/operator-registry/internal/core/operator"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// errorDomain は ErrorInfo に設定するドメインです。
const errorDomain = "operator-registry"

const (
	ReasonInvalidArgument   = "INVALID_ARGUMENT"
	ReasonInvalidDeleteMode = "INVALID_DELETE_MODE"
	ReasonRegionNotFound    = "REGION_NOT_FOUND"
	ReasonStatusNotFound    = "STATUS_NOT_FOUND"
	ReasonForbidden         = "FORBIDDEN"
	ReasonNotFound          = "OPERATOR_NOT_FOUND"
	ReasonNationalIDExists  = "NATIONAL_ID_ALREADY_EXISTS"
	ReasonNoCodeAvailable   = "NO_CODE_AVAILABLE"
	ReasonCodeConflict      = "CODE_CONFLICT"
	ReasonInternal          = "INTERNAL"
)

func toStatusError(err error) error {
	if err == nil {
		return nil
	}
	code, reason := classifyError(err)
	return newStatusError(code, reason, err.Error())
}

func classifyError(err error) (codes.Code, string) {
	switch {
	case errors.Is(err, access.ErrForbidden), errors.Is(err, access.ErrUnknownAction):
		return codes.PermissionDenied, ReasonForbidden
	case errors.Is(err, operator.ErrInvalidDeleteMode):
		return codes.InvalidArgument, ReasonInvalidDeleteMode
	case errors.Is(err, operator.ErrNationalIDAlreadyExists):
		return codes.AlreadyExists, ReasonNationalIDExists
	case errors.Is(err, catalog.ErrRegionNotFound):
		return codes.InvalidArgument, ReasonRegionNotFound
	case errors.Is(err, catalog.ErrStatusNotFound):
		return codes.InvalidArgument, ReasonStatusNotFound
	case operator.IsValidation(err):
		return codes.InvalidArgument, ReasonInvalidArgument
	case operator.IsNotFound(err):
		return codes.NotFound, ReasonNotFound
	case operator.IsCapacity(err):
		return codes.ResourceExhausted, ReasonNoCodeAvailable
	case operator.IsConflict(err):
		return codes.Aborted, ReasonCodeConflict
	default:
		return codes.Internal, ReasonInternal
	}
}

func newStatusError(code codes.Code, reason, msg string) error {
	st := status.New(code, msg)
	detailed, err := st.WithDetails(&errdetails.ErrorInfo{
		Reason: reason,
		Domain: errorDomain,
	})
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}

// ReasonOf は status エラーに付与された ErrorInfo の reason を返します。
func ReasonOf(err error) string {
	st, ok := status.FromError(err)
	if !ok {
		return ""
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info.GetReason()
		}
	}
	return ""
}
