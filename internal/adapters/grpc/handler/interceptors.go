package handler

import (
	"context"
	"strings"
	"time"

	operatorv1 "github.com/ogurasousui/operator-registry/internal/adapters/grpc/api/operator/v1"
	"github.com/ogurasousui/operator-registry/internal/core/access"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// methodActions は OperatorService の各メソッドに対応するアクションです。
var methodActions = map[string]access.Action{
	operatorv1.OperatorService_ListRegions_FullMethodName:           access.ActionList,
	operatorv1.OperatorService_ListStatuses_FullMethodName:          access.ActionList,
	operatorv1.OperatorService_CreateOperator_FullMethodName:        access.ActionCreate,
	operatorv1.OperatorService_GetOperator_FullMethodName:           access.ActionView,
	operatorv1.OperatorService_ListOperators_FullMethodName:         access.ActionList,
	operatorv1.OperatorService_UpdateOperator_FullMethodName:        access.ActionUpdate,
	operatorv1.OperatorService_AdvanceOperatorStatus_FullMethodName: access.ActionAdvanceStatus,
	operatorv1.OperatorService_RemoveOperator_FullMethodName:        access.ActionRemove,
	operatorv1.OperatorService_RestoreOperator_FullMethodName:       access.ActionRestore,
	operatorv1.OperatorService_PurgeTrash_FullMethodName:            access.ActionPurgeTrash,
}

var operatorServicePrefix = "/" + operatorv1.ServiceName + "/"

// ActionForMethod は gRPC のメソッド名に対応するアクションを返します。
func ActionForMethod(fullMethod string) (access.Action, bool) {
	action, ok := methodActions[fullMethod]
	return action, ok
}

// ActorUnaryInterceptor は受信メタデータからアクターを解決してコンテキストに格納します。
func ActorUnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		return handler(access.WithActor(ctx, actorFromMetadata(ctx)), req)
	}
}

func actorFromMetadata(ctx context.Context) access.Actor {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return access.Actor{}
	}
	return access.NewActor(firstValue(md, operatorv1.ActorUsernameKey), firstValue(md, operatorv1.ActorRoleKey))
}

func firstValue(md metadata.MD, key string) string {
	values := md.Get(key)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// AccessUnaryInterceptor はハンドラー実行前に OperatorService のメソッドを認可します。
// 他のサービス（ヘルスチェックなど）は対象外です。
func AccessUnaryInterceptor(gate *access.Gate) grpc.UnaryServerInterceptor {
	if gate == nil {
		gate = access.NewGate()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !strings.HasPrefix(info.FullMethod, operatorServicePrefix) {
			return handler(ctx, req)
		}
		action, ok := ActionForMethod(info.FullMethod)
		if !ok {
			return nil, toStatusError(access.ErrUnknownAction)
		}
		if _, err := gate.CheckContext(ctx, action); err != nil {
			return nil, toStatusError(err)
		}
		return handler(ctx, req)
	}
}

// LoggingUnaryInterceptor はリクエストごとに結果を記録します。
func LoggingUnaryInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		actor := access.ActorFromContext(ctx)
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("code", status.Code(err).String()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("actor", actor.Username),
		}
		if err != nil {
			reason := ReasonOf(err)
			if reason != "" {
				fields = append(fields, zap.String("reason", reason))
			}
			if reason == ReasonInternal || reason == "" {
				logger.Error("grpc request failed", append(fields, zap.Error(err))...)
				return resp, err
			}
			logger.Info("grpc request rejected", fields...)
			return resp, err
		}
		logger.Debug("grpc request", fields...)
		return resp, err
	}
}
