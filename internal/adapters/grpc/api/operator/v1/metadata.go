package operatorv1

//go:generate sh -c "cd ../../../../../.. && buf generate"

import (
	"context"

	"google.golang.org/grpc/metadata"
)

// ServiceName は OperatorService の完全修飾名です。ヘルスチェックのサービス名にも使います。
const ServiceName = "operator.v1.OperatorService"

const (
	// ActorUsernameKey は認証済みユーザー名を運ぶメタデータキーです。
	ActorUsernameKey = "x-actor-username"
	// ActorRoleKey はロールを運ぶメタデータキーです。
	ActorRoleKey = "x-actor-role"
)

// WithActor は送信メタデータにアクター情報を付与します。
func WithActor(ctx context.Context, username, role string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, ActorUsernameKey, username, ActorRoleKey, role)
}
