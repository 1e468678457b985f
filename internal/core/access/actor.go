package access

import (
	"context"
	"strings"
)

// Actor は操作を行う認証済みユーザーです。
type Actor struct {
	Username string
	Role     Role
}

// NewActor はユーザー名とロールを正規化して Actor を生成します。
// ユーザー名が空の場合は未認証、ロールが空の場合は RoleUser として扱います。
func NewActor(username, role string) Actor {
	name := strings.TrimSpace(username)
	if name == "" {
		return Actor{Role: RoleAnonymous}
	}
	r := NormalizeRole(role)
	if r == RoleAnonymous {
		r = RoleUser
	}
	return Actor{Username: name, Role: r}
}

// Authenticated はユーザー名を持つアクターかどうかを返します。
func (a Actor) Authenticated() bool {
	return a.Username != "" && a.Role != RoleAnonymous
}

type actorContextKey struct{}

// WithActor はアクターをコンテキストに格納します。
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

// ActorFromContext はコンテキストのアクターを返します。存在しない場合は未認証です。
func ActorFromContext(ctx context.Context) Actor {
	if ctx == nil {
		return Actor{}
	}
	actor, ok := ctx.Value(actorContextKey{}).(Actor)
	if !ok {
		return Actor{}
	}
	return actor
}
