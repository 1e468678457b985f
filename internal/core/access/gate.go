package access

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrForbidden はロールに操作権限がない場合に返却されます。
	ErrForbidden = errors.New("access: forbidden")
	// ErrUnknownAction は未定義のアクションが指定された場合に返却されます。
	ErrUnknownAction = errors.New("access: unknown action")
)

// Role は認証済みユーザーのロールです。
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleEditor    Role = "editor"
	RoleViewer    Role = "viewer"
	RoleUser      Role = "user"
	RoleAnonymous Role = ""
)

// Action はオペレーターに対する操作です。
type Action string

const (
	ActionList          Action = "list"
	ActionView          Action = "view"
	ActionCreateForm    Action = "create-form"
	ActionCreate        Action = "create"
	ActionEditForm      Action = "edit-form"
	ActionUpdate        Action = "update"
	ActionAdvanceStatus Action = "advance-status"
	ActionRemove        Action = "remove"
	ActionRestore       Action = "restore"
	ActionPurgeTrash    Action = "purge-trash"
)

// Category はアクションの権限区分です。
type Category int

const (
	CategoryRead Category = iota + 1
	CategoryMutate
)

// Decision は認可の結果です。
type Decision bool

const (
	Allowed Decision = true
	Denied  Decision = false
)

type roleClass int

const (
	classAnonymous roleClass = iota
	classAuthenticated
	classPrivileged
)

var actionCategories = map[Action]Category{
	ActionList:          CategoryRead,
	ActionView:          CategoryRead,
	ActionCreateForm:    CategoryMutate,
	ActionCreate:        CategoryMutate,
	ActionEditForm:      CategoryMutate,
	ActionUpdate:        CategoryMutate,
	ActionAdvanceStatus: CategoryMutate,
	ActionRemove:        CategoryMutate,
	ActionRestore:       CategoryMutate,
	ActionPurgeTrash:    CategoryMutate,
}

// decisions は (ロール区分, 権限区分) の全組み合わせを列挙した静的テーブルです。
var decisions = map[roleClass]map[Category]Decision{
	classAnonymous: {
		CategoryRead:   Denied,
		CategoryMutate: Denied,
	},
	classAuthenticated: {
		CategoryRead:   Allowed,
		CategoryMutate: Denied,
	},
	classPrivileged: {
		CategoryRead:   Allowed,
		CategoryMutate: Allowed,
	},
}

// NormalizeRole は前後の空白と大文字小文字を正規化します。
func NormalizeRole(raw string) Role {
	return Role(strings.ToLower(strings.TrimSpace(raw)))
}

func classify(role Role) roleClass {
	switch role {
	case RoleAdmin, RoleEditor:
		return classPrivileged
	case RoleAnonymous:
		return classAnonymous
	default:
		return classAuthenticated
	}
}

// CategoryOf はアクションの権限区分を返します。
func CategoryOf(action Action) (Category, bool) {
	c, ok := actionCategories[action]
	return c, ok
}

// Authorize はロールとアクションから認可結果を返します。未定義のアクションは拒否します。
func Authorize(role Role, action Action) Decision {
	category, ok := CategoryOf(action)
	if !ok {
		return Denied
	}
	return decisions[classify(role)][category]
}

// Gate はユースケースの入口で認可を行います。
type Gate struct{}

// NewGate は Gate を生成します。
func NewGate() *Gate {
	return &Gate{}
}

// Check はアクターがアクションを実行できない場合にエラーを返します。
func (g *Gate) Check(actor Actor, action Action) error {
	if _, ok := CategoryOf(action); !ok {
		return fmt.Errorf("%q: %w", action, ErrUnknownAction)
	}
	if Authorize(actor.Role, action) == Denied {
		return fmt.Errorf("role %q cannot %s: %w", actor.Role, action, ErrForbidden)
	}
	return nil
}

// CheckContext はコンテキストのアクターで Check を行います。
func (g *Gate) CheckContext(ctx context.Context, action Action) (Actor, error) {
	actor := ActorFromContext(ctx)
	if err := g.Check(actor, action); err != nil {
		return Actor{}, err
	}
	return actor, nil
}
