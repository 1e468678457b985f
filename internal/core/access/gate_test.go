package access

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize_RemoveByRole(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Denied, Authorize(RoleViewer, ActionRemove))
	assert.Equal(t, Allowed, Authorize(RoleEditor, ActionRemove))
	assert.Equal(t, Allowed, Authorize(RoleAdmin, ActionRemove))
}

func TestAuthorize_Table(t *testing.T) {
	t.Parallel()

	mutating := []Action{
		ActionCreateForm, ActionCreate, ActionEditForm, ActionUpdate,
		ActionAdvanceStatus, ActionRemove, ActionRestore, ActionPurgeTrash,
	}
	reading := []Action{ActionList, ActionView}

	tests := []struct {
		name       string
		role       Role
		wantRead   Decision
		wantMutate Decision
	}{
		{name: "admin", role: RoleAdmin, wantRead: Allowed, wantMutate: Allowed},
		{name: "editor", role: RoleEditor, wantRead: Allowed, wantMutate: Allowed},
		{name: "viewer", role: RoleViewer, wantRead: Allowed, wantMutate: Denied},
		{name: "default user", role: RoleUser, wantRead: Allowed, wantMutate: Denied},
		{name: "unknown role", role: Role("auditor"), wantRead: Allowed, wantMutate: Denied},
		{name: "anonymous", role: RoleAnonymous, wantRead: Denied, wantMutate: Denied},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for _, action := range reading {
				assert.Equal(t, tt.wantRead, Authorize(tt.role, action), "action %s", action)
			}
			for _, action := range mutating {
				assert.Equal(t, tt.wantMutate, Authorize(tt.role, action), "action %s", action)
			}
		})
	}
}

func TestAuthorize_UnknownActionDenied(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Denied, Authorize(RoleAdmin, Action("export")))
}

func TestGate_Check(t *testing.T) {
	t.Parallel()

	gate := NewGate()

	err := gate.Check(NewActor("jdoe", "viewer"), ActionPurgeTrash)
	require.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, gate.Check(NewActor("jdoe", " Editor "), ActionPurgeTrash))

	err = gate.Check(NewActor("root", "admin"), Action("destroy-all"))
	require.ErrorIs(t, err, ErrUnknownAction)
}

func TestGate_CheckContext(t *testing.T) {
	t.Parallel()

	gate := NewGate()

	_, err := gate.CheckContext(context.Background(), ActionList)
	require.ErrorIs(t, err, ErrForbidden)

	ctx := WithActor(context.Background(), NewActor("maria", "admin"))
	actor, err := gate.CheckContext(ctx, ActionCreate)
	require.NoError(t, err)
	assert.Equal(t, "maria", actor.Username)
	assert.Equal(t, RoleAdmin, actor.Role)
}

func TestNewActor(t *testing.T) {
	t.Parallel()

	anon := NewActor("  ", "admin")
	assert.False(t, anon.Authenticated())
	assert.Equal(t, RoleAnonymous, anon.Role)

	noRole := NewActor("pedro", "")
	assert.True(t, noRole.Authenticated())
	assert.Equal(t, RoleUser, noRole.Role)
}
