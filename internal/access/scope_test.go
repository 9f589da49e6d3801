package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/commissions/internal/access"
)

func TestScope_Allows(t *testing.T) {
	owner := access.Scope{Role: access.RoleOwner}
	agent := access.Scope{Role: access.RoleAgent, WorkspaceIDs: []int64{1, 2}}

	assert.True(t, owner.Allows(new(int64(99))))
	assert.True(t, owner.Allows(nil))

	assert.True(t, agent.Allows(new(int64(2))))
	assert.False(t, agent.Allows(new(int64(3))))
	assert.False(t, agent.Allows(nil))
}

func TestScope_Workspaces(t *testing.T) {
	assert.Nil(t, access.Scope{Role: access.RoleAdmin}.Workspaces())
	assert.Equal(t, []int64{}, access.Scope{Role: access.RoleMember}.Workspaces())
	assert.Equal(t, []int64{4}, access.Scope{Role: access.RoleMember, WorkspaceIDs: []int64{4}}.Workspaces())
}

func TestScope_UploadWorkspace(t *testing.T) {
	type args struct {
		scope     access.Scope
		requested *int64
	}

	type testCase struct {
		name   string
		args   args
		want   int64
		wantOK bool
	}

	tests := []testCase{
		{
			name:   "Owner Requested",
			args:   args{scope: access.Scope{Role: access.RoleOwner}, requested: new(int64(5))},
			want:   5,
			wantOK: true,
		},
		{
			name:   "Owner Single Known Workspace",
			args:   args{scope: access.Scope{Role: access.RoleOwner, WorkspaceIDs: []int64{8}}},
			want:   8,
			wantOK: true,
		},
		{
			name:   "Owner Ambiguous",
			args:   args{scope: access.Scope{Role: access.RoleOwner, WorkspaceIDs: []int64{8, 9}}},
			wantOK: false,
		},
		{
			name:   "Agent Requested Own",
			args:   args{scope: access.Scope{Role: access.RoleAgent, WorkspaceIDs: []int64{1, 2}}, requested: new(int64(2))},
			want:   2,
			wantOK: true,
		},
		{
			name:   "Agent Falls Back To First",
			args:   args{scope: access.Scope{Role: access.RoleAgent, WorkspaceIDs: []int64{1, 2}}, requested: new(int64(7))},
			want:   1,
			wantOK: true,
		},
		{
			name:   "Member Not Theirs",
			args:   args{scope: access.Scope{Role: access.RoleMember, WorkspaceIDs: []int64{1, 2}}, requested: new(int64(7))},
			wantOK: false,
		},
		{
			name:   "Member Single Workspace",
			args:   args{scope: access.Scope{Role: access.RoleMember, WorkspaceIDs: []int64{3}}},
			want:   3,
			wantOK: true,
		},
		{
			name:   "No Workspaces",
			args:   args{scope: access.Scope{Role: access.RoleProducer}},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.args.scope.UploadWorkspace(tt.args.requested)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
