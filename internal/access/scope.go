// Package access describes which workspaces an actor may read and modify.
package access

import "slices"

type Role string

const (
	RoleOwner    Role = "owner"
	RoleAdmin    Role = "admin"
	RoleAgent    Role = "agent"
	RoleProducer Role = "producer"
	RoleMember   Role = "member"
)

// Scope is the authenticated actor as seen by the domain services. WorkspaceIDs lists the
// workspaces the actor manages or belongs to; for owners and admins it may be empty.
type Scope struct {
	OrgID        int64
	UserID       int64
	Role         Role
	WorkspaceIDs []int64
}

// Unrestricted reports whether the actor sees every workspace of the org.
func (s Scope) Unrestricted() bool {
	return s.Role == RoleOwner || s.Role == RoleAdmin
}

// Allows reports whether a record in workspaceID is visible. Records without a workspace
// are only visible to unrestricted actors.
func (s Scope) Allows(workspaceID *int64) bool {
	if s.Unrestricted() {
		return true
	}

	if workspaceID == nil {
		return false
	}

	return slices.Contains(s.WorkspaceIDs, *workspaceID)
}

// Workspaces returns the workspace filter for listings, nil meaning no filter.
func (s Scope) Workspaces() []int64 {
	if s.Unrestricted() {
		return nil
	}

	if s.WorkspaceIDs == nil {
		return []int64{}
	}

	return s.WorkspaceIDs
}

// UploadWorkspace picks the workspace that receives an upload.
//
// Unrestricted actors get the requested workspace, or the only one they know of. Agents and
// producers fall back to their first workspace when the request is missing or not theirs.
// Everyone else needs a requested workspace they belong to, or exactly one workspace.
func (s Scope) UploadWorkspace(requested *int64) (int64, bool) {
	if s.Unrestricted() {
		if requested != nil {
			return *requested, true
		}

		if len(s.WorkspaceIDs) == 1 {
			return s.WorkspaceIDs[0], true
		}

		return 0, false
	}

	if requested != nil && slices.Contains(s.WorkspaceIDs, *requested) {
		return *requested, true
	}

	switch {
	case len(s.WorkspaceIDs) == 0:
		return 0, false
	case s.Role == RoleAgent || s.Role == RoleProducer:
		return s.WorkspaceIDs[0], true
	case len(s.WorkspaceIDs) == 1:
		return s.WorkspaceIDs[0], true
	}

	return 0, false
}
