package ingest

import "errors"

// ErrWorkspaceNotAllowed means no workspace the actor may upload into could be chosen.
var ErrWorkspaceNotAllowed = errors.New("no accessible workspace for upload")
