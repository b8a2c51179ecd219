// Package authz holds the ownership rule gating every update and delete.
package authz

import "errors"

// ErrForbidden means the actor is authenticated but does not own the resource.
// Distinct from a missing or invalid token, which never reaches this check.
var ErrForbidden = errors.New("forbidden")

// CanModify reports whether actorID may mutate a resource owned by ownerID.
// For users the owner id is the user's own id.
func CanModify(actorID, ownerID int64) bool {
	return actorID == ownerID
}
