// Package policy holds the authorization rule table for mutating operations
// and the visibility rules for reads.
//
// Every mutation is checked against an explicit (resource, action) entry.
// Pairs missing from the table are denied.
package policy

import (
	"fmt"

	"blogpost/pkg/apperrors"
)

type Resource string

const (
	ResourcePost    Resource = "post"
	ResourceComment Resource = "comment"
	ResourceLike    Resource = "like"
)

type Action string

const (
	ActionUpdate     Action = "update"
	ActionDelete     Action = "delete"
	ActionPublish    Action = "publish"
	ActionUnpublish  Action = "unpublish"
	ActionApprove    Action = "approve"
	ActionDisapprove Action = "disapprove"
	ActionUpload     Action = "upload_image"
	ActionViewStats  Action = "view_stats"
)

// Relation names which identity on the target the caller must match.
type Relation int

const (
	// RelationOwner: the caller authored the target (post author, comment
	// author, like user).
	RelationOwner Relation = iota + 1
	// RelationPostAuthor: the caller authored the post the target belongs to.
	RelationPostAuthor
)

type rule struct {
	resource Resource
	action   Action
}

var rules = map[rule]Relation{
	{ResourcePost, ActionUpdate}:    RelationOwner,
	{ResourcePost, ActionDelete}:    RelationOwner,
	{ResourcePost, ActionPublish}:   RelationOwner,
	{ResourcePost, ActionUnpublish}: RelationOwner,
	{ResourcePost, ActionUpload}:    RelationOwner,
	{ResourcePost, ActionViewStats}: RelationOwner,

	{ResourceComment, ActionUpdate}:     RelationOwner,
	{ResourceComment, ActionDelete}:     RelationOwner,
	{ResourceComment, ActionApprove}:    RelationPostAuthor,
	{ResourceComment, ActionDisapprove}: RelationPostAuthor,

	{ResourceLike, ActionDelete}: RelationOwner,
}

// Target describes the row being acted on. PostAuthorID is only needed for
// rules that require RelationPostAuthor.
type Target struct {
	Resource     Resource
	OwnerID      string
	PostAuthorID string
}

// Authorize returns nil when callerID may perform action on target. An
// anonymous caller gets Unauthorized; everyone else failing the rule gets
// PermissionDenied, including for targets the caller can see.
func Authorize(callerID string, action Action, target Target) error {
	if callerID == "" {
		return apperrors.Unauthorized("authentication required")
	}

	relation, ok := rules[rule{target.Resource, action}]
	if !ok {
		return apperrors.PermissionDenied(fmt.Sprintf("%s cannot be performed on %s", action, target.Resource))
	}

	switch relation {
	case RelationOwner:
		if callerID == target.OwnerID {
			return nil
		}
	case RelationPostAuthor:
		if callerID == target.PostAuthorID {
			return nil
		}
	}
	return apperrors.PermissionDenied(denyMessage(target.Resource, action))
}

func denyMessage(resource Resource, action Action) string {
	switch {
	case resource == ResourceComment && (action == ActionApprove || action == ActionDisapprove):
		return "only the post author can moderate comments"
	case resource == ResourceLike:
		return "you can only delete your own likes"
	case action == ActionPublish || action == ActionUnpublish:
		return fmt.Sprintf("you can only %s your own posts", action)
	case action == ActionUpload:
		return "you can only upload images to your own posts"
	case action == ActionViewStats:
		return "you can only view statistics of your own posts"
	default:
		return fmt.Sprintf("you can only %s your own %ss", action, resource)
	}
}

// CanViewPost: published posts are public; drafts are visible to their
// author only. Deleted posts are visible to nobody on default read paths.
func CanViewPost(callerID, authorID string, isPublished, isDeleted bool) bool {
	if isDeleted {
		return false
	}
	return isPublished || (callerID != "" && callerID == authorID)
}

// CanViewComment mirrors CanViewPost with approval in place of publication.
func CanViewComment(callerID, authorID string, isApproved, isDeleted bool) bool {
	if isDeleted {
		return false
	}
	return isApproved || (callerID != "" && callerID == authorID)
}
