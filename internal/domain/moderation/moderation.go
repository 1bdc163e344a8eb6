// Package moderation holds the post moderation state machine. Every state
// is re-enterable; a transition yields a Decision applied in one write.
package moderation

import (
	"strings"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
)

// Decision is the complete set of fields a transition writes.
// A nil IsPremium leaves the stored flag untouched.
type Decision struct {
	Status       entity.PostStatus
	IsPremium    *bool
	RejectReason *string
}

// ApproveOptions carries the optional premium flag of an approval.
type ApproveOptions struct {
	IsPremium *bool
}

// Approve moves a post to APPROVED and clears any reject reason.
func Approve(opts ApproveOptions) Decision {
	return Decision{
		Status:       entity.PostStatusApproved,
		IsPremium:    opts.IsPremium,
		RejectReason: nil,
	}
}

// Reject moves a post to REJECTED with a reason and drops the premium flag.
func Reject(reason string) (Decision, error) {
	if strings.TrimSpace(reason) == "" {
		return Decision{}, domainerrors.ErrRejectReasonRequired
	}

	notPremium := false

	return Decision{
		Status:       entity.PostStatusRejected,
		IsPremium:    &notPremium,
		RejectReason: &reason,
	}, nil
}

// Apply returns a copy of post with the decision applied.
func (d Decision) Apply(post *entity.Post) *entity.Post {
	out := *post
	out.Status = d.Status
	out.RejectReason = d.RejectReason
	if d.IsPremium != nil {
		out.IsPremium = *d.IsPremium
	}

	return &out
}
