package moderation

import (
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(v bool) *bool { return &v }

func TestApprove(t *testing.T) {
	reason := "blurry photo"
	post := &entity.Post{Status: entity.PostStatusRejected, RejectReason: &reason, IsPremium: true}

	got := Approve(ApproveOptions{}).Apply(post)
	assert.Equal(t, entity.PostStatusApproved, got.Status)
	assert.Nil(t, got.RejectReason)
	assert.True(t, got.IsPremium, "premium untouched when not supplied")

	got = Approve(ApproveOptions{IsPremium: boolPtr(false)}).Apply(post)
	assert.False(t, got.IsPremium)

	assert.Equal(t, entity.PostStatusRejected, post.Status, "input is not mutated")
}

func TestReject(t *testing.T) {
	post := &entity.Post{Status: entity.PostStatusApproved, IsPremium: true}

	d, err := Reject("spam")
	require.NoError(t, err)

	got := d.Apply(post)
	assert.Equal(t, entity.PostStatusRejected, got.Status)
	require.NotNil(t, got.RejectReason)
	assert.Equal(t, "spam", *got.RejectReason)
	assert.False(t, got.IsPremium)
}

func TestReject_RequiresReason(t *testing.T) {
	for _, reason := range []string{"", "   "} {
		_, err := Reject(reason)
		require.ErrorIs(t, err, domainerrors.ErrRejectReasonRequired)
		assert.Equal(t, domainerrors.KindInvalidArgument, domainerrors.KindOf(err))
	}
}

func TestRejectThenApprove(t *testing.T) {
	post := &entity.Post{Status: entity.PostStatusPending, IsPremium: true}

	rejected, err := Reject("off-topic")
	require.NoError(t, err)
	post = rejected.Apply(post)

	post = Approve(ApproveOptions{}).Apply(post)

	assert.Equal(t, entity.PostStatusApproved, post.Status)
	assert.False(t, post.IsPremium)
	assert.Nil(t, post.RejectReason)
}

func TestReapproveIsIdempotent(t *testing.T) {
	post := &entity.Post{Status: entity.PostStatusApproved, IsPremium: true}

	once := Approve(ApproveOptions{}).Apply(post)
	twice := Approve(ApproveOptions{}).Apply(once)

	assert.Equal(t, once, twice)
}
