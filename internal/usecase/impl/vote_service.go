package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	voteActionUp    = "upvote"
	voteActionDown  = "downvote"
	voteActionUnset = "unvote"
)

// voteService implements the VoteUsecase interface.
type voteService struct {
	postRepo repository.PostRepository
	voteRepo repository.VoteRepository
	metrics  service.MetricsRecorder
	logger   *slog.Logger
}

// VoteServiceParams holds dependencies for VoteService, injected by Fx.
type VoteServiceParams struct {
	fx.In

	PostRepo repository.PostRepository
	VoteRepo repository.VoteRepository
	Metrics  service.MetricsRecorder
	Logger   *slog.Logger
}

// NewVoteService is the constructor for voteService.
func NewVoteService(params VoteServiceParams) usecase.VoteUsecase {
	return &voteService{
		postRepo: params.PostRepo,
		voteRepo: params.VoteRepo,
		metrics:  params.Metrics,
		logger:   params.Logger,
	}
}

func (srv *voteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upvote sets the requester's vote on the post to +1.
func (srv *voteService) Upvote(ctx context.Context, requester *entity.Requester, postID uuid.UUID) (*entity.Vote, error) {
	return srv.cast(ctx, requester, postID, entity.VoteUp, voteActionUp)
}

// Downvote sets the requester's vote on the post to -1.
func (srv *voteService) Downvote(ctx context.Context, requester *entity.Requester, postID uuid.UUID) (*entity.Vote, error) {
	return srv.cast(ctx, requester, postID, entity.VoteDown, voteActionDown)
}

// Unvote removes the requester's vote on the post if there is one.
func (srv *voteService) Unvote(ctx context.Context, requester *entity.Requester, postID uuid.UUID) error {
	ent, err := srv.ensureVotable(ctx, requester, postID)
	if err != nil {
		return err
	}

	if err := srv.voteRepo.Delete(ctx, ent.UserID, postID); err != nil {
		return errors.Wrap(err, "failed to delete vote")
	}

	srv.metrics.VoteCast(voteActionUnset)

	return nil
}

func (srv *voteService) cast(ctx context.Context, requester *entity.Requester, postID uuid.UUID, value entity.VoteValue, action string) (*entity.Vote, error) {
	ent, err := srv.ensureVotable(ctx, requester, postID)
	if err != nil {
		return nil, err
	}

	vote, err := srv.voteRepo.Upsert(ctx, &entity.Vote{
		UserID: ent.UserID,
		PostID: postID,
		Value:  value,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert vote")
	}

	srv.metrics.VoteCast(action)
	srv.log(ctx).Debug("Vote recorded", slog.String("postID", postID.String()), slog.String("action", action))

	return vote, nil
}

// ensureVotable requires an authenticated requester and an existing, approved post.
func (srv *voteService) ensureVotable(ctx context.Context, requester *entity.Requester, postID uuid.UUID) (entity.Entitlement, error) {
	ent, err := requireAuthenticated(requester)
	if err != nil {
		return ent, err
	}

	post, err := srv.postRepo.FindByID(ctx, postID)
	if err != nil {
		return ent, errors.Wrap(err, "failed to find post")
	}
	if !post.IsApproved() {
		return ent, domainerrors.ErrVotingNotAllowed
	}

	return ent, nil
}
