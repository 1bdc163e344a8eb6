package service

// MetricsRecorder counts domain events for monitoring.
type MetricsRecorder interface {
	// ModerationApplied counts a committed moderation decision by resulting status.
	ModerationApplied(status string)

	// VoteCast counts a vote operation by action: upvote, downvote or unvote.
	VoteCast(action string)
}
