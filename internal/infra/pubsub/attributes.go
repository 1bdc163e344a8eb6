package pubsub

import "marketplace/internal/domain/service"

// eventAttributes are the message attributes used for subscription filters and tracing.
func eventAttributes(event *service.ModerationEvent) map[string]string {
	attributes := map[string]string{
		"event_type": "post.moderated",
		"post_id":    event.PostID,
		"status":     event.Status,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
