package usecase

import (
	"context"
	"io"
	"time"

	"vidtube/pkg/logger"
	"vidtube/pkg/queue"
)

// MediaUploader is the external media store (S3 or MinIO in production).
type MediaUploader interface {
	UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error)
	DeleteByURL(ctx context.Context, url string) error
}

// ViewMarker de-duplicates views per viewer. ClearViewed releases a mark
// whose view could not be stored.
type ViewMarker interface {
	MarkViewed(ctx context.Context, viewerID, videoID string) (bool, error)
	ClearViewed(ctx context.Context, viewerID, videoID string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event queue.Event) error
}

// MediaFile is an uploaded file handed over by the transport layer.
type MediaFile struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

const publishTimeout = 5 * time.Second

// publishAsync fires the event in the background; a missing or failing
// broker is logged and never fails the request.
func publishAsync(publisher EventPublisher, log *logger.Logger, event queue.Event) {
	if publisher == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		if err := publisher.Publish(ctx, event); err != nil {
			log.Error("[ENGAGEMENT QUEUE] Failed to publish %s event: %v", event.RoutingKey(), err)
			return
		}
		log.Info("[ENGAGEMENT QUEUE] Published %s event: actor=%s target=%s", event.RoutingKey(), event.ActorID, event.TargetID)
	}()
}
