package repositories

import (
	"context"
	"strings"

	"tripzy/internal/domain/models"
)

// DraftRepository keeps booking drafts between page views. Keys combine the
// visitor session and the trip id, see DraftKey.
type DraftRepository interface {
	Get(ctx context.Context, key string) (models.BookingDraft, error)
	Save(ctx context.Context, key string, draft models.BookingDraft) error
	Delete(ctx context.Context, key string) error
}

// DraftKey scopes a draft to one visitor and one trip.
func DraftKey(sessionID string, tripID models.ID) string {
	return strings.TrimSpace(sessionID) + ":" + strings.TrimSpace(tripID.String())
}
