// Package mention detects tagged user references in document updates and
// turns them into notifications, at most once per window for a given
// (target, page, author).
package mention

import (
	"collab-hub/contract"
	"collab-hub/domain"
	"collab-hub/errors"
	"context"
	stderrors "errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const mentionMessage = "mentioned you on a page"

var _ contract.IMentionProcessor = (*Extractor)(nil)

type Extractor struct {
	log           *slog.Logger
	scanners      []Scanner
	suppression   contract.ISuppressionStore
	notifications contract.INotificationStore
	notifier      contract.IMentionNotifier
}

func NewExtractor(log *slog.Logger, suppression contract.ISuppressionStore,
	notifications contract.INotificationStore, notifier contract.IMentionNotifier) (*Extractor, error) {
	markup, err := NewMarkupScanner()
	if err != nil {
		return nil, err
	}
	return &Extractor{
		log:           log.With("component", "mention_extractor"),
		scanners:      []Scanner{DeltaScanner{}, markup},
		suppression:   suppression,
		notifications: notifications,
		notifier:      notifier,
	}, nil
}

// Targets returns the distinct users mentioned in the update, never the author.
func (e *Extractor) Targets(update []byte, authorID string) []string {
	var ids []string
	for _, scanner := range e.scanners {
		ids = append(ids, scanner.Scan(update)...)
	}
	ids = lo.Map(ids, func(id string, _ int) string { return strings.TrimSpace(id) })
	ids = lo.Filter(ids, func(id string, _ int) bool { return id != "" && id != authorID })
	return lo.Uniq(ids)
}

// Process notifies every target that was not already notified for the same
// page and author within the window. A failure for one target does not stop
// the others, the returned error joins them all.
func (e *Extractor) Process(ctx context.Context, request domain.MentionRequest) error {
	targets := e.Targets(request.Update, request.AuthorID)
	if len(targets) == 0 {
		return nil
	}

	var errs []error
	for _, target := range targets {
		if err := e.notify(ctx, request, target); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}

func (e *Extractor) notify(ctx context.Context, request domain.MentionRequest, target string) error {
	key := domain.SuppressionKey{TargetUserID: target, PageID: request.PageID, AuthorID: request.AuthorID}
	log := e.log.With("userID", target, "pageId", request.PageID, "authorId", request.AuthorID)

	reserved, err := e.suppression.Reserve(key, request.At)
	if err != nil {
		return errors.NewPersistenceError("reserve mention suppression", err)
	}
	if !reserved {
		log.Debug("Mention suppressed, already notified recently")
		return nil
	}

	saved, err := e.notifications.CreateNotification(ctx, domain.Notification{
		ID:        uuid.New(),
		Kind:      domain.MentionNotification,
		UserID:    target,
		ActorID:   request.AuthorID,
		PageID:    request.PageID,
		Message:   mentionMessage,
		CreatedAt: request.At,
	})
	if err != nil {
		// Without a stored notification the next mention must be allowed to retry.
		if releaseErr := e.suppression.Release(key); releaseErr != nil {
			log.Warn("Failed to release mention suppression", "error", releaseErr)
		}
		return errors.NewPersistenceError("create mention notification", err)
	}

	e.notifier.EmitMentionNotification(saved)
	log.Debug("Mention notified", "notificationId", saved.ID)
	return nil
}
