package mention_test

import (
	"collab-hub/domain"
	"collab-hub/errors"
	"collab-hub/mention"
	"collab-hub/mocks"
	"context"
	stderrors "errors"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const delta = `{"ops":[
	{"insert":"hello "},
	{"insert":{"mention":{"id":"alice","value":"Alice"}}},
	{"insert":" and "},
	{"insert":{"mention":{"id":"bob","value":"Bob"}}},
	{"insert":{"mention":{"userId":"bob"}}}
]}`

func newExtractor(t *testing.T, suppression *mention.MemorySuppression) (*mention.Extractor, *mocks.MockINotificationStore, *mocks.MockIMentionNotifier) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockINotificationStore(ctrl)
	notifier := mocks.NewMockIMentionNotifier(ctrl)
	extractor, err := mention.NewExtractor(logs.GetLoggerFromLevel(slog.LevelDebug), suppression, store, notifier)
	require.NoError(t, err)
	return extractor, store, notifier
}

func echo(_ context.Context, n domain.Notification) (domain.Notification, error) {
	return n, nil
}

func TestExtractor_Targets(t *testing.T) {
	extractor, _, _ := newExtractor(t, mention.NewMemorySuppression(mention.DefaultWindow))

	tests := []struct {
		name     string
		update   string
		author   string
		expected []string
	}{
		{name: "delta excludes author and duplicates", update: delta, author: "alice", expected: []string{"bob"}},
		{name: "bare ops array", update: `[{"insert":{"mention":{"id":"carol"}}}]`, author: "alice", expected: []string{"carol"}},
		{name: "markup span", update: `"<p>hi <span data-type=\"mention\" data-mention-id=\"dave\">@Dave</span></p>"`, author: "alice", expected: []string{"dave"}},
		{name: "raw markup", update: `<span data-user-id="erin">@Erin</span><span data-mention="frank">`, author: "alice", expected: []string{"erin", "frank"}},
		{name: "nested markup", update: `{"html":"<span data-user-id=\"gina\"></span>","blocks":[{"text":"<b data-mention-id=\"alice\"></b>"}]}`, author: "alice", expected: []string{"gina"}},
		{name: "plain text is not a mention", update: `{"ops":[{"insert":"@bob please review"}]}`, author: "alice", expected: []string{}},
		{name: "empty attribute", update: `<span data-user-id="">`, author: "alice", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, extractor.Targets([]byte(tt.update), tt.author))
		})
	}
}

func TestExtractor_Process_Notifies_Target_Once(t *testing.T) {
	req := require.New(t)
	extractor, store, notifier := newExtractor(t, mention.NewMemorySuppression(mention.DefaultWindow))
	at := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

	// Given a delta mentioning the author and bob
	var saved domain.Notification
	store.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, n domain.Notification) (domain.Notification, error) {
		saved = n
		return n, nil
	}).Times(1)
	notifier.EXPECT().EmitMentionNotification(gomock.Any()).Times(1)

	// When it is processed
	err := extractor.Process(context.Background(), domain.MentionRequest{PageID: "p1", AuthorID: "alice", Update: []byte(delta), At: at})

	// Then exactly one notification targets bob
	req.NoError(err)
	req.Equal("bob", saved.UserID)
	req.Equal("alice", saved.ActorID)
	req.Equal("p1", saved.PageID)
	req.Equal(domain.MentionNotification, saved.Kind)
	req.Equal(at, saved.CreatedAt)
	req.NotEmpty(saved.ID)
}

func TestExtractor_Process_Suppresses_Within_Window(t *testing.T) {
	req := require.New(t)
	extractor, store, notifier := newExtractor(t, mention.NewMemorySuppression(5*time.Minute))
	at := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	request := func(at time.Time) domain.MentionRequest {
		return domain.MentionRequest{PageID: "p1", AuthorID: "alice", Update: []byte(delta), At: at}
	}

	store.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).DoAndReturn(echo).Times(2)
	notifier.EXPECT().EmitMentionNotification(gomock.Any()).Times(2)

	// First mention is notified
	req.NoError(extractor.Process(context.Background(), request(at)))
	// A repeat within five minutes is not
	req.NoError(extractor.Process(context.Background(), request(at.Add(4*time.Minute+59*time.Second))))
	// After five minutes it is again
	req.NoError(extractor.Process(context.Background(), request(at.Add(5*time.Minute))))
}

func TestExtractor_Process_Window_Is_Per_Page_And_Author(t *testing.T) {
	req := require.New(t)
	extractor, store, notifier := newExtractor(t, mention.NewMemorySuppression(5*time.Minute))
	at := time.Now()

	// bob from alice on two pages, then alice and bob from carol
	store.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).DoAndReturn(echo).Times(4)
	notifier.EXPECT().EmitMentionNotification(gomock.Any()).Times(4)

	req.NoError(extractor.Process(context.Background(), domain.MentionRequest{PageID: "p1", AuthorID: "alice", Update: []byte(delta), At: at}))
	req.NoError(extractor.Process(context.Background(), domain.MentionRequest{PageID: "p2", AuthorID: "alice", Update: []byte(delta), At: at}))
	req.NoError(extractor.Process(context.Background(), domain.MentionRequest{PageID: "p1", AuthorID: "carol", Update: []byte(delta), At: at}))
}

func TestExtractor_Process_Persistence_Failure(t *testing.T) {
	req := require.New(t)
	suppression := mention.NewMemorySuppression(5 * time.Minute)
	extractor, store, notifier := newExtractor(t, suppression)
	at := time.Now()
	request := domain.MentionRequest{PageID: "p1", AuthorID: "alice", Update: []byte(delta), At: at}

	// Given the notification store is down
	gomock.InOrder(
		store.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(domain.Notification{}, stderrors.New("connection refused")),
		store.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).DoAndReturn(echo),
	)
	notifier.EXPECT().EmitMentionNotification(gomock.Any()).Times(1)

	// When a mention is processed
	err := extractor.Process(context.Background(), request)

	// Then a persistence error is returned and nothing is emitted
	req.Error(err)
	req.True(errors.IsPersistence(err))
	req.Zero(suppression.Len())

	// And the next mention is not suppressed
	req.NoError(extractor.Process(context.Background(), request))
}

func TestExtractor_Process_Without_Mentions(t *testing.T) {
	req := require.New(t)
	extractor, _, _ := newExtractor(t, mention.NewMemorySuppression(mention.DefaultWindow))

	err := extractor.Process(context.Background(), domain.MentionRequest{PageID: "p1", AuthorID: "alice", Update: []byte(`{"ops":[{"insert":"hi"}]}`)})
	req.NoError(err)
}

func TestExtractor_Process_Suppression_Failure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	suppression := mocks.NewMockISuppressionStore(ctrl)
	store := mocks.NewMockINotificationStore(ctrl)
	notifier := mocks.NewMockIMentionNotifier(ctrl)
	extractor, err := mention.NewExtractor(slog.Default(), suppression, store, notifier)
	req.NoError(err)

	suppression.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(false, stderrors.New("disk full"))

	err = extractor.Process(context.Background(), domain.MentionRequest{PageID: "p1", AuthorID: "alice", Update: []byte(delta)})
	req.True(errors.IsPersistence(err))
}
