package events

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusconnect/internal/model"
	"campusconnect/internal/seed"
	"campusconnect/internal/store"
)

var eventIDPattern = regexp.MustCompile(`^event-\d+$`)

func newTestService() *Service {
	return NewService(store.NewMemory())
}

func TestListSeedFallback(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	feed := svc.List(ctx)
	require.Equal(t, len(seed.Events()), len(feed))
	assert.Equal(t, "event-1", feed[0].ID)

	// seed events are live records: social ops work before anything persists
	liked := svc.Like(ctx, "event-1")
	require.NotNil(t, liked)
	assert.Equal(t, 1, liked.Likes)
}

func TestCreateAssignsIDAndZeroesCounters(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	created := svc.Create(ctx, model.Event{
		Title: "Tech Fest",
		Likes: 99,
		RSVPs: []string{"smuggled"},
	})
	assert.Regexp(t, eventIDPattern, created.ID)
	assert.Equal(t, 0, created.Likes)
	assert.Equal(t, []string{}, created.RSVPs)
	assert.Equal(t, []model.Comment{}, created.Comments)
	assert.NotNil(t, created.Tags)
}

func TestCreatePrependsToFeed(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	svc.Create(ctx, model.Event{Title: "first"})
	svc.Create(ctx, model.Event{Title: "second"})

	feed := svc.List(ctx)
	require.Len(t, feed, 2+len(seed.Events()))
	assert.Equal(t, "second", feed[0].Title)
	assert.Equal(t, "first", feed[1].Title)
}

func TestLikeCountsEveryCall(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	created := svc.Create(ctx, model.Event{Title: "Hackathon"})

	for i := 0; i < 5; i++ {
		svc.Like(ctx, created.ID)
	}
	got := svc.ByID(ctx, created.ID)
	require.NotNil(t, got)
	assert.Equal(t, 5, got.Likes)
}

func TestRSVPToggles(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	created := svc.Create(ctx, model.Event{Title: "Seminar"})

	after := svc.RSVP(ctx, created.ID, "ca-fy-a-s1")
	require.NotNil(t, after)
	assert.Equal(t, []string{"ca-fy-a-s1"}, after.RSVPs)

	after = svc.RSVP(ctx, created.ID, "ca-fy-a-s1")
	require.NotNil(t, after)
	assert.Equal(t, []string{}, after.RSVPs)
}

func TestRSVPKeepsOtherUsers(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	created := svc.Create(ctx, model.Event{Title: "Seminar"})

	svc.RSVP(ctx, created.ID, "a")
	svc.RSVP(ctx, created.ID, "b")
	after := svc.RSVP(ctx, created.ID, "a")
	require.NotNil(t, after)
	assert.Equal(t, []string{"b"}, after.RSVPs)
}

func TestAddCommentAssignsID(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	created := svc.Create(ctx, model.Event{Title: "Expo"})

	after := svc.AddComment(ctx, created.ID, model.Comment{User: "Neha", Text: "see you there"})
	require.NotNil(t, after)
	require.Len(t, after.Comments, 1)
	assert.NotEmpty(t, after.Comments[0].ID)
	assert.Equal(t, "see you there", after.Comments[0].Text)
}

func TestUpdateMergesPartialFields(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	created := svc.Create(ctx, model.Event{Title: "Workshop", Location: "L4"})
	svc.Like(ctx, created.ID)

	updated, err := svc.Update(ctx, created.ID, map[string]any{"title": "Go Workshop"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Go Workshop", updated.Title)
	assert.Equal(t, "L4", updated.Location)
	assert.Equal(t, 1, updated.Likes)
}

func TestDeleteEvent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	created := svc.Create(ctx, model.Event{Title: "Gone"})

	require.True(t, svc.Delete(ctx, created.ID))
	assert.Nil(t, svc.ByID(ctx, created.ID))
	assert.False(t, svc.Delete(ctx, created.ID))
}

func TestSocialOpsUnknownEvent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	assert.Nil(t, svc.Like(ctx, "event-0"))
	assert.Nil(t, svc.RSVP(ctx, "event-0", "u"))
	assert.Nil(t, svc.AddComment(ctx, "event-0", model.Comment{Text: "x"}))
}
