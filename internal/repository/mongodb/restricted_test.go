package mongodb

import (
	"context"
	"testing"

	"github.com/ForoVideo/comment-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingComment struct {
	createCalls     int
	toggleCalls     int
	softDeleteCalls int
	findCalls       int
}

func (r *recordingComment) Create(_ context.Context, comment model.CommentRecord) (*model.CommentRecord, error) {
	r.createCalls++
	return &comment, nil
}

func (r *recordingComment) FindPostComments(_ context.Context, _ string) ([]*model.CommentRecord, error) {
	r.findCalls++
	return nil, nil
}

func (r *recordingComment) ToggleLike(_ context.Context, _, _, _ string) error {
	r.toggleCalls++
	return nil
}

func (r *recordingComment) SoftDelete(_ context.Context, _, _, _ string) error {
	r.softDeleteCalls++
	return nil
}

func TestRestricted_RejectsAnonymousWrites(t *testing.T) {
	next := &recordingComment{}
	repo := newRestrictedCommentRepo(next)
	ctx := context.Background()

	_, err := repo.Create(ctx, model.CommentRecord{PostID: "post-1", Content: "hola mundo"})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	assert.ErrorIs(t, repo.ToggleLike(ctx, "post-1", "c1", ""), ErrUnauthenticated)
	assert.ErrorIs(t, repo.SoftDelete(ctx, "post-1", "c1", ""), ErrUnauthenticated)

	assert.Zero(t, next.createCalls)
	assert.Zero(t, next.toggleCalls)
	assert.Zero(t, next.softDeleteCalls)
}

func TestRestricted_DelegatesAuthenticatedCalls(t *testing.T) {
	next := &recordingComment{}
	repo := newRestrictedCommentRepo(next)
	ctx := context.Background()

	_, err := repo.Create(ctx, model.CommentRecord{PostID: "post-1", AuthorID: "user-a", Content: "hola mundo"})
	require.NoError(t, err)
	require.NoError(t, repo.ToggleLike(ctx, "post-1", "c1", "user-a"))
	require.NoError(t, repo.SoftDelete(ctx, "post-1", "c1", "user-a"))

	assert.Equal(t, 1, next.createCalls)
	assert.Equal(t, 1, next.toggleCalls)
	assert.Equal(t, 1, next.softDeleteCalls)
}

func TestRestricted_ReadsArePublic(t *testing.T) {
	next := &recordingComment{}
	repo := newRestrictedCommentRepo(next)

	_, err := repo.FindPostComments(context.Background(), "post-1")
	require.NoError(t, err)
	assert.Equal(t, 1, next.findCalls)
}
