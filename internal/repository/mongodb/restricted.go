package mongodb

import (
	"context"

	"github.com/ForoVideo/comment-service/internal/model"
)

// restrictedCommentRepo fronts the privileged repository for session-scoped
// callers. Identity must be present before any write reaches the store; the
// identity itself always comes from the session layer, never from request
// bodies. Reads stay public.
type restrictedCommentRepo struct {
	next Comment
}

func newRestrictedCommentRepo(next Comment) Comment {
	return &restrictedCommentRepo{
		next: next,
	}
}

func (r *restrictedCommentRepo) Create(ctx context.Context, comment model.CommentRecord) (*model.CommentRecord, error) {
	if comment.AuthorID == "" {
		return nil, ErrUnauthenticated
	}

	return r.next.Create(ctx, comment)
}

func (r *restrictedCommentRepo) FindPostComments(ctx context.Context, postID string) ([]*model.CommentRecord, error) {
	return r.next.FindPostComments(ctx, postID)
}

func (r *restrictedCommentRepo) ToggleLike(ctx context.Context, postID string, commentID string, userID string) error {
	if userID == "" {
		return ErrUnauthenticated
	}

	return r.next.ToggleLike(ctx, postID, commentID, userID)
}

func (r *restrictedCommentRepo) SoftDelete(ctx context.Context, postID string, commentID string, requestingUserID string) error {
	if requestingUserID == "" {
		return ErrUnauthenticated
	}

	return r.next.SoftDelete(ctx, postID, commentID, requestingUserID)
}
