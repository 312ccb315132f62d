package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ForoVideo/comment-service/internal/dto"
	"github.com/ForoVideo/comment-service/internal/events"
	"github.com/ForoVideo/comment-service/internal/model"
	"github.com/ForoVideo/comment-service/internal/repository"
	"github.com/ForoVideo/comment-service/internal/repository/mongodb"
	"github.com/ForoVideo/comment-service/internal/repository/redisrepo"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	commentsCacheTTL = time.Minute
	settleTimeout    = 5 * time.Second
)

type fetchHandle struct {
	cancel context.CancelFunc
}

// commentService coordinates every comment mutation against the per-post
// cache: cancel in-flight fetches, save a snapshot, apply the edit
// optimistically, write to the document store, then reconcile or roll back.
// The cache is never mutated outside this pattern.
type commentService struct {
	logger *zap.Logger
	repo   *repository.Repository
	broker *events.Broker
	ui     *UIState

	mu       sync.Mutex
	inflight map[string]*fetchHandle
}

func newCommentService(logger *zap.Logger, repo *repository.Repository, broker *events.Broker, ui *UIState) Comment {
	return &commentService{
		logger:   logger,
		repo:     repo,
		broker:   broker,
		ui:       ui,
		inflight: make(map[string]*fetchHandle),
	}
}

func (s *commentService) Fetch(ctx context.Context, postID string) ([]*model.CommentRecord, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	handle := &fetchHandle{cancel: cancel}
	s.registerInflight(postID, handle)
	defer s.dropInflight(postID, handle)

	key := redisrepo.PostCommentsKey(postID)

	cached, err := redisrepo.GetMany[model.CommentRecord](s.repo.Redis.Default, ctx, key)
	if err == nil {
		return cached, nil
	}
	if err != redis.Nil && ctx.Err() == nil {
		s.logger.Sugar().Errorf("failed to get post(%s) comments from redis: %s", postID, err.Error())
	}

	records, err := s.repo.Mongo.Comment.FindPostComments(ctx, postID)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logger.Sugar().Errorf("failed to find post(%s) comments from mongo: %s", postID, err.Error())
		return nil, ErrLoadComments
	}

	// A superseded fetch must not clobber an optimistic edit with its stale
	// result.
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, key, records, commentsCacheTTL); err != nil {
		s.logger.Sugar().Errorf("failed to set post(%s) comments in redis: %s", postID, err.Error())
	}

	return records, nil
}

func (s *commentService) Create(ctx context.Context, postID string, content string, author model.CachedUser, parentID *string) error {
	if author.ID == uuid.Nil {
		s.ui.ShowNotification(NotificationError, ErrSignInToComment.Error())
		return ErrSignInToComment
	}
	if err := ValidateCommentContent(content); err != nil {
		s.ui.ShowNotification(NotificationError, err.Error())
		return err
	}

	s.ui.SetGlobalLoading(true)
	defer s.ui.SetGlobalLoading(false)

	s.cancelInflight(postID)

	key := redisrepo.PostCommentsKey(postID)
	snapshot, snapErr := redisrepo.GetMany[model.CommentRecord](s.repo.Redis.Default, ctx, key)
	hadSnapshot := snapErr == nil

	now := time.Now()
	temp := &model.CommentRecord{
		ID:                "temp-" + uuid.NewString(),
		PostID:            postID,
		ParentID:          parentID,
		Content:           content,
		AuthorID:          author.ID.String(),
		AuthorDisplayName: author.DisplayName,
		CreatedAt:         now,
		UpdatedAt:         now,
		LikedBy:           []string{},
		IsOptimistic:      true,
	}

	optimistic := append([]*model.CommentRecord{temp}, snapshot...)
	if err := s.repo.Redis.Default.SetJSON(ctx, key, optimistic, commentsCacheTTL); err != nil {
		s.logger.Sugar().Errorf("failed to apply optimistic comment for post(%s): %s", postID, err.Error())
	}

	created, err := s.repo.Mongo.Restricted.Create(ctx, model.CommentRecord{
		PostID:            postID,
		ParentID:          parentID,
		Content:           content,
		AuthorID:          author.ID.String(),
		AuthorDisplayName: author.DisplayName,
	})
	if err != nil {
		s.rollback(ctx, postID, snapshot, hadSnapshot)
		s.invalidate(postID)

		if errors.Is(err, mongodb.ErrParentNotFound) {
			s.ui.ShowNotification(NotificationError, ErrParentGone.Error())
			return ErrParentGone
		}

		s.logger.Sugar().Errorf("failed to create user(%s) comment on post(%s): %s", author.ID.String(), postID, err.Error())
		s.ui.ShowNotification(NotificationError, ErrPublishComment.Error())
		return ErrPublishComment
	}

	s.invalidate(postID)
	s.ui.ShowNotification(NotificationSuccess, MsgCommentPublished)

	s.publishJSON(viper.GetString("kafka.comment-created-topic"), dto.CommentCreatedMsg{
		PostID:    created.PostID,
		CommentID: created.ID,
		ParentID:  created.ParentID,
		AuthorID:  created.AuthorID,
		CreatedAt: model.NewSerializedTimestamp(created.CreatedAt),
	})

	return nil
}

func (s *commentService) Delete(ctx context.Context, postID string, commentID string, requester model.CachedUser) error {
	if requester.ID == uuid.Nil {
		s.ui.ShowNotification(NotificationError, ErrNotAuthorized.Error())
		return ErrNotAuthorized
	}

	s.cancelInflight(postID)

	key := redisrepo.PostCommentsKey(postID)
	snapshot, snapErr := redisrepo.GetMany[model.CommentRecord](s.repo.Redis.Default, ctx, key)
	hadSnapshot := snapErr == nil

	if hadSnapshot {
		filtered := make([]*model.CommentRecord, 0, len(snapshot))
		for _, rec := range snapshot {
			if rec.ID != commentID {
				filtered = append(filtered, rec)
			}
		}
		if err := s.repo.Redis.Default.SetJSON(ctx, key, filtered, commentsCacheTTL); err != nil {
			s.logger.Sugar().Errorf("failed to apply optimistic delete for post(%s): %s", postID, err.Error())
		}
	}

	if err := s.repo.Mongo.Restricted.SoftDelete(ctx, postID, commentID, requester.ID.String()); err != nil {
		s.rollback(ctx, postID, snapshot, hadSnapshot)
		s.invalidate(postID)

		if errors.Is(err, mongodb.ErrNotCommentAuthor) {
			s.ui.ShowNotification(NotificationError, ErrNotAuthorized.Error())
			return ErrNotAuthorized
		}

		s.logger.Sugar().Errorf("failed to delete comment(%s) on post(%s): %s", commentID, postID, err.Error())
		s.ui.ShowNotification(NotificationError, ErrDeleteComment.Error())
		return ErrDeleteComment
	}

	s.invalidate(postID)
	s.ui.ShowNotification(NotificationSuccess, MsgCommentDeleted)

	s.publishJSON(viper.GetString("kafka.comment-deleted-topic"), dto.CommentDeletedMsg{
		PostID:    postID,
		CommentID: commentID,
		DeletedBy: requester.ID.String(),
		DeletedAt: model.NewSerializedTimestamp(time.Now()),
	})

	return nil
}

func (s *commentService) ToggleLike(ctx context.Context, postID string, commentID string, user model.CachedUser) error {
	if user.ID == uuid.Nil {
		s.ui.ShowNotification(NotificationError, ErrSignInToLike.Error())
		return ErrSignInToLike
	}

	s.cancelInflight(postID)

	if err := s.repo.Mongo.Restricted.ToggleLike(ctx, postID, commentID, user.ID.String()); err != nil {
		s.invalidate(postID)
		s.logger.Sugar().Errorf("failed to toggle user(%s) like on comment(%s): %s", user.ID.String(), commentID, err.Error())
		s.ui.ShowNotification(NotificationError, ErrUpdateLike.Error())
		return ErrUpdateLike
	}

	s.invalidate(postID)
	s.ui.ShowNotification(NotificationSuccess, MsgLikeUpdated)

	return nil
}

// invalidate reconciles the per-post cache with the authoritative store. When
// the refetch fails the cache keeps whatever the mutation left behind (the
// rolled-back snapshot on failure paths) and the next Fetch retries.
func (s *commentService) invalidate(postID string) {
	ctx, cancel := context.WithTimeout(context.Background(), settleTimeout)
	defer cancel()

	records, err := s.repo.Mongo.Comment.FindPostComments(ctx, postID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to refetch post(%s) comments after mutation: %s", postID, err.Error())
		return
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.PostCommentsKey(postID), records, commentsCacheTTL); err != nil {
		s.logger.Sugar().Errorf("failed to reconcile post(%s) comments cache: %s", postID, err.Error())
	}
}

func (s *commentService) rollback(ctx context.Context, postID string, snapshot []*model.CommentRecord, hadSnapshot bool) {
	key := redisrepo.PostCommentsKey(postID)

	if !hadSnapshot {
		if err := s.repo.Redis.Default.Del(ctx, key).Err(); err != nil {
			s.logger.Sugar().Errorf("failed to drop optimistic post(%s) comments cache: %s", postID, err.Error())
		}
		return
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, key, snapshot, commentsCacheTTL); err != nil {
		s.logger.Sugar().Errorf("failed to restore post(%s) comments snapshot: %s", postID, err.Error())
	}
}

func (s *commentService) publishJSON(topic string, payload interface{}) {
	if s.broker == nil || topic == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), settleTimeout)
	defer cancel()

	if err := s.broker.PublishJSON(ctx, topic, payload); err != nil {
		s.logger.Sugar().Errorf("failed to publish message to topic(%s): %s", topic, err.Error())
	}
}

func (s *commentService) registerInflight(postID string, handle *fetchHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.inflight[postID]; ok {
		prev.cancel()
	}
	s.inflight[postID] = handle
}

func (s *commentService) dropInflight(postID string, handle *fetchHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.inflight[postID]; ok && current == handle {
		delete(s.inflight, postID)
	}
}

func (s *commentService) cancelInflight(postID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if handle, ok := s.inflight[postID]; ok {
		handle.cancel()
		delete(s.inflight, postID)
	}
}
