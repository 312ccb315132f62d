package service

import (
	"context"

	"github.com/ForoVideo/comment-service/internal/events"
	"github.com/ForoVideo/comment-service/internal/model"
	"github.com/ForoVideo/comment-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Comment interface {
	Fetch(ctx context.Context, postID string) ([]*model.CommentRecord, error)
	Create(ctx context.Context, postID string, content string, author model.CachedUser, parentID *string) error
	Delete(ctx context.Context, postID string, commentID string, requester model.CachedUser) error
	ToggleLike(ctx context.Context, postID string, commentID string, user model.CachedUser) error
}

type UserCache interface {
	CreateOrGet(ctx context.Context, id uuid.UUID, accessToken string) (*model.CachedUser, error)
	Create(ctx context.Context, cachedUser model.CachedUser) error
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CachedUser, error)
}

type Service struct {
	Comment
	UserCache
	UI *UIState

	userCache *userCacheService
}

func New(logger *zap.Logger, repo *repository.Repository, broker *events.Broker) *Service {
	ui := NewUIState()
	userCache := newUserCacheService(logger, repo, broker)

	return &Service{
		Comment:   newCommentService(logger, repo, broker, ui),
		UserCache: userCache,
		UI:        ui,
		userCache: userCache,
	}
}

func (s *Service) StartConsumeAll(ctx context.Context) {
	s.userCache.consumeUserUpdates(ctx)
}
