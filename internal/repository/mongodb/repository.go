package mongodb

import (
	"context"

	"github.com/ForoVideo/comment-service/internal/config"
	"github.com/ForoVideo/comment-service/internal/model"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Comment interface {
	Create(ctx context.Context, comment model.CommentRecord) (*model.CommentRecord, error)
	FindPostComments(ctx context.Context, postID string) ([]*model.CommentRecord, error)
	ToggleLike(ctx context.Context, postID string, commentID string, userID string) error
	SoftDelete(ctx context.Context, postID string, commentID string, requestingUserID string) error
}

// MongoRepository exposes the same Comment contract twice: the privileged
// variant for trusted server-side handlers, and a restricted variant for
// callers acting on behalf of a browser session.
type MongoRepository struct {
	Comment
	Restricted Comment
}

func New(client *mongo.Client, dbName string) *MongoRepository {
	privileged := newCommentRepo(client, dbName)
	return &MongoRepository{
		Comment:    privileged,
		Restricted: newRestrictedCommentRepo(privileged),
	}
}

func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}

	return client, nil
}
