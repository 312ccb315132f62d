package mongodb

import (
	"context"
	"slices"
	"time"

	"github.com/ForoVideo/comment-service/internal/model"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const commentsCollection = "comments"

// DeletedContentPlaceholder replaces the content of soft-deleted comments.
// The record itself is never removed.
const DeletedContentPlaceholder = "Comentario eliminado por el usuario"

type commentRepo struct {
	client *mongo.Client
	dbName string
}

func newCommentRepo(client *mongo.Client, dbName string) Comment {
	return &commentRepo{
		client: client,
		dbName: dbName,
	}
}

func (r *commentRepo) collection() *mongo.Collection {
	return r.client.Database(r.dbName).Collection(commentsCollection)
}

// Create inserts a new comment. When the comment replies to a parent, the
// insert and the parent's reply_count increment happen in one transaction so
// neither can exist without the other.
func (r *commentRepo) Create(ctx context.Context, comment model.CommentRecord) (*model.CommentRecord, error) {
	now := time.Now()
	comment.ID = uuid.NewString()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	comment.LikeCount = 0
	comment.LikedBy = []string{}
	comment.ReplyCount = 0
	comment.IsDeleted = false
	comment.IsOptimistic = false

	coll := r.collection()

	if comment.ParentID == nil {
		if _, err := coll.InsertOne(ctx, comment); err != nil {
			return nil, err
		}
		return &comment, nil
	}

	session, err := r.client.StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		count, err := coll.CountDocuments(sc, bson.M{"_id": *comment.ParentID, "post_id": comment.PostID})
		if err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, ErrParentNotFound
		}

		if _, err := coll.InsertOne(sc, comment); err != nil {
			return nil, err
		}

		_, err = coll.UpdateOne(sc, bson.M{"_id": *comment.ParentID}, bson.M{"$inc": bson.M{"reply_count": 1}})
		return nil, err
	})
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

func (r *commentRepo) FindPostComments(ctx context.Context, postID string) ([]*model.CommentRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection().Find(ctx, bson.M{"post_id": postID}, opts)
	if err != nil {
		return nil, err
	}

	var comments []*model.CommentRecord
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}

	return comments, nil
}

// ToggleLike flips the caller's membership in liked_by and adjusts like_count
// in the same transaction, so like_count always equals len(liked_by) and
// concurrent likers cannot clobber each other.
func (r *commentRepo) ToggleLike(ctx context.Context, postID string, commentID string, userID string) error {
	session, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	coll := r.collection()

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var comment model.CommentRecord
		if err := coll.FindOne(sc, bson.M{"_id": commentID, "post_id": postID}).Decode(&comment); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, ErrCommentNotFound
			}
			return nil, err
		}

		var update bson.M
		if slices.Contains(comment.LikedBy, userID) {
			update = bson.M{
				"$inc":  bson.M{"like_count": -1},
				"$pull": bson.M{"liked_by": userID},
			}
		} else {
			update = bson.M{
				"$inc":      bson.M{"like_count": 1},
				"$addToSet": bson.M{"liked_by": userID},
			}
		}

		_, err := coll.UpdateOne(sc, bson.M{"_id": commentID}, update)
		return nil, err
	})

	return err
}

// SoftDelete marks the comment as deleted and swaps its content for the fixed
// placeholder. Only the author may delete; the check runs here, server-side,
// as the authoritative one.
func (r *commentRepo) SoftDelete(ctx context.Context, postID string, commentID string, requestingUserID string) error {
	session, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	coll := r.collection()

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var comment model.CommentRecord
		if err := coll.FindOne(sc, bson.M{"_id": commentID, "post_id": postID}).Decode(&comment); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, ErrCommentNotFound
			}
			return nil, err
		}

		if comment.AuthorID != requestingUserID {
			return nil, ErrNotCommentAuthor
		}

		_, err := coll.UpdateOne(sc, bson.M{"_id": commentID}, bson.M{"$set": bson.M{
			"content":    DeletedContentPlaceholder,
			"is_deleted": true,
			"updated_at": time.Now(),
		}})
		return nil, err
	})

	return err
}
