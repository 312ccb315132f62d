package model

import "time"

// CommentRecord is a single comment document as stored in the document store.
// ParentID is nil for top-level comments. LikedBy always has exactly LikeCount
// members; both are updated together inside one repository transaction.
type CommentRecord struct {
	ID                string    `json:"id" bson:"_id"`
	PostID            string    `json:"post_id" bson:"post_id"`
	ParentID          *string   `json:"parent_id" bson:"parent_id"`
	Content           string    `json:"content" bson:"content"`
	AuthorID          string    `json:"author_id" bson:"author_id"`
	AuthorDisplayName string    `json:"author_display_name" bson:"author_display_name"`
	CreatedAt         time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" bson:"updated_at"`
	LikeCount         int64     `json:"like_count" bson:"like_count"`
	LikedBy           []string  `json:"liked_by" bson:"liked_by"`
	ReplyCount        int64     `json:"reply_count" bson:"reply_count"`
	IsDeleted         bool      `json:"is_deleted" bson:"is_deleted"`

	// IsOptimistic marks a client-side record that has not been confirmed by
	// the document store yet. It lives only in the cache, never in mongo.
	IsOptimistic bool `json:"is_optimistic,omitempty" bson:"-"`
}

// CommentViewNode is the nested view model derived from a flat list of
// CommentRecord. It is rebuilt from scratch on every data change.
type CommentViewNode struct {
	ID                string             `json:"id"`
	AuthorID          string             `json:"author_id"`
	AuthorDisplayName string             `json:"author_display_name"`
	Time              string             `json:"time"`
	Message           string             `json:"message"`
	Likes             int64              `json:"likes"`
	ParentID          *string            `json:"parent_id"`
	IsOptimistic      bool               `json:"is_optimistic,omitempty"`
	Replies           []*CommentViewNode `json:"replies"`
}
