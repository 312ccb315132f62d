package dto

import "github.com/ForoVideo/comment-service/internal/model"

type CommentCreatedMsg struct {
	PostID    string                    `json:"post_id"`
	CommentID string                    `json:"comment_id"`
	ParentID  *string                   `json:"parent_id"`
	AuthorID  string                    `json:"author_id"`
	CreatedAt model.SerializedTimestamp `json:"created_at"`
}

type CommentDeletedMsg struct {
	PostID    string                    `json:"post_id"`
	CommentID string                    `json:"comment_id"`
	DeletedBy string                    `json:"deleted_by"`
	DeletedAt model.SerializedTimestamp `json:"deleted_at"`
}
