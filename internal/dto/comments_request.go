package dto

type CreateCommentDto struct {
	PostID   string  `json:"post_id" binding:"required"`
	ParentID *string `json:"parent_id"`
	Content  string  `json:"content" binding:"required"`
}
