package dto

import "github.com/ForoVideo/comment-service/internal/model"

type PostCommentsResponse struct {
	Total    int                      `json:"total"`
	Comments []*model.CommentViewNode `json:"comments"`
}
