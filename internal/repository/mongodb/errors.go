package mongodb

import "errors"

var (
	ErrParentNotFound   = errors.New("parent comment not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrNotCommentAuthor = errors.New("requesting user is not the comment author")
	ErrUnauthenticated  = errors.New("caller is not authenticated")
)
