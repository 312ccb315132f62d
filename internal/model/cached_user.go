package model

import "github.com/google/uuid"

// CachedUser is the denormalized author record kept in cached_users, fed by
// user-service update events.
type CachedUser struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url"`
}
