package redisrepo

import "fmt"

const (
	POST_COMMENTS_KEY = "post:%s-comments" // <postID>
	USER_CACHE_KEY    = "user-cache:%s"    // <userID>
)

func PostCommentsKey(postID string) string {
	return fmt.Sprintf(POST_COMMENTS_KEY, postID)
}

func UserCacheKey(userID string) string {
	return fmt.Sprintf(USER_CACHE_KEY, userID)
}
