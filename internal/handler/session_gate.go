package handler

import (
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/ForoVideo/comment-service/internal/dto"
	"github.com/ForoVideo/comment-service/pkg/utils"
	"github.com/gin-gonic/gin"
)

const accessTokenCookie = "access_token"

func (h *Handler) sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(accessTokenCookie); err == nil && cookie != "" {
		return cookie
	}

	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	return ""
}

func (h *Handler) isAuthenticated(c *gin.Context) bool {
	token := h.sessionToken(c)
	if token == "" {
		return false
	}

	_, err := utils.DecodeJWT(token, []byte(os.Getenv("ACCESS_SECRET")))
	return err == nil
}

// sessionGateMiddleware sends unauthenticated visitors back to the sign-in
// surface, remembering where they were headed.
func (h *Handler) sessionGateMiddleware(c *gin.Context) {
	if !h.isAuthenticated(c) {
		loginURL := url.URL{Path: "/"}
		query := url.Values{}
		query.Set("next", c.Request.URL.RequestURI())
		loginURL.RawQuery = query.Encode()

		c.Redirect(http.StatusFound, loginURL.String())
		c.Abort()
		return
	}

	c.Next()
}

// rootPage is the sign-in surface; signed-in users land on the forum instead.
func (h *Handler) rootPage(c *gin.Context) {
	if h.isAuthenticated(c) {
		c.Redirect(http.StatusFound, "/foro")
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "sign in required"))
}

func (h *Handler) foroPage(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}
