package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/ForoVideo/comment-service/internal/dto"
	"github.com/ForoVideo/comment-service/internal/model"
	"github.com/ForoVideo/comment-service/internal/tree"
	"github.com/gin-gonic/gin"
)

func (h *Handler) commentsGet(c *gin.Context) {
	postID := strings.TrimSpace(c.Param("postID"))
	if postID == "" {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	records, err := h.services.Comment.Fetch(c.Request.Context(), postID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.PostCommentsResponse{
		Total:    len(records),
		Comments: tree.Build(records, time.Now()),
	})
}

func (h *Handler) commentsCreate(c *gin.Context) {
	user := h.getUserFromRequest(c)
	if user == nil {
		user = &model.CachedUser{}
	}

	var input dto.CreateCommentDto
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	if err := h.services.Comment.Create(c.Request.Context(), input.PostID, input.Content, *user, input.ParentID); err != nil {
		c.JSON(statusForServiceError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}

func (h *Handler) commentsDelete(c *gin.Context) {
	user := h.getUserFromRequest(c)
	if user == nil {
		user = &model.CachedUser{}
	}

	postID := strings.TrimSpace(c.Param("postID"))
	commentID := strings.TrimSpace(c.Param("commentID"))
	if postID == "" || commentID == "" {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
		return
	}

	if err := h.services.Comment.Delete(c.Request.Context(), postID, commentID, *user); err != nil {
		c.JSON(statusForServiceError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}

func (h *Handler) commentsToggleLike(c *gin.Context) {
	user := h.getUserFromRequest(c)
	if user == nil {
		user = &model.CachedUser{}
	}

	postID := strings.TrimSpace(c.Param("postID"))
	commentID := strings.TrimSpace(c.Param("commentID"))
	if postID == "" || commentID == "" {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
		return
	}

	if err := h.services.Comment.ToggleLike(c.Request.Context(), postID, commentID, *user); err != nil {
		c.JSON(statusForServiceError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}

func (h *Handler) uiStateGet(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"is_global_loading": h.services.UI.IsGlobalLoading(),
		"notification":      h.services.UI.Notification(),
	})
}
