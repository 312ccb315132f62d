package handler

import (
	"context"
	"os"

	"github.com/ForoVideo/comment-service/internal/model"
	"github.com/ForoVideo/comment-service/internal/service"
	"github.com/ForoVideo/comment-service/pkg/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

type Handler struct {
	services *service.Service
}

func New(services *service.Service) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{viper.GetString("client.origin")},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE"},
		AllowCredentials: true,
	}))

	r.GET("/", h.rootPage)

	foro := r.Group("/foro")
	{
		foro.GET("", h.sessionGateMiddleware, h.foroPage)
	}

	v1 := r.Group("/api/v1")
	{
		comments := v1.Group("/comments")
		{
			comments.POST("", h.authMiddleware, h.commentsCreate)

			postComments := comments.Group("/:postID")
			{
				postComments.GET("", h.notRequiredAuthMiddleware, h.commentsGet)

				comment := postComments.Group("/:commentID")
				{
					comment.DELETE("", h.authMiddleware, h.commentsDelete)
					comment.POST("/like", h.authMiddleware, h.commentsToggleLike)
				}
			}
		}

		ui := v1.Group("/ui")
		{
			ui.GET("/state", h.uiStateGet)
		}
	}

	return r
}

func (h *Handler) getUserDataFromAccessTokenClaims(ctx context.Context, accessToken string) (*model.CachedUser, error) {
	claims, err := utils.DecodeJWT(accessToken, []byte(os.Getenv("ACCESS_SECRET")))
	if err != nil {
		return nil, err
	}

	idString, ok := claims["id"].(string)
	if !ok {
		return nil, errNotAuthorized
	}
	id, err := uuid.Parse(idString)
	if err != nil {
		return nil, err
	}

	return h.services.UserCache.CreateOrGet(ctx, id, accessToken)
}

func (h *Handler) getUserFromRequest(c *gin.Context) *model.CachedUser {
	userReq, _ := c.Get("cached-user")

	user, ok := userReq.(model.CachedUser)
	if !ok {
		return nil
	}

	return &user
}
