package api

import (
	"FitSphere/internal/api/middleware"
	"FitSphere/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong"})
		})

		userGroup := apiGroup.Group("/users")
		{
			// 无需登录即可访问的接口
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)
			userGroup.GET("/search", group.UserHandler.Search)
			userGroup.GET("/:user_id/followers", group.UserFollowHandler.GetFollowers)
			userGroup.GET("/:user_id/followings", group.UserFollowHandler.GetFollowings)

			authOptGroup := userGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/:user_id/profile", group.UserHandler.GetProfile)
			}

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.POST("/follow/:following_id", group.UserFollowHandler.ToggleFollow)
				authGroup.GET("/isfollow/:following_id", group.UserFollowHandler.IsFollowing)
			}
		}

		postGroup := apiGroup.Group("/posts")
		{
			postGroup.GET("/:post_id/comments", group.PostActionHandler.ListComments)

			authOptGroup := postGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("", group.PostHandler.GetFeed)
			}

			authGroup := postGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.PostHandler.CreatePost)
				authGroup.POST("/likes/:post_id", group.PostActionHandler.ToggleLike)
				authGroup.POST("/:post_id/comments", group.PostActionHandler.CreateComment)
			}
		}

		commentGroup := apiGroup.Group("/comments")
		commentGroup.Use(middleware.AuthMiddleware())
		{
			commentGroup.POST("/:comment_id/reply", group.PostActionHandler.CreateReply)
			commentGroup.DELETE("/:comment_id", group.PostActionHandler.DeleteComment)
		}

		healthGroup := apiGroup.Group("/healthdata")
		healthGroup.Use(middleware.AuthMiddleware())
		{
			healthGroup.POST("", group.HealthHandler.RecordDaily)
			healthGroup.GET("/today", group.HealthHandler.TodayRecord)
		}

		challengeGroup := apiGroup.Group("/challenges")
		{
			challengeGroup.GET("", group.ChallengeHandler.ListActive)
			challengeGroup.GET("/:challenge_id", group.ChallengeHandler.GetDetails)

			authGroup := challengeGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.ChallengeHandler.CreateChallenge)
				authGroup.POST("/join", group.ChallengeHandler.JoinChallenge)
			}
		}

		apiGroup.GET("/leaderboard", group.LeaderboardHandler.GetDailyLeaderboard)
	}

	return r
}
