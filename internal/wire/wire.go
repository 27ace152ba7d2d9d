package wire

import (
	"FitSphere/internal/api"
	"FitSphere/internal/api/handler"
	"FitSphere/internal/job"
	"FitSphere/internal/pkg/cron"
	"FitSphere/internal/repository"
	"FitSphere/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router      *gin.Engine
	DB          *gorm.DB
	CronManager *cron.Manager
}

func BuildApplication(db *gorm.DB) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	userFollowRepo := repository.NewUserFollowRepo(db)
	healthRepo := repository.NewHealthRepo(db)
	postRepo := repository.NewPostRepo(db)
	postActionRepo := repository.NewPostActionRepo(db)
	challengeRepo := repository.NewChallengeRepo(db)

	userService := service.NewUserService(userRepo)
	userFollowService := service.NewUserFollowService(userFollowRepo, userRepo)
	healthService := service.NewHealthService(healthRepo)
	postService := service.NewPostService(postRepo, postActionRepo, userRepo)
	postActionService := service.NewPostActionService(postActionRepo, postRepo, userRepo)
	challengeService := service.NewChallengeService(challengeRepo, healthRepo, userRepo)
	leaderboardService := service.NewLeaderboardService(healthRepo)
	profileService := service.NewProfileService(userRepo, postRepo, postActionRepo, healthRepo, challengeRepo, userFollowService)

	handlers := &api.HandlersGroup{
		UserHandler:        handler.NewUserHandler(userService, profileService),
		UserFollowHandler:  handler.NewUserFollowHandler(userFollowService),
		PostHandler:        handler.NewPostHandler(postService),
		PostActionHandler:  handler.NewPostActionHandler(postActionService),
		HealthHandler:      handler.NewHealthHandler(healthService),
		ChallengeHandler:   handler.NewChallengeHandler(challengeService),
		LeaderboardHandler: handler.NewLeaderboardHandler(leaderboardService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(
		job.NewLeaderboardWarmJob(leaderboardService),
		job.NewCommentReconcileJob(postActionRepo),
	)

	return &ApplicationContainer{
		Router:      router,
		DB:          db,
		CronManager: cronMgr,
	}, nil
}
