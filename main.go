package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/maze-sprint-api/api"
	gameapi "github.com/beka-birhanu/maze-sprint-api/api/game"
	api_i "github.com/beka-birhanu/maze-sprint-api/api/i"
	"github.com/beka-birhanu/maze-sprint-api/api/identity"
	"github.com/beka-birhanu/maze-sprint-api/config"
	"github.com/beka-birhanu/maze-sprint-api/game"
	"github.com/beka-birhanu/maze-sprint-api/infrastruture/leaderboard"
	"github.com/beka-birhanu/maze-sprint-api/infrastruture/repo"
	"github.com/beka-birhanu/maze-sprint-api/infrastruture/token"
	"github.com/beka-birhanu/maze-sprint-api/logger"
	"github.com/beka-birhanu/maze-sprint-api/maze"
	"github.com/beka-birhanu/maze-sprint-api/service"
	"github.com/beka-birhanu/maze-sprint-api/service/i"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient      *mongo.Client
	redisClient      *redis.Client
	userRepo         i.UserRepo
	bestTimeRepo     i.BestTimeRepo
	levelLeaderboard i.Leaderboard
	jwtTokenizer     i.Tokenizer
	authService      i.Authenticator
	playService      i.PlayManager
	authController   api_i.Controller
	playController   api_i.Controller
	router           *api.Router
	appLogger        i.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initRepos(client *mongo.Client) {
	userRepo = repo.NewUserRepo(client, config.Envs.DBName, "users")
	bestTimeRepo = repo.NewBestTimeRepo(client, config.Envs.DBName, "best_times")
	appLogger.Info("Repositories initialized")
}

func initLeaderboard() {
	var err error
	levelLeaderboard, err = leaderboard.NewRedisLeaderboard(redisClient, config.Envs.LeaderboardTTL)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating leaderboard: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Leaderboard initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initPlayService() {
	playLogger, err := logger.New("PLAY", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating play service logger: %v", err))
		os.Exit(1)
	}

	playService, err = service.NewPlayService(&service.PlayConfig{
		BestTimes:   bestTimeRepo,
		Leaderboard: levelLeaderboard,
		MazeFactory: func(width, height int) (game.Maze, error) {
			return maze.New(width, height, nil)
		},
		Logger: playLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating play service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Play service initialized")
}

func initControllers() {
	authController = identity.NewIdentityServer(authService)
	appLogger.Info("Auth controller initialized")

	var err error
	playController, err = gameapi.NewPlayController(playService, bestTimeRepo, levelLeaderboard)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating play controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Play controller initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, playController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initRepos(mongoClient)
	initLeaderboard()
	initJWTTokenizer()
	initAuthService()
	initPlayService()
	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
