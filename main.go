package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/maze-engine/api"
	api_i "github.com/beka-birhanu/maze-engine/api/i"
	"github.com/beka-birhanu/maze-engine/api/identity"
	"github.com/beka-birhanu/maze-engine/api/mazeapi"
	"github.com/beka-birhanu/maze-engine/config"
	"github.com/beka-birhanu/maze-engine/infrastruture/cache"
	"github.com/beka-birhanu/maze-engine/infrastruture/repo"
	"github.com/beka-birhanu/maze-engine/infrastruture/token"
	"github.com/beka-birhanu/maze-engine/service"
	"github.com/beka-birhanu/maze-engine/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	appLogger *logrus.Entry

	mongoClient *mongo.Client
	redisClient *redis.Client

	mazeRepo     i.MazeRepo
	mazeCache    i.MazeCache
	jwtTokenizer i.Tokenizer
	authService  i.Authenticator
	mazeService  i.MazeManager

	mazeController     api_i.Controller
	identityController api_i.Controller
	router             *api.Router
)

func initLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	appLogger = logrus.WithField("component", "app")
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	var err error
	mongoClient, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		appLogger.Errorf("Failed to connect to MongoDB: %v", err)
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Errorf("MongoDB ping failed: %v", err)
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		Password: config.Envs.RedisPassword,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Errorf("Redis ping failed: %v", err)
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initMazeRepo() {
	mazeRepo = repo.NewMazeRepo(mongoClient, config.Envs.DBName, "mazes")
	appLogger.Info("Maze repository initialized")
}

func initMazeCache() {
	mazeCache = cache.NewRedisMazeCache(redisClient, time.Duration(config.Envs.CacheTTLMinutes)*time.Minute)
	appLogger.Info("Maze cache initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(config.Envs.OperatorKeyHash, jwtTokenizer)
	if err != nil {
		appLogger.Errorf("Creating auth service: %v", err)
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initMazeService() {
	var err error
	mazeService, err = service.NewMazeService(service.Config{
		Repo:         mazeRepo,
		Cache:        mazeCache,
		MaxDimension: config.Envs.MaxMazeDimension,
		Logger:       logrus.WithField("component", "maze-service"),
	})
	if err != nil {
		appLogger.Errorf("Creating maze service: %v", err)
		os.Exit(1)
	}
	appLogger.Info("Maze service initialized")
}

func initControllers() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeService)
	if err != nil {
		appLogger.Errorf("Creating maze controller: %v", err)
		os.Exit(1)
	}

	identityController = identity.NewIdentityController(authService)
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{mazeController, identityController},
		AuthorizationMiddleware: identity.Authorize(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	initLogger()

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRedis(ctx)
	defer redisClient.Close()

	initMazeRepo()
	initMazeCache()
	initJWTTokenizer()
	initAuthService()
	initMazeService()
	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Errorf("Starting server: %v", err)
		os.Exit(1)
	}
}
