package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ForoVideo/comment-service/internal/config"
	"github.com/ForoVideo/comment-service/internal/events"
	"github.com/ForoVideo/comment-service/internal/handler"
	"github.com/ForoVideo/comment-service/internal/repository"
	"github.com/ForoVideo/comment-service/internal/repository/mongodb"
	"github.com/ForoVideo/comment-service/internal/repository/postgres"
	"github.com/ForoVideo/comment-service/internal/server"
	"github.com/ForoVideo/comment-service/internal/service"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	logger, _ := zap.NewProduction()

	if err := loadEnv(); err != nil {
		logger.Sugar().Panicf("failed to load environment variables: %s", err.Error())
	}

	if err := initConfig(); err != nil {
		logger.Sugar().Panicf("failed to initialize yaml config: %s", err.Error())
	}

	mongoConfig := config.MongoConfig{
		URI:    os.Getenv("MONGO_URI"),
		DBName: os.Getenv("MONGO_DATABASE"),
	}
	mongoClient, err := mongodb.Connect(ctx, mongoConfig)
	if err != nil {
		logger.Sugar().Panicf("failed to connect to mongo: %s", err.Error())
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		logger.Sugar().Panicf("failed to ping mongo: %s", err.Error())
	}
	logger.Info("Successfully connected to MongoDB")

	dbConfig := config.DBConfig{
		Username: os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		DBName:   os.Getenv("POSTGRES_DATABASE"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}
	db, err := postgres.DB(ctx, dbConfig)
	if err != nil {
		logger.Sugar().Panicf("failed to connect to postgres: %s", err.Error())
	}
	if err := db.Ping(ctx); err != nil {
		logger.Sugar().Panicf("failed to ping postgres: %s", err.Error())
	}
	logger.Info("Successfully connected to PostgreSQL")

	redisOptions := &redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
	}
	rdb := redis.NewClient(redisOptions)
	pong, err := rdb.Ping(ctx).Result()
	if err != nil {
		logger.Sugar().Panicf("failed to ping redis: %s", err.Error())
	}
	logger.Sugar().Infof("Successfully connected to Redis: %s", pong)

	kafkaConfig := config.KafkaConfig{
		Addr: os.Getenv("KAFKA_ADDR"),
	}
	broker, err := events.New(kafkaConfig.Addr)
	if err != nil {
		logger.Sugar().Panicf("failed to connect to kafka: %s", err.Error())
	}
	logger.Info("Successfully connected to Kafka")

	repos := repository.New(mongoClient, mongoConfig.DBName, db, rdb)
	services := service.New(logger, repos, broker)
	handlers := handler.New(services)

	srv := server.New()
	serverConfig := config.ServerConfig{
		Port:           viper.GetString("app.port"),
		Handler:        handlers.InitRoutes(),
		MaxHeaderBytes: 1 << 20,
		ReadTimeout:    time.Second * 10,
		WriteTimeout:   time.Second * 10,
	}
	go func() {
		if err := srv.Run(serverConfig); err != nil {
			logger.Sugar().Errorf("http server stopped: %s", err.Error())
		}
	}()

	go services.StartConsumeAll(ctx)

	logger.Info("Server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Server shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("failed to shutdown http server: %s", err.Error())
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		logger.Sugar().Errorf("failed to disconnect from mongo: %s", err.Error())
	}
	if err := broker.Close(); err != nil {
		logger.Sugar().Errorf("failed to close kafka writers: %s", err.Error())
	}
	db.Close()
}

func loadEnv() error {
	return godotenv.Load()
}

func initConfig() error {
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")
	viper.SetConfigName("app")
	return viper.ReadInConfig()
}
