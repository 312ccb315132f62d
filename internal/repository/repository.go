package repository

import (
	"github.com/ForoVideo/comment-service/internal/repository/mongodb"
	"github.com/ForoVideo/comment-service/internal/repository/postgres"
	"github.com/ForoVideo/comment-service/internal/repository/redisrepo"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

type Repository struct {
	Mongo    *mongodb.MongoRepository
	Postgres *postgres.PostgresRepository
	Redis    *redisrepo.RedisRepository
}

func New(mongoClient *mongo.Client, mongoDBName string, db *pgxpool.Pool, rdb *redis.Client) *Repository {
	return &Repository{
		Mongo:    mongodb.New(mongoClient, mongoDBName),
		Postgres: postgres.New(db),
		Redis:    redisrepo.New(rdb),
	}
}
