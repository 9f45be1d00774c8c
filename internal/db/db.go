package db

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/petcare-marketplace/internal/config"
	"github.com/BruksfildServices01/petcare-marketplace/internal/domain/store"
	"github.com/BruksfildServices01/petcare-marketplace/internal/infra/kv"
	"github.com/BruksfildServices01/petcare-marketplace/internal/models"
)

// NewStore opens the key-value backend selected by STORE_DRIVER. The
// *gorm.DB is non-nil only for the postgres driver. The returned func
// releases its connections.
func NewStore(cfg *config.Config) (store.KV, *gorm.DB, func()) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		db := NewDB(cfg)
		return kv.NewGormStore(db), db, func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}

	case config.StoreRedis:
		client := NewRedis(cfg)
		return kv.NewRedisStore(client, ""), nil, func() {
			_ = client.Close()
		}

	case config.StoreMemory, "":
		log.Println("using in-memory store, data is lost on restart")
		return kv.NewMemoryStore(), nil, func() {}

	default:
		log.Fatalf("unknown STORE_DRIVER %q", cfg.StoreDriver)
		return nil, nil, nil
	}
}

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.KVEntry{},
		&models.NotificationLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func NewRedis(cfg *config.Config) *redis.Client {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}

	return client
}
