package data

import (
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"lexdesk/internal/conf"
	"lexdesk/internal/model"
)

// Data holds every shared data-layer handle.
type Data struct {
	DB    *gorm.DB
	Redis *redis.Client
}

// NewData connects Postgres and Redis and migrates the schema. The
// returned cleanup func closes both.
func NewData(cfg *conf.Config) (*Data, func(), error) {
	db, err := gorm.Open(postgres.Open(cfg.Data.DatabaseSource), &gorm.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, nil, fmt.Errorf("schema migration failed: %w", err)
	}
	log.Println("database schema migrated")

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Data.RedisAddr,
		Password: cfg.Data.RedisPassword,
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return nil, nil, fmt.Errorf("redis connect failed: %w", err)
	}
	log.Println("redis connected")

	d := &Data{DB: db, Redis: rdb}

	cleanup := func() {
		log.Println("closing data layer")
		if sqlDB, err := d.DB.DB(); err == nil {
			sqlDB.Close()
		}
		d.Redis.Close()
	}
	return d, cleanup, nil
}

// Migrate creates/updates tables for every model. Split out so tests
// can run it against sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Board{},
		&model.Column{},
		&model.Ticket{},
		&model.Comment{},
		&model.Meeting{},
		&model.Article{},
		&model.ActivityLog{},
		&model.Notification{},
	)
}
