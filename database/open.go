package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"

	"github.com/rpupo63/portfolio-site-backend/config"
	"github.com/rpupo63/portfolio-site-backend/errs"
)

const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

// Open builds the Backend selected by STORE_BACKEND. The returned func
// releases its connections.
func Open(c map[string]string) (Backend, func() error, error) {
	kind := strings.ToLower(config.GetString(c, "STORE_BACKEND", BackendPostgres))
	zlog.Info().Str("backend", kind).Msg("Opening storage backend")

	switch kind {
	case BackendPostgres:
		db, err := openPostgres(c)
		if err != nil {
			return nil, nil, err
		}
		return gormBackend(db)
	case BackendSQLite:
		db, err := openSQLite(config.GetString(c, "SQLITE_PATH", "portfolio.db"), config.GetBool(c, "DB_DEBUG", false))
		if err != nil {
			return nil, nil, err
		}
		return gormBackend(db)
	case BackendRedis:
		rdb, err := openRedis(config.GetString(c, "REDIS_URL", ""))
		if err != nil {
			return nil, nil, err
		}
		timeout := time.Duration(config.GetInt(c, "REDIS_TIMEOUT_SECONDS", 5)) * time.Second
		b := NewRedisBackend(rdb, timeout)
		return b, b.Close, nil
	case BackendMemory:
		zlog.Warn().Msg("Memory backend selected: content is lost on restart")
		return NewMemoryBackend(), func() error { return nil }, nil
	default:
		return nil, nil, errs.NewUnknownBackendError(kind)
	}
}

func gormBackend(db *gorm.DB) (Backend, func() error, error) {
	repo, err := NewKVRepo(db)
	if err != nil {
		return nil, nil, fmt.Errorf("migrate kv_entries: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("get sql.DB: %w", err)
	}
	return repo, sqlDB.Close, nil
}

func gormLogger(debug bool) logger.Interface {
	level := logger.Warn
	if debug {
		level = logger.Info
	}
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)
}

// postgresDSN prefers DATABASE_URL and falls back to the SUPABASE_DB_* parts
func postgresDSN(c map[string]string) string {
	if dsn := config.GetString(c, "DATABASE_URL", ""); dsn != "" {
		return dsn
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
		config.GetString(c, "SUPABASE_DB_HOST", ""),
		config.GetString(c, "SUPABASE_DB_USER", ""),
		config.GetString(c, "SUPABASE_DB_PASSWORD", ""),
		config.GetString(c, "SUPABASE_DB_NAME", ""),
		config.GetString(c, "SUPABASE_DB_PORT", "5432"),
	)
}

func openPostgres(c map[string]string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  postgresDSN(c),
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      gormLogger(config.GetBool(c, "DB_DEBUG", false)),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return nil, fmt.Errorf("test postgres connection: %w", err)
	}

	if replicas := config.GetString(c, "DB_REPLICA_DSNS", ""); replicas != "" {
		var dialectors []gorm.Dialector
		for _, dsn := range strings.Split(replicas, ",") {
			if dsn = strings.TrimSpace(dsn); dsn != "" {
				dialectors = append(dialectors, postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}))
			}
		}
		if len(dialectors) > 0 {
			if err := db.Use(dbresolver.Register(dbresolver.Config{
				Replicas: dialectors,
				Policy:   dbresolver.RandomPolicy{},
			})); err != nil {
				return nil, fmt.Errorf("register read replicas: %w", err)
			}
			zlog.Info().Int("replicas", len(dialectors)).Msg("Read replicas registered")
		}
	}
	return db, nil
}

func openSQLite(path string, debug bool) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	level := logger.Silent
	if debug {
		level = logger.Info
	}
	dsn := fmt.Sprintf("%s?_pragma=journal_mode(DELETE)&_pragma=busy_timeout(5000)", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(level),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)
	return db, nil
}

func openRedis(url string) (*redis.Client, error) {
	if url == "" {
		return nil, errs.NewEnvironmentVariableError("REDIS_URL")
	}
	var rdb *redis.Client
	if strings.HasPrefix(url, "redis://") || strings.HasPrefix(url, "rediss://") {
		opt, err := redis.ParseURL(url)
		if err != nil {
			return nil, fmt.Errorf("parse REDIS_URL: %w", err)
		}
		rdb = redis.NewClient(opt)
	} else {
		rdb = redis.NewClient(&redis.Options{Addr: url})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}
