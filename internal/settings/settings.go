package settings

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/LavaJatoPro/carwash-scheduler/internal/domain/schedule"
	"github.com/LavaJatoPro/carwash-scheduler/internal/models"
)

// Setting keys.
const (
	KeyHoursStart    = "business_hours_start"
	KeyHoursEnd      = "business_hours_end"
	KeyInterval      = "appointment_interval"
	KeyMaxConcurrent = "max_concurrent_appointments"
)

const (
	cacheKey = "settings:business_config"
	cacheTTL = 30 * time.Second
)

// Store reads and writes the mutable business configuration. Reads go
// through a short-lived Redis cache so the engine always sees recent
// values without hitting the settings table on every slot check.
type Store struct {
	db  *gorm.DB
	rdb *redis.Client
	log *logrus.Logger
}

func New(db *gorm.DB, rdb *redis.Client, log *logrus.Logger) *Store {
	return &Store{db: db, rdb: rdb, log: log}
}

// BusinessConfig returns the current configuration, falling back to
// defaults for missing or malformed rows.
func (s *Store) BusinessConfig(ctx context.Context) (schedule.BusinessConfig, error) {
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var cfg schedule.BusinessConfig
			if json.Unmarshal([]byte(raw), &cfg) == nil {
				return cfg, nil
			}
		} else if err != redis.Nil {
			s.log.WithError(err).Warn("settings cache read failed")
		}
	}

	var rows []models.Setting
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return schedule.BusinessConfig{}, err
	}

	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Key] = row.Value
	}

	cfg := schedule.DefaultConfig()
	if v, ok := values[KeyHoursStart]; ok && v != "" {
		cfg.HoursStart = v
	}
	if v, ok := values[KeyHoursEnd]; ok && v != "" {
		cfg.HoursEnd = v
	}
	if v, ok := values[KeyInterval]; ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.IntervalMinutes = n
		}
	}
	if v, ok := values[KeyMaxConcurrent]; ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxConcurrent = n
		}
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(cfg); err == nil {
			if err := s.rdb.Set(ctx, cacheKey, raw, cacheTTL).Err(); err != nil {
				s.log.WithError(err).Warn("settings cache write failed")
			}
		}
	}

	return cfg, nil
}

// Update upserts one setting and drops the cache so the next read
// sees the new value.
func (s *Store) Update(ctx context.Context, key, value string) error {
	row := models.Setting{Key: key, Value: value}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return err
	}

	if s.rdb != nil {
		if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
			s.log.WithError(err).Warn("settings cache invalidation failed")
		}
	}

	return nil
}
