package kv

import (
	"context"
	"encoding/json"
	"log/slog"

	"krvt/config"
	"krvt/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// snapshotRow is the single key-value table backing the postgres store.
type snapshotRow struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value []byte `gorm:"column:value;type:jsonb"`
}

func (snapshotRow) TableName() string {
	return "kv_snapshots"
}

type postgresStore struct {
	db *gorm.DB
}

// NewPostgres opens the database and migrates the snapshot table.
func NewPostgres(cfg *config.PostgresConfig, log *slog.Logger) (repository.SnapshotStore, error) {
	if cfg == nil {
		return nil, errors.New("storage.postgres configuration is missing")
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}

	if err := db.AutoMigrate(&snapshotRow{}); err != nil {
		return nil, errors.Wrap(err, "migrate kv_snapshots")
	}

	log.Info("Postgres snapshot store ready")

	return &postgresStore{db: db}, nil
}

func (s *postgresStore) Load(ctx context.Context, key string, dest any) (bool, error) {
	var row snapshotRow
	if err := s.db.WithContext(ctx).First(&row, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}

		return false, errors.Wrapf(err, "select snapshot %s", key)
	}

	if err := json.Unmarshal(row.Value, dest); err != nil {
		return false, errors.Wrapf(err, "decode snapshot %s", key)
	}

	return true, nil
}

func (s *postgresStore) Save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode snapshot %s", key)
	}

	row := snapshotRow{Key: key, Value: raw}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&row).Error
	if err != nil {
		return errors.Wrapf(err, "upsert snapshot %s", key)
	}

	return nil
}
