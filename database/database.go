// File: /database/database.go
package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/saeed5077/blog-app/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

type customIndex struct {
	Table string
	Name  string
	DDL   string
}

var customIndexes = []customIndex{
	// Feed queries: published posts, newest first
	{"posts", "idx_posts_published_created",
		"CREATE INDEX idx_posts_published_created ON posts(published, created_at DESC)"},
	// Thread resolution: top-level comments per post, newest first
	{"comments", "idx_comments_post_parent_created",
		"CREATE INDEX idx_comments_post_parent_created ON comments(post_id, parent_id, created_at DESC)"},
	// Reply lookup and cascade deletes by parent
	{"comments", "idx_comments_parent_created",
		"CREATE INDEX idx_comments_parent_created ON comments(parent_id, created_at)"},
}

// addCustomIndexes creates the composite indexes AutoMigrate does not manage.
// MySQL has no CREATE INDEX IF NOT EXISTS, so existence is checked against
// information_schema before creating.
func addCustomIndexes(db *gorm.DB) error {
	for _, idx := range customIndexes {
		var count int64
		err := db.Raw(
			"SELECT COUNT(*) FROM information_schema.statistics WHERE table_schema = DATABASE() AND table_name = ? AND index_name = ?",
			idx.Table, idx.Name,
		).Scan(&count).Error
		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.Name, err)
		}
		if count > 0 {
			continue
		}

		if err := db.Exec(idx.DDL).Error; err != nil {
			log.Warn().Err(err).Str("index", idx.Name).Msg("could not create index")
		}
	}

	return nil
}
