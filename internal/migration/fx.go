package migration

import (
	"github.com/smallbiznis/gridplant/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(runOnStart),
)

func runOnStart(cfg config.Config, gormDB *gorm.DB, log *zap.Logger) error {
	if !cfg.MigrateOnStart {
		return nil
	}
	if cfg.DBType != "postgres" {
		log.Info("skipping migrations", zap.String("db_type", cfg.DBType))
		return nil
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	if err := RunMigrations(sqlDB); err != nil {
		return err
	}

	log.Info("migrations applied")
	return nil
}
