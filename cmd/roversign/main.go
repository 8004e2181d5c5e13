package main

import (
	"context"
	"flag"
	"time"

	"go.uber.org/zap"

	"github.com/MeiVinEight/RoverSign/config"
	"github.com/MeiVinEight/RoverSign/internal/service"
	"github.com/MeiVinEight/RoverSign/internal/store"
	"github.com/MeiVinEight/RoverSign/pkg/logger"
	"github.com/MeiVinEight/RoverSign/storage/database"
)

// 维护入口：初始化存储并执行一次签到记录清理后退出。
// 定时触发由外部调度器负责，这里只提供可被 cron 调用的一次性命令。
func main() {
	retentionDays := flag.Int("retention-days", 0, "覆盖配置中的签到记录保留天数")
	flag.Parse()

	logger.Init()
	defer logger.Sync()

	if err := database.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := database.Close(ctx); err != nil {
			logger.Logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	days := *retentionDays
	if days <= 0 {
		days = config.Cfg.SignRetentionDays
	}

	st := store.New(database.DB(), logger.Logger)
	signSvc := service.NewSignService(st, logger.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := signSvc.CleanupExpired(ctx, days); err != nil {
		logger.Logger.Fatal("Failed to purge sign records", zap.Error(err))
	}
}
