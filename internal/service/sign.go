package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/MeiVinEight/RoverSign/internal/model"
	"github.com/MeiVinEight/RoverSign/internal/store"
	"github.com/MeiVinEight/RoverSign/utils"
)

// SignService 签到进度的组合操作，供签到任务与指令层调用
type SignService struct {
	store *store.Store
	log   *zap.Logger
}

func NewSignService(st *store.Store, log *zap.Logger) *SignService {
	return &SignService{store: st, log: log}
}

// ReportGameSign 记录一次游戏签到成功
func (s *SignService) ReportGameSign(ctx context.Context, uid string) (*model.SignRecord, error) {
	return s.store.UpsertSignRecord(ctx, model.NewGameSignData(uid))
}

// StartBBSTask 为当日社区任务建立初始记录，已有记录时不改动任何计数
func (s *SignService) StartBBSTask(ctx context.Context, uid string) (*model.SignRecord, error) {
	return s.store.UpsertSignRecord(ctx, model.NewBBSSignData(uid))
}

// ReportProgress 上报一次签到结果增量，零值字段不覆盖库中旧值
func (s *SignService) ReportProgress(ctx context.Context, data *model.SignData) (*model.SignRecord, error) {
	return s.store.UpsertSignRecord(ctx, data)
}

// DailyProgress 查询指定账号当日的签到进度，未签到返回 nil
func (s *SignService) DailyProgress(ctx context.Context, uid string) (*model.SignRecord, error) {
	return s.store.GetSignRecord(ctx, uid, "")
}

// DailyRecords 查询指定日期的全部签到记录，date 为空时取今日
func (s *SignService) DailyRecords(ctx context.Context, date string) ([]*model.SignRecord, error) {
	return s.store.GetAllSignRecordsByDate(ctx, date)
}

// CleanupExpired 清理超过保留期的签到记录，返回删除行数
func (s *SignService) CleanupExpired(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention days must be positive, got %d", retentionDays)
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays).Format(utils.DateLayout)
	removed, err := s.store.PurgeSignRecords(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	s.log.Info("Expired sign records purged",
		zap.String("cutoff", cutoff),
		zap.Int64("removed", removed),
	)
	return removed, nil
}
