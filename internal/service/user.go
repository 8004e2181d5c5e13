package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/MeiVinEight/RoverSign/internal/model"
	"github.com/MeiVinEight/RoverSign/internal/store"
)

// UserService 凭证与绑定的组合操作
type UserService struct {
	store *store.Store
	log   *zap.Logger
}

func NewUserService(st *store.Store, log *zap.Logger) *UserService {
	return &UserService{store: st, log: log}
}

// Register 保存用户凭证并建立UID绑定。凭证入库后换绑失败不回滚凭证，
// 重试 Register 即可收敛。
func (s *UserService) Register(ctx context.Context, user *model.WavesUser) error {
	if err := s.store.CreateUser(ctx, user); err != nil {
		return err
	}
	if err := s.store.SetUID(ctx, user.UserID, user.BotID, user.UID); err != nil {
		return err
	}

	s.log.Info("User credential registered",
		zap.String("uid", user.UID),
		zap.String("user_id", user.UserID),
	)
	return nil
}

// FetchCookie 取指定用户的可用 cookie，未找到返回空串
func (s *UserService) FetchCookie(ctx context.Context, uid, userID, botID string) (string, error) {
	return s.store.SelectCookie(ctx, uid, userID, botID)
}

// InvalidateCookie 远端拒绝凭证后标记失效，返回命中的凭证数
func (s *UserService) InvalidateCookie(ctx context.Context, uid, cookie, mark string) (int64, error) {
	affected, err := s.store.MarkCookieInvalid(ctx, uid, cookie, mark)
	if err != nil {
		return 0, err
	}

	if affected == 0 {
		s.log.Warn("No credential matched for invalidation", zap.String("uid", uid))
	}
	return affected, nil
}

// ActiveUsers 枚举可参与批量签到的用户
func (s *UserService) ActiveUsers(ctx context.Context) ([]*model.WavesUser, error) {
	return s.store.GetAllUsersWithCookie(ctx)
}
