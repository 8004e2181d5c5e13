package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/MeiVinEight/RoverSign/internal/model"
	"github.com/MeiVinEight/RoverSign/utils"
)

// CreateUser 保存一条用户凭证，did 缺省时自动生成
func (s *Store) CreateUser(ctx context.Context, user *model.WavesUser) error {
	if user.UID == "" || user.UserID == "" {
		return fmt.Errorf("uid and user_id are required")
	}
	if user.Did == "" {
		user.Did = utils.NewDeviceID()
	}
	if user.BBSSignSwitch == "" {
		user.BBSSignSwitch = model.BBSSignSwitchOff
	}

	lock := s.locks.get(userKey(user.UID))
	lock.Lock()
	defer lock.Unlock()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
}

// MarkCookieInvalid 将 uid+cookie 匹配的全部凭证标记为失效，返回受影响行数
func (s *Store) MarkCookieInvalid(ctx context.Context, uid, cookie, mark string) (int64, error) {
	lock := s.locks.get(userKey(uid))
	lock.Lock()
	defer lock.Unlock()

	var affected int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.WavesUser{}).
			Where("uid = ? AND cookie = ?", uid, cookie).
			Update("status", mark)
		if result.Error != nil {
			return fmt.Errorf("failed to mark cookie invalid: %w", result.Error)
		}
		affected = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}

	return affected, nil
}

// SelectUser 按 user_id、uid、bot_id 查询凭证，取首条，未找到返回 nil
func (s *Store) SelectUser(ctx context.Context, uid, userID, botID string) (*model.WavesUser, error) {
	return s.firstUser(ctx, "user_id = ? AND uid = ? AND bot_id = ?", userID, uid, botID)
}

// SelectCookie 按 user_id、uid、bot_id 查询可用 cookie，未找到返回空串
func (s *Store) SelectCookie(ctx context.Context, uid, userID, botID string) (string, error) {
	user, err := s.SelectUser(ctx, uid, userID, botID)
	if err != nil || user == nil {
		return "", err
	}

	return user.Cookie, nil
}

// SelectUserByCookie 按 cookie 查询凭证，取首条
func (s *Store) SelectUserByCookie(ctx context.Context, cookie string) (*model.WavesUser, error) {
	return s.firstUser(ctx, "cookie = ?", cookie)
}

// SelectUserByCookieAndUID 按 cookie 和 uid 查询凭证，取首条
func (s *Store) SelectUserByCookieAndUID(ctx context.Context, cookie, uid string) (*model.WavesUser, error) {
	return s.firstUser(ctx, "cookie = ? AND uid = ?", cookie, uid)
}

// GetAllUsersWithCookie 获取持有 cookie 的全部用户，供批量签到枚举。
// 过滤掉 cookie 或 user_id 为空的记录。
func (s *Store) GetAllUsersWithCookie(ctx context.Context) ([]*model.WavesUser, error) {
	var users []*model.WavesUser
	err := s.db.WithContext(ctx).
		Where("cookie <> '' AND user_id <> ''").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query users with cookie: %w", err)
	}

	return users, nil
}

// firstUser 按条件取主键序首条记录。多条命中时的取舍属于查询约定，
// 调用方不得依赖首条之外的顺序语义。
func (s *Store) firstUser(ctx context.Context, query string, args ...interface{}) (*model.WavesUser, error) {
	var user model.WavesUser
	err := s.db.WithContext(ctx).
		Where(query, args...).
		Order("id").
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &user, nil
}
