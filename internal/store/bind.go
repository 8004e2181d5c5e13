package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/MeiVinEight/RoverSign/internal/model"
)

// GetUID 查询聊天身份绑定的鸣潮UID，未绑定返回空串
func (s *Store) GetUID(ctx context.Context, userID, botID string) (string, error) {
	var bind model.WavesBind
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND bot_id = ?", userID, botID).
		First(&bind).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to query bind: %w", err)
	}

	return bind.UID, nil
}

// SetUID 绑定或换绑鸣潮UID
func (s *Store) SetUID(ctx context.Context, userID, botID, uid string) error {
	lock := s.locks.get(bindKey(userID, botID))
	lock.Lock()
	defer lock.Unlock()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var bind model.WavesBind
		err := tx.Where("user_id = ? AND bot_id = ?", userID, botID).First(&bind).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			bind = model.WavesBind{UserID: userID, BotID: botID, UID: uid}
			if err := tx.Create(&bind).Error; err != nil {
				return fmt.Errorf("failed to create bind: %w", err)
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to query bind: %w", err)
		}

		if err := tx.Model(&bind).Update("uid", uid).Error; err != nil {
			return fmt.Errorf("failed to update bind: %w", err)
		}
		return nil
	})
}

// ClearUID 解除绑定
func (s *Store) ClearUID(ctx context.Context, userID, botID string) error {
	lock := s.locks.get(bindKey(userID, botID))
	lock.Lock()
	defer lock.Unlock()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND bot_id = ?", userID, botID).
			Delete(&model.WavesBind{}).Error; err != nil {
			return fmt.Errorf("failed to clear bind: %w", err)
		}
		return nil
	})
}
