package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/MeiVinEight/RoverSign/internal/model"
	"github.com/MeiVinEight/RoverSign/utils"
)

// UpsertSignRecord 插入或更新一条当日签到记录。
// 增量中为零的计数不覆盖既有值；(uid, date) 不存在时按增量整体插入。
// uid 为空时直接返回 nil，不视为错误。
func (s *Store) UpsertSignRecord(ctx context.Context, data *model.SignData) (*model.SignRecord, error) {
	if data == nil || data.UID == "" {
		return nil, nil
	}

	date := data.Date
	if date == "" {
		date = s.today()
	}
	if !utils.ValidDate(date) {
		return nil, fmt.Errorf("invalid sign date %q, expect YYYY-MM-DD", date)
	}

	lock := s.locks.get(signKey(data.UID, date))
	lock.Lock()
	defer lock.Unlock()

	var record *model.SignRecord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := findSignRecord(tx, data.UID, date)
		if err != nil {
			return err
		}

		if found == nil {
			record = data.Record(date)
			if err := tx.Create(record).Error; err != nil {
				return fmt.Errorf("failed to create sign record: %w", err)
			}
			return nil
		}

		updates := map[string]interface{}{}
		if data.GameSign != 0 {
			found.GameSign = data.GameSign
			updates["game_sign"] = data.GameSign
		}
		if data.BBSSign != 0 {
			found.BBSSign = data.BBSSign
			updates["bbs_sign"] = data.BBSSign
		}
		if data.BBSDetail != 0 {
			found.BBSDetail = data.BBSDetail
			updates["bbs_detail"] = data.BBSDetail
		}
		if data.BBSLike != 0 {
			found.BBSLike = data.BBSLike
			updates["bbs_like"] = data.BBSLike
		}
		if data.BBSShare != 0 {
			found.BBSShare = data.BBSShare
			updates["bbs_share"] = data.BBSShare
		}

		if len(updates) > 0 {
			if err := tx.Model(found).Updates(updates).Error; err != nil {
				return fmt.Errorf("failed to update sign record: %w", err)
			}
		}
		record = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// GetSignRecord 按UID和日期查询签到记录，date 为空时取今日，未找到返回 nil
func (s *Store) GetSignRecord(ctx context.Context, uid, date string) (*model.SignRecord, error) {
	if date == "" {
		date = s.today()
	}

	return findSignRecord(s.db.WithContext(ctx), uid, date)
}

// GetAllSignRecordsByDate 查询指定日期的全部签到记录，date 为空时取今日
func (s *Store) GetAllSignRecordsByDate(ctx context.Context, date string) ([]*model.SignRecord, error) {
	if date == "" {
		date = s.today()
	}

	var records []*model.SignRecord
	err := s.db.WithContext(ctx).
		Where("date = ?", date).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query sign records: %w", err)
	}

	return records, nil
}

// PurgeSignRecords 删除 date <= cutoff 的全部签到记录，返回删除行数。
// date 列为定宽 ISO-8601 字符串，字典序比较即时间序比较。
func (s *Store) PurgeSignRecords(ctx context.Context, cutoff string) (int64, error) {
	if !utils.ValidDate(cutoff) {
		return 0, fmt.Errorf("invalid cutoff date %q, expect YYYY-MM-DD", cutoff)
	}

	lock := s.locks.get(purgeKey)
	lock.Lock()
	defer lock.Unlock()

	var removed int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("date <= ?", cutoff).Delete(&model.SignRecord{})
		if result.Error != nil {
			return fmt.Errorf("failed to purge sign records: %w", result.Error)
		}
		removed = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}

	return removed, nil
}

// findSignRecord 查找指定UID和日期的签到记录，未找到返回 nil
func findSignRecord(tx *gorm.DB, uid, date string) (*model.SignRecord, error) {
	var record model.SignRecord
	err := tx.Where("uid = ? AND date = ?", uid, date).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query sign record: %w", err)
	}

	return &record, nil
}
