package model

import "github.com/MeiVinEight/RoverSign/utils"

// SignRecord 每日签到进度记录
// (uid, date) 组合唯一索引保证每个账号每天至多一条记录
type SignRecord struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	UID       string `gorm:"type:varchar(32);not null;uniqueIndex:idx_sign_record_uid_date" json:"uid"`
	Date      string `gorm:"type:char(10);not null;uniqueIndex:idx_sign_record_uid_date" json:"date"`
	GameSign  int    `gorm:"not null;default:0" json:"game_sign"`
	BBSSign   int    `gorm:"not null;default:0" json:"bbs_sign"`
	BBSDetail int    `gorm:"not null;default:0" json:"bbs_detail"`
	BBSLike   int    `gorm:"not null;default:0" json:"bbs_like"`
	BBSShare  int    `gorm:"not null;default:0" json:"bbs_share"`
}

// TableName 指定表名
func (SignRecord) TableName() string {
	return "sign_record"
}

// SignData 一次签到结果的增量。计数字段为零表示"本次不更新该项"，
// 合并时非零值整体覆盖库中的旧值，而不是累加。
type SignData struct {
	UID       string `json:"uid"`
	Date      string `json:"date,omitempty"` // 为空时取今日
	GameSign  int    `json:"game_sign,omitempty"`
	BBSSign   int    `json:"bbs_sign,omitempty"`
	BBSDetail int    `json:"bbs_detail,omitempty"`
	BBSLike   int    `json:"bbs_like,omitempty"`
	BBSShare  int    `json:"bbs_share,omitempty"`
}

// NewSignData 构造带今日日期的空增量
func NewSignData(uid string) *SignData {
	return &SignData{UID: uid, Date: utils.TodayDate()}
}

// NewGameSignData 构造游戏签到成功的增量
func NewGameSignData(uid string) *SignData {
	return &SignData{UID: uid, GameSign: 1}
}

// NewBBSSignData 构造社区任务的初始增量，首次 upsert 时落一条全零记录
func NewBBSSignData(uid string) *SignData {
	return &SignData{UID: uid}
}

// Record 按增量内容构造一条新记录，缺省计数落为 0
func (d *SignData) Record(date string) *SignRecord {
	return &SignRecord{
		UID:       d.UID,
		Date:      date,
		GameSign:  d.GameSign,
		BBSSign:   d.BBSSign,
		BBSDetail: d.BBSDetail,
		BBSLike:   d.BBSLike,
		BBSShare:  d.BBSShare,
	}
}
