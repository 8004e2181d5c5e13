package model

// WavesBind 聊天身份与鸣潮UID的绑定关系
// (user_id, bot_id) 组合唯一索引保证每个机器人作用域下只有一条绑定
type WavesBind struct {
	ID     int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID string `gorm:"type:varchar(64);not null;uniqueIndex:idx_waves_bind_user_bot" json:"user_id"`
	BotID  string `gorm:"type:varchar(64);not null;uniqueIndex:idx_waves_bind_user_bot" json:"bot_id"`
	UID    string `gorm:"type:varchar(32);not null;default:''" json:"uid"`
}

// TableName 指定表名
func (WavesBind) TableName() string {
	return "waves_bind"
}
