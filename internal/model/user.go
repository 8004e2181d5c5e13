package model

// BBSSignSwitch 自动社区签到开关取值
const (
	BBSSignSwitchOn  = "on"
	BBSSignSwitchOff = "off"
)

// WavesUser 用户凭证记录，保存 cookie 及相关登录元数据。
// 同一 (user_id, uid, bot_id) 的有效凭证唯一性由查询约定保证（取首条），
// 不设存储层约束，换绑后旧凭证保留 status 供排查。
type WavesUser struct {
	ID             int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         string `gorm:"type:varchar(64);not null;index" json:"user_id"`
	BotID          string `gorm:"type:varchar(64);not null;default:''" json:"bot_id"`
	UID            string `gorm:"type:varchar(32);not null;index" json:"uid"`
	Cookie         string `gorm:"type:text;not null;default:''" json:"cookie"`
	RecordID       string `gorm:"type:varchar(64);not null;default:''" json:"record_id"`
	Platform       string `gorm:"type:varchar(16);not null;default:''" json:"platform"`
	StaminaBgValue string `gorm:"type:varchar(64);not null;default:''" json:"stamina_bg_value"`
	BBSSignSwitch  string `gorm:"type:varchar(8);not null;default:'off'" json:"bbs_sign_switch"`
	Bat            string `gorm:"type:text;not null;default:''" json:"bat"`
	Did            string `gorm:"type:varchar(64);not null;default:''" json:"did"`
	Status         string `gorm:"type:varchar(32);not null;default:''" json:"status"`
}

// TableName 指定表名
func (WavesUser) TableName() string {
	return "waves_user"
}
