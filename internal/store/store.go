package store

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/MeiVinEight/RoverSign/utils"
)

// Store 聚合绑定、凭证、签到三类实体的数据访问。
// 写操作按键加锁后在事务内执行，读操作不加锁，可能观察到写入中途的状态。
type Store struct {
	db    *gorm.DB
	log   *zap.Logger
	locks *keyLocks
	today func() string
}

func New(db *gorm.DB, log *zap.Logger) *Store {
	return &Store{
		db:    db,
		log:   log,
		locks: newKeyLocks(),
		today: utils.TodayDate,
	}
}
