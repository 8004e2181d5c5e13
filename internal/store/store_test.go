package store

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/MeiVinEight/RoverSign/internal/model"
)

// setupTestStore 打开进程内 sqlite 并迁移全部模型
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 单连接，内存库在测试间隔离且写入串行
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.WavesBind{},
		&model.WavesUser{},
		&model.SignRecord{},
	))

	return New(db, zap.NewNop())
}

// fixToday 固定 Store 的今日日期，便于验证缺省日期行为
func fixToday(st *Store, date string) {
	st.today = func() string { return date }
}
