package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeiVinEight/RoverSign/internal/model"
)

func TestUpsertSignRecord_CreatesWithDefaults(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	record, err := st.UpsertSignRecord(ctx, &model.SignData{
		UID:      "100001",
		Date:     "2024-06-01",
		GameSign: 1,
	})
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, "100001", record.UID)
	assert.Equal(t, "2024-06-01", record.Date)
	assert.Equal(t, 1, record.GameSign)
	assert.Equal(t, 0, record.BBSSign)
	assert.Equal(t, 0, record.BBSDetail)
	assert.Equal(t, 0, record.BBSLike)
	assert.Equal(t, 0, record.BBSShare)

	stored, err := st.GetSignRecord(ctx, "100001", "2024-06-01")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 1, stored.GameSign)
}

func TestUpsertSignRecord_ReplacesNotIncrements(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	_, err := st.UpsertSignRecord(ctx, &model.SignData{
		UID: "100001", Date: "2024-06-01", BBSLike: 3,
	})
	require.NoError(t, err)

	record, err := st.UpsertSignRecord(ctx, &model.SignData{
		UID: "100001", Date: "2024-06-01", BBSLike: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, record.BBSLike)

	stored, err := st.GetSignRecord(ctx, "100001", "2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, 5, stored.BBSLike)
}

func TestUpsertSignRecord_ZeroDeltaLeavesValue(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	_, err := st.UpsertSignRecord(ctx, &model.SignData{
		UID: "100001", Date: "2024-06-01", GameSign: 1,
	})
	require.NoError(t, err)

	// GameSign 为零表示本次不更新该项
	record, err := st.UpsertSignRecord(ctx, &model.SignData{
		UID: "100001", Date: "2024-06-01", GameSign: 0, BBSSign: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, record.GameSign)
	assert.Equal(t, 2, record.BBSSign)

	stored, err := st.GetSignRecord(ctx, "100001", "2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, 1, stored.GameSign)
	assert.Equal(t, 2, stored.BBSSign)
}

func TestUpsertSignRecord_EmptyUIDIsNoop(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	record, err := st.UpsertSignRecord(ctx, &model.SignData{UID: "", GameSign: 1})
	require.NoError(t, err)
	assert.Nil(t, record)

	var count int64
	require.NoError(t, st.db.Model(&model.SignRecord{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpsertSignRecord_SingleRecordPerKey(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		_, err := st.UpsertSignRecord(ctx, &model.SignData{
			UID: "100001", Date: "2024-06-01", BBSDetail: i,
		})
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, st.db.Model(&model.SignRecord{}).
		Where("uid = ? AND date = ?", "100001", "2024-06-01").
		Count(&count).Error)
	assert.EqualValues(t, 1, count)

	stored, err := st.GetSignRecord(ctx, "100001", "2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, 5, stored.BBSDetail)
}

func TestUpsertSignRecord_DefaultsToToday(t *testing.T) {
	st := setupTestStore(t)
	fixToday(st, "2024-06-15")
	ctx := context.Background()

	record, err := st.UpsertSignRecord(ctx, &model.SignData{UID: "100001", GameSign: 1})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-15", record.Date)

	stored, err := st.GetSignRecord(ctx, "100001", "")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 1, stored.GameSign)
}

func TestUpsertSignRecord_RejectsMalformedDate(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	_, err := st.UpsertSignRecord(ctx, &model.SignData{
		UID: "100001", Date: "2024/06/01", GameSign: 1,
	})
	assert.Error(t, err)

	_, err = st.UpsertSignRecord(ctx, &model.SignData{
		UID: "100001", Date: "2024-6-1", GameSign: 1,
	})
	assert.Error(t, err)
}

func TestGetSignRecord_AbsentReturnsNil(t *testing.T) {
	st := setupTestStore(t)

	record, err := st.GetSignRecord(context.Background(), "100001", "2024-06-01")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestGetAllSignRecordsByDate(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	for _, d := range []*model.SignData{
		{UID: "100001", Date: "2024-06-01", GameSign: 1},
		{UID: "100002", Date: "2024-06-01", BBSSign: 1},
		{UID: "100003", Date: "2024-06-02", GameSign: 1},
	} {
		_, err := st.UpsertSignRecord(ctx, d)
		require.NoError(t, err)
	}

	records, err := st.GetAllSignRecordsByDate(ctx, "2024-06-01")
	require.NoError(t, err)
	assert.Len(t, records, 2)

	uids := []string{records[0].UID, records[1].UID}
	assert.ElementsMatch(t, []string{"100001", "100002"}, uids)
}

func TestPurgeSignRecords_Boundary(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	for _, date := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		_, err := st.UpsertSignRecord(ctx, &model.SignData{
			UID: "100001", Date: date, GameSign: 1,
		})
		require.NoError(t, err)
	}

	removed, err := st.PurgeSignRecords(ctx, "2024-01-02")
	require.NoError(t, err)
	assert.EqualValues(t, 2, removed)

	gone, err := st.GetSignRecord(ctx, "100001", "2024-01-02")
	require.NoError(t, err)
	assert.Nil(t, gone)

	kept, err := st.GetSignRecord(ctx, "100001", "2024-01-03")
	require.NoError(t, err)
	require.NotNil(t, kept)
}

func TestPurgeSignRecords_RejectsMalformedCutoff(t *testing.T) {
	st := setupTestStore(t)

	_, err := st.PurgeSignRecords(context.Background(), "last week")
	assert.Error(t, err)
}

func TestUpsertSignRecord_ConcurrentSameKey(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			data := &model.SignData{UID: "100001", Date: "2024-06-01"}
			if i%2 == 0 {
				data.GameSign = 1
			} else {
				data.BBSSign = 2
			}
			_, err := st.UpsertSignRecord(ctx, data)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	// 并发读改写被按键串行化：只产生一条记录，且两类增量都没有丢失
	var count int64
	require.NoError(t, st.db.Model(&model.SignRecord{}).
		Where("uid = ? AND date = ?", "100001", "2024-06-01").
		Count(&count).Error)
	assert.EqualValues(t, 1, count)

	stored, err := st.GetSignRecord(ctx, "100001", "2024-06-01")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 1, stored.GameSign)
	assert.Equal(t, 2, stored.BBSSign)
}
