package utils

import "time"

// DateLayout 签到日期的统一格式。定宽 ISO-8601，字典序与时间序一致，
// 清理任务依赖这一点做 date <= cutoff 的字符串比较。
const DateLayout = "2006-01-02"

// TodayDate 返回本地时区的今日日期
func TodayDate() string {
	return time.Now().Format(DateLayout)
}

// ValidDate 校验日期字符串是否为 YYYY-MM-DD
func ValidDate(date string) bool {
	if len(date) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, date)
	return err == nil
}
