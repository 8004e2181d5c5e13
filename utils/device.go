package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewDeviceID 为未携带 did 的凭证生成设备标识
func NewDeviceID() string {
	return strings.ToUpper(uuid.NewString())
}
