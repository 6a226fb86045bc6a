package utils

import (
	"errors"
)

// ValidateWorkShiftHours 检查排班的起止小时是否合法
// 允许各条排班之间互相重叠，空闲时间计算时会自动合并
func ValidateWorkShiftHours(startHour int32, endHour int32) error {
	if startHour < 0 || startHour > 23 {
		return errors.New("开始时间必须在 0 到 23 之间")
	}
	if endHour < 1 || endHour > 24 {
		return errors.New("结束时间必须在 1 到 24 之间")
	}
	if endHour <= startHour {
		return errors.New("结束时间必须晚于开始时间")
	}
	return nil
}
