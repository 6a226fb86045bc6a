package availability

import (
	"sort"

	"github.com/fitmate-dev/workout-partner/backend/internal/domain"
)

// Scope 表示空闲时间的计算范围：单天或者整周
type Scope string

const (
	ScopeDay  Scope = "day"
	ScopeWeek Scope = "week"
)

// Weekdays 是一周七天的固定遍历顺序（1 表示周一，7 表示周日）
// 不要依赖其它地方的枚举顺序，整周计算时必须按这个顺序输出
var Weekdays = [7]int32{1, 2, 3, 4, 5, 6, 7}

// Slot 表示一段计算出来的空闲时间，每次计算都会重新生成，不会持久化
type Slot struct {
	DayOfWeek       int32 `json:"dayOfWeek"`
	StartHour       int32 `json:"startHour"`
	EndHour         int32 `json:"endHour"`
	DurationMinutes int32 `json:"durationMinutes"`
}

func newSlot(dayOfWeek, startHour, endHour int32) Slot {
	return Slot{
		DayOfWeek:       dayOfWeek,
		StartHour:       startHour,
		EndHour:         endHour,
		DurationMinutes: (endHour - startHour) * 60,
	}
}

// Calculator 负责把用户的工作班次转换为可约的空闲时间段
// 时间窗口由配置传入，而不是写死在算法里，方便测试时调整
type Calculator struct {
	startOfDayHour int32
	endOfDayHour   int32
}

func NewCalculator(startOfDayHour, endOfDayHour int32) *Calculator {
	return &Calculator{
		startOfDayHour: startOfDayHour,
		endOfDayHour:   endOfDayHour,
	}
}

// Calculate 计算给定班次下的空闲时间段
// scope 为 ScopeDay 时只计算 selectedDay 这一天，为 ScopeWeek 时按 Weekdays 的顺序计算七天
// 结果按天、天内按开始时间排序，且过滤掉时长小于 minDurationMinutes 的时间段
func (c *Calculator) Calculate(shifts []*domain.WorkShift, scope Scope, selectedDay int32, minDurationMinutes int32) []Slot {
	var days []int32
	if scope == ScopeDay {
		days = []int32{selectedDay}
	} else {
		days = Weekdays[:]
	}

	slots := make([]Slot, 0)
	for _, day := range days {
		dayShifts := make([]*domain.WorkShift, 0)
		for _, shift := range shifts {
			if shift.DayOfWeek == day {
				dayShifts = append(dayShifts, shift)
			}
		}

		for _, slot := range c.freeSlotsForDay(dayShifts, day) {
			if slot.DurationMinutes >= minDurationMinutes {
				slots = append(slots, slot)
			}
		}
	}

	return slots
}

// freeSlotsForDay 对一天的班次做从左到右的扫描，扫出班次之间的空档
// 游标只会前进不会后退，因此即使输入的班次互相重叠或者嵌套，结果也是正确的
func (c *Calculator) freeSlotsForDay(shifts []*domain.WorkShift, dayOfWeek int32) []Slot {
	if len(shifts) == 0 {
		return []Slot{newSlot(dayOfWeek, c.startOfDayHour, c.endOfDayHour)}
	}

	sorted := make([]*domain.WorkShift, len(shifts))
	copy(sorted, shifts)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartHour < sorted[j].StartHour
	})

	slots := make([]Slot, 0)
	cursor := c.startOfDayHour

	for _, shift := range sorted {
		// 超出时间窗口的班次不会被拒绝，只会被裁剪到窗口内
		shiftStart := clampHour(shift.StartHour, c.startOfDayHour, c.endOfDayHour)
		shiftEnd := clampHour(shift.EndHour, c.startOfDayHour, c.endOfDayHour)

		if shiftStart > cursor {
			slots = append(slots, newSlot(dayOfWeek, cursor, shiftStart))
		}
		cursor = max(cursor, shiftEnd)
	}

	if cursor < c.endOfDayHour {
		slots = append(slots, newSlot(dayOfWeek, cursor, c.endOfDayHour))
	}

	return slots
}

func clampHour(hour, lo, hi int32) int32 {
	if hour < lo {
		return lo
	}
	if hour > hi {
		return hi
	}
	return hour
}
