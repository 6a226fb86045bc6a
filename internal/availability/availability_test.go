package availability

import (
	"testing"

	"github.com/fitmate-dev/workout-partner/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shift(day, start, end int32) *domain.WorkShift {
	return &domain.WorkShift{DayOfWeek: day, StartHour: start, EndHour: end}
}

func TestCalculateEmptyDay(t *testing.T) {
	c := NewCalculator(6, 22)

	slots := c.Calculate(nil, ScopeDay, 1, 0)

	require.Len(t, slots, 1)
	assert.Equal(t, Slot{DayOfWeek: 1, StartHour: 6, EndHour: 22, DurationMinutes: 960}, slots[0])
}

func TestCalculateSingleShift(t *testing.T) {
	c := NewCalculator(6, 22)

	slots := c.Calculate([]*domain.WorkShift{shift(1, 9, 12)}, ScopeDay, 1, 45)

	require.Len(t, slots, 2)
	assert.Equal(t, Slot{DayOfWeek: 1, StartHour: 6, EndHour: 9, DurationMinutes: 180}, slots[0])
	assert.Equal(t, Slot{DayOfWeek: 1, StartHour: 12, EndHour: 22, DurationMinutes: 600}, slots[1])
}

func TestCalculateMultipleShifts(t *testing.T) {
	c := NewCalculator(6, 22)

	shifts := []*domain.WorkShift{
		shift(1, 9, 12),
		shift(1, 14, 17),
	}
	slots := c.Calculate(shifts, ScopeDay, 1, 0)

	require.Len(t, slots, 3)
	assert.Equal(t, Slot{DayOfWeek: 1, StartHour: 6, EndHour: 9, DurationMinutes: 180}, slots[0])
	assert.Equal(t, Slot{DayOfWeek: 1, StartHour: 12, EndHour: 14, DurationMinutes: 120}, slots[1])
	assert.Equal(t, Slot{DayOfWeek: 1, StartHour: 17, EndHour: 22, DurationMinutes: 300}, slots[2])
}

func TestCalculateUnsortedShifts(t *testing.T) {
	c := NewCalculator(6, 22)

	// 输入乱序也必须得到相同的结果
	shifts := []*domain.WorkShift{
		shift(1, 14, 17),
		shift(1, 9, 12),
	}
	slots := c.Calculate(shifts, ScopeDay, 1, 0)

	require.Len(t, slots, 3)
	assert.Equal(t, int32(6), slots[0].StartHour)
	assert.Equal(t, int32(12), slots[1].StartHour)
	assert.Equal(t, int32(17), slots[2].StartHour)
}

func TestCalculateMinDurationFiltersAll(t *testing.T) {
	c := NewCalculator(6, 22)

	// 空档分别只有 60 分钟，min 90 分钟时一个都不剩
	shifts := []*domain.WorkShift{
		shift(1, 6, 7),
		shift(1, 8, 22),
	}
	slots := c.Calculate(shifts, ScopeDay, 1, 90)

	assert.Empty(t, slots)
}

func TestCalculateOverlappingShifts(t *testing.T) {
	c := NewCalculator(6, 22)

	// 互相重叠甚至嵌套的班次会被合并，不会产生负长度的时间段
	shifts := []*domain.WorkShift{
		shift(1, 9, 15),
		shift(1, 10, 12),
		shift(1, 14, 17),
	}
	slots := c.Calculate(shifts, ScopeDay, 1, 0)

	require.Len(t, slots, 2)
	assert.Equal(t, Slot{DayOfWeek: 1, StartHour: 6, EndHour: 9, DurationMinutes: 180}, slots[0])
	assert.Equal(t, Slot{DayOfWeek: 1, StartHour: 17, EndHour: 22, DurationMinutes: 300}, slots[1])
}

func TestCalculateClampsShiftsToWindow(t *testing.T) {
	c := NewCalculator(6, 22)

	// 凌晨和深夜的班次会被裁剪到时间窗口内而不是被丢弃
	shifts := []*domain.WorkShift{
		shift(1, 0, 8),
		shift(1, 20, 24),
	}
	slots := c.Calculate(shifts, ScopeDay, 1, 0)

	require.Len(t, slots, 1)
	assert.Equal(t, Slot{DayOfWeek: 1, StartHour: 8, EndHour: 20, DurationMinutes: 720}, slots[0])
}

func TestCalculateShiftCoversWholeWindow(t *testing.T) {
	c := NewCalculator(6, 22)

	slots := c.Calculate([]*domain.WorkShift{shift(1, 6, 22)}, ScopeDay, 1, 0)

	assert.Empty(t, slots)
}

func TestCalculateWeekScope(t *testing.T) {
	c := NewCalculator(6, 22)

	// 只有周三有班，其余六天都是整段空闲
	slots := c.Calculate([]*domain.WorkShift{shift(3, 9, 12)}, ScopeWeek, 0, 0)

	require.Len(t, slots, 8)

	// 结果必须按周一到周日的顺序输出
	assert.Equal(t, int32(1), slots[0].DayOfWeek)
	assert.Equal(t, int32(2), slots[1].DayOfWeek)
	assert.Equal(t, int32(3), slots[2].DayOfWeek)
	assert.Equal(t, int32(3), slots[3].DayOfWeek)
	assert.Equal(t, int32(4), slots[4].DayOfWeek)
	assert.Equal(t, int32(7), slots[7].DayOfWeek)

	assert.Equal(t, Slot{DayOfWeek: 3, StartHour: 6, EndHour: 9, DurationMinutes: 180}, slots[2])
	assert.Equal(t, Slot{DayOfWeek: 3, StartHour: 12, EndHour: 22, DurationMinutes: 600}, slots[3])
}

func TestCalculateDayScopeIgnoresOtherDays(t *testing.T) {
	c := NewCalculator(6, 22)

	// 周二的班次不影响周一的计算
	slots := c.Calculate([]*domain.WorkShift{shift(2, 9, 12)}, ScopeDay, 1, 0)

	require.Len(t, slots, 1)
	assert.Equal(t, Slot{DayOfWeek: 1, StartHour: 6, EndHour: 22, DurationMinutes: 960}, slots[0])
}

func TestCalculateCustomWindow(t *testing.T) {
	c := NewCalculator(8, 20)

	slots := c.Calculate([]*domain.WorkShift{shift(1, 9, 12)}, ScopeDay, 1, 0)

	require.Len(t, slots, 2)
	assert.Equal(t, Slot{DayOfWeek: 1, StartHour: 8, EndHour: 9, DurationMinutes: 60}, slots[0])
	assert.Equal(t, Slot{DayOfWeek: 1, StartHour: 12, EndHour: 20, DurationMinutes: 480}, slots[1])
}

// 空闲时间段之间以及和班次之间都不能重叠，且必须按开始时间排序
func TestCalculateSlotsDisjointAndSorted(t *testing.T) {
	c := NewCalculator(6, 22)

	shifts := []*domain.WorkShift{
		shift(1, 7, 9),
		shift(1, 8, 10),
		shift(1, 13, 14),
		shift(1, 18, 21),
	}
	slots := c.Calculate(shifts, ScopeDay, 1, 0)

	require.NotEmpty(t, slots)
	for i, slot := range slots {
		assert.Less(t, slot.StartHour, slot.EndHour)
		assert.Equal(t, (slot.EndHour-slot.StartHour)*60, slot.DurationMinutes)
		if i > 0 {
			assert.GreaterOrEqual(t, slot.StartHour, slots[i-1].EndHour)
		}
		for _, s := range shifts {
			assert.False(t, slot.StartHour < s.EndHour && s.StartHour < slot.EndHour,
				"空闲时间段 %v 和班次 [%d, %d) 重叠", slot, s.StartHour, s.EndHour)
		}
	}
}
