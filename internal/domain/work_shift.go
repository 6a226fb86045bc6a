package domain

import "time"

type WorkShift struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userID"`
	DayOfWeek int32     `json:"dayOfWeek"` // 1 表示周一，7 表示周日
	StartHour int32     `json:"startHour"`
	EndHour   int32     `json:"endHour"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}
