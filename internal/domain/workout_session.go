package domain

import "time"

type WorkoutSessionStatus string

const (
	WorkoutSessionInProgress WorkoutSessionStatus = "in_progress"
	WorkoutSessionCompleted  WorkoutSessionStatus = "completed"
)

type LoggedSet struct {
	Reps     int32    `json:"reps"`
	WeightKg *float64 `json:"weightKg"` // 自重训练时为空
}

type ExerciseSessionLog struct {
	ExerciseName string      `json:"exerciseName"`
	Sets         []LoggedSet `json:"sets"`
	Note         string      `json:"note"`
}

type WorkoutSession struct {
	ID           int64                `json:"id"`
	UserID       int64                `json:"userID"`
	Status       WorkoutSessionStatus `json:"status"`
	ExerciseLogs []ExerciseSessionLog `json:"exerciseLogs"`
	GeneralNote  string               `json:"generalNote"`
	CreatedAt    time.Time            `json:"createdAt"`
	Version      int32                `json:"-"`
}
