package domain

import "time"

type TemplateExercise struct {
	Name string `json:"name"`
	Sets int32  `json:"sets"`
	Reps int32  `json:"reps"`
}

type WorkoutTemplate struct {
	ID        int64              `json:"id"`
	UserID    int64              `json:"userID"`
	Title     string             `json:"title"`
	Exercises []TemplateExercise `json:"exercises"`
	CreatedAt time.Time          `json:"createdAt"`
	Version   int32              `json:"-"`
}
