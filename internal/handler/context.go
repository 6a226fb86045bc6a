package handler

type ContextKey string

var (
	RoleCtxKey         ContextKey = "role"
	SubCtxKey          ContextKey = "sub"
	MyInfoCtx          ContextKey = "myInfo"
	UserInfoCtx        ContextKey = "userInfo"
	WorkShiftCtx       ContextKey = "workShift"
	TrainingRequestCtx ContextKey = "trainingRequest"
	ExerciseCtx        ContextKey = "exercise"
	WorkoutSessionCtx  ContextKey = "workoutSession"
	WorkoutTemplateCtx ContextKey = "workoutTemplate"
)
