package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/fitmate-dev/workout-partner/backend/internal/domain"
)

func (h *Handler) StartWorkoutSession(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	session := &domain.WorkoutSession{
		UserID: myInfo.ID,
		Status: domain.WorkoutSessionInProgress,
	}

	if err := h.repository.CreateWorkoutSession(session); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "开始训练", session)
}

func (h *Handler) GetMyWorkoutSessions(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	sessions, err := h.repository.GetWorkoutSessionsByUser(myInfo.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取训练记录成功", sessions)
}

func (h *Handler) GetWorkoutSession(w http.ResponseWriter, r *http.Request) {
	session := r.Context().Value(WorkoutSessionCtx).(*domain.WorkoutSession)
	h.successResponse(w, r, "获取训练记录成功", session)
}

// ReplaceWorkoutSessionLogs 整体替换一次训练的动作记录
// 客户端在训练过程中每次改动都全量提交，避免增量同步的状态不一致
func (h *Handler) ReplaceWorkoutSessionLogs(w http.ResponseWriter, r *http.Request) {
	session := r.Context().Value(WorkoutSessionCtx).(*domain.WorkoutSession)

	if session.Status == domain.WorkoutSessionCompleted {
		h.errorResponse(w, r, "训练已结束，无法修改记录")
		return
	}

	var req struct {
		ExerciseLogs []struct {
			ExerciseName string `json:"exerciseName" validate:"required"`
			Sets         []struct {
				Reps     int32    `json:"reps" validate:"required,min=1"`
				WeightKg *float64 `json:"weightKg" validate:"omitempty,min=0"`
			} `json:"sets" validate:"dive"`
			Note string `json:"note"`
		} `json:"exerciseLogs" validate:"dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	logs := make([]domain.ExerciseSessionLog, 0, len(req.ExerciseLogs))
	for _, reqLog := range req.ExerciseLogs {
		log := domain.ExerciseSessionLog{
			ExerciseName: reqLog.ExerciseName,
			Note:         reqLog.Note,
			Sets:         make([]domain.LoggedSet, 0, len(reqLog.Sets)),
		}
		for _, set := range reqLog.Sets {
			log.Sets = append(log.Sets, domain.LoggedSet{
				Reps:     set.Reps,
				WeightKg: set.WeightKg,
			})
		}
		logs = append(logs, log)
	}

	if err := h.repository.ReplaceWorkoutSessionLogs(session, logs); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "更新训练记录失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新训练记录成功", session)
}

func (h *Handler) CompleteWorkoutSession(w http.ResponseWriter, r *http.Request) {
	session := r.Context().Value(WorkoutSessionCtx).(*domain.WorkoutSession)

	if session.Status == domain.WorkoutSessionCompleted {
		h.errorResponse(w, r, "训练已结束")
		return
	}

	var req struct {
		GeneralNote string `json:"generalNote"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	session.Status = domain.WorkoutSessionCompleted
	session.GeneralNote = req.GeneralNote

	if err := h.repository.CompleteWorkoutSession(session); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "结束训练失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "训练已结束", session)
}

func (h *Handler) DeleteWorkoutSession(w http.ResponseWriter, r *http.Request) {
	session := r.Context().Value(WorkoutSessionCtx).(*domain.WorkoutSession)

	if err := h.repository.DeleteWorkoutSession(session.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除训练记录成功", nil)
}
