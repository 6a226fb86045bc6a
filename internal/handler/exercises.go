package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/fitmate-dev/workout-partner/backend/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

func (h *Handler) GetAllExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := h.repository.GetAllExercises()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取动作列表成功", exercises)
}

func (h *Handler) GetExercise(w http.ResponseWriter, r *http.Request) {
	exercise := r.Context().Value(ExerciseCtx).(*domain.Exercise)
	h.successResponse(w, r, "获取动作成功", exercise)
}

func (h *Handler) CreateExercise(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
		MuscleGroup string `json:"muscleGroup" validate:"required"`
		Equipment   string `json:"equipment"`
		ImageURL    string `json:"imageUrl" validate:"omitempty,url"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	exercise := &domain.Exercise{
		Name:        req.Name,
		Description: req.Description,
		MuscleGroup: req.MuscleGroup,
		Equipment:   req.Equipment,
		ImageURL:    req.ImageURL,
	}

	if err := h.repository.CreateExercise(exercise); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "exercises_name_key":
			h.badRequest(w, r, errors.New("动作名称已存在"))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "创建动作成功", exercise)
}

func (h *Handler) UpdateExercise(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		MuscleGroup *string `json:"muscleGroup"`
		Equipment   *string `json:"equipment"`
		ImageURL    *string `json:"imageUrl" validate:"omitempty,url"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	exercise := r.Context().Value(ExerciseCtx).(*domain.Exercise)

	if req.Name != nil {
		exercise.Name = *req.Name
	}
	if req.Description != nil {
		exercise.Description = *req.Description
	}
	if req.MuscleGroup != nil {
		exercise.MuscleGroup = *req.MuscleGroup
	}
	if req.Equipment != nil {
		exercise.Equipment = *req.Equipment
	}
	if req.ImageURL != nil {
		exercise.ImageURL = *req.ImageURL
	}

	if err := h.repository.UpdateExercise(exercise); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "exercises_name_key":
			h.badRequest(w, r, errors.New("动作名称已存在"))
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "更新动作失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新动作成功", exercise)
}

func (h *Handler) DeleteExercise(w http.ResponseWriter, r *http.Request) {
	exercise := r.Context().Value(ExerciseCtx).(*domain.Exercise)

	if err := h.repository.DeleteExercise(exercise.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除动作成功", nil)
}
