package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/fitmate-dev/workout-partner/backend/internal/domain"
)

func (h *Handler) CreateWorkoutTemplate(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		Title     string `json:"title" validate:"required"`
		Exercises []struct {
			Name string `json:"name" validate:"required"`
			Sets int32  `json:"sets" validate:"required,min=1"`
			Reps int32  `json:"reps" validate:"required,min=1"`
		} `json:"exercises" validate:"required,min=1,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	template := &domain.WorkoutTemplate{
		UserID:    myInfo.ID,
		Title:     req.Title,
		Exercises: make([]domain.TemplateExercise, 0, len(req.Exercises)),
	}
	for _, exercise := range req.Exercises {
		template.Exercises = append(template.Exercises, domain.TemplateExercise{
			Name: exercise.Name,
			Sets: exercise.Sets,
			Reps: exercise.Reps,
		})
	}

	if err := h.repository.CreateWorkoutTemplate(template); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "创建训练模板成功", template)
}

func (h *Handler) GetMyWorkoutTemplates(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	templates, err := h.repository.GetWorkoutTemplatesByUser(myInfo.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取训练模板列表成功", templates)
}

func (h *Handler) GetWorkoutTemplate(w http.ResponseWriter, r *http.Request) {
	template := r.Context().Value(WorkoutTemplateCtx).(*domain.WorkoutTemplate)
	h.successResponse(w, r, "获取训练模板成功", template)
}

func (h *Handler) UpdateWorkoutTemplate(w http.ResponseWriter, r *http.Request) {
	template := r.Context().Value(WorkoutTemplateCtx).(*domain.WorkoutTemplate)

	var req struct {
		Title     *string `json:"title"`
		Exercises []struct {
			Name string `json:"name" validate:"required"`
			Sets int32  `json:"sets" validate:"required,min=1"`
			Reps int32  `json:"reps" validate:"required,min=1"`
		} `json:"exercises" validate:"omitempty,min=1,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Title != nil {
		template.Title = *req.Title
	}
	if req.Exercises != nil {
		template.Exercises = make([]domain.TemplateExercise, 0, len(req.Exercises))
		for _, exercise := range req.Exercises {
			template.Exercises = append(template.Exercises, domain.TemplateExercise{
				Name: exercise.Name,
				Sets: exercise.Sets,
				Reps: exercise.Reps,
			})
		}
	}

	if err := h.repository.UpdateWorkoutTemplate(template); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "更新训练模板失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新训练模板成功", template)
}

func (h *Handler) DeleteWorkoutTemplate(w http.ResponseWriter, r *http.Request) {
	template := r.Context().Value(WorkoutTemplateCtx).(*domain.WorkoutTemplate)

	if err := h.repository.DeleteWorkoutTemplate(template.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除训练模板成功", nil)
}
