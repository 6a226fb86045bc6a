package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/fitmate-dev/workout-partner/backend/internal/domain"
	"github.com/fitmate-dev/workout-partner/backend/internal/utils"
)

func (h *Handler) CreateWorkShift(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		DayOfWeek int32 `json:"dayOfWeek" validate:"required,min=1,max=7"`
		StartHour int32 `json:"startHour"`
		EndHour   int32 `json:"endHour" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := utils.ValidateWorkShiftHours(req.StartHour, req.EndHour); err != nil {
		h.badRequest(w, r, err)
		return
	}

	shift := &domain.WorkShift{
		UserID:    myInfo.ID,
		DayOfWeek: req.DayOfWeek,
		StartHour: req.StartHour,
		EndHour:   req.EndHour,
	}

	if err := h.repository.CreateWorkShift(shift); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "添加排班成功", shift)
}

func (h *Handler) GetMyWorkShifts(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	shifts, err := h.repository.GetWorkShiftsByUser(myInfo.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取排班列表成功", shifts)
}

func (h *Handler) UpdateWorkShift(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(WorkShiftCtx).(*domain.WorkShift)

	var req struct {
		DayOfWeek *int32 `json:"dayOfWeek" validate:"omitempty,min=1,max=7"`
		StartHour *int32 `json:"startHour"`
		EndHour   *int32 `json:"endHour"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.DayOfWeek != nil {
		shift.DayOfWeek = *req.DayOfWeek
	}
	if req.StartHour != nil {
		shift.StartHour = *req.StartHour
	}
	if req.EndHour != nil {
		shift.EndHour = *req.EndHour
	}

	if err := utils.ValidateWorkShiftHours(shift.StartHour, shift.EndHour); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.UpdateWorkShift(shift); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "更新排班失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新排班成功", shift)
}

func (h *Handler) DeleteWorkShift(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(WorkShiftCtx).(*domain.WorkShift)

	if err := h.repository.DeleteWorkShift(shift.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除排班成功", nil)
}

// GetMyAvailability 根据自己的排班计算空闲时段
func (h *Handler) GetMyAvailability(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	scope, selectedDay, minDuration, err := parseAvailabilityQuery(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	shifts, err := h.repository.GetWorkShiftsByUser(myInfo.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	slots := h.availability.Calculate(shifts, scope, selectedDay, minDuration)
	h.successResponse(w, r, "获取空闲时段成功", slots)
}
