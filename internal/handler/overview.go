package handler

import (
	"net/http"
	"time"

	"github.com/fitmate-dev/workout-partner/backend/internal/domain"
)

// GetOverview 返回首页需要的全部数据：将来的预约和最近的训练记录
func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	nowMillis := time.Now().UnixMilli()
	upcoming, err := h.repository.GetUpcomingBookings(myInfo.ID, nowMillis, h.config.Overview.UpcomingBookingsLimit)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	history, err := h.repository.GetRecentWorkoutSessions(myInfo.ID, h.config.Overview.WorkoutHistoryLimit)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	overview := &domain.Overview{
		UpcomingBookings: upcoming,
		WorkoutHistory:   history,
	}

	h.successResponse(w, r, "获取总览成功", overview)
}
