package handler

import (
	"net/http"

	"github.com/fitmate-dev/workout-partner/backend/internal/domain"
)

func (h *Handler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	bookings, err := h.repository.GetBookingsByOwner(myInfo.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取预约列表成功", bookings)
}
