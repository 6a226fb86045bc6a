package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/fitmate-dev/workout-partner/backend/internal/booking"
	"github.com/fitmate-dev/workout-partner/backend/internal/domain"
)

// formatEpochMillis 把毫秒时间戳格式化成邮件中展示的时间
func formatEpochMillis(millis int64) string {
	return time.UnixMilli(millis).Format("2006-01-02 15:04")
}

func (h *Handler) SendTrainingRequest(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		ToUID            int64 `json:"toUid" validate:"required"`
		StartEpochMillis int64 `json:"startEpochMillis" validate:"required"`
		EndEpochMillis   int64 `json:"endEpochMillis" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.ToUID == myInfo.ID {
		h.errorResponse(w, r, "不能向自己发送训练请求")
		return
	}

	// 确认对方存在且在约
	recipient, err := h.repository.GetUserByID(req.ToUID)
	if err != nil || !recipient.IsActive {
		h.errorResponse(w, r, "对方不存在或暂不接受邀约")
		return
	}

	request, err := h.coordinator.SendRequest(myInfo.ID, req.ToUID, req.StartEpochMillis, req.EndEpochMillis)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidInterval), errors.Is(err, booking.ErrBookingConflict):
			h.errorResponse(w, r, err.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// 通知对方有新的邀约，邮件失败不影响请求本身
	mailMessage := domain.MailMessage{
		Type: "training_request",
		To:   recipient.Email,
		Data: domain.TrainingRequestMailData{
			FullName:    recipient.FullName,
			PartnerName: myInfo.FullName,
			StartTime:   formatEpochMillis(request.StartEpochMillis),
			EndTime:     formatEpochMillis(request.EndEpochMillis),
		},
	}
	if err := h.publishMail(mailMessage); err != nil {
		h.logInternalServerError(r, err)
	}

	h.successResponse(w, r, "训练请求已发送", request)
}

func (h *Handler) GetIncomingTrainingRequests(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	requests, err := h.repository.GetIncomingTrainingRequests(myInfo.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取收到的训练请求成功", requests)
}

func (h *Handler) GetOutgoingTrainingRequests(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	requests, err := h.repository.GetOutgoingTrainingRequests(myInfo.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取发出的训练请求成功", requests)
}

func (h *Handler) AcceptTrainingRequest(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	request := r.Context().Value(TrainingRequestCtx).(*domain.TrainingRequest)

	// 只有收到请求的一方才能接受
	if request.ToUID != myInfo.ID {
		h.errorResponse(w, r, "只能处理发给自己的训练请求")
		return
	}

	accepted, err := h.coordinator.AcceptRequest(request.ID)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrBookingConflict),
			errors.Is(err, booking.ErrRequestNotFound),
			errors.Is(err, booking.ErrRequestAlreadyHandled):
			h.errorResponse(w, r, err.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// 给双方都发一封确认邮件
	sender, err := h.repository.GetUserByID(accepted.FromUID)
	if err != nil {
		h.logInternalServerError(r, err)
	} else {
		for _, notify := range []struct {
			to          *domain.User
			partnerName string
		}{
			{to: sender, partnerName: myInfo.FullName},
			{to: myInfo, partnerName: sender.FullName},
		} {
			mailMessage := domain.MailMessage{
				Type: "booking_confirmed",
				To:   notify.to.Email,
				Data: domain.BookingConfirmedMailData{
					FullName:    notify.to.FullName,
					PartnerName: notify.partnerName,
					StartTime:   formatEpochMillis(accepted.StartEpochMillis),
					EndTime:     formatEpochMillis(accepted.EndEpochMillis),
				},
			}
			if err := h.publishMail(mailMessage); err != nil {
				h.logInternalServerError(r, err)
			}
		}
	}

	h.successResponse(w, r, "已接受训练请求", accepted)
}

func (h *Handler) DeclineTrainingRequest(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	request := r.Context().Value(TrainingRequestCtx).(*domain.TrainingRequest)

	if request.ToUID != myInfo.ID {
		h.errorResponse(w, r, "只能处理发给自己的训练请求")
		return
	}

	declined, err := h.coordinator.DeclineRequest(request.ID)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrRequestNotFound), errors.Is(err, booking.ErrRequestAlreadyHandled):
			h.errorResponse(w, r, err.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "已拒绝训练请求", declined)
}
