package domain

import "time"

type TrainingRequestStatus string

const (
	TrainingRequestPending  TrainingRequestStatus = "pending"
	TrainingRequestAccepted TrainingRequestStatus = "accepted"
	TrainingRequestDeclined TrainingRequestStatus = "declined"
)

type TrainingRequest struct {
	ID               int64                 `json:"id"`
	FromUID          int64                 `json:"fromUid"`
	ToUID            int64                 `json:"toUid"`
	StartEpochMillis int64                 `json:"startEpochMillis"`
	EndEpochMillis   int64                 `json:"endEpochMillis"`
	Status           TrainingRequestStatus `json:"status"`
	UpdatedAt        time.Time             `json:"updatedAt"`
	Version          int32                 `json:"-"`
}

// Booking 是双方确认后的预约记录，创建后不再修改
// 接受请求时会成对创建（双方各持有一条，owner 和 partner 互为镜像）
type Booking struct {
	ID               int64     `json:"id"`
	OwnerUID         int64     `json:"ownerUid"`
	PartnerUID       int64     `json:"partnerUid"`
	RequestID        int64     `json:"requestId"`
	StartEpochMillis int64     `json:"startEpochMillis"`
	EndEpochMillis   int64     `json:"endEpochMillis"`
	CreatedAt        time.Time `json:"createdAt"`
}
