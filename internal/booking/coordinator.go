package booking

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/fitmate-dev/workout-partner/backend/internal/domain"
)

// 业务上可预期的错误，调用方通过 errors.Is 来区分，错误信息可以直接展示给用户
var (
	ErrInvalidInterval       = errors.New("结束时间必须晚于开始时间")
	ErrBookingConflict       = errors.New("该时间段与已有预约冲突")
	ErrRequestNotFound       = errors.New("训练请求不存在")
	ErrRequestAlreadyHandled = errors.New("训练请求已被处理")
)

// Store 抽象了协调器需要的持久化操作，找不到记录时应返回 sql.ErrNoRows
// AcceptTrainingRequest 必须在一个事务内完成状态更新和两条预约的写入，
// 并且在事务内重新检查冲突（读检查和写入之间存在竞态，必须由事务收口）
type Store interface {
	GetTrainingRequestByID(id int64) (*domain.TrainingRequest, error)
	GetBookingsByOwner(ownerUID int64) ([]*domain.Booking, error)
	CreateTrainingRequest(req *domain.TrainingRequest) error
	AcceptTrainingRequest(req *domain.TrainingRequest, first *domain.Booking, second *domain.Booking) error
	DeclineTrainingRequest(req *domain.TrainingRequest) error
}

// Coordinator 负责训练请求的生命周期流转和重复预约的防护
type Coordinator struct {
	store Store
}

func NewCoordinator(store Store) *Coordinator {
	return &Coordinator{
		store: store,
	}
}

// Overlaps 判断两个左闭右开区间 [aStart, aEnd) 和 [bStart, bEnd) 是否重叠
// 首尾相接（aEnd == bStart）不算冲突
func Overlaps(aStart, aEnd, bStart, bEnd int64) bool {
	return aStart < bEnd && bStart < aEnd
}

// SendRequest 创建一条 pending 状态的训练请求，此时不会产生任何预约记录
// 时间段不合法时在任何 I/O 之前就返回错误
func (c *Coordinator) SendRequest(fromUID, toUID, startEpochMillis, endEpochMillis int64) (*domain.TrainingRequest, error) {
	if endEpochMillis <= startEpochMillis {
		return nil, ErrInvalidInterval
	}

	// 双方都不能和已有的预约冲突
	if err := c.ensureNoConflict(fromUID, startEpochMillis, endEpochMillis); err != nil {
		return nil, err
	}
	if err := c.ensureNoConflict(toUID, startEpochMillis, endEpochMillis); err != nil {
		return nil, err
	}

	req := &domain.TrainingRequest{
		FromUID:          fromUID,
		ToUID:            toUID,
		StartEpochMillis: startEpochMillis,
		EndEpochMillis:   endEpochMillis,
		Status:           domain.TrainingRequestPending,
	}

	if err := c.store.CreateTrainingRequest(req); err != nil {
		return nil, fmt.Errorf("无法创建训练请求: %w", err)
	}

	return req, nil
}

// AcceptRequest 把 pending 的请求置为 accepted，并为双方各生成一条镜像的预约记录
// 距离发送请求可能已经过去了一段时间，接受前必须重新检查双方的冲突
func (c *Coordinator) AcceptRequest(requestID int64) (*domain.TrainingRequest, error) {
	req, err := c.loadPendingRequest(requestID)
	if err != nil {
		return nil, err
	}

	if err := c.ensureNoConflict(req.FromUID, req.StartEpochMillis, req.EndEpochMillis); err != nil {
		return nil, err
	}
	if err := c.ensureNoConflict(req.ToUID, req.StartEpochMillis, req.EndEpochMillis); err != nil {
		return nil, err
	}

	req.Status = domain.TrainingRequestAccepted

	first := &domain.Booking{
		OwnerUID:         req.FromUID,
		PartnerUID:       req.ToUID,
		RequestID:        req.ID,
		StartEpochMillis: req.StartEpochMillis,
		EndEpochMillis:   req.EndEpochMillis,
	}
	second := &domain.Booking{
		OwnerUID:         req.ToUID,
		PartnerUID:       req.FromUID,
		RequestID:        req.ID,
		StartEpochMillis: req.StartEpochMillis,
		EndEpochMillis:   req.EndEpochMillis,
	}

	if err := c.store.AcceptTrainingRequest(req, first, second); err != nil {
		if errors.Is(err, ErrBookingConflict) {
			return nil, ErrBookingConflict
		}
		return nil, fmt.Errorf("无法接受训练请求: %w", err)
	}

	return req, nil
}

// DeclineRequest 把 pending 的请求置为 declined，无条件执行，不做冲突检查，也不会产生预约
func (c *Coordinator) DeclineRequest(requestID int64) (*domain.TrainingRequest, error) {
	req, err := c.loadPendingRequest(requestID)
	if err != nil {
		return nil, err
	}

	req.Status = domain.TrainingRequestDeclined

	if err := c.store.DeclineTrainingRequest(req); err != nil {
		return nil, fmt.Errorf("无法拒绝训练请求: %w", err)
	}

	return req, nil
}

func (c *Coordinator) loadPendingRequest(requestID int64) (*domain.TrainingRequest, error) {
	req, err := c.store.GetTrainingRequestByID(requestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("无法读取训练请求: %w", err)
	}

	// accepted 和 declined 是终态，不允许再次流转
	if req.Status != domain.TrainingRequestPending {
		return nil, ErrRequestAlreadyHandled
	}

	return req, nil
}

// ensureNoConflict 检查 [startEpochMillis, endEpochMillis) 是否与该用户已有的预约重叠
// 冲突只针对预约记录检查，pending 状态的请求之间允许任意重叠
func (c *Coordinator) ensureNoConflict(ownerUID, startEpochMillis, endEpochMillis int64) error {
	bookings, err := c.store.GetBookingsByOwner(ownerUID)
	if err != nil {
		return fmt.Errorf("无法读取用户预约: %w", err)
	}

	for _, b := range bookings {
		if Overlaps(startEpochMillis, endEpochMillis, b.StartEpochMillis, b.EndEpochMillis) {
			return ErrBookingConflict
		}
	}

	return nil
}
