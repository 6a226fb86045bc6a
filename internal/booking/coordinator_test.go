package booking

import (
	"testing"

	"github.com/fitmate-dev/workout-partner/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hourMillis = int64(60 * 60 * 1000)

func TestOverlaps(t *testing.T) {
	assert.True(t, Overlaps(0, 2*hourMillis, hourMillis, 3*hourMillis))
	assert.True(t, Overlaps(hourMillis, 3*hourMillis, 0, 2*hourMillis))
	assert.True(t, Overlaps(0, 3*hourMillis, hourMillis, 2*hourMillis))

	// 首尾相接不算冲突
	assert.False(t, Overlaps(0, hourMillis, hourMillis, 2*hourMillis))
	assert.False(t, Overlaps(hourMillis, 2*hourMillis, 0, hourMillis))
	assert.False(t, Overlaps(0, hourMillis, 2*hourMillis, 3*hourMillis))
}

func TestSendRequest(t *testing.T) {
	store := NewMemoryStore()
	c := NewCoordinator(store)

	req, err := c.SendRequest(1, 2, 0, hourMillis)

	require.NoError(t, err)
	assert.NotZero(t, req.ID)
	assert.Equal(t, int64(1), req.FromUID)
	assert.Equal(t, int64(2), req.ToUID)
	assert.Equal(t, domain.TrainingRequestPending, req.Status)

	// 此时双方都不应该有预约记录
	bookings, err := store.GetBookingsByOwner(1)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestSendRequestInvalidInterval(t *testing.T) {
	store := NewMemoryStore()
	c := NewCoordinator(store)

	_, err := c.SendRequest(1, 2, hourMillis, hourMillis)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = c.SendRequest(1, 2, 2*hourMillis, hourMillis)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	// 非法请求不应该留下任何记录
	_, err = store.GetTrainingRequestByID(1)
	assert.Error(t, err)
}

func TestSendRequestConflictsWithExistingBooking(t *testing.T) {
	store := NewMemoryStore()
	c := NewCoordinator(store)

	// 用户 1 和用户 2 已有一条预约
	req, err := c.SendRequest(1, 2, 0, 2*hourMillis)
	require.NoError(t, err)
	_, err = c.AcceptRequest(req.ID)
	require.NoError(t, err)

	// 发起方冲突
	_, err = c.SendRequest(1, 3, hourMillis, 3*hourMillis)
	assert.ErrorIs(t, err, ErrBookingConflict)

	// 接收方冲突
	_, err = c.SendRequest(3, 2, hourMillis, 3*hourMillis)
	assert.ErrorIs(t, err, ErrBookingConflict)

	// 首尾相接则允许
	_, err = c.SendRequest(1, 3, 2*hourMillis, 3*hourMillis)
	assert.NoError(t, err)
}

func TestPendingRequestsMayOverlap(t *testing.T) {
	store := NewMemoryStore()
	c := NewCoordinator(store)

	// 同一时间段可以同时向多个人发出请求，pending 之间互不冲突
	_, err := c.SendRequest(1, 2, 0, hourMillis)
	require.NoError(t, err)
	_, err = c.SendRequest(1, 3, 0, hourMillis)
	require.NoError(t, err)
	_, err = c.SendRequest(4, 1, 0, hourMillis)
	require.NoError(t, err)
}

func TestAcceptRequest(t *testing.T) {
	store := NewMemoryStore()
	c := NewCoordinator(store)

	req, err := c.SendRequest(1, 2, 0, hourMillis)
	require.NoError(t, err)

	accepted, err := c.AcceptRequest(req.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TrainingRequestAccepted, accepted.Status)

	// 双方各有一条镜像的预约记录
	mine, err := store.GetBookingsByOwner(1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	theirs, err := store.GetBookingsByOwner(2)
	require.NoError(t, err)
	require.Len(t, theirs, 1)

	assert.Equal(t, int64(2), mine[0].PartnerUID)
	assert.Equal(t, int64(1), theirs[0].PartnerUID)
	assert.Equal(t, req.ID, mine[0].RequestID)
	assert.Equal(t, req.ID, theirs[0].RequestID)
	assert.Equal(t, mine[0].StartEpochMillis, theirs[0].StartEpochMillis)
	assert.Equal(t, mine[0].EndEpochMillis, theirs[0].EndEpochMillis)
}

func TestAcceptRequestNotFound(t *testing.T) {
	store := NewMemoryStore()
	c := NewCoordinator(store)

	_, err := c.AcceptRequest(42)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestAcceptRequestAlreadyHandled(t *testing.T) {
	store := NewMemoryStore()
	c := NewCoordinator(store)

	req, err := c.SendRequest(1, 2, 0, hourMillis)
	require.NoError(t, err)
	_, err = c.AcceptRequest(req.ID)
	require.NoError(t, err)

	// 终态不允许再次流转
	_, err = c.AcceptRequest(req.ID)
	assert.ErrorIs(t, err, ErrRequestAlreadyHandled)
	_, err = c.DeclineRequest(req.ID)
	assert.ErrorIs(t, err, ErrRequestAlreadyHandled)

	// 预约不会被重复创建
	bookings, err := store.GetBookingsByOwner(1)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestAcceptRequestConflict(t *testing.T) {
	store := NewMemoryStore()
	c := NewCoordinator(store)

	// 两个重叠的 pending 请求，接受第一个之后第二个就无法接受了
	first, err := c.SendRequest(1, 2, 0, 2*hourMillis)
	require.NoError(t, err)
	second, err := c.SendRequest(3, 2, hourMillis, 3*hourMillis)
	require.NoError(t, err)

	_, err = c.AcceptRequest(first.ID)
	require.NoError(t, err)

	_, err = c.AcceptRequest(second.ID)
	assert.ErrorIs(t, err, ErrBookingConflict)

	// 冲突的请求保持 pending，不会产生预约
	stored, err := store.GetTrainingRequestByID(second.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TrainingRequestPending, stored.Status)

	bookings, err := store.GetBookingsByOwner(3)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestDeclineRequest(t *testing.T) {
	store := NewMemoryStore()
	c := NewCoordinator(store)

	req, err := c.SendRequest(1, 2, 0, hourMillis)
	require.NoError(t, err)

	declined, err := c.DeclineRequest(req.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TrainingRequestDeclined, declined.Status)

	// 拒绝不会产生预约
	for _, uid := range []int64{1, 2} {
		bookings, err := store.GetBookingsByOwner(uid)
		require.NoError(t, err)
		assert.Empty(t, bookings)
	}

	// 拒绝之后同一时间段可以被别人约走
	other, err := c.SendRequest(3, 2, 0, hourMillis)
	require.NoError(t, err)
	_, err = c.AcceptRequest(other.ID)
	assert.NoError(t, err)
}

// 拒绝请求无条件执行，即使时间段已经和别的预约冲突
func TestDeclineRequestIgnoresConflicts(t *testing.T) {
	store := NewMemoryStore()
	c := NewCoordinator(store)

	conflicting, err := c.SendRequest(1, 2, 0, 2*hourMillis)
	require.NoError(t, err)
	overlapping, err := c.SendRequest(3, 2, hourMillis, 3*hourMillis)
	require.NoError(t, err)

	_, err = c.AcceptRequest(conflicting.ID)
	require.NoError(t, err)

	_, err = c.DeclineRequest(overlapping.ID)
	assert.NoError(t, err)
}

func TestDeclineRequestNotFound(t *testing.T) {
	store := NewMemoryStore()
	c := NewCoordinator(store)

	_, err := c.DeclineRequest(42)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}
