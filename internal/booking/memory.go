package booking

import (
	"database/sql"
	"sync"
	"time"

	"github.com/fitmate-dev/workout-partner/backend/internal/domain"
)

// MemoryStore 是 Store 的内存实现，用于测试和本地预览，不依赖数据库
type MemoryStore struct {
	mu       sync.Mutex
	requests map[int64]*domain.TrainingRequest
	bookings []*domain.Booking
	nextID   int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		requests: make(map[int64]*domain.TrainingRequest),
		bookings: make([]*domain.Booking, 0),
		nextID:   1,
	}
}

func (s *MemoryStore) GetTrainingRequestByID(id int64) (*domain.TrainingRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, exists := s.requests[id]
	if !exists {
		return nil, sql.ErrNoRows
	}

	copied := *req
	return &copied, nil
}

func (s *MemoryStore) GetBookingsByOwner(ownerUID int64) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*domain.Booking, 0)
	for _, b := range s.bookings {
		if b.OwnerUID == ownerUID {
			copied := *b
			result = append(result, &copied)
		}
	}

	return result, nil
}

func (s *MemoryStore) CreateTrainingRequest(req *domain.TrainingRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	req.ID = s.nextID
	s.nextID++
	req.UpdatedAt = time.Now()
	req.Version = 1

	copied := *req
	s.requests[req.ID] = &copied

	return nil
}

func (s *MemoryStore) AcceptTrainingRequest(req *domain.TrainingRequest, first *domain.Booking, second *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, exists := s.requests[req.ID]
	if !exists {
		return sql.ErrNoRows
	}

	// 和数据库实现一样，在"事务"内重新检查冲突
	for _, b := range s.bookings {
		if b.OwnerUID != first.OwnerUID && b.OwnerUID != second.OwnerUID {
			continue
		}
		if Overlaps(first.StartEpochMillis, first.EndEpochMillis, b.StartEpochMillis, b.EndEpochMillis) {
			return ErrBookingConflict
		}
	}

	stored.Status = domain.TrainingRequestAccepted
	stored.UpdatedAt = time.Now()
	stored.Version++
	req.UpdatedAt = stored.UpdatedAt
	req.Version = stored.Version

	for _, b := range []*domain.Booking{first, second} {
		b.ID = s.nextID
		s.nextID++
		b.CreatedAt = time.Now()
		copied := *b
		s.bookings = append(s.bookings, &copied)
	}

	return nil
}

func (s *MemoryStore) DeclineTrainingRequest(req *domain.TrainingRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, exists := s.requests[req.ID]
	if !exists {
		return sql.ErrNoRows
	}

	stored.Status = domain.TrainingRequestDeclined
	stored.UpdatedAt = time.Now()
	stored.Version++
	req.UpdatedAt = stored.UpdatedAt
	req.Version = stored.Version

	return nil
}
