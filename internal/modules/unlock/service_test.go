package unlock

import (
	"context"
	"testing"
	"time"

	"tradehub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) GetWithCustomer(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

type MockUnlockRepository struct {
	mock.Mock
}

func (m *MockUnlockRepository) Create(ctx context.Context, u *domain.JobUnlock) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 55
	}
	return args.Error(0)
}

func (m *MockUnlockRepository) Exists(ctx context.Context, jobID, contractorID int64) (bool, error) {
	args := m.Called(ctx, jobID, contractorID)
	return args.Bool(0), args.Error(1)
}

type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Subscription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

func ptr(v float64) *float64 { return &v }

func jobWithFee(fee float64) *domain.Job {
	return &domain.Job{
		ID:         1,
		CustomerID: 5,
		Status:     domain.JobOpen,
		UnlockFee:  ptr(fee),
		Customer:   &domain.User{ID: 5, Phone: "+44 7700 900200", Email: "jane@homemail.co.uk"},
	}
}

func TestService_Unlock_NonSubscriberPaysFee(t *testing.T) {
	mockJobs := new(MockJobRepository)
	mockUnlocks := new(MockUnlockRepository)
	mockSubs := new(MockSubscriptionRepository)

	mockJobs.On("GetWithCustomer", mock.Anything, int64(1)).Return(jobWithFee(15), nil)
	mockUnlocks.On("Exists", mock.Anything, int64(1), int64(20)).Return(false, nil)
	mockSubs.On("GetByUserID", mock.Anything, int64(20)).Return(nil, nil)
	mockUnlocks.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockJobs, mockUnlocks, mockSubs)

	res, err := service.Unlock(context.Background(), 1, 20)

	assert.NoError(t, err)
	assert.Equal(t, 15.0, res.Unlock.PaidAmount)
	assert.NotNil(t, res.Job.Customer)
	assert.Equal(t, "+44 7700 900200", res.Contact.Phone)
	assert.Equal(t, "jane@homemail.co.uk", res.Contact.Email)
}

func TestService_Unlock_ActiveSubscriberPaysNothing(t *testing.T) {
	mockJobs := new(MockJobRepository)
	mockUnlocks := new(MockUnlockRepository)
	mockSubs := new(MockSubscriptionRepository)

	sub := &domain.Subscription{
		UserID:  20,
		Type:    domain.SubscriptionMonthly,
		EndDate: time.Now().Add(10 * 24 * time.Hour),
		Active:  true,
	}

	mockJobs.On("GetWithCustomer", mock.Anything, int64(1)).Return(jobWithFee(15), nil)
	mockUnlocks.On("Exists", mock.Anything, int64(1), int64(20)).Return(false, nil)
	mockSubs.On("GetByUserID", mock.Anything, int64(20)).Return(sub, nil)
	mockUnlocks.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockJobs, mockUnlocks, mockSubs)

	res, err := service.Unlock(context.Background(), 1, 20)

	assert.NoError(t, err)
	assert.Equal(t, 0.0, res.Unlock.PaidAmount)
}

func TestService_Unlock_LapsedSubscriberPaysFee(t *testing.T) {
	mockJobs := new(MockJobRepository)
	mockUnlocks := new(MockUnlockRepository)
	mockSubs := new(MockSubscriptionRepository)

	lapsed := &domain.Subscription{
		UserID:  20,
		Type:    domain.SubscriptionMonthly,
		EndDate: time.Now().Add(-24 * time.Hour),
		Active:  true,
	}

	mockJobs.On("GetWithCustomer", mock.Anything, int64(1)).Return(jobWithFee(15), nil)
	mockUnlocks.On("Exists", mock.Anything, int64(1), int64(20)).Return(false, nil)
	mockSubs.On("GetByUserID", mock.Anything, int64(20)).Return(lapsed, nil)
	mockUnlocks.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockJobs, mockUnlocks, mockSubs)

	res, err := service.Unlock(context.Background(), 1, 20)

	assert.NoError(t, err)
	assert.Equal(t, 15.0, res.Unlock.PaidAmount)
}

func TestService_Unlock_RepeatUnlockConflicts(t *testing.T) {
	mockJobs := new(MockJobRepository)
	mockUnlocks := new(MockUnlockRepository)
	mockSubs := new(MockSubscriptionRepository)

	mockJobs.On("GetWithCustomer", mock.Anything, int64(1)).Return(jobWithFee(15), nil)
	mockUnlocks.On("Exists", mock.Anything, int64(1), int64(20)).Return(true, nil)

	service := NewService(mockJobs, mockUnlocks, mockSubs)

	_, err := service.Unlock(context.Background(), 1, 20)

	assert.ErrorIs(t, err, ErrConflict)
}

func TestService_Unlock_JobWithoutFeeIsFree(t *testing.T) {
	mockJobs := new(MockJobRepository)
	mockUnlocks := new(MockUnlockRepository)
	mockSubs := new(MockSubscriptionRepository)

	j := &domain.Job{ID: 1, CustomerID: 5, Status: domain.JobOpen, Customer: &domain.User{ID: 5}}
	mockJobs.On("GetWithCustomer", mock.Anything, int64(1)).Return(j, nil)
	mockUnlocks.On("Exists", mock.Anything, int64(1), int64(20)).Return(false, nil)
	mockSubs.On("GetByUserID", mock.Anything, int64(20)).Return(nil, nil)
	mockUnlocks.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockJobs, mockUnlocks, mockSubs)

	res, err := service.Unlock(context.Background(), 1, 20)

	assert.NoError(t, err)
	assert.Equal(t, 0.0, res.Unlock.PaidAmount)
}

func TestService_Unlock_JobNotFound(t *testing.T) {
	mockJobs := new(MockJobRepository)

	mockJobs.On("GetWithCustomer", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockJobs, new(MockUnlockRepository), new(MockSubscriptionRepository))

	_, err := service.Unlock(context.Background(), 9, 20)

	assert.ErrorIs(t, err, ErrNotFound)
}
