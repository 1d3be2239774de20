package bid

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

func (m *MockJobRepository) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepository) AcceptBid(ctx context.Context, jobID, bidID, contractorID int64, amount float64, deadline time.Time) (*domain.Assignment, error) {
	args := m.Called(ctx, jobID, bidID, contractorID, amount, deadline)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Assignment), args.Error(1)
}

type MockBidRepository struct {
	mock.Mock
}

func (m *MockBidRepository) Create(ctx context.Context, b *domain.Bid) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 77
	}
	return args.Error(0)
}

func (m *MockBidRepository) GetByJobAndID(ctx context.Context, jobID, bidID int64) (*domain.Bid, error) {
	args := m.Called(ctx, jobID, bidID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bid), args.Error(1)
}

func (m *MockBidRepository) ListByJob(ctx context.Context, jobID int64) ([]domain.Bid, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bid), args.Error(1)
}

func (m *MockBidRepository) HasBid(ctx context.Context, jobID, contractorID int64) (bool, error) {
	args := m.Called(ctx, jobID, contractorID)
	return args.Bool(0), args.Error(1)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyBidAccepted(ctx context.Context, contractorID, jobID, bidID int64) error {
	args := m.Called(ctx, contractorID, jobID, bidID)
	return args.Error(0)
}

func openJob(id, customerID int64) *domain.Job {
	return &domain.Job{ID: id, CustomerID: customerID, Status: domain.JobOpen}
}

func TestService_PlaceBid_Success(t *testing.T) {
	mockJobs := new(MockJobRepository)
	mockBids := new(MockBidRepository)

	mockJobs.On("GetByID", mock.Anything, int64(1)).Return(openJob(1, 5), nil)
	mockBids.On("HasBid", mock.Anything, int64(1), int64(20)).Return(false, nil)
	mockBids.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockJobs, mockBids, new(MockNotificationSender))

	b, err := service.PlaceBid(context.Background(), 1, 20, PlaceBidRequest{Amount: 500, Notes: "Can start Monday"})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), b.JobID)
	assert.Equal(t, int64(20), b.ContractorID)
	assert.Equal(t, 500.0, b.Amount)
	assert.False(t, b.Accepted)
}

func TestService_PlaceBid_NonPositiveAmount(t *testing.T) {
	service := NewService(new(MockJobRepository), new(MockBidRepository), new(MockNotificationSender))

	_, err := service.PlaceBid(context.Background(), 1, 20, PlaceBidRequest{Amount: 0})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_PlaceBid_JobNotOpen(t *testing.T) {
	mockJobs := new(MockJobRepository)
	mockBids := new(MockBidRepository)

	job := &domain.Job{ID: 1, CustomerID: 5, Status: domain.JobAssigned}
	mockJobs.On("GetByID", mock.Anything, int64(1)).Return(job, nil)

	service := NewService(mockJobs, mockBids, new(MockNotificationSender))

	_, err := service.PlaceBid(context.Background(), 1, 20, PlaceBidRequest{Amount: 500})

	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestService_PlaceBid_DuplicateContractor(t *testing.T) {
	mockJobs := new(MockJobRepository)
	mockBids := new(MockBidRepository)

	mockJobs.On("GetByID", mock.Anything, int64(1)).Return(openJob(1, 5), nil)
	mockBids.On("HasBid", mock.Anything, int64(1), int64(20)).Return(true, nil)

	service := NewService(mockJobs, mockBids, new(MockNotificationSender))

	_, err := service.PlaceBid(context.Background(), 1, 20, PlaceBidRequest{Amount: 450})

	assert.ErrorIs(t, err, ErrConflict)
}

func TestService_ListBids_ForbiddenForOtherCustomer(t *testing.T) {
	mockJobs := new(MockJobRepository)
	mockBids := new(MockBidRepository)

	mockJobs.On("GetByID", mock.Anything, int64(1)).Return(openJob(1, 5), nil)

	service := NewService(mockJobs, mockBids, new(MockNotificationSender))

	_, err := service.ListBids(context.Background(), 1, 99, domain.RoleCustResidential)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_ListBids_AdminAllowed(t *testing.T) {
	mockJobs := new(MockJobRepository)
	mockBids := new(MockBidRepository)

	mockJobs.On("GetByID", mock.Anything, int64(1)).Return(openJob(1, 5), nil)
	mockBids.On("ListByJob", mock.Anything, int64(1)).Return([]domain.Bid{{ID: 3, JobID: 1}}, nil)

	service := NewService(mockJobs, mockBids, new(MockNotificationSender))

	bids, err := service.ListBids(context.Background(), 1, 99, domain.RoleAdmin)

	assert.NoError(t, err)
	assert.Len(t, bids, 1)
}

func TestService_AcceptBid_Success(t *testing.T) {
	mockJobs := new(MockJobRepository)
	mockBids := new(MockBidRepository)
	mockNotifs := new(MockNotificationSender)

	b := &domain.Bid{ID: 3, JobID: 1, ContractorID: 20, Amount: 500}
	assignment := &domain.Assignment{ID: 8, JobID: 1, ContractorID: 20}
	payType := domain.PayFixed
	payRate := 500.0
	deadline := time.Now().Add(72 * time.Hour)
	updated := &domain.Job{
		ID: 1, CustomerID: 5, Status: domain.JobAssigned,
		BookingDeadline:   &deadline,
		ContractorPayType: &payType,
		ContractorPayRate: &payRate,
	}

	mockJobs.On("GetByID", mock.Anything, int64(1)).Return(openJob(1, 5), nil).Once()
	mockBids.On("GetByJobAndID", mock.Anything, int64(1), int64(3)).Return(b, nil)
	mockJobs.On("AcceptBid", mock.Anything, int64(1), int64(3), int64(20), 500.0, mock.Anything).Return(assignment, nil)
	mockNotifs.On("NotifyBidAccepted", mock.Anything, int64(20), int64(1), int64(3)).Return(nil)
	mockJobs.On("GetByID", mock.Anything, int64(1)).Return(updated, nil)

	service := NewService(mockJobs, mockBids, mockNotifs)

	res, err := service.AcceptBid(context.Background(), 1, 3, 5, domain.RoleCustResidential)

	assert.NoError(t, err)
	assert.True(t, res.Bid.Accepted)
	assert.Equal(t, domain.JobAssigned, res.Job.Status)
	assert.Equal(t, domain.PayFixed, *res.Job.ContractorPayType)
	assert.Equal(t, 500.0, *res.Job.ContractorPayRate)

	// The repo was handed a deadline 72h out from now.
	passed := mockJobs.Calls[1].Arguments.Get(5).(time.Time)
	assert.WithinDuration(t, time.Now().Add(72*time.Hour), passed, 2*time.Second)

	mockNotifs.AssertCalled(t, "NotifyBidAccepted", mock.Anything, int64(20), int64(1), int64(3))
}

func TestService_AcceptBid_ForbiddenForNonOwner(t *testing.T) {
	mockJobs := new(MockJobRepository)
	mockBids := new(MockBidRepository)

	mockJobs.On("GetByID", mock.Anything, int64(1)).Return(openJob(1, 5), nil)

	service := NewService(mockJobs, mockBids, new(MockNotificationSender))

	_, err := service.AcceptBid(context.Background(), 1, 3, 99, domain.RoleCustResidential)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_AcceptBid_AlreadyAccepted(t *testing.T) {
	mockJobs := new(MockJobRepository)
	mockBids := new(MockBidRepository)

	mockJobs.On("GetByID", mock.Anything, int64(1)).Return(openJob(1, 5), nil)
	accepted := &domain.Bid{ID: 3, JobID: 1, ContractorID: 20, Amount: 500, Accepted: true}
	mockBids.On("GetByJobAndID", mock.Anything, int64(1), int64(3)).Return(accepted, nil)

	service := NewService(mockJobs, mockBids, new(MockNotificationSender))

	_, err := service.AcceptBid(context.Background(), 1, 3, 5, domain.RoleCustResidential)

	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestService_AcceptBid_BidNotFound(t *testing.T) {
	mockJobs := new(MockJobRepository)
	mockBids := new(MockBidRepository)

	mockJobs.On("GetByID", mock.Anything, int64(1)).Return(openJob(1, 5), nil)
	mockBids.On("GetByJobAndID", mock.Anything, int64(1), int64(3)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockJobs, mockBids, new(MockNotificationSender))

	_, err := service.AcceptBid(context.Background(), 1, 3, 5, domain.RoleCustResidential)

	assert.ErrorIs(t, err, ErrNotFound)
}
