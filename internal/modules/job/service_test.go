package job

import (
	"context"
	"testing"

	"tradehub/internal/domain"
	"tradehub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) Create(ctx context.Context, j *domain.Job) error {
	args := m.Called(ctx, j)
	if j != nil {
		j.ID = 101
	}
	return args.Error(0)
}

func (m *MockJobRepository) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepository) GetWithCustomer(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepository) List(ctx context.Context, limit, offset int) ([]domain.Job, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepository) SetQuote(ctx context.Context, jobID int64, p repository.QuoteParams) error {
	args := m.Called(ctx, jobID, p)
	return args.Error(0)
}

func (m *MockJobRepository) AcceptQuote(ctx context.Context, jobID int64) error {
	args := m.Called(ctx, jobID)
	return args.Error(0)
}

func (m *MockJobRepository) UpdateStatus(ctx context.Context, jobID int64, status domain.JobStatus) error {
	args := m.Called(ctx, jobID, status)
	return args.Error(0)
}

type MockUnlockRepository struct {
	mock.Mock
}

func (m *MockUnlockRepository) Exists(ctx context.Context, jobID, contractorID int64) (bool, error) {
	args := m.Called(ctx, jobID, contractorID)
	return args.Bool(0), args.Error(1)
}

type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) GetByJobID(ctx context.Context, jobID int64) (*domain.Assignment, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Assignment), args.Error(1)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyQuoteCreated(ctx context.Context, customerID, jobID int64, amount float64) error {
	args := m.Called(ctx, customerID, jobID, amount)
	return args.Error(0)
}

func newTestService(jobs *MockJobRepository, unlocks *MockUnlockRepository, assignments *MockAssignmentRepository, notifs *MockNotificationSender) *Service {
	if jobs == nil {
		jobs = new(MockJobRepository)
	}
	if unlocks == nil {
		unlocks = new(MockUnlockRepository)
	}
	if assignments == nil {
		assignments = new(MockAssignmentRepository)
	}
	if notifs == nil {
		notifs = new(MockNotificationSender)
	}
	return NewService(jobs, unlocks, assignments, notifs)
}

func ptr(v float64) *float64 { return &v }

func TestService_Create_DefaultsToOpen(t *testing.T) {
	mockJobs := new(MockJobRepository)
	mockJobs.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(mockJobs, nil, nil, nil)

	j, err := service.Create(context.Background(), 5, CreateJobRequest{
		Title:     "Replace kitchen consumer unit",
		Latitude:  ptr(51.5074),
		Longitude: ptr(-0.1278),
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.JobOpen, j.Status)
	assert.Equal(t, int64(5), j.CustomerID)
}

func TestService_Create_Draft(t *testing.T) {
	mockJobs := new(MockJobRepository)
	mockJobs.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(mockJobs, nil, nil, nil)

	j, err := service.Create(context.Background(), 5, CreateJobRequest{Title: "Fence repair", Draft: true})

	assert.NoError(t, err)
	assert.Equal(t, domain.JobDraft, j.Status)
}

func TestService_Create_EmptyTitle(t *testing.T) {
	service := newTestService(nil, nil, nil, nil)

	_, err := service.Create(context.Background(), 5, CreateJobRequest{})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Create_HalfCoordinatePair(t *testing.T) {
	service := newTestService(nil, nil, nil, nil)

	_, err := service.Create(context.Background(), 5, CreateJobRequest{
		Title:    "Fence repair",
		Latitude: ptr(51.5),
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Get_ContractorWithoutUnlockSeesNoContact(t *testing.T) {
	mockJobs := new(MockJobRepository)
	mockUnlocks := new(MockUnlockRepository)

	j := &domain.Job{ID: 1, CustomerID: 5, Status: domain.JobOpen, Customer: &domain.User{ID: 5, Phone: "+44 7700 900200"}}
	mockJobs.On("GetWithCustomer", mock.Anything, int64(1)).Return(j, nil)
	mockUnlocks.On("Exists", mock.Anything, int64(1), int64(20)).Return(false, nil)

	service := newTestService(mockJobs, mockUnlocks, nil, nil)

	got, err := service.Get(context.Background(), 1, 20, domain.RoleSubcontractor)

	assert.NoError(t, err)
	assert.Nil(t, got.Customer)
}

func TestService_Get_UnlockedContractorSeesContact(t *testing.T) {
	mockJobs := new(MockJobRepository)
	mockUnlocks := new(MockUnlockRepository)

	j := &domain.Job{ID: 1, CustomerID: 5, Status: domain.JobOpen, Customer: &domain.User{ID: 5, Phone: "+44 7700 900200"}}
	mockJobs.On("GetWithCustomer", mock.Anything, int64(1)).Return(j, nil)
	mockUnlocks.On("Exists", mock.Anything, int64(1), int64(20)).Return(true, nil)

	service := newTestService(mockJobs, mockUnlocks, nil, nil)

	got, err := service.Get(context.Background(), 1, 20, domain.RoleSubcontractor)

	assert.NoError(t, err)
	assert.NotNil(t, got.Customer)
	assert.Equal(t, "+44 7700 900200", got.Customer.Phone)
}

func TestService_Get_CustomerSeesOwnContact(t *testing.T) {
	mockJobs := new(MockJobRepository)

	j := &domain.Job{ID: 1, CustomerID: 5, Customer: &domain.User{ID: 5}}
	mockJobs.On("GetWithCustomer", mock.Anything, int64(1)).Return(j, nil)

	service := newTestService(mockJobs, nil, nil, nil)

	got, err := service.Get(context.Background(), 1, 5, domain.RoleCustResidential)

	assert.NoError(t, err)
	assert.NotNil(t, got.Customer)
}

func TestService_CreateQuote_Success(t *testing.T) {
	mockJobs := new(MockJobRepository)
	mockNotifs := new(MockNotificationSender)

	j := &domain.Job{ID: 1, CustomerID: 5, Status: domain.JobDraft}
	quoted := &domain.Job{ID: 1, CustomerID: 5, Status: domain.JobPendingQuote, QuoteAmount: ptr(1200)}

	mockJobs.On("GetByID", mock.Anything, int64(1)).Return(j, nil).Once()
	mockJobs.On("SetQuote", mock.Anything, int64(1), mock.Anything).Return(nil)
	mockNotifs.On("NotifyQuoteCreated", mock.Anything, int64(5), int64(1), 1200.0).Return(nil)
	mockJobs.On("GetByID", mock.Anything, int64(1)).Return(quoted, nil)

	service := newTestService(mockJobs, nil, nil, mockNotifs)

	got, err := service.CreateQuote(context.Background(), 1, CreateQuoteRequest{Amount: 1200, Notes: "Two floors"})

	assert.NoError(t, err)
	assert.Equal(t, domain.JobPendingQuote, got.Status)
	assert.Equal(t, 1200.0, *got.QuoteAmount)
	mockNotifs.AssertCalled(t, "NotifyQuoteCreated", mock.Anything, int64(5), int64(1), 1200.0)
}

func TestService_CreateQuote_CompletedJob(t *testing.T) {
	mockJobs := new(MockJobRepository)

	mockJobs.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{ID: 1, Status: domain.JobCompleted}, nil)

	service := newTestService(mockJobs, nil, nil, nil)

	_, err := service.CreateQuote(context.Background(), 1, CreateQuoteRequest{Amount: 1200})

	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestService_CreateQuote_NonPositiveAmount(t *testing.T) {
	service := newTestService(nil, nil, nil, nil)

	_, err := service.CreateQuote(context.Background(), 1, CreateQuoteRequest{Amount: -10})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_AcceptQuote_Success(t *testing.T) {
	mockJobs := new(MockJobRepository)

	pending := &domain.Job{ID: 1, CustomerID: 5, Status: domain.JobPendingQuote}
	open := &domain.Job{ID: 1, CustomerID: 5, Status: domain.JobOpen, QuoteAccepted: true}

	mockJobs.On("GetByID", mock.Anything, int64(1)).Return(pending, nil).Once()
	mockJobs.On("AcceptQuote", mock.Anything, int64(1)).Return(nil)
	mockJobs.On("GetByID", mock.Anything, int64(1)).Return(open, nil)

	service := newTestService(mockJobs, nil, nil, nil)

	got, err := service.AcceptQuote(context.Background(), 1, 5)

	assert.NoError(t, err)
	assert.Equal(t, domain.JobOpen, got.Status)
	assert.True(t, got.QuoteAccepted)
}

func TestService_AcceptQuote_ForbiddenForNonOwner(t *testing.T) {
	mockJobs := new(MockJobRepository)

	mockJobs.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{ID: 1, CustomerID: 5, Status: domain.JobPendingQuote}, nil)

	service := newTestService(mockJobs, nil, nil, nil)

	_, err := service.AcceptQuote(context.Background(), 1, 99)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_AcceptQuote_NotPendingQuote(t *testing.T) {
	mockJobs := new(MockJobRepository)

	mockJobs.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{ID: 1, CustomerID: 5, Status: domain.JobOpen}, nil)

	service := newTestService(mockJobs, nil, nil, nil)

	_, err := service.AcceptQuote(context.Background(), 1, 5)

	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestService_UpdateStatus_ContractorStartsWork(t *testing.T) {
	mockJobs := new(MockJobRepository)
	mockAssignments := new(MockAssignmentRepository)

	scheduled := &domain.Job{ID: 1, Status: domain.JobScheduled}
	inProgress := &domain.Job{ID: 1, Status: domain.JobInProgress}

	mockJobs.On("GetByID", mock.Anything, int64(1)).Return(scheduled, nil).Once()
	mockAssignments.On("GetByJobID", mock.Anything, int64(1)).Return(&domain.Assignment{JobID: 1, ContractorID: 20}, nil)
	mockJobs.On("UpdateStatus", mock.Anything, int64(1), domain.JobInProgress).Return(nil)
	mockJobs.On("GetByID", mock.Anything, int64(1)).Return(inProgress, nil)

	service := newTestService(mockJobs, nil, mockAssignments, nil)

	got, err := service.UpdateStatus(context.Background(), 1, 20, domain.RoleSubcontractor, domain.JobInProgress)

	assert.NoError(t, err)
	assert.Equal(t, domain.JobInProgress, got.Status)
}

func TestService_UpdateStatus_ContractorCannotCancel(t *testing.T) {
	mockJobs := new(MockJobRepository)
	mockAssignments := new(MockAssignmentRepository)

	mockJobs.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{ID: 1, Status: domain.JobScheduled}, nil)
	mockAssignments.On("GetByJobID", mock.Anything, int64(1)).Return(&domain.Assignment{JobID: 1, ContractorID: 20}, nil)

	service := newTestService(mockJobs, nil, mockAssignments, nil)

	_, err := service.UpdateStatus(context.Background(), 1, 20, domain.RoleSubcontractor, domain.JobCancelled)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_UpdateStatus_InvalidStatusValue(t *testing.T) {
	service := newTestService(nil, nil, nil, nil)

	_, err := service.UpdateStatus(context.Background(), 1, 1, domain.RoleAdmin, domain.JobStatus("BOGUS"))

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_UpdateStatus_NotFound(t *testing.T) {
	mockJobs := new(MockJobRepository)
	mockJobs.On("GetByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)

	service := newTestService(mockJobs, nil, nil, nil)

	_, err := service.UpdateStatus(context.Background(), 9, 1, domain.RoleAdmin, domain.JobCancelled)

	assert.ErrorIs(t, err, ErrNotFound)
}
