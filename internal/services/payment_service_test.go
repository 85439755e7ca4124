package services

import (
	"testing"

	"tradelab_backend/internal/appErrors"
	"tradelab_backend/internal/auth"
	"tradelab_backend/internal/dto"
	"tradelab_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type paymentFixture struct {
	paymentRepo *mockPaymentRepo
	clientRepo  *mockClientRepo
	catalogRepo *mockCatalogRepo
	svc         PaymentService
	client      *models.Client
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	paymentRepo := newMockPaymentRepo()
	clientRepo := newMockClientRepo()
	catalogRepo := newMockCatalogRepo()

	client := &models.Client{Name: "Payer", Email: "payer@test.com", PaymentStatus: models.ClientPaymentPending}
	require.NoError(t, clientRepo.Create(client))

	course := &models.Course{Name: "Advanced Price Action", Price: 997, Level: models.CourseLevelAdvanced, IsActive: true}
	course.ID = "course-1"
	catalogRepo.courses["course-1"] = course

	return &paymentFixture{
		paymentRepo: paymentRepo,
		clientRepo:  clientRepo,
		catalogRepo: catalogRepo,
		svc:         NewPaymentService(paymentRepo, clientRepo, catalogRepo),
		client:      client,
	}
}

func TestPaymentService_RecordCoursePayment(t *testing.T) {
	f := newPaymentFixture(t)

	payment, err := f.svc.Record(&dto.RecordPaymentRequest{
		ClientID:      f.client.ID,
		Amount:        997,
		TransactionID: "txn_1",
		PaymentType:   "course",
		ItemID:        "course-1",
		Status:        "completed",
	})
	require.NoError(t, err)

	assert.Equal(t, models.PaymentStatusCompleted, payment.Status)
	assert.Equal(t, "USD", payment.Currency)
	require.NotNil(t, payment.ItemID)
	assert.Equal(t, "course-1", *payment.ItemID)

	// Завершенный платеж двигает биллинговый статус клиента
	assert.Equal(t, models.ClientPaymentCompleted, f.client.PaymentStatus)
}

func TestPaymentService_RecordUnknownClient(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.svc.Record(&dto.RecordPaymentRequest{
		ClientID:      "no-such-client",
		Amount:        100,
		TransactionID: "txn_2",
		PaymentType:   "consultation",
	})
	require.Error(t, err)
	appErr, ok := appErrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.CodeReferentialViolation, appErr.Code)
}

func TestPaymentService_RecordInvalidItemRef(t *testing.T) {
	f := newPaymentFixture(t)

	// Курс без item id - нарушение формы ссылки
	_, err := f.svc.Record(&dto.RecordPaymentRequest{
		ClientID:      f.client.ID,
		Amount:        997,
		TransactionID: "txn_3",
		PaymentType:   "course",
	})
	require.Error(t, err)
	appErr, ok := appErrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.CodeDomainViolation, appErr.Code)

	// Ссылка на несуществующий курс
	_, err = f.svc.Record(&dto.RecordPaymentRequest{
		ClientID:      f.client.ID,
		Amount:        997,
		TransactionID: "txn_4",
		PaymentType:   "course",
		ItemID:        "no-such-course",
	})
	require.Error(t, err)
	appErr, ok = appErrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.CodeInvalidItemRef, appErr.Code)
}

func TestPaymentService_RecordConsultationWithoutItem(t *testing.T) {
	f := newPaymentFixture(t)

	payment, err := f.svc.Record(&dto.RecordPaymentRequest{
		ClientID:      f.client.ID,
		Amount:        150,
		TransactionID: "txn_5",
		PaymentType:   "consultation",
	})
	require.NoError(t, err)
	assert.Nil(t, payment.ItemID)
	assert.Equal(t, models.PaymentStatusPending, payment.Status)
}

func TestPaymentService_DuplicateTransactionID(t *testing.T) {
	f := newPaymentFixture(t)

	req := &dto.RecordPaymentRequest{
		ClientID:      f.client.ID,
		Amount:        150,
		TransactionID: "txn_6",
		PaymentType:   "consultation",
	}
	_, err := f.svc.Record(req)
	require.NoError(t, err)

	_, err = f.svc.Record(req)
	require.Error(t, err)
	appErr, ok := appErrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.CodeUniquenessViolation, appErr.Code)
}

func TestPaymentService_OwnerScopedRead(t *testing.T) {
	f := newPaymentFixture(t)

	payment, err := f.svc.Record(&dto.RecordPaymentRequest{
		ClientID:      f.client.ID,
		Amount:        150,
		TransactionID: "txn_7",
		PaymentType:   "consultation",
	})
	require.NoError(t, err)

	owner := auth.Authenticated(f.client.ID)
	got, err := f.svc.Get(owner, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, payment.ID, got.ID)

	_, err = f.svc.Get(auth.Authenticated("someone-else"), payment.ID)
	require.Error(t, err)
	appErr, ok := appErrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.CodeAuthorizationDenied, appErr.Code)
}

func TestPaymentService_RefundRules(t *testing.T) {
	f := newPaymentFixture(t)

	pending, err := f.svc.Record(&dto.RecordPaymentRequest{
		ClientID:      f.client.ID,
		Amount:        150,
		TransactionID: "txn_8",
		PaymentType:   "consultation",
	})
	require.NoError(t, err)

	// pending не возвращается
	err = f.svc.Refund(pending.ID, 150, "changed mind")
	require.Error(t, err)
	appErr, ok := appErrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.CodeInvalidOperation, appErr.Code)

	completed, err := f.svc.Record(&dto.RecordPaymentRequest{
		ClientID:      f.client.ID,
		Amount:        300,
		TransactionID: "txn_9",
		PaymentType:   "consultation",
		Status:        "completed",
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Refund(completed.ID, 300, "goodwill"))
	got, _ := f.paymentRepo.FindByID(completed.ID)
	assert.Equal(t, models.PaymentStatusRefunded, got.Status)
	assert.Equal(t, float64(300), got.RefundAmount)
	assert.Equal(t, "goodwill", got.RefundReason)
	require.NotNil(t, got.RefundDate)
}
