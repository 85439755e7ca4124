package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPaymentItemRefValidate(t *testing.T) {
	// Курс и менторство требуют id строки каталога
	assert.Error(t, PaymentItemRef{Type: PaymentTypeCourse}.Validate())
	assert.Error(t, PaymentItemRef{Type: PaymentTypeMentorship}.Validate())
	assert.NoError(t, PaymentItemRef{Type: PaymentTypeCourse, ID: "some-id"}.Validate())
	assert.NoError(t, PaymentItemRef{Type: PaymentTypeMentorship, ID: "some-id"}.Validate())

	// Консультация каталога не имеет
	assert.NoError(t, PaymentItemRef{Type: PaymentTypeConsultation}.Validate())

	// Неизвестный тип - нарушение домена по форме
	assert.Error(t, PaymentItemRef{Type: "donation", ID: "some-id"}.Validate())
}

func TestPaymentItemRefNeedsCatalogLookup(t *testing.T) {
	assert.True(t, PaymentItemRef{Type: PaymentTypeCourse, ID: "x"}.NeedsCatalogLookup())
	assert.True(t, PaymentItemRef{Type: PaymentTypeMentorship, ID: "x"}.NeedsCatalogLookup())
	assert.False(t, PaymentItemRef{Type: PaymentTypeConsultation}.NeedsCatalogLookup())
}

func TestPaymentItemRef(t *testing.T) {
	itemID := "course-1"
	p := &Payment{PaymentType: PaymentTypeCourse, ItemID: &itemID}
	ref := p.ItemRef()
	assert.Equal(t, PaymentTypeCourse, ref.Type)
	assert.Equal(t, "course-1", ref.ID)

	consultation := &Payment{PaymentType: PaymentTypeConsultation}
	assert.Empty(t, consultation.ItemRef().ID)
}

func TestMonthKey(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	mid := time.Date(2026, time.August, 17, 23, 45, 0, 0, loc)

	key := MonthKey(mid)
	assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), key)

	// Нормализация идемпотентна
	assert.Equal(t, key, MonthKey(key))
}
