package validator

import (
	"log"

	"tradelab_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора. Правила построены на закрытых
// наборах значений из models/statuses.go.
func registerCustomRules(v *validator.Validate) {

	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Критическая ошибка конфигурации - не запускаемся
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-client-status", validateClientStatus)
	mustRegister("is-client-payment-status", validateClientPaymentStatus)
	mustRegister("is-course-level", validateCourseLevel)
	mustRegister("is-billing-period", validateBillingPeriod)
	mustRegister("is-booking-status", validateBookingStatus)
	mustRegister("is-session-type", validateSessionType)
	mustRegister("is-payment-status", validatePaymentStatus)
	mustRegister("is-payment-method", validatePaymentMethod)
	mustRegister("is-payment-type", validatePaymentType)
	mustRegister("is-contact-status", validateContactStatus)
	mustRegister("is-subscriber-status", validateSubscriberStatus)
}

// Пустые значения пропускаем: за обязательность отвечает 'required'.

func validateClientStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ClientStatus(value).Valid()
}

func validateClientPaymentStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ClientPaymentStatus(value).Valid()
}

func validateCourseLevel(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.CourseLevel(value).Valid()
}

func validateBillingPeriod(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.BillingPeriod(value).Valid()
}

func validateBookingStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.BookingStatus(value).Valid()
}

func validateSessionType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.SessionType(value).Valid()
}

func validatePaymentStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.PaymentStatus(value).Valid()
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.PaymentMethod(value).Valid()
}

func validatePaymentType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.PaymentType(value).Valid()
}

func validateContactStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ContactStatus(value).Valid()
}

func validateSubscriberStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.SubscriberStatus(value).Valid()
}
