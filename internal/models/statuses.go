package models

type ClientStatus string
type ClientPaymentStatus string
type CourseLevel string
type BillingPeriod string
type BookingStatus string
type SessionType string
type PaymentStatus string
type PaymentMethod string
type PaymentType string
type ContactStatus string
type SubscriberStatus string

const (
	ClientStatusActive    ClientStatus = "active"
	ClientStatusInactive  ClientStatus = "inactive"
	ClientStatusSuspended ClientStatus = "suspended"

	ClientPaymentPending   ClientPaymentStatus = "pending"
	ClientPaymentCompleted ClientPaymentStatus = "completed"
	ClientPaymentFailed    ClientPaymentStatus = "failed"
	ClientPaymentRefunded  ClientPaymentStatus = "refunded"

	CourseLevelBeginner     CourseLevel = "beginner"
	CourseLevelIntermediate CourseLevel = "intermediate"
	CourseLevelAdvanced     CourseLevel = "advanced"
	CourseLevelElite        CourseLevel = "elite"

	BillingMonthly   BillingPeriod = "monthly"
	BillingQuarterly BillingPeriod = "quarterly"
	BillingAnnually  BillingPeriod = "annually"

	BookingStatusScheduled BookingStatus = "scheduled"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusNoShow    BookingStatus = "no_show"

	SessionTypeOneOnOne       SessionType = "one_on_one"
	SessionTypeGroup          SessionType = "group"
	SessionTypeStrategyReview SessionType = "strategy_review"
	SessionTypeConsultation   SessionType = "consultation"

	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
	PaymentStatusDisputed  PaymentStatus = "disputed"

	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodPaypal       PaymentMethod = "paypal"
	PaymentMethodCrypto       PaymentMethod = "crypto"

	PaymentTypeCourse       PaymentType = "course"
	PaymentTypeMentorship   PaymentType = "mentorship"
	PaymentTypeConsultation PaymentType = "consultation"

	ContactStatusNew       ContactStatus = "new"
	ContactStatusContacted ContactStatus = "contacted"
	ContactStatusConverted ContactStatus = "converted"
	ContactStatusClosed    ContactStatus = "closed"

	SubscriberStatusActive       SubscriberStatus = "active"
	SubscriberStatusUnsubscribed SubscriberStatus = "unsubscribed"
	SubscriberStatusBounced      SubscriberStatus = "bounced"
)

// Closed value sets. The CHECK constraints in the model tags and the custom
// validator tags are both generated from these — keep them in sync.

func (s ClientStatus) Valid() bool {
	switch s {
	case ClientStatusActive, ClientStatusInactive, ClientStatusSuspended:
		return true
	}
	return false
}

func (s ClientPaymentStatus) Valid() bool {
	switch s {
	case ClientPaymentPending, ClientPaymentCompleted, ClientPaymentFailed, ClientPaymentRefunded:
		return true
	}
	return false
}

func (l CourseLevel) Valid() bool {
	switch l {
	case CourseLevelBeginner, CourseLevelIntermediate, CourseLevelAdvanced, CourseLevelElite:
		return true
	}
	return false
}

func (b BillingPeriod) Valid() bool {
	switch b {
	case BillingMonthly, BillingQuarterly, BillingAnnually:
		return true
	}
	return false
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusScheduled, BookingStatusCompleted, BookingStatusCancelled, BookingStatusNoShow:
		return true
	}
	return false
}

func (t SessionType) Valid() bool {
	switch t {
	case SessionTypeOneOnOne, SessionTypeGroup, SessionTypeStrategyReview, SessionTypeConsultation:
		return true
	}
	return false
}

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed,
		PaymentStatusRefunded, PaymentStatusDisputed:
		return true
	}
	return false
}

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodBankTransfer, PaymentMethodPaypal, PaymentMethodCrypto:
		return true
	}
	return false
}

func (t PaymentType) Valid() bool {
	switch t {
	case PaymentTypeCourse, PaymentTypeMentorship, PaymentTypeConsultation:
		return true
	}
	return false
}

func (s ContactStatus) Valid() bool {
	switch s {
	case ContactStatusNew, ContactStatusContacted, ContactStatusConverted, ContactStatusClosed:
		return true
	}
	return false
}

func (s SubscriberStatus) Valid() bool {
	switch s {
	case SubscriberStatusActive, SubscriberStatusUnsubscribed, SubscriberStatusBounced:
		return true
	}
	return false
}
