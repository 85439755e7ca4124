package auth

import "errors"

// ErrDenied возвращается когда операция не разрешена policy-таблицей.
var ErrDenied = errors.New("operation denied by row-level policy")

type Entity string
type Action string
type Predicate int

const (
	EntityClient     Entity = "clients"
	EntityCourse     Entity = "courses"
	EntityMentorship Entity = "mentorship_programs"
	EntityBooking    Entity = "bookings"
	EntityPayment    Entity = "payments"
	EntityContact    Entity = "contact_submissions"
	EntitySession    Entity = "user_sessions"
	EntityNewsletter Entity = "newsletter_subscribers"
	EntityPerform    Entity = "trading_performance"

	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
)

const (
	// PredicateNone - безусловное разрешение
	PredicateNone Predicate = iota
	// PredicateOwnerMatch - client id строки должен совпадать с вызывающим
	PredicateOwnerMatch
	// PredicateActiveOnly - только строки каталога с is_active = true
	PredicateActiveOnly
)

// Rule - одна строка policy-таблицы: кому и при каком предикате
// разрешена операция.
type Rule struct {
	MinCapability Capability
	Predicate     Predicate
}

// RowAttrs - атрибуты строки, нужные предикатам.
type RowAttrs struct {
	OwnerID  string
	IsActive bool
}

// Policies - полная policy-таблица. Операция, которой здесь нет,
// запрещена всем. Ровно два уровня доступа; у сессий и вовсе нет
// caller-facing операций - они пишутся самим приложением при логине.
var Policies = map[Entity]map[Action]Rule{
	EntityClient: {
		ActionRead:   {MinCapability: CapabilityAuthenticated, Predicate: PredicateOwnerMatch},
		ActionUpdate: {MinCapability: CapabilityAuthenticated, Predicate: PredicateOwnerMatch},
	},
	EntityCourse: {
		ActionRead: {MinCapability: CapabilityAnonymous, Predicate: PredicateActiveOnly},
	},
	EntityMentorship: {
		ActionRead: {MinCapability: CapabilityAnonymous, Predicate: PredicateActiveOnly},
	},
	EntityBooking: {
		ActionRead:   {MinCapability: CapabilityAuthenticated, Predicate: PredicateOwnerMatch},
		ActionCreate: {MinCapability: CapabilityAuthenticated, Predicate: PredicateOwnerMatch},
	},
	EntityPayment: {
		ActionRead: {MinCapability: CapabilityAuthenticated, Predicate: PredicateOwnerMatch},
	},
	EntityContact: {
		ActionCreate: {MinCapability: CapabilityAnonymous, Predicate: PredicateNone},
	},
	EntityNewsletter: {
		ActionCreate: {MinCapability: CapabilityAnonymous, Predicate: PredicateNone},
	},
	EntityPerform: {
		ActionRead: {MinCapability: CapabilityAuthenticated, Predicate: PredicateOwnerMatch},
	},
}

// Authorize решает allow/deny для операции над строкой.
// Вызывается сервисами до обращения к репозиторию.
func Authorize(id Identity, entity Entity, action Action, row RowAttrs) error {
	rules, ok := Policies[entity]
	if !ok {
		return ErrDenied
	}
	rule, ok := rules[action]
	if !ok {
		return ErrDenied
	}

	if id.Capability < rule.MinCapability {
		return ErrDenied
	}

	switch rule.Predicate {
	case PredicateNone:
		return nil
	case PredicateOwnerMatch:
		if !id.Owns(row.OwnerID) {
			return ErrDenied
		}
		return nil
	case PredicateActiveOnly:
		if !row.IsActive {
			return ErrDenied
		}
		return nil
	default:
		return ErrDenied
	}
}
