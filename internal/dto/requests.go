package dto

import "time"

// CreateClientRequest - регистрация клиента. Identity уже выдана внешним
// провайдером; здесь заводится строка в хранилище.
type CreateClientRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=255"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"max=50"`
	SelectedPackage string `json:"selected_package" validate:"max=255"`
}

// UpdateClientRequest - частичное обновление собственной записи.
type UpdateClientRequest struct {
	Name            *string `json:"name" validate:"omitempty,min=2,max=255"`
	Phone           *string `json:"phone" validate:"omitempty,max=50"`
	SelectedPackage *string `json:"selected_package" validate:"omitempty,max=255"`
	Notes           *string `json:"notes"`
}

// CreateBookingRequest - запись на сессию.
type CreateBookingRequest struct {
	SessionDate     time.Time `json:"session_date" validate:"required"`
	SessionType     string    `json:"session_type" validate:"required,is-session-type"`
	DurationMinutes int       `json:"duration_minutes" validate:"omitempty,min=15,max=480"`
	Notes           string    `json:"notes"`
}

// RecordPaymentRequest - фиксация платежа, пришедшего из шлюза.
type RecordPaymentRequest struct {
	ClientID        string  `json:"client_id" validate:"required,uuid"`
	Amount          float64 `json:"amount" validate:"required"`
	Currency        string  `json:"currency" validate:"omitempty,len=3"`
	TransactionID   string  `json:"transaction_id" validate:"required"`
	PaymentIntentID string  `json:"payment_intent_id"`
	PaymentMethod   string  `json:"payment_method" validate:"omitempty,is-payment-method"`
	PaymentType     string  `json:"payment_type" validate:"required,is-payment-type"`
	ItemID          string  `json:"item_id" validate:"omitempty,uuid"`
	Status          string  `json:"status" validate:"omitempty,is-payment-status"`
}

// ContactRequest - заявка из контактной формы.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"max=50"`
	Subject string `json:"subject" validate:"max=255"`
	Message string `json:"message" validate:"required,min=10"`
}

// SubscribeRequest - подписка на рассылку.
type SubscribeRequest struct {
	Email       string         `json:"email" validate:"required,email"`
	Preferences map[string]any `json:"preferences"`
}

// RecordPerformanceRequest - месячные метрики торговли клиента.
type RecordPerformanceRequest struct {
	ClientID        string    `json:"client_id" validate:"required,uuid"`
	Month           time.Time `json:"month" validate:"required"`
	TotalTrades     int       `json:"total_trades" validate:"min=0"`
	WinningTrades   int       `json:"winning_trades" validate:"min=0"`
	LosingTrades    int       `json:"losing_trades" validate:"min=0"`
	TotalPips       float64   `json:"total_pips"`
	ProfitLoss      float64   `json:"profit_loss"`
	WinRate         float64   `json:"win_rate" validate:"min=0,max=100"`
	RiskRewardRatio float64   `json:"risk_reward_ratio" validate:"min=0"`
	MaxDrawdown     float64   `json:"max_drawdown" validate:"min=0,max=100"`
}
