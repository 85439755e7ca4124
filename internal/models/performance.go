package models

import "time"

// TradingPerformance - метрики торговли клиента за календарный месяц.
// Одна строка на пару (client, month).
type TradingPerformance struct {
	BaseModel
	ClientID        string    `gorm:"type:uuid;not null;uniqueIndex:idx_performance_client_month"`
	Month           time.Time `gorm:"type:date;not null;uniqueIndex:idx_performance_client_month"` // первое число месяца
	TotalTrades     int       `gorm:"default:0"`
	WinningTrades   int       `gorm:"default:0"`
	LosingTrades    int       `gorm:"default:0"`
	TotalPips       float64   `gorm:"type:numeric(10,2);default:0"`
	ProfitLoss      float64   `gorm:"type:numeric(12,2);default:0"`
	WinRate         float64   `gorm:"type:numeric(5,2);default:0"` // в процентах
	RiskRewardRatio float64   `gorm:"type:numeric(5,2);default:0"`
	MaxDrawdown     float64   `gorm:"type:numeric(5,2);default:0"` // в процентах

	Client Client `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
}

func (TradingPerformance) TableName() string {
	return "trading_performance"
}

// MonthKey нормализует произвольную дату к первому числу месяца в UTC.
// Уникальный индекс (client_id, month) работает только на таких значениях.
func MonthKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
