package database

import (
	"tradelab_backend/internal/logger"
	"tradelab_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func floatPtr(f float64) *float64 { return &f }

// SeedCatalog заполняет каталоги курсов и менторских программ.
// Идемпотентно: строка ищется по имени, повторный запуск ничего
// не дублирует.
func SeedCatalog(db *gorm.DB) error {
	courses := []models.Course{
		{
			Name:          "Forex Foundations",
			Description:   "Eight-week structured introduction to the currency markets: price action, risk management and the mechanics of placing your first trades.",
			Price:         497,
			OriginalPrice: floatPtr(697),
			Duration:      "8 weeks",
			Level:         models.CourseLevelBeginner,
			Features:      datatypes.JSON(`["40+ video lessons","Weekly live Q&A","Trading plan template","Private community access"]`),
			Outcomes:      datatypes.JSON(`["Read candlestick charts with confidence","Build and follow a risk-managed trading plan","Execute trades on a demo account"]`),
			IsActive:      true,
		},
		{
			Name:        "Advanced Price Action",
			Description: "Deep dive into market structure, liquidity and multi-timeframe confluence for traders who already have screen time behind them.",
			Price:       997,
			Duration:    "12 weeks",
			Level:       models.CourseLevelAdvanced,
			Features:    datatypes.JSON(`["Market structure masterclass","Live trade breakdowns","Backtesting toolkit","1 review session included"]`),
			Outcomes:    datatypes.JSON(`["Map institutional order flow","Trade pullbacks and breakouts systematically","Journal and review trades like a professional"]`),
			IsActive:    true,
		},
		{
			Name:          "Elite Trader Program",
			Description:   "Invitation-grade curriculum covering portfolio-level risk, prop-firm evaluations and the psychology of trading at size.",
			Price:         2497,
			OriginalPrice: floatPtr(2997),
			Duration:      "6 months",
			Level:         models.CourseLevelElite,
			Features:      datatypes.JSON(`["Full curriculum access","Monthly performance audits","Prop-firm evaluation prep","Direct mentor chat"]`),
			Outcomes:      datatypes.JSON(`["Pass a funded-account evaluation","Manage drawdown at portfolio level","Operate a repeatable trading business"]`),
			IsActive:      true,
		},
	}

	programs := []models.MentorshipProgram{
		{
			Name:            "Momentum Circle",
			Description:     "Group mentorship with weekly live market prep and trade reviews.",
			Price:           199,
			BillingPeriod:   models.BillingMonthly,
			Features:        datatypes.JSON(`["Weekly group calls","Shared watchlist","Trade review channel"]`),
			Benefits:        datatypes.JSON(`["Accountability","Consistent market routine"]`),
			MaxStudents:     50,
			CurrentStudents: 0,
			IsActive:        true,
		},
		{
			Name:            "Inner Circle",
			Description:     "Small-group mentorship with direct feedback on every trade you take.",
			Price:           499,
			BillingPeriod:   models.BillingQuarterly,
			Features:        datatypes.JSON(`["Bi-weekly 1:1 calls","Personal trading plan review","Priority chat access"]`),
			Benefits:        datatypes.JSON(`["Personalised roadmap","Faster feedback loop"]`),
			MaxStudents:     20,
			CurrentStudents: 0,
			IsActive:        true,
		},
		{
			Name:            "Private Desk",
			Description:     "One-on-one mentorship for funded and soon-to-be-funded traders.",
			Price:           1499,
			BillingPeriod:   models.BillingAnnually,
			Features:        datatypes.JSON(`["Weekly 1:1 sessions","Live trading together","Performance analytics review"]`),
			Benefits:        datatypes.JSON(`["Direct mentor access","Institutional-grade review process"]`),
			MaxStudents:     5,
			CurrentStudents: 0,
			IsActive:        true,
		},
	}

	for i := range courses {
		if err := db.Where("name = ?", courses[i].Name).
			FirstOrCreate(&courses[i]).Error; err != nil {
			return err
		}
	}

	for i := range programs {
		if err := db.Where("name = ?", programs[i].Name).
			FirstOrCreate(&programs[i]).Error; err != nil {
			return err
		}
	}

	logger.Info("catalog seeded", "courses", len(courses), "mentorship_programs", len(programs))
	return nil
}
