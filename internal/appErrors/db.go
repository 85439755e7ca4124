package appErrors

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE коды нарушений constraint-ов в postgres
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// FromDBError переводит ошибку gorm/pgconn в AppError таксономии хранилища.
// Вызывается на границе репозитория: выше этого слоя ошибки драйвера не
// должны быть видны.
func FromDBError(err error, domain string) *AppError {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound(err, domain)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return UniquenessViolation(err, domain, "Duplicate value for unique field")
		case pgForeignKeyViolation:
			return ReferentialViolation(err, domain, "Referenced row does not exist")
		case pgCheckViolation:
			return DomainViolation(domain, "Value outside the allowed set").WithError(err)
		}
	}

	// gorm транслирует часть ошибок драйвера сам
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return UniquenessViolation(err, domain, "Duplicate value for unique field")
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ReferentialViolation(err, domain, "Referenced row does not exist")
	}
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return DomainViolation(domain, "Value outside the allowed set").WithError(err)
	}

	return Wrap(err, CodeDatabaseError, domain, "Database operation failed", http.StatusInternalServerError)
}
