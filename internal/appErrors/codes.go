package appErrors

// Коды ошибок сгруппированные по доменам
const (
	// Нарушения инвариантов хранилища
	CodeUniquenessViolation  ErrorCode = "UNIQUENESS_VIOLATION"
	CodeReferentialViolation ErrorCode = "REFERENTIAL_VIOLATION"
	CodeDomainViolation      ErrorCode = "DOMAIN_VIOLATION"

	// Авторизация
	CodeAuthorizationDenied ErrorCode = "AUTHORIZATION_DENIED"
	CodeUnauthorized        ErrorCode = "UNAUTHORIZED"
	CodeInvalidToken        ErrorCode = "INVALID_TOKEN"

	// Валидация
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Ресурсы
	CodeNotFound      ErrorCode = "NOT_FOUND"
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"
	CodeConflict      ErrorCode = "CONFLICT"

	// Бизнес-логика
	CodeProgramFull        ErrorCode = "PROGRAM_FULL"
	CodeInvalidItemRef     ErrorCode = "INVALID_ITEM_REF"
	CodeInvalidOperation   ErrorCode = "INVALID_OPERATION"
	CodeClientNotFound     ErrorCode = "CLIENT_NOT_FOUND"
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"

	// Системные ошибки
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
)
