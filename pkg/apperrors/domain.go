package apperrors

import (
	"net/http"
)

/*
Этот файл содержит фабрики и предопределенные переменные
для ошибок бизнес-логики и домена GameConnect.
*/

// =========================================================================
// Фабричные ФУНКЦИИ (Используются для оборачивания ошибок, напр. из репозитория)
// =========================================================================

// ErrNotFound - фабрика для ошибки "не найдено" (404)
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// =========================================================================
// Предопределенные ПЕРЕМЕННЫЕ (Для частых, статичных ошибок)
// =========================================================================

// --- Аутентификация ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid username or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrAdminNotApproved = New(
	CodeForbidden,
	"auth",
	"Admin account is awaiting owner approval",
	http.StatusForbidden,
)

var ErrAccountDeactivated = New(
	CodeForbidden,
	"auth",
	"Account has been deactivated",
	http.StatusForbidden,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// --- Пользователи ---

var ErrUserNotFound = New(
	CodeNotFound,
	"users",
	"User not found",
	http.StatusNotFound,
)

var ErrUsernameAlreadyExists = New(
	CodeAlreadyExists,
	"users",
	"Username already exists",
	http.StatusConflict,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"users",
	"Email already exists",
	http.StatusConflict,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"users",
	"Password must be at least 6 characters",
	http.StatusBadRequest,
)

var ErrPasswordMismatch = New(
	CodeValidationFailed,
	"users",
	"New passwords do not match",
	http.StatusBadRequest,
)

var ErrWrongCurrentPassword = New(
	CodeInvalidCredentials,
	"users",
	"Current password is incorrect",
	http.StatusBadRequest,
)

// --- Социальный граф ---

// ErrCannotFollowSelf - пользователь пытается подписаться на себя.
var ErrCannotFollowSelf = New(
	CodeInvalidOperation,
	"follows",
	"Cannot follow yourself",
	http.StatusBadRequest,
)

// ErrProfileNotVisible - профиль не открыт для этого зрителя.
// Профиль игрока открывается только через поиск (capability-by-discovery).
var ErrProfileNotVisible = New(
	CodeForbidden,
	"players",
	"You must search for players to view their profiles",
	http.StatusForbidden,
)

// --- Админы и контент ---

var ErrAdminNotFound = New(
	CodeNotFound,
	"admins",
	"Admin not found",
	http.StatusNotFound,
)

var ErrListingNotFound = New(
	CodeNotFound,
	"listings",
	"Listing not found",
	http.StatusNotFound,
)

// ErrNotListingOwner - админ пытается управлять чужой записью.
// Владелец (owner) обходит эту проверку.
var ErrNotListingOwner = New(
	CodeForbidden,
	"listings",
	"You do not have permission to manage this listing",
	http.StatusForbidden,
)
