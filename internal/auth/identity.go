package auth

import "errors"

// Виды субъектов и роли доступа.
// Роль вычисляется один раз при логине и зашивается в токен:
// обычный пользователь - player, пользователь-владелец - owner,
// одобренный админ - admin.
const (
	KindUser  = "user"
	KindAdmin = "admin"

	RolePlayer = "player"
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
)

// Identity - аутентифицированный субъект запроса.
type Identity struct {
	SubjectID string
	Kind      string
	Role      string
}

// IsOwner проверяет является ли субъект владельцем платформы
func (i Identity) IsOwner() bool {
	return i.Role == RoleOwner
}

// IsAdminOrOwner проверяет доступ к консоли управления контентом
func (i Identity) IsAdminOrOwner() bool {
	return i.Role == RoleAdmin || i.Role == RoleOwner
}

// ValidateRole проверяет валидность роли
func ValidateRole(role string) error {
	switch role {
	case RolePlayer, RoleOwner, RoleAdmin:
		return nil
	default:
		return errors.New("invalid role")
	}
}
