package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

// DBContextKey - это ключ, по которому мы будем хранить *gorm.DB в context
const DBContextKey = contextKey("db")

// IdentityContextKey - ключ, по которому хранится разрешенная auth.Identity
const IdentityContextKey = contextKey("identity")
