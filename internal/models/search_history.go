package models

import "gorm.io/datatypes"

// SearchHistory - журнал выполненных поисков игроков.
// Filters хранит снимок фильтров запроса как JSON, ResultCount -
// размер выдачи на момент поиска. Используется владельцем для аналитики.
type SearchHistory struct {
	BaseModel
	UserID      string         `gorm:"not null;index" json:"user_id"`
	Filters     datatypes.JSON `json:"filters"`
	ResultCount int            `json:"result_count"`
}
