package models

// ProfileView - запись "зритель открыл профиль через поиск".
// Единственный пропуск к детальной странице игрока: множество только растет,
// записи никогда не отзываются и не продлеваются.
type ProfileView struct {
	BaseModel
	ViewerID string `gorm:"not null;uniqueIndex:idx_profile_view_pair" json:"viewer_id"`
	ViewedID string `gorm:"not null;uniqueIndex:idx_profile_view_pair" json:"viewed_id"`
}
