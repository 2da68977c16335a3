package models

// Follow - направленное ребро социального графа.
// Уникальный составной индекс гарантирует не более одного ребра на пару;
// конкурентная вставка дубликата - успешный no-op, а не ошибка.
type Follow struct {
	BaseModel
	FollowerID string `gorm:"not null;uniqueIndex:idx_follow_pair" json:"follower_id"`
	FollowedID string `gorm:"not null;uniqueIndex:idx_follow_pair" json:"followed_id"`
}
