package models

import "time"

// UserFollow is a directed follow edge. The composite unique index keeps
// the (follower, followed) pair unique at the storage level.
type UserFollow struct {
	ID         uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt  time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	FollowerID uint      `gorm:"not null;uniqueIndex:idx_follower_followed" json:"follower_id" example:"1"`
	FollowedID uint      `gorm:"not null;uniqueIndex:idx_follower_followed" json:"followed_id" example:"2"`
	Follower   *User     `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"follower,omitempty"`
	Followed   *User     `gorm:"foreignKey:FollowedID;constraint:OnDelete:CASCADE" json:"followed,omitempty"`
}
