package repository

import (
	"recipehub/internal/models"

	"gorm.io/gorm"
)

type FollowRepository interface {
	Follow(followerID, followedID uint) (bool, error)
	Unfollow(followerID, followedID uint) error
	IsFollowing(followerID, followedID uint) (bool, error)
	Followers(userID uint) ([]models.User, error)
	Following(userID uint) ([]models.User, error)
	CountFollowers(userID uint) (int64, error)
	CountFollowing(userID uint) (int64, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db}
}

// Follow creates the edge only if absent and reports whether it was newly
// created. The unique (follower_id, followed_id) index backs this up at the
// storage level.
func (r *followRepository) Follow(followerID, followedID uint) (bool, error) {
	edge := models.UserFollow{FollowerID: followerID, FollowedID: followedID}
	res := r.db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).FirstOrCreate(&edge)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Unfollow deletes the edge if present; deleting an absent edge is a no-op.
func (r *followRepository) Unfollow(followerID, followedID uint) error {
	return r.db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.UserFollow{}).Error
}

func (r *followRepository) IsFollowing(followerID, followedID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.UserFollow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	return count > 0, err
}

func (r *followRepository) Followers(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Model(&models.User{}).
		Joins("JOIN user_follows ON user_follows.follower_id = users.id").
		Where("user_follows.followed_id = ?", userID).
		Find(&users).Error
	return users, err
}

func (r *followRepository) Following(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Model(&models.User{}).
		Joins("JOIN user_follows ON user_follows.followed_id = users.id").
		Where("user_follows.follower_id = ?", userID).
		Find(&users).Error
	return users, err
}

func (r *followRepository) CountFollowers(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.UserFollow{}).Where("followed_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *followRepository) CountFollowing(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.UserFollow{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, err
}
