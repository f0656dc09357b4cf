package service

import (
	"time"

	"techblog/database"
	"techblog/database/model"
	"techblog/logger"
	"techblog/util/common"

	"gorm.io/gorm/clause"
)

// VoteService owns the vote ledger. Each (user, post) pair may hold at most one
// row; the composite unique index on votes enforces this at the storage layer,
// so two concurrent casts for the same pair resolve to a single surviving row
// without any application-level locking.
type VoteService struct{}

// Cast records an upvote from userId on postId. Returns true if a new vote was
// inserted and false if the user had already voted, in which case the original
// row and its timestamp are left untouched. The caller identity is supplied by
// the session middleware and trusted here.
func (s *VoteService) Cast(userId int, postId int) (bool, error) {
	db := database.GetDB()

	var posts int64
	if err := db.Model(&model.Post{}).Where("id = ?", postId).Count(&posts).Error; err != nil {
		return false, err
	}
	if posts == 0 {
		return false, common.NewNotFoundf("post %d", postId)
	}

	// Insert-or-ignore keyed on the composite index. The conflict check and the
	// insert are a single atomic statement, so there is no read-then-write race.
	vote := &model.Vote{
		UserId:    userId,
		PostId:    postId,
		CreatedAt: time.Now(),
	}
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
		DoNothing: true,
	}).Create(vote)
	if result.Error != nil {
		return false, result.Error
	}

	if result.RowsAffected == 0 {
		logger.Debugf("duplicate vote from user %d on post %d ignored", userId, postId)
		return false, nil
	}
	return true, nil
}

// CountForPost returns the live number of ledger rows for a post. The count is
// always computed from the ledger, never maintained as a separate counter.
func (s *VoteService) CountForPost(postId int) (int64, error) {
	db := database.GetDB()

	var count int64
	err := db.Model(&model.Vote{}).Where("post_id = ?", postId).Count(&count).Error
	return count, err
}
