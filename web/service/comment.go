package service

import (
	"techblog/database"
	"techblog/database/model"
	"techblog/util/common"
)

// CommentService owns comment writes; reads happen through PostService.
type CommentService struct{}

// CreateComment adds a comment from userId to an existing post.
func (s *CommentService) CreateComment(userId int, postId int, text string) (*model.Comment, error) {
	if text == "" {
		return nil, common.NewValidationf("comment text can not be empty")
	}

	db := database.GetDB()

	var posts int64
	if err := db.Model(&model.Post{}).Where("id = ?", postId).Count(&posts).Error; err != nil {
		return nil, err
	}
	if posts == 0 {
		return nil, common.NewNotFoundf("post %d", postId)
	}

	comment := &model.Comment{
		CommentText: text,
		UserId:      userId,
		PostId:      postId,
	}
	if err := db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment owned by userId.
func (s *CommentService) DeleteComment(userId int, commentId int) error {
	db := database.GetDB()

	result := db.Where("id = ? AND user_id = ?", commentId, userId).Delete(&model.Comment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.NewNotFoundf("comment %d for user %d", commentId, userId)
	}
	return nil
}
