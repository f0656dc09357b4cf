package service

import (
	"techblog/database"
	"techblog/database/model"
	"techblog/util/common"
	"techblog/web/entity"

	"gorm.io/gorm"
)

// voteCountColumn mirrors the ledger at read time; the count is derived from
// vote rows on every query and is never stored on the post.
const voteCountColumn = "(SELECT COUNT(*) FROM votes WHERE votes.post_id = posts.id) AS vote_count"

const postColumns = "posts.id, posts.title, posts.post_url, posts.user_id, posts.created_at, users.username, " + voteCountColumn

// PostService assembles posts together with their author, comments, and live
// vote count, and composes the upvote flow on top of the vote ledger.
type PostService struct {
	voteService VoteService
}

// GetPost returns one post enriched with author username, live vote count, and
// comments each annotated with their author's username.
func (s *PostService) GetPost(id int) (*entity.PostDetail, error) {
	db := database.GetDB()

	detail := &entity.PostDetail{}
	err := db.Model(&model.Post{}).
		Select(postColumns).
		Joins("JOIN users ON users.id = posts.user_id").
		Where("posts.id = ?", id).
		First(detail).
		Error
	if database.IsNotFound(err) {
		return nil, common.NewNotFoundf("post %d", id)
	} else if err != nil {
		return nil, err
	}

	comments, err := s.commentsForPosts([]int{id})
	if err != nil {
		return nil, err
	}
	detail.Comments = comments[id]
	return detail, nil
}

// GetPosts returns all posts enriched the same way as GetPost, newest first.
// No posts is an empty slice, not an error.
func (s *PostService) GetPosts() ([]*entity.PostDetail, error) {
	db := database.GetDB()

	details := make([]*entity.PostDetail, 0)
	err := db.Model(&model.Post{}).
		Select(postColumns).
		Joins("JOIN users ON users.id = posts.user_id").
		Order("posts.created_at DESC").
		Scan(&details).
		Error
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return details, nil
	}

	ids := make([]int, 0, len(details))
	for _, detail := range details {
		ids = append(ids, detail.Id)
	}
	comments, err := s.commentsForPosts(ids)
	if err != nil {
		return nil, err
	}
	for _, detail := range details {
		detail.Comments = comments[detail.Id]
	}
	return details, nil
}

// UpvoteAndFetch casts the vote and returns the definitive current state of the
// post. A duplicate vote degrades to re-returning the current state, so the
// caller never sees a duplicate as a failure.
func (s *PostService) UpvoteAndFetch(userId int, postId int) (*entity.PostDetail, error) {
	if _, err := s.voteService.Cast(userId, postId); err != nil {
		return nil, err
	}
	return s.GetPost(postId)
}

// CreatePost creates a post owned by userId.
func (s *PostService) CreatePost(userId int, title string, postUrl string) (*model.Post, error) {
	if title == "" {
		return nil, common.NewValidationf("title can not be empty")
	}

	db := database.GetDB()

	post := &model.Post{
		Title:   title,
		PostUrl: postUrl,
		UserId:  userId,
	}
	if err := db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// UpdateTitle changes the title of a post owned by userId.
func (s *PostService) UpdateTitle(userId int, postId int, title string) error {
	if title == "" {
		return common.NewValidationf("title can not be empty")
	}

	db := database.GetDB()

	result := db.Model(model.Post{}).
		Where("id = ? AND user_id = ?", postId, userId).
		Update("title", title)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.NewNotFoundf("post %d for user %d", postId, userId)
	}
	return nil
}

// DeletePost removes a post owned by userId together with its comments and
// ledger rows. The cascade runs in one transaction so a partial failure never
// leaves orphaned comment or vote rows.
func (s *PostService) DeletePost(userId int, postId int) error {
	db := database.GetDB()

	return db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", postId, userId).Delete(&model.Post{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return common.NewNotFoundf("post %d for user %d", postId, userId)
		}

		if err := tx.Where("post_id = ?", postId).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Where("post_id = ?", postId).Delete(&model.Vote{}).Error
	})
}

// commentsForPosts fetches the comments of the given posts in one query,
// grouped by post id, in insertion order.
func (s *PostService) commentsForPosts(postIds []int) (map[int][]entity.CommentView, error) {
	db := database.GetDB()

	var comments []entity.CommentView
	err := db.Model(&model.Comment{}).
		Select("comments.id, comments.comment_text, comments.post_id, comments.user_id, comments.created_at, users.username").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.post_id IN ?", postIds).
		Order("comments.id").
		Scan(&comments).
		Error
	if err != nil {
		return nil, err
	}

	grouped := make(map[int][]entity.CommentView, len(postIds))
	for _, comment := range comments {
		grouped[comment.PostId] = append(grouped[comment.PostId], comment)
	}
	return grouped, nil
}
