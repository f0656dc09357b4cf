package service

import (
	"testing"
	"time"

	"techblog/database"
	"techblog/database/model"
	"techblog/util/common"

	"github.com/stretchr/testify/assert"
)

func TestGetPostNotFound(t *testing.T) {
	setup()
	defer teardown()

	postService := PostService{}
	_, err := postService.GetPost(9999)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetPostsEmpty(t *testing.T) {
	setup()
	defer teardown()

	postService := PostService{}
	posts, err := postService.GetPosts()
	assert.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestGetPostsNewestFirst(t *testing.T) {
	setup()
	defer teardown()

	postService := PostService{}
	author := mustSignUp(t, "author")

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"oldest", "middle", "newest"} {
		post := &model.Post{
			Title:     title,
			UserId:    author.Id,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		assert.NoError(t, database.GetDB().Create(post).Error)
	}

	posts, err := postService.GetPosts()
	assert.NoError(t, err)
	assert.Len(t, posts, 3)
	assert.Equal(t, "newest", posts[0].Title)
	assert.Equal(t, "middle", posts[1].Title)
	assert.Equal(t, "oldest", posts[2].Title)
}

func TestUpvoteAndFetch(t *testing.T) {
	setup()
	defer teardown()

	postService := PostService{}
	userA := mustSignUp(t, "usera")
	userB := mustSignUp(t, "userb")
	userC := mustSignUp(t, "userc")

	post := mustCreatePost(t, userA.Id, "voting")

	detail, err := postService.UpvoteAndFetch(userB.Id, post.Id)
	assert.NoError(t, err)
	assert.Equal(t, 1, detail.VoteCount)
	assert.Equal(t, "usera", detail.Username)

	// repeated upvote from the same user returns the unchanged state
	detail, err = postService.UpvoteAndFetch(userB.Id, post.Id)
	assert.NoError(t, err)
	assert.Equal(t, 1, detail.VoteCount)

	detail, err = postService.UpvoteAndFetch(userC.Id, post.Id)
	assert.NoError(t, err)
	assert.Equal(t, 2, detail.VoteCount)

	_, err = postService.UpvoteAndFetch(userB.Id, 9999)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetPostWithComments(t *testing.T) {
	setup()
	defer teardown()

	postService := PostService{}
	commentService := CommentService{}

	author := mustSignUp(t, "author")
	commenter := mustSignUp(t, "commenter")
	post := mustCreatePost(t, author.Id, "discussed")

	first, err := commentService.CreateComment(commenter.Id, post.Id, "first!")
	assert.NoError(t, err)
	_, err = commentService.CreateComment(author.Id, post.Id, "thanks")
	assert.NoError(t, err)

	detail, err := postService.GetPost(post.Id)
	assert.NoError(t, err)
	assert.Len(t, detail.Comments, 2)
	assert.Equal(t, "first!", detail.Comments[0].CommentText)
	assert.Equal(t, "commenter", detail.Comments[0].Username)
	assert.Equal(t, "thanks", detail.Comments[1].CommentText)

	// only the comment's owner may delete it
	err = commentService.DeleteComment(author.Id, first.Id)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.NoError(t, commentService.DeleteComment(commenter.Id, first.Id))

	detail, err = postService.GetPost(post.Id)
	assert.NoError(t, err)
	assert.Len(t, detail.Comments, 1)
}

func TestUpdateAndDeletePostOwnership(t *testing.T) {
	setup()
	defer teardown()

	postService := PostService{}
	voteService := VoteService{}

	owner := mustSignUp(t, "owner")
	other := mustSignUp(t, "other")
	post := mustCreatePost(t, owner.Id, "mine")

	err := postService.UpdateTitle(other.Id, post.Id, "stolen")
	assert.ErrorIs(t, err, common.ErrNotFound)

	assert.NoError(t, postService.UpdateTitle(owner.Id, post.Id, "renamed"))
	detail, err := postService.GetPost(post.Id)
	assert.NoError(t, err)
	assert.Equal(t, "renamed", detail.Title)

	_, err = voteService.Cast(other.Id, post.Id)
	assert.NoError(t, err)

	err = postService.DeletePost(other.Id, post.Id)
	assert.ErrorIs(t, err, common.ErrNotFound)

	assert.NoError(t, postService.DeletePost(owner.Id, post.Id))
	_, err = postService.GetPost(post.Id)
	assert.ErrorIs(t, err, common.ErrNotFound)

	// ledger rows of a deleted post are gone too
	count, err := voteService.CountForPost(post.Id)
	assert.NoError(t, err)
	assert.Zero(t, count)
}

func TestDeletePostCascade(t *testing.T) {
	setup()
	defer teardown()

	postService := PostService{}
	commentService := CommentService{}
	voteService := VoteService{}

	owner := mustSignUp(t, "owner")
	voter := mustSignUp(t, "voter")
	post := mustCreatePost(t, owner.Id, "doomed")
	kept := mustCreatePost(t, owner.Id, "kept")

	_, err := commentService.CreateComment(voter.Id, post.Id, "gone with the post")
	assert.NoError(t, err)
	_, err = commentService.CreateComment(voter.Id, kept.Id, "survives")
	assert.NoError(t, err)
	_, err = voteService.Cast(voter.Id, post.Id)
	assert.NoError(t, err)
	_, err = voteService.Cast(voter.Id, kept.Id)
	assert.NoError(t, err)

	assert.NoError(t, postService.DeletePost(owner.Id, post.Id))

	db := database.GetDB()
	var commentCount, voteCount int64
	assert.NoError(t, db.Model(&model.Comment{}).Where("post_id = ?", post.Id).Count(&commentCount).Error)
	assert.Zero(t, commentCount)
	assert.NoError(t, db.Model(&model.Vote{}).Where("post_id = ?", post.Id).Count(&voteCount).Error)
	assert.Zero(t, voteCount)

	// the other post and its rows are untouched
	detail, err := postService.GetPost(kept.Id)
	assert.NoError(t, err)
	assert.Equal(t, 1, detail.VoteCount)
	assert.Len(t, detail.Comments, 1)
}
