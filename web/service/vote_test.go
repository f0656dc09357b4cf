package service

import (
	"os"
	"sync"
	"testing"

	"techblog/database"
	"techblog/database/model"
	"techblog/logger"
	"techblog/util/common"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"go.uber.org/atomic"
)

func setup() {
	os.Setenv("BLOG_LOG_FOLDER", os.TempDir())
	logger.InitLogger(logging.ERROR)

	dbPath := "test.db"
	os.Remove(dbPath)
	database.InitDB(dbPath)

	// sqlite allows a single writer
	sqlDB, _ := database.GetDB().DB()
	sqlDB.SetMaxOpenConns(1)
}

func teardown() {
	db, _ := database.GetDB().DB()
	db.Close()
	os.Remove("test.db")
}

func mustSignUp(t *testing.T, username string) *model.User {
	t.Helper()
	userService := UserService{}
	user, err := userService.SignUp(username, username+"@example.com", "password1")
	assert.NoError(t, err)
	return user
}

func mustCreatePost(t *testing.T, userId int, title string) *model.Post {
	t.Helper()
	postService := PostService{}
	post, err := postService.CreatePost(userId, title, "https://example.com/"+title)
	assert.NoError(t, err)
	return post
}

func TestCastVote(t *testing.T) {
	setup()
	defer teardown()

	voteService := VoteService{}
	user := mustSignUp(t, "alice")
	post := mustCreatePost(t, user.Id, "first")

	recorded, err := voteService.Cast(user.Id, post.Id)
	assert.NoError(t, err)
	assert.True(t, recorded)

	count, err := voteService.CountForPost(post.Id)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestCastVoteDuplicateIsNoop(t *testing.T) {
	setup()
	defer teardown()

	voteService := VoteService{}
	user := mustSignUp(t, "alice")
	post := mustCreatePost(t, user.Id, "first")

	recorded, err := voteService.Cast(user.Id, post.Id)
	assert.NoError(t, err)
	assert.True(t, recorded)

	var original model.Vote
	assert.NoError(t, database.GetDB().
		Where("user_id = ? AND post_id = ?", user.Id, post.Id).
		First(&original).Error)

	// the duplicate must not error, not insert, and not touch the original row
	recorded, err = voteService.Cast(user.Id, post.Id)
	assert.NoError(t, err)
	assert.False(t, recorded)

	count, err := voteService.CountForPost(post.Id)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, count)

	var after model.Vote
	assert.NoError(t, database.GetDB().
		Where("user_id = ? AND post_id = ?", user.Id, post.Id).
		First(&after).Error)
	assert.Equal(t, original.Id, after.Id)
	assert.Equal(t, original.CreatedAt, after.CreatedAt)
}

func TestCastVoteUnknownPost(t *testing.T) {
	setup()
	defer teardown()

	voteService := VoteService{}
	user := mustSignUp(t, "alice")

	_, err := voteService.Cast(user.Id, 9999)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestCastVoteDistinctUsers(t *testing.T) {
	setup()
	defer teardown()

	voteService := VoteService{}
	author := mustSignUp(t, "author")
	post := mustCreatePost(t, author.Id, "popular")

	voters := []*model.User{
		mustSignUp(t, "alice"),
		mustSignUp(t, "bob"),
		mustSignUp(t, "carol"),
	}
	for _, voter := range voters {
		recorded, err := voteService.Cast(voter.Id, post.Id)
		assert.NoError(t, err)
		assert.True(t, recorded)
	}

	count, err := voteService.CountForPost(post.Id)
	assert.NoError(t, err)
	assert.EqualValues(t, len(voters), count)
}

func TestCastVoteConcurrent(t *testing.T) {
	setup()
	defer teardown()

	voteService := VoteService{}
	user := mustSignUp(t, "alice")
	post := mustCreatePost(t, user.Id, "contended")

	var recorded atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := voteService.Cast(user.Id, post.Id)
			assert.NoError(t, err)
			if ok {
				recorded.Inc()
			}
		}()
	}
	wg.Wait()

	// the composite unique index resolves the race to exactly one surviving row
	assert.EqualValues(t, 1, recorded.Load())

	var rows int64
	assert.NoError(t, database.GetDB().Model(&model.Vote{}).
		Where("user_id = ? AND post_id = ?", user.Id, post.Id).
		Count(&rows).Error)
	assert.EqualValues(t, 1, rows)
}
