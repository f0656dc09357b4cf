package controller

import (
	"net/http"
	"strconv"

	"techblog/web/service"
	"techblog/web/session"

	"github.com/gin-gonic/gin"
)

// PostForm represents the post creation request structure.
type PostForm struct {
	Title   string `json:"title" form:"title" binding:"required"`
	PostUrl string `json:"post_url" form:"post_url"`
}

// TitleForm represents the title update request structure.
type TitleForm struct {
	Title string `json:"title" form:"title" binding:"required"`
}

// PostController handles post listing, fetching, CRUD, and upvoting.
type PostController struct {
	BaseController

	postService service.PostService
}

// NewPostController creates a new PostController and initializes its routes.
func NewPostController(g *gin.RouterGroup) *PostController {
	a := &PostController{}
	a.initRouter(g)
	return a
}

func (a *PostController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/posts")

	g.GET("", a.getPosts)
	g.GET("/:id", a.getPost)
	g.POST("", a.checkLogin, a.createPost)
	g.PUT("/:id", a.checkLogin, a.updateTitle)
	g.PUT("/:id/upvote", a.checkLogin, a.upvote)
	g.DELETE("/:id", a.checkLogin, a.deletePost)
}

// getPosts lists all posts with comments and live vote counts, newest first.
func (a *PostController) getPosts(c *gin.Context) {
	posts, err := a.postService.GetPosts()
	if err != nil {
		jsonErr(c, "get posts", err)
		return
	}
	jsonObj(c, posts)
}

// getPost fetches a single enriched post.
func (a *PostController) getPost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid post id")
		return
	}

	post, err := a.postService.GetPost(id)
	if err != nil {
		jsonErr(c, "get post", err)
		return
	}
	jsonObj(c, post)
}

// createPost creates a post owned by the session user.
func (a *PostController) createPost(c *gin.Context) {
	var form PostForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid form data")
		return
	}

	userId := session.GetLoginUserId(c)
	post, err := a.postService.CreatePost(userId, form.Title, form.PostUrl)
	if err != nil {
		jsonErr(c, "create post", err)
		return
	}
	jsonObj(c, post)
}

// upvote casts the session user's vote and returns the post's current state.
// A repeated upvote is not an error; it re-returns the unchanged state.
func (a *PostController) upvote(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid post id")
		return
	}

	userId := session.GetLoginUserId(c)
	post, err := a.postService.UpvoteAndFetch(userId, id)
	if err != nil {
		jsonErr(c, "upvote", err)
		return
	}
	jsonObj(c, post)
}

// updateTitle updates the title of a post owned by the session user.
func (a *PostController) updateTitle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid post id")
		return
	}

	var form TitleForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid form data")
		return
	}

	userId := session.GetLoginUserId(c)
	if err := a.postService.UpdateTitle(userId, id, form.Title); err != nil {
		jsonErr(c, "update post", err)
		return
	}
	jsonMsg(c, "post updated")
}

// deletePost deletes a post owned by the session user.
func (a *PostController) deletePost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid post id")
		return
	}

	userId := session.GetLoginUserId(c)
	if err := a.postService.DeletePost(userId, id); err != nil {
		jsonErr(c, "delete post", err)
		return
	}
	jsonMsg(c, "post deleted")
}
