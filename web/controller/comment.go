package controller

import (
	"net/http"
	"strconv"

	"techblog/web/service"
	"techblog/web/session"

	"github.com/gin-gonic/gin"
)

// CommentForm represents the comment creation request structure.
type CommentForm struct {
	PostId      int    `json:"post_id" form:"post_id" binding:"required"`
	CommentText string `json:"comment_text" form:"comment_text" binding:"required"`
}

// CommentController handles comment creation and deletion.
type CommentController struct {
	BaseController

	commentService service.CommentService
}

// NewCommentController creates a new CommentController and initializes its routes.
func NewCommentController(g *gin.RouterGroup) *CommentController {
	a := &CommentController{}
	a.initRouter(g)
	return a
}

func (a *CommentController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/comments")

	g.POST("", a.checkLogin, a.createComment)
	g.DELETE("/:id", a.checkLogin, a.deleteComment)
}

// createComment adds a comment from the session user to a post.
func (a *CommentController) createComment(c *gin.Context) {
	var form CommentForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid form data")
		return
	}

	userId := session.GetLoginUserId(c)
	comment, err := a.commentService.CreateComment(userId, form.PostId, form.CommentText)
	if err != nil {
		jsonErr(c, "create comment", err)
		return
	}
	jsonObj(c, comment)
}

// deleteComment deletes a comment owned by the session user.
func (a *CommentController) deleteComment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid comment id")
		return
	}

	userId := session.GetLoginUserId(c)
	if err := a.commentService.DeleteComment(userId, id); err != nil {
		jsonErr(c, "delete comment", err)
		return
	}
	jsonMsg(c, "comment deleted")
}
