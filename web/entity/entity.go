// Package entity defines the data structures returned by the web layer.
package entity

import "time"

// Msg represents a standard API response with success status, message text, and optional data object.
type Msg struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
	Obj     any    `json:"obj"`
}

// CommentView is a comment annotated with its author's display name.
type CommentView struct {
	Id          int       `json:"id"`
	CommentText string    `json:"comment_text"`
	PostId      int       `json:"post_id"`
	UserId      int       `json:"user_id"`
	Username    string    `json:"username"`
	CreatedAt   time.Time `json:"created_at"`
}

// PostDetail is a post enriched with its author's display name, its comments,
// and the live vote count computed from the vote ledger at read time.
type PostDetail struct {
	Id        int           `json:"id"`
	Title     string        `json:"title"`
	PostUrl   string        `json:"post_url"`
	UserId    int           `json:"user_id"`
	Username  string        `json:"username"`
	VoteCount int           `json:"vote_count"`
	CreatedAt time.Time     `json:"created_at"`
	Comments  []CommentView `json:"comments"`
}
