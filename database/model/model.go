// Package model defines the persisted entities of the blog backend.
package model

import "time"

// User is a registered author. PasswordHash is only ever written through
// service.UserService, which hashes with bcrypt; the plaintext is never stored.
type User struct {
	Id           int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string `json:"username" gorm:"not null"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"column:password_hash;not null"`
}

// Post is a submitted link owned by exactly one user.
type Post struct {
	Id        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title" gorm:"not null"`
	PostUrl   string    `json:"post_url" gorm:"column:post_url"`
	UserId    int       `json:"user_id" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment belongs to one post and one authoring user.
type Comment struct {
	Id          int       `json:"id" gorm:"primaryKey;autoIncrement"`
	CommentText string    `json:"comment_text" gorm:"not null"`
	UserId      int       `json:"user_id" gorm:"index;not null"`
	PostId      int       `json:"post_id" gorm:"index;not null"`
	CreatedAt   time.Time `json:"created_at"`
}

// Vote is one ledger row per (user, post) pair. The composite unique index is
// what enforces one-vote-per-user-per-post under concurrent inserts; vote
// counts are always computed from these rows, never stored on the post.
type Vote struct {
	Id        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserId    int       `json:"user_id" gorm:"uniqueIndex:idx_votes_user_post;not null"`
	PostId    int       `json:"post_id" gorm:"uniqueIndex:idx_votes_user_post;not null"`
	CreatedAt time.Time `json:"created_at"`
}
