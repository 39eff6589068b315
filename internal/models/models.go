package models

import (
	"time"

	"github.com/google/uuid"
)

// AuthContext is an immutable snapshot of the current session, resolved
// from the engine and replaced wholesale on refresh, never mutated.
type AuthContext struct {
	Authenticated bool      `json:"authenticated"`
	Privilege     Tier      `json:"privilege"`
	UserID        uuid.UUID `json:"userId"`
}

// Anonymous is the AuthContext used before the first resolution and for
// logged-out sessions.
func Anonymous() AuthContext {
	return AuthContext{Authenticated: false, Privilege: TierAnonymous}
}

type Post struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	AuthorID       uuid.UUID `json:"authorId"`
	AuthorUsername string    `json:"authorUsername"`
	Categories     []string  `json:"categories"`
	ImagePath      string    `json:"imagePath,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	Likes          int       `json:"likes"`
	Dislikes       int       `json:"dislikes"`
	CommentCount   int       `json:"commentCount"`
}

// OwnedBy reports whether the post belongs to the given user.
func (p Post) OwnedBy(userID uuid.UUID) bool {
	return p.AuthorID == userID
}

type Comment struct {
	ID             uuid.UUID `json:"id"`
	PostID         uuid.UUID `json:"postId"`
	AuthorID       uuid.UUID `json:"authorId"`
	AuthorUsername string    `json:"authorUsername"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
	Likes          int       `json:"likes"`
	Dislikes       int       `json:"dislikes"`
}

func (c Comment) OwnedBy(userID uuid.UUID) bool {
	return c.AuthorID == userID
}

type Category struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

// UserSummary is what the admin user list shows per user.
type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Privilege Tier      `json:"privilege"`
}

// AggregateStats carries the dashboard counters. Zero values double as
// the fallback when the statistics fetch fails.
type AggregateStats struct {
	AdminCount     int `json:"adminCount"`
	ModeratorCount int `json:"moderatorCount"`
	PostCount      int `json:"postCount"`
	CommentCount   int `json:"commentCount"`
}

// VoteCounts is the authoritative counter pair the engine returns after
// a like or dislike. The client never guesses these.
type VoteCounts struct {
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`
}

// ProfileActivity is the per-user activity view: posts the user created,
// liked and disliked, plus comments they authored.
type ProfileActivity struct {
	CreatedPosts  []Post            `json:"createdPosts"`
	LikedPosts    []Post            `json:"likedPosts"`
	DislikedPosts []Post            `json:"dislikedPosts"`
	Comments      []ActivityComment `json:"comments"`
}

// ActivityComment is a comment as shown on the activity page, annotated
// with the post it was made on.
type ActivityComment struct {
	ID         uuid.UUID `json:"id"`
	PostTitle  string    `json:"postTitle"`
	PostAuthor string    `json:"postAuthor"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
	Likes      int       `json:"likes"`
	Dislikes   int       `json:"dislikes"`
}
