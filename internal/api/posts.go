package api

import (
	"context"
	"net/url"

	"gator-swamp-client/internal/models"

	"github.com/google/uuid"
)

// CreatePostRequest is the payload for creating a new post
type CreatePostRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Categories []string `json:"categories"`
	ImagePath  string   `json:"imagePath,omitempty"`
}

// EditPostRequest is the payload for editing an owned post
type EditPostRequest struct {
	PostID  uuid.UUID `json:"postId"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
}

func (c *Client) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.getJSON(ctx, "list_posts", "/posts", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) CreatePost(ctx context.Context, req CreatePostRequest) (models.Post, error) {
	var post models.Post
	if err := c.postJSON(ctx, "create_post", "/posts", req, &post); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

func (c *Client) EditPost(ctx context.Context, req EditPostRequest) (models.Post, error) {
	var post models.Post
	if err := c.postJSON(ctx, "edit_post", "/posts/edit", req, &post); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

// DeletePost removes a post. A single operation serves both the owner
// and moderator-or-above deletion paths; the engine decides authority.
func (c *Client) DeletePost(ctx context.Context, postID uuid.UUID) error {
	payload := map[string]string{"postId": postID.String()}
	return c.postJSON(ctx, "delete_post", "/posts/delete", payload, nil)
}

// LikePost registers a like and returns the authoritative counters.
func (c *Client) LikePost(ctx context.Context, postID uuid.UUID) (models.VoteCounts, error) {
	return c.votePost(ctx, "like_post", "/posts/like", postID)
}

// DislikePost registers a dislike and returns the authoritative
// counters.
func (c *Client) DislikePost(ctx context.Context, postID uuid.UUID) (models.VoteCounts, error) {
	return c.votePost(ctx, "dislike_post", "/posts/dislike", postID)
}

func (c *Client) votePost(ctx context.Context, operation, endpoint string, postID uuid.UUID) (models.VoteCounts, error) {
	payload := map[string]string{"postId": postID.String()}
	var counts models.VoteCounts
	if err := c.postJSON(ctx, operation, endpoint, payload, &counts); err != nil {
		return models.VoteCounts{}, err
	}
	return counts, nil
}

func (c *Client) ListComments(ctx context.Context, postID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	endpoint := "/comments?postId=" + url.QueryEscape(postID.String())
	if err := c.getJSON(ctx, "list_comments", endpoint, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *Client) CreateComment(ctx context.Context, postID uuid.UUID, content string) (models.Comment, error) {
	payload := map[string]string{
		"postId":  postID.String(),
		"content": content,
	}
	var comment models.Comment
	if err := c.postJSON(ctx, "create_comment", "/comments", payload, &comment); err != nil {
		return models.Comment{}, err
	}
	return comment, nil
}

func (c *Client) EditComment(ctx context.Context, commentID uuid.UUID, content string) (models.Comment, error) {
	payload := map[string]string{
		"commentId": commentID.String(),
		"content":   content,
	}
	var comment models.Comment
	if err := c.postJSON(ctx, "edit_comment", "/comments/edit", payload, &comment); err != nil {
		return models.Comment{}, err
	}
	return comment, nil
}

func (c *Client) DeleteComment(ctx context.Context, commentID uuid.UUID) error {
	payload := map[string]string{"commentId": commentID.String()}
	return c.postJSON(ctx, "delete_comment", "/comments/delete", payload, nil)
}

func (c *Client) LikeComment(ctx context.Context, commentID uuid.UUID) (models.VoteCounts, error) {
	return c.voteComment(ctx, "like_comment", "/comments/like", commentID)
}

func (c *Client) DislikeComment(ctx context.Context, commentID uuid.UUID) (models.VoteCounts, error) {
	return c.voteComment(ctx, "dislike_comment", "/comments/dislike", commentID)
}

func (c *Client) voteComment(ctx context.Context, operation, endpoint string, commentID uuid.UUID) (models.VoteCounts, error) {
	payload := map[string]string{"commentId": commentID.String()}
	var counts models.VoteCounts
	if err := c.postJSON(ctx, operation, endpoint, payload, &counts); err != nil {
		return models.VoteCounts{}, err
	}
	return counts, nil
}

// GetProfileActivity fetches the created/liked/disliked posts and
// authored comments for a user.
func (c *Client) GetProfileActivity(ctx context.Context, userID uuid.UUID) (models.ProfileActivity, error) {
	var activity models.ProfileActivity
	endpoint := "/profile/activity?userId=" + url.QueryEscape(userID.String())
	if err := c.getJSON(ctx, "get_profile_activity", endpoint, &activity); err != nil {
		return models.ProfileActivity{}, err
	}
	return activity, nil
}
