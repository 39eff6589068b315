package api

import (
	"context"
	"net/url"

	"gator-swamp-client/internal/models"

	"github.com/google/uuid"
)

// SetPrivilegeRequest is the payload for promote and demote
type SetPrivilegeRequest struct {
	UserID    uuid.UUID   `json:"userId"`
	Privilege models.Tier `json:"privilege"`
}

// ResolveReviewRequest carries an admin decision on a moderation request
// or post report
type ResolveReviewRequest struct {
	ID       uuid.UUID           `json:"id"`
	Status   models.ReviewStatus `json:"status"`
	Response string              `json:"response,omitempty"`
}

func (c *Client) GetAggregateStats(ctx context.Context) (models.AggregateStats, error) {
	var stats models.AggregateStats
	if err := c.getJSON(ctx, "get_aggregate_stats", "/admin/stats", &stats); err != nil {
		return models.AggregateStats{}, err
	}
	return stats, nil
}

func (c *Client) ListUsers(ctx context.Context, search string) ([]models.UserSummary, error) {
	endpoint := "/admin/users"
	if search != "" {
		endpoint += "?search=" + url.QueryEscape(search)
	}
	var users []models.UserSummary
	if err := c.getJSON(ctx, "list_users", endpoint, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) SetUserPrivilege(ctx context.Context, userID uuid.UUID, newTier models.Tier) error {
	req := SetPrivilegeRequest{UserID: userID, Privilege: newTier}
	return c.postJSON(ctx, "set_user_privilege", "/admin/users/privilege", req, nil)
}

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.getJSON(ctx, "list_categories", "/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) AddCategory(ctx context.Context, title, description string) (models.Category, error) {
	payload := map[string]string{
		"title":       title,
		"description": description,
	}
	var category models.Category
	if err := c.postJSON(ctx, "add_category", "/admin/categories", payload, &category); err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func (c *Client) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	payload := map[string]string{"categoryId": categoryID.String()}
	return c.postJSON(ctx, "delete_category", "/admin/categories/delete", payload, nil)
}

func (c *Client) ListModerationRequests(ctx context.Context) ([]models.ModerationRequest, error) {
	var requests []models.ModerationRequest
	if err := c.getJSON(ctx, "list_moderation_requests", "/moderation/requests", &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// CreateModerationRequest submits the caller's request to become a
// moderator.
func (c *Client) CreateModerationRequest(ctx context.Context) (models.ModerationRequest, error) {
	var request models.ModerationRequest
	if err := c.postJSON(ctx, "create_moderation_request", "/moderation/requests", struct{}{}, &request); err != nil {
		return models.ModerationRequest{}, err
	}
	return request, nil
}

func (c *Client) ResolveModerationRequest(ctx context.Context, requestID uuid.UUID, status models.ReviewStatus) error {
	req := ResolveReviewRequest{ID: requestID, Status: status}
	return c.postJSON(ctx, "resolve_moderation_request", "/moderation/requests/resolve", req, nil)
}

func (c *Client) ListPostReports(ctx context.Context) ([]models.PostReport, error) {
	var reports []models.PostReport
	if err := c.getJSON(ctx, "list_post_reports", "/moderation/reports", &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (c *Client) CreatePostReport(ctx context.Context, postID uuid.UUID, reason string) (models.PostReport, error) {
	payload := map[string]string{
		"postId": postID.String(),
		"reason": reason,
	}
	var report models.PostReport
	if err := c.postJSON(ctx, "create_post_report", "/moderation/reports", payload, &report); err != nil {
		return models.PostReport{}, err
	}
	return report, nil
}

// ResolvePostReport records the admin decision. On approval the engine
// cascades deletion of the reported post before responding.
func (c *Client) ResolvePostReport(ctx context.Context, reportID uuid.UUID, status models.ReviewStatus, response string) error {
	req := ResolveReviewRequest{ID: reportID, Status: status, Response: response}
	return c.postJSON(ctx, "resolve_post_report", "/moderation/reports/resolve", req, nil)
}
