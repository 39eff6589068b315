package api

import (
	"context"

	"gator-swamp-client/internal/models"

	"github.com/google/uuid"
)

func (c *Client) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := c.getJSON(ctx, "list_notifications", "/notifications", &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// GetNotificationCount fetches the unread count. The badge is always
// recomputed from this value, never incremented locally.
func (c *Client) GetNotificationCount(ctx context.Context) (int, error) {
	var result struct {
		Count int `json:"count"`
	}
	if err := c.getJSON(ctx, "get_notification_count", "/notifications/count", &result); err != nil {
		return 0, err
	}
	return result.Count, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, notificationID uuid.UUID) error {
	payload := map[string]string{"notificationId": notificationID.String()}
	return c.postJSON(ctx, "mark_notification_read", "/notifications/read", payload, nil)
}
