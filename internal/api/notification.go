package api

import (
	"context"
	"net/http"

	"booknet/internal/models"
)

const notificationPath = "/notification"

// Notifications returns every notification for the current user.
func (c *Client) Notifications(ctx context.Context) ([]models.Notification, error) {
	var result []models.Notification
	if err := c.do(ctx, http.MethodGet, notificationPath, nil, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// LatestNotifications returns the most recent notifications, as shown in the
// console chrome.
func (c *Client) LatestNotifications(ctx context.Context) ([]models.Notification, error) {
	var result []models.Notification
	if err := c.do(ctx, http.MethodGet, notificationPath+"/latest", nil, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}
