package models

import "time"

// Notification types as sent by the server.
const (
	NotificationTypeSystem = "system"
)

type NotificationAuthor struct {
	ID       string `json:"idUser"`
	Username string `json:"username"`
	ImageURL string `json:"imageUrl,omitempty"`
}

type NotificationData struct {
	Data string `json:"data,omitempty"`
}

type Notification struct {
	ID        string             `json:"idNotification"`
	Title     string             `json:"title"`
	Message   string             `json:"message"`
	Author    NotificationAuthor `json:"author"`
	CreatedAt time.Time          `json:"createdAt"`
	Read      bool               `json:"read"`
	Type      string             `json:"type"`
	Data      *NotificationData  `json:"data,omitempty"`
}

// Navigable reports whether the notification can be opened by the user.
// System notifications are informational only.
func (n Notification) Navigable() bool {
	return n.Type != NotificationTypeSystem
}
