package models

// Notification is a backend-issued user notification.
type Notification struct {
	NotificationID string `json:"notification_id"`
	UserID         string `json:"user_id"`
	Title          string `json:"title"`
	Message        string `json:"message"`
	Type           string `json:"notification_type"`
	IsRead         bool   `json:"is_read"`
	ActionURL      string `json:"action_url,omitempty"`
	CreatedAt      string `json:"created_at"`
}

// NotificationPage is the response of the notifications listing.
type NotificationPage struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unread_count"`
}
