package cli

import (
	"context"
	"fmt"
)

// Notifications prints recent notifications, unread first marker on each.
func (a *App) Notifications(ctx context.Context, unreadOnly bool) error {
	page, err := a.client.Notifications(ctx, 20, unreadOnly)
	if err != nil {
		fmt.Println("Could not load notifications:", err)
		return err
	}

	if len(page.Notifications) == 0 {
		fmt.Println("No notifications.")
		return nil
	}

	for _, n := range page.Notifications {
		marker := " "
		if !n.IsRead {
			marker = "*"
		}
		fmt.Printf("%s %-14s [%s] %s: %s\n", marker, n.NotificationID, n.Type, n.Title, n.Message)
	}
	fmt.Printf("Unread: %d\n", page.UnreadCount)
	return nil
}

// MarkRead marks a single notification as read.
func (a *App) MarkRead(ctx context.Context, notificationID string) error {
	if err := a.client.MarkNotificationRead(ctx, notificationID); err != nil {
		fmt.Println("Could not mark notification as read:", err)
		return err
	}
	fmt.Println("Marked as read.")
	return nil
}

// ReadAll marks every notification as read.
func (a *App) ReadAll(ctx context.Context) error {
	if err := a.client.MarkAllNotificationsRead(ctx); err != nil {
		fmt.Println("Could not mark notifications as read:", err)
		return err
	}
	fmt.Println("All notifications marked as read.")
	return nil
}
