package state

import "github.com/charmbracelet/lipgloss"

// NotificationLevel represents the severity/type of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications (accent color)
	LevelInfo NotificationLevel = iota
	// LevelWarning represents warnings such as a blocked generation
	LevelWarning
	// LevelError represents error notifications (delete color)
	LevelError
)

// Notification represents a single notification message with a severity level.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState manages notification display state.
// This provides a centralized way to handle user-facing notifications
// of different severity levels throughout the application.
type NotificationState struct {
	// notifications contains the list of current notifications to display
	notifications []Notification
}

// NewNotificationState creates a new NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{
		notifications: []Notification{},
	}
}

// Add adds a new notification with the specified level and message.
//
// Parameters:
//   - level: the severity level of the notification
//   - message: the notification message to display
func (s *NotificationState) Add(level NotificationLevel, message string) {
	s.notifications = append(s.notifications, Notification{
		Level:   level,
		Message: message,
	})
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = []Notification{}
}

// ClearLevel removes all notifications of a specific level.
//
// Parameters:
//   - level: the level of notifications to clear
func (s *NotificationState) ClearLevel(level NotificationLevel) {
	filtered := []Notification{}
	for _, n := range s.notifications {
		if n.Level != level {
			filtered = append(filtered, n)
		}
	}
	s.notifications = filtered
}

// All returns all current notifications.
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// HasAny returns true if there are any notifications.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}

// Latest returns the most recent notification, if any.
func (s *NotificationState) Latest() (Notification, bool) {
	if len(s.notifications) == 0 {
		return Notification{}, false
	}
	return s.notifications[len(s.notifications)-1], true
}

// Render stacks the rendered notifications vertically, newest last.
// At most limit notifications are shown; limit <= 0 shows all of them.
func (s *NotificationState) Render(limit int, renderFunc func(Notification) string) string {
	shown := s.notifications
	if limit > 0 && len(shown) > limit {
		shown = shown[len(shown)-limit:]
	}
	views := make([]string, 0, len(shown))
	for _, n := range shown {
		views = append(views, renderFunc(n))
	}
	return lipgloss.JoinVertical(lipgloss.Right, views...)
}
