package service

import (
	"sync"
	"time"
)

type NotificationType string

const (
	NotificationNone    NotificationType = ""
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
)

type Notification struct {
	Type    NotificationType `json:"type"`
	Message string           `json:"message"`
}

const notificationDismissAfter = 3 * time.Second

// UIState is the single process-wide UI store: a global loading counter and
// the current notification. It starts empty; notifications auto-dismiss after
// a fixed interval, and loading settles back to false when every mutation in
// flight has finished. All access goes through this object, never through
// package-level state.
type UIState struct {
	mu           sync.Mutex
	loading      int
	notification Notification
	dismissAfter time.Duration
	dismissTimer *time.Timer
}

func NewUIState() *UIState {
	return &UIState{dismissAfter: notificationDismissAfter}
}

func (u *UIState) SetGlobalLoading(loading bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if loading {
		u.loading++
		return
	}
	if u.loading > 0 {
		u.loading--
	}
}

func (u *UIState) IsGlobalLoading() bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.loading > 0
}

func (u *UIState) ShowNotification(notificationType NotificationType, message string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.dismissTimer != nil {
		u.dismissTimer.Stop()
	}

	u.notification = Notification{Type: notificationType, Message: message}
	u.dismissTimer = time.AfterFunc(u.dismissAfter, u.ClearNotification)
}

func (u *UIState) Notification() Notification {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.notification
}

func (u *UIState) ClearNotification() {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.notification = Notification{}
}
