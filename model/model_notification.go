package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Notification statuses.
const (
	NotificationUnread   = "unread"
	NotificationRead     = "read"
	NotificationArchived = "archived"
	NotificationDeleted  = "deleted"
)

// Notification types raised by server-side triggers.
const (
	NotifyLeaveDecision   = "leave_decision"
	NotifyExpenseDecision = "expense_decision"
	NotifyTargetAssigned  = "target_assigned"
	NotifyBroadcast       = "broadcast"
)

type Notification struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	CompanyID bson.ObjectID `json:"companyId" bson:"company_id"`
	UserID    bson.ObjectID `json:"userId"    bson:"user_id"`
	Type      string        `json:"type"      bson:"type"`
	Priority  string        `json:"priority"  bson:"priority"` // low, normal, high
	Title     string        `json:"title"     bson:"title"`
	Body      string        `json:"body"      bson:"body,omitempty"`
	Status    string        `json:"status"    bson:"status"`
	// Push metadata recorded when the notification was forwarded to FCM.
	PushMessageID string     `json:"pushMessageId" bson:"push_message_id,omitempty"`
	PushedAt      *time.Time `json:"pushedAt"      bson:"pushed_at,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"     bson:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt"     bson:"updated_at"`
}

// NotificationPrefs stores per-user delivery preferences. Types maps a
// notification type to an enable flag; absent types default to enabled.
type NotificationPrefs struct {
	ID          bson.ObjectID   `json:"id"          bson:"_id,omitempty"`
	UserID      bson.ObjectID   `json:"userId"      bson:"user_id"`
	PushEnabled bool            `json:"pushEnabled" bson:"push_enabled"`
	Types       map[string]bool `json:"types"       bson:"types,omitempty"`
	UpdatedAt   time.Time       `json:"updatedAt"   bson:"updated_at"`
}

type DeviceToken struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	UserID    bson.ObjectID `json:"userId"    bson:"user_id"`
	Token     string        `json:"token"     bson:"token"`
	Platform  string        `json:"platform"  bson:"platform,omitempty"` // android, ios, web
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
}
