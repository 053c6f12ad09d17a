package services

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/anishanishy81-byte/poverse-sub003/configs"
	"github.com/anishanishy81-byte/poverse-sub003/dto"
	"github.com/anishanishy81-byte/poverse-sub003/internal/push"
	"github.com/anishanishy81-byte/poverse-sub003/model"
)

type NotificationStore interface {
	Create(ctx context.Context, n *model.Notification) error
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Notification, error)
	ListByUser(ctx context.Context, userID bson.ObjectID, status string, limit int64) ([]*model.Notification, error)
	SetStatus(ctx context.Context, id, userID bson.ObjectID, status string) (bool, error)
	MarkAllRead(ctx context.Context, userID bson.ObjectID) (int64, error)
	SetPushMeta(ctx context.Context, id bson.ObjectID, messageID string) error
	GetPrefs(ctx context.Context, userID bson.ObjectID) (*model.NotificationPrefs, error)
	UpsertPrefs(ctx context.Context, p *model.NotificationPrefs) error
	UpsertToken(ctx context.Context, t *model.DeviceToken) error
	TokensForUser(ctx context.Context, userID bson.ObjectID) ([]string, error)
}

type NotificationUserLister interface {
	ListByCompany(ctx context.Context, companyID bson.ObjectID) ([]*model.User, error)
}

type NotificationService struct {
	store      NotificationStore
	users      NotificationUserLister
	dispatcher push.Dispatcher
	log        *logrus.Logger
}

func NewNotificationService(store NotificationStore, users NotificationUserLister, dispatcher push.Dispatcher, log *logrus.Logger) *NotificationService {
	return &NotificationService{store: store, users: users, dispatcher: dispatcher, log: log}
}

// Notify stores the notification and pushes it when the user's preferences
// allow. Push failures are logged, never surfaced: delivery is best effort.
func (s *NotificationService) Notify(ctx context.Context, companyID, userID bson.ObjectID, typ, priority, title, body string) error {
	n := &model.Notification{
		CompanyID: companyID,
		UserID:    userID,
		Type:      typ,
		Priority:  priority,
		Title:     title,
		Body:      body,
		Status:    model.NotificationUnread,
	}
	if err := s.store.Create(ctx, n); err != nil {
		return err
	}

	prefs, err := s.store.GetPrefs(ctx, userID)
	if err != nil {
		return err
	}
	if !pushAllowed(prefs, typ) || s.dispatcher == nil {
		return nil
	}

	tokens, err := s.store.TokensForUser(ctx, userID)
	if err != nil || len(tokens) == 0 {
		return err
	}

	msgID, err := s.dispatcher.Dispatch(ctx, push.Message{
		NotificationID: n.ID.Hex(),
		Tokens:         tokens,
		Title:          title,
		Body:           body,
		Data:           map[string]string{"type": typ, "notificationId": n.ID.Hex()},
	})
	if err != nil {
		configs.LogError(s.log, "notification", "Notify", "push dispatch", err)
		return nil
	}
	if msgID != "" {
		if err := s.store.SetPushMeta(ctx, n.ID, msgID); err != nil {
			configs.LogError(s.log, "notification", "Notify", "set push meta", err)
		}
	}
	return nil
}

// pushAllowed defaults to enabled when no preference document exists; a
// stored prefs doc gates on both the global flag and the per-type flag.
func pushAllowed(prefs *model.NotificationPrefs, typ string) bool {
	if prefs == nil {
		return true
	}
	if !prefs.PushEnabled {
		return false
	}
	if enabled, ok := prefs.Types[typ]; ok {
		return enabled
	}
	return true
}

// Broadcast sends an admin notification to chosen users, or every user of
// the company when none are named.
func (s *NotificationService) Broadcast(ctx context.Context, companyID bson.ObjectID, req dto.BroadcastReq) (int, error) {
	priority := req.Priority
	if priority == "" {
		priority = "normal"
	}

	var userIDs []bson.ObjectID
	if len(req.UserIDs) > 0 {
		for _, raw := range req.UserIDs {
			id, err := bson.ObjectIDFromHex(raw)
			if err != nil {
				return 0, ErrValidation
			}
			userIDs = append(userIDs, id)
		}
	} else {
		users, err := s.users.ListByCompany(ctx, companyID)
		if err != nil {
			return 0, err
		}
		for _, u := range users {
			if !u.Disabled {
				userIDs = append(userIDs, u.ID)
			}
		}
	}

	sent := 0
	for _, uid := range userIDs {
		if err := s.Notify(ctx, companyID, uid, model.NotifyBroadcast, priority, req.Title, req.Body); err != nil {
			configs.LogError(s.log, "notification", "Broadcast", "notify "+uid.Hex(), err)
			continue
		}
		sent++
	}
	return sent, nil
}

func (s *NotificationService) List(ctx context.Context, userID bson.ObjectID, status string, limit int64) ([]*model.Notification, error) {
	if limit <= 0 || limit > configs.MaxLimitNotifications {
		limit = configs.DefaultLimitNotifications
	}
	return s.store.ListByUser(ctx, userID, status, limit)
}

func (s *NotificationService) SetStatus(ctx context.Context, id, userID bson.ObjectID, status string) error {
	switch status {
	case model.NotificationRead, model.NotificationArchived, model.NotificationDeleted:
	default:
		return ErrValidation
	}
	ok, err := s.store.SetStatus(ctx, id, userID, status)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID bson.ObjectID) (int64, error) {
	return s.store.MarkAllRead(ctx, userID)
}

func (s *NotificationService) GetPrefs(ctx context.Context, userID bson.ObjectID) (*model.NotificationPrefs, error) {
	prefs, err := s.store.GetPrefs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		// Virtual default: push on, every type enabled.
		prefs = &model.NotificationPrefs{UserID: userID, PushEnabled: true}
	}
	return prefs, nil
}

func (s *NotificationService) UpdatePrefs(ctx context.Context, userID bson.ObjectID, req dto.UpdatePrefsReq) (*model.NotificationPrefs, error) {
	prefs, err := s.GetPrefs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.PushEnabled != nil {
		prefs.PushEnabled = *req.PushEnabled
	}
	if req.Types != nil {
		if prefs.Types == nil {
			prefs.Types = map[string]bool{}
		}
		for k, v := range req.Types {
			prefs.Types[k] = v
		}
	}
	if err := s.store.UpsertPrefs(ctx, prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}

func (s *NotificationService) RegisterToken(ctx context.Context, userID bson.ObjectID, req dto.RegisterTokenReq) error {
	return s.store.UpsertToken(ctx, &model.DeviceToken{
		UserID:   userID,
		Token:    req.Token,
		Platform: req.Platform,
	})
}
