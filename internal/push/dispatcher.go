package push

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/pubsub"
	"github.com/sirupsen/logrus"
)

// Message is one push dispatch: a stored notification fanned out to a
// user's device tokens.
type Message struct {
	NotificationID string            `json:"notification_id"`
	Tokens         []string          `json:"tokens"`
	Title          string            `json:"title"`
	Body           string            `json:"body,omitempty"`
	Data           map[string]string `json:"data,omitempty"`
}

// Dispatcher delivers a push message. The direct implementation calls FCM
// inline; the Pub/Sub one defers delivery to the subscriber worker.
type Dispatcher interface {
	Dispatch(ctx context.Context, msg Message) (messageID string, err error)
}

type DirectDispatcher struct {
	fcm *FCMClient
}

func NewDirectDispatcher(fcm *FCMClient) *DirectDispatcher {
	return &DirectDispatcher{fcm: fcm}
}

func (d *DirectDispatcher) Dispatch(ctx context.Context, msg Message) (string, error) {
	return d.fcm.Send(ctx, msg.Tokens, msg.Title, msg.Body, msg.Data)
}

type PubSubDispatcher struct {
	topic *pubsub.Topic
}

func NewPubSubDispatcher(topic *pubsub.Topic) *PubSubDispatcher {
	return &PubSubDispatcher{topic: topic}
}

func (d *PubSubDispatcher) Dispatch(ctx context.Context, msg Message) (string, error) {
	raw, err := json.Marshal(msg)
	if err != nil {
		return "", err
	}
	res := d.topic.Publish(ctx, &pubsub.Message{Data: raw})
	id, err := res.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("publish push message: %w", err)
	}
	return id, nil
}

// Worker consumes queued push messages and forwards them to FCM.
type Worker struct {
	sub *pubsub.Subscription
	fcm *FCMClient
	log *logrus.Logger
}

func NewWorker(sub *pubsub.Subscription, fcm *FCMClient, log *logrus.Logger) *Worker {
	return &Worker{sub: sub, fcm: fcm, log: log}
}

// Run blocks until ctx is cancelled. Messages that fail to decode are acked
// and dropped; FCM failures are nacked for redelivery.
func (w *Worker) Run(ctx context.Context) error {
	return w.sub.Receive(ctx, func(ctx context.Context, m *pubsub.Message) {
		var msg Message
		if err := json.Unmarshal(m.Data, &msg); err != nil {
			w.log.WithField("module", "push").Errorf("drop undecodable push message: %v", err)
			m.Ack()
			return
		}
		if _, err := w.fcm.Send(ctx, msg.Tokens, msg.Title, msg.Body, msg.Data); err != nil {
			w.log.WithField("module", "push").Errorf("fcm send failed, will retry: %v", err)
			m.Nack()
			return
		}
		m.Ack()
	})
}
