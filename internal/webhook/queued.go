// internal/webhook/queued.go
package webhook

import (
    "context"

    "github.com/piebomber/piebomber-api/internal/queue"
)

// QueuedNotifier hands the delivery to the webhook worker instead of
// POSTing inline. It never confirms delivery itself: the worker flips
// the webhook flag once the receiver has accepted the payload.
type QueuedNotifier struct {
    Publisher *queue.Publisher
}

func (n *QueuedNotifier) Notify(ctx context.Context, p Payload) (bool, error) {
    err := n.Publisher.Publish(queue.DeliveryJob{
        RequestID:  p.RequestID,
        DeliveryID: p.DeliveryID,
    })
    return false, err
}

var _ Notifier = (*QueuedNotifier)(nil)
