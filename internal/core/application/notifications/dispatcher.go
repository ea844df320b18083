// Package notifications implements the notification pipeline behind the
// command handlers: transactional inbox fan-out at dispatch time and
// best-effort push/email delivery after commit.
package notifications

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"travelorders/internal/core/application/usecases/commands"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/notification"
	"travelorders/internal/core/domain/services"
	"travelorders/internal/core/ports"
)

// defaultQueueSize bounds the delivery backlog. A full queue drops the
// push/email side of an event; the inbox rows are already committed, so the
// notification itself is never lost.
const defaultQueueSize = 256

// deliveryTimeout caps one event's worth of channel sends.
const deliveryTimeout = 15 * time.Second

// deliveryTask carries one committed event and its planned notifications to
// the delivery worker.
type deliveryTask struct {
	event   notification.Event
	entries []*notification.Notification
}

// Dispatcher is the notification pipeline. Dispatch runs inside the
// caller's transaction and persists the inbox rows; DeliverAsync runs after
// commit and hands the event to the push and mail channels through a
// bounded queue serviced by a background worker.
type Dispatcher struct {
	planner     services.FanoutPlanner
	broadcaster ports.Broadcaster
	mailer      ports.Mailer
	users       ports.UserRepository
	logger      *slog.Logger

	queue chan deliveryTask
	wg    sync.WaitGroup
	once  sync.Once
}

// NewDispatcher creates the notification pipeline. The user repository must
// be bound to the main connection, not a transaction: the worker resolves
// admin email addresses after the originating transaction is gone.
func NewDispatcher(
	broadcaster ports.Broadcaster,
	mailer ports.Mailer,
	users ports.UserRepository,
	logger *slog.Logger,
) *Dispatcher {
	return &Dispatcher{
		planner:     services.NewFanoutPlanner(),
		broadcaster: broadcaster,
		mailer:      mailer,
		users:       users,
		logger:      logger.With("component", "notification-dispatcher"),
		queue:       make(chan deliveryTask, defaultQueueSize),
	}
}

// Start launches the delivery worker.
func (d *Dispatcher) Start() {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for task := range d.queue {
			d.deliver(task)
		}
	}()
}

// Stop drains the queue and waits for in-flight deliveries to finish.
// DeliverAsync must not be called after Stop.
func (d *Dispatcher) Stop() {
	d.once.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}

// Dispatch resolves the event's recipient set against the current admin
// roster and persists one inbox row per recipient through the caller's
// transaction. An event whose recipient set is empty dispatches nothing
// and is not an error.
func (d *Dispatcher) Dispatch(
	ctx context.Context,
	stores commands.FanoutStores,
	event notification.Event,
) ([]*notification.Notification, error) {
	admins, err := stores.UserRepository().GetAllAdmins(ctx)
	if err != nil {
		return nil, err
	}

	planned, err := d.planner.Plan(event, admins)
	if errors.Is(err, services.ErrNoRecipients) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	repo := stores.NotificationRepository()
	for _, entry := range planned {
		if err = repo.Add(ctx, entry); err != nil {
			return nil, err
		}
	}

	return planned, nil
}

// DeliverAsync enqueues the committed event for push and email delivery
// without blocking the caller. When the queue is full the event's real-time
// side is dropped and logged; the inbox rows already committed.
func (d *Dispatcher) DeliverAsync(event notification.Event, notifications []*notification.Notification) {
	if len(notifications) == 0 {
		return
	}

	select {
	case d.queue <- deliveryTask{event: event, entries: notifications}:
	default:
		d.logger.Warn("delivery queue full, dropping push/email for event",
			"kind", event.Kind.String(),
			"order_id", event.Order.OrderID.String(),
		)
	}
}

// deliver sends one event to its real-time channels and mails each
// recipient. Every channel and recipient failure is logged and isolated;
// nothing here can fail the operation that produced the event.
func (d *Dispatcher) deliver(task deliveryTask) {
	ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
	defer cancel()

	d.publish(ctx, task.event)

	for _, entry := range task.entries {
		d.mail(ctx, task.event, entry)
	}
}

// publish sends the event's push message to each of its channels.
func (d *Dispatcher) publish(ctx context.Context, event notification.Event) {
	message := ports.PushMessage{
		OrderID:        event.Order.OrderID.String(),
		Destination:    event.Order.Destination,
		Status:         event.Order.Status,
		PreviousStatus: event.PreviousStatus,
		DepartureDate:  event.Order.DepartureDate.Format(time.DateOnly),
		ReturnDate:     event.Order.ReturnDate.Format(time.DateOnly),
		Actor: ports.PushActor{
			ID:   event.Actor.ID.String(),
			Name: event.Actor.Name,
		},
		Message:   notification.RenderMessage(event, event.Order.OwnerID),
		Timestamp: event.OccurredAt,
	}

	for _, channel := range pushChannels(event) {
		if err := d.broadcaster.Publish(ctx, channel, message); err != nil {
			d.logger.Error("push publish failed",
				"channel", channel,
				"order_id", event.Order.OrderID.String(),
				"error", err,
			)
		}
	}
}

// pushChannels resolves the real-time channels an event goes to, mirroring
// the inbox recipient rules: status changes reach the owner privately,
// creations reach the admin group, and deletions reach whichever side did
// not perform them.
func pushChannels(event notification.Event) []string {
	switch event.Kind {
	case notification.StatusChanged:
		return []string{ports.OwnerChannel(event.Order.OwnerID)}
	case notification.OrderCreated:
		return []string{ports.AdminChannel}
	case notification.OrderDeleted:
		if event.Actor.ID.IsEqual(event.Order.OwnerID) {
			return []string{ports.AdminChannel}
		}
		return []string{ports.OwnerChannel(event.Order.OwnerID)}
	default:
		return nil
	}
}

// mail sends one recipient's rendered message by email.
func (d *Dispatcher) mail(ctx context.Context, event notification.Event, entry *notification.Notification) {
	address, err := d.recipientEmail(ctx, event, entry.RecipientID())
	if err != nil {
		d.logger.Error("recipient email lookup failed",
			"recipient_id", entry.RecipientID().String(),
			"error", err,
		)
		return
	}
	if address == "" {
		return
	}

	email := ports.Email{
		To:      address,
		Subject: notification.RenderSubject(event),
		Lines: []string{
			entry.Message(),
			"Destination: " + event.Order.Destination,
			"Departure: " + event.Order.DepartureDate.Format(time.DateOnly),
			"Return: " + event.Order.ReturnDate.Format(time.DateOnly),
		},
	}

	if err = d.mailer.Send(ctx, email); err != nil {
		d.logger.Error("email delivery failed",
			"recipient_id", entry.RecipientID().String(),
			"error", err,
		)
	}
}

// recipientEmail resolves a recipient's address: the owner's comes with the
// event snapshot, everyone else's from the user directory.
func (d *Dispatcher) recipientEmail(
	ctx context.Context,
	event notification.Event,
	recipientID kernel.UUID,
) (string, error) {
	if recipientID.IsEqual(event.Order.OwnerID) {
		return event.Order.OwnerEmail, nil
	}

	recipient, err := d.users.Get(ctx, recipientID)
	if err != nil {
		return "", err
	}
	return recipient.Email(), nil
}
