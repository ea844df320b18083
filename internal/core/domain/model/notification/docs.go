// Package notification provides domain entities for the per-user inbox and
// the events that feed it.
//
// The package includes:
//   - Notification: a persisted inbox entry with deterministic identity
//   - Kind: the classification of an entry by its producing order event
//   - Event: the fan-out input emitted by a notify-worthy state transition
//   - message rendering for the inbox, push, and email channels
//
// Key business rules:
//   - A notification's identity is derived from (recipient, order, kind,
//     previous status), so redispatching a transition cannot create a
//     duplicate inbox entry
//   - A notification belongs to exactly one recipient and only that
//     recipient may read or delete it
//   - read_at is nil while unread; marking read is idempotent
package notification
