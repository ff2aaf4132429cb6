// Package store is the persistence facade: named JSON collections behind a
// small synchronous key-value interface with change notification. Every
// reader works on full-collection snapshots; every write replaces the whole
// collection and then notifies subscribers (last write wins).
package store

import "context"

// Collection names the stored documents. Keys keep the rms_ prefix of the
// original flat namespace.
type Collection string

const (
	Users       Collection = "rms_users"
	Rooms       Collection = "rms_rooms"
	Assignments Collection = "rms_assignments"
	Logs        Collection = "rms_logs"
	Session     Collection = "rms_session"
	Payments    Collection = "rms_payments"
	Feedback    Collection = "rms_feedback"
	Settings    Collection = "rms_settings"
)

// All lists every collection, for snapshot/backup walks.
var All = []Collection{Users, Rooms, Assignments, Logs, Session, Payments, Feedback, Settings}

// ChangeFunc receives the name of a collection that was written.
type ChangeFunc func(Collection)

type Store interface {
	// Get unmarshals the collection into out. It reports false and leaves
	// out untouched when the collection has never been written.
	Get(ctx context.Context, c Collection, out any) (bool, error)
	// Put marshals v, replaces the stored collection, and notifies
	// subscribers.
	Put(ctx context.Context, c Collection, v any) error
	// Delete removes the collection and notifies subscribers.
	Delete(ctx context.Context, c Collection) error
	// Subscribe registers fn to run after every write. The returned func
	// unsubscribes.
	Subscribe(fn ChangeFunc) func()
	Ping(ctx context.Context) error
	Close() error
}
