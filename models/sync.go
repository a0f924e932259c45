package models

// SyncStatus is the process-wide connectivity state observed by the UI.
type SyncStatus string

const (
	SyncOnline  SyncStatus = "online"
	SyncOffline SyncStatus = "offline"
	SyncSyncing SyncStatus = "syncing"
)

// SyncReport summarises one outbox drain cycle.
type SyncReport struct {
	Replayed int
	Skipped  int
	Failed   int
	Pending  int
}
