// Package update implements the toolkit update engine: probing repository
// state, guarding local changes, backing up, pulling, rolling back on
// failure, and mirroring results into the consumer directory.
package update

// Status classifies the outcome of an update check.
type Status string

const (
	// StatusUpToDate means the local checkout matches the remote head.
	StatusUpToDate Status = "up_to_date"
	// StatusUpdateAvailable means the local checkout is behind the remote.
	// It takes precedence over local changes: a checkout that is both
	// behind and dirty reports update-available.
	StatusUpdateAvailable Status = "update_available"
	// StatusHasLocalChanges means the checkout is current but has
	// uncommitted modifications.
	StatusHasLocalChanges Status = "has_local_changes"
	// StatusError means repository state could not be determined at all.
	StatusError Status = "error"
)

// Info is the ephemeral result of one update check. Changed and deleted path
// lists are already restricted to the managed allow-list; LocalChanges is the
// unfiltered working-tree status, used for disclosure only.
type Info struct {
	LocalCommit   string
	RemoteCommit  string
	LocalVersion  string
	RemoteVersion string
	LocalChanges  []Modification
	ChangedFiles  []string
	DeletedFiles  []string
	Behind        int
	Status        Status
}
