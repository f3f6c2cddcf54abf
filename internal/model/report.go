package model

// Example is a synthesized example rendered to source for one declared type.
type Example struct {
	RunID    string
	TypeName string
	Random   bool
	Source   string
}

// TypeSummary describes a declared type for listings.
type TypeSummary struct {
	Name       string
	Kind       TypeKind
	Parameters []string
}

// SnapshotStatus is the outcome of comparing an example against its snapshot.
type SnapshotStatus int

const (
	// SnapshotMatched indicates the example is identical to the stored snapshot.
	SnapshotMatched SnapshotStatus = iota
	// SnapshotChanged indicates the example differs from the stored snapshot.
	SnapshotChanged
	// SnapshotAdded indicates no snapshot was stored for the type.
	SnapshotAdded
	// SnapshotRemoved indicates a stored snapshot has no matching type anymore.
	SnapshotRemoved
)

// String returns the status label.
func (s SnapshotStatus) String() string {
	switch s {
	case SnapshotMatched:
		return "matched"
	case SnapshotChanged:
		return "changed"
	case SnapshotAdded:
		return "added"
	case SnapshotRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// SnapshotResult is the comparison of one type's example against its snapshot.
type SnapshotResult struct {
	TypeName string
	Status   SnapshotStatus
	Diff     string
}
