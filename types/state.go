package types

// InstanceState is the abstract processing state of a schedulable record.
//
// States follow a defined progression during normal operation:
//
//	StateNew → StateRunning → StateDone/StateFailed
//
// StateDeadlineReached and StateDropped are terminal states assigned by the
// execution engine when a record can no longer be processed.
//
// Storage schemas rarely persist this enum directly; a StateValueMapper on
// each partition key converts it to the storage-native representation.
type InstanceState int

const (
	// StateNew marks a record that has not been processed yet.
	StateNew InstanceState = iota

	// StateRunning marks a record that is currently being processed.
	StateRunning

	// StateDone marks a record that was processed successfully.
	StateDone

	// StateFailed marks a record whose processing failed permanently.
	StateFailed

	// StateDeadlineReached marks a record that passed its deadline before processing.
	StateDeadlineReached

	// StateDropped marks a record that was dropped without processing.
	StateDropped
)

// String returns the string representation of the state.
func (s InstanceState) String() string {
	switch s {
	case StateNew:
		return "New"
	case StateRunning:
		return "Running"
	case StateDone:
		return "Done"
	case StateFailed:
		return "Failed"
	case StateDeadlineReached:
		return "DeadlineReached"
	case StateDropped:
		return "Dropped"
	default:
		return "Unknown"
	}
}
