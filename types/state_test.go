package types

import "testing"

func TestInstanceStateString(t *testing.T) {
	tests := []struct {
		state InstanceState
		want  string
	}{
		{StateNew, "New"},
		{StateRunning, "Running"},
		{StateDone, "Done"},
		{StateFailed, "Failed"},
		{StateDeadlineReached, "DeadlineReached"},
		{StateDropped, "Dropped"},
		{InstanceState(999), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Errorf("InstanceState.String() = %v, want %v", got, tt.want)
			}
		})
	}
}
