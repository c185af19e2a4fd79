package process

// Notes:
// - Only PIDs that cannot belong to a live process are exercised here; real
//   termination is covered by the renderer integration tests.

import "testing"

func TestKillProcessGroup_IgnoresNonPositivePID(t *testing.T) {
	t.Parallel()

	// Would signal our own process group if not guarded.
	KillProcessGroup(0)
	KillProcessGroup(-1)
}

func TestKillProcessGroup_UnknownPID(t *testing.T) {
	t.Parallel()

	KillProcessGroup(999999999)
}
