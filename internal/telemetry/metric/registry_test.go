package metric

import "testing"

func TestRegistry_RecordAndSnapshot(t *testing.T) {
	r := NewRegistry()

	r.Record("broadcast", OutcomeAccepted)
	r.Record("broadcast", OutcomeAccepted)
	r.Record("send_to_user", OutcomeRejected)

	stats, err := r.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	if len(stats) != 2 {
		t.Fatalf("len(stats) = %d, want 2", len(stats))
	}

	// Sorted by operation: broadcast before send_to_user.
	if stats[0].Operation != "broadcast" || stats[0].Count != 2 {
		t.Errorf("stats[0] = %+v, want broadcast count 2", stats[0])
	}
	if stats[1].Operation != "send_to_user" || stats[1].Outcome != OutcomeRejected || stats[1].Count != 1 {
		t.Errorf("stats[1] = %+v, want send_to_user rejected count 1", stats[1])
	}
}

func TestRegistry_EmptySnapshot(t *testing.T) {
	r := NewRegistry()
	stats, err := r.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(stats) != 0 {
		t.Errorf("len(stats) = %d, want 0", len(stats))
	}
}
