package status

import "testing"

func TestCollect(t *testing.T) {
	snap, err := Collect()
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	if snap.PID <= 0 {
		t.Errorf("Expected positive PID, got %d", snap.PID)
	}
	if snap.Goroutines <= 0 {
		t.Errorf("Expected at least one goroutine, got %d", snap.Goroutines)
	}
	if snap.UptimeSeconds < 0 {
		t.Errorf("Expected non-negative uptime, got %d", snap.UptimeSeconds)
	}
}
