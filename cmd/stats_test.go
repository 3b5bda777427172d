package cmd

import "testing"

func TestStatsArgs(t *testing.T) {
	if err := statsCmd.Args(statsCmd, nil); err == nil {
		t.Fatal("expected a usage error with no session id")
	}
	if err := statsCmd.Args(statsCmd, []string{"sess-1"}); err != nil {
		t.Fatalf("one arg: %v", err)
	}
	if err := statsCmd.Args(statsCmd, []string{"sess-1", "extra"}); err == nil {
		t.Fatal("expected a usage error with extra args")
	}
}
