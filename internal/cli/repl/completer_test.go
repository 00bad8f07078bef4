package repl

import "testing"

func TestCompleter_Complete(t *testing.T) {
	c := NewCompleter()

	got := c.Complete("send")
	if len(got) != 2 {
		t.Errorf("Complete(send) = %v, want both send targets", got)
	}

	if got := c.Complete("Q"); len(got) != 2 {
		t.Errorf("Complete(Q) = %v, want Q and Quite", got)
	}

	if got := c.Complete("zzz"); len(got) != 0 {
		t.Errorf("Complete(zzz) = %v, want none", got)
	}
}
