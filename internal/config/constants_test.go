package config

import "testing"

func TestConstants(t *testing.T) {
	if DefaultReminderDelay <= 0 {
		t.Fatalf("DefaultReminderDelay must be positive")
	}
	if DefaultReminderDelay < MinReminderDelay {
		t.Fatalf("DefaultReminderDelay below MinReminderDelay")
	}
	if AppName == "" {
		t.Fatalf("AppName should not be empty")
	}
	if DBFileName == "" {
		t.Fatalf("DBFileName should not be empty")
	}
	if TabMoodLog != 0 || TabResources != 1 || TabMusic != 2 {
		t.Fatalf("unexpected tab constants")
	}
}
