package util

import (
	"strings"
	"testing"
)

func TestValidateInstanceID_Valid(t *testing.T) {
	valid := []string{
		"orders-db",
		"orders-dlq.fifo",
		"a",
		"prod.db.01",
		"UPPERCASE",
		"MiXeD123",
		"123456789",
		"queue_with_underscores",
	}
	for _, id := range valid {
		t.Run(id, func(t *testing.T) {
			if err := ValidateInstanceID(id); err != nil {
				t.Errorf("expected %q to be valid, got error: %v", id, err)
			}
		})
	}
}

func TestValidateInstanceID_Invalid(t *testing.T) {
	tests := []struct {
		id      string
		wantMsg string
	}{
		{"", "must not be empty"},
		{strings.Repeat("a", 129), "at most 128 characters"},
		{"orders db", "invalid characters"},
		{"-orders", "must start with an alphanumeric"},
		{".orders", "must start with an alphanumeric"},
		{"orders!", "invalid characters"},
		{"orders@db", "invalid characters"},
		{"orders\tdb", "invalid characters"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			err := ValidateInstanceID(tt.id)
			if err == nil {
				t.Errorf("expected %q to be invalid, got nil", tt.id)
				return
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected error containing %q, got %q", tt.wantMsg, err)
			}
		})
	}
}
