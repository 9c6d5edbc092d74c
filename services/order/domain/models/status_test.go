package models

import (
	"errors"
	"testing"

	"github.com/answerking/answerking-api/services/order/domain"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"Pending", StatusPending, false},
		{"Completed", StatusCompleted, false},
		{"Cancelled", StatusCancelled, false},
		{"pending", "", true},
		{"Unknown", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidStatus) {
					t.Fatalf("expected ErrInvalidStatus, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("ParseStatus(%q) = %q, %v", tt.in, got, err)
			}
		})
	}
}

func TestStatuses_ReturnsCopy(t *testing.T) {
	s := Statuses()
	s[0] = "Mutated"
	if Statuses()[0] != StatusPending {
		t.Fatal("Statuses must not expose the internal slice")
	}
}

func TestNewAddress(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Address
		wantErr bool
	}{
		{"simple", "test street 123", "test street 123", false},
		{"punctuation", "Flat 2-B, 10 Main St", "Flat 2-B, 10 Main St", false},
		{"compresses spaces", "  10   Main St ", "10 Main St", false},
		{"tab inside", "10 Main\tSt", "", true},
		{"newline inside", "10 Main\nSt", "", true},
		{"empty", "", "", true},
		{"only spaces", "   ", "", true},
		{"forbidden char", "test%", "", true},
		{"too long", string(make([]byte, 201)), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewAddress(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewAddress(%q) error = %v, wantErr = %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("NewAddress(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
