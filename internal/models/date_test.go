// ABOUTME: Tests for the Date value type.
// ABOUTME: Covers flexible parsing and the YYYY-MM-DD wire format.
package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "plain date",
			input:   "2024-01-10",
			wantErr: false,
		},
		{
			name:    "RFC3339",
			input:   "2024-01-10T08:30:00Z",
			wantErr: false,
		},
		{
			name:    "timestamp without zone",
			input:   "2024-01-10T08:30:00",
			wantErr: false,
		},
		{
			name:    "day first",
			input:   "10-01-2024",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "not a date",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && d.String() != "2024-01-10" {
				t.Errorf("String() = %s, want 2024-01-10", d)
			}
		})
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, time.January, 5)

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2024-01-05"` {
		t.Errorf("marshal = %s, want \"2024-01-05\"", data)
	}

	var back Date
	if err := json.Unmarshal([]byte(`"2024-01-05T10:00:00Z"`), &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(d) {
		t.Errorf("unmarshal = %s, want %s", back, d)
	}

	var empty Date
	if err := json.Unmarshal([]byte(`""`), &empty); err != nil {
		t.Errorf("empty string should unmarshal to zero date, got %v", err)
	}
	if !empty.IsZero() {
		t.Error("expected zero date")
	}
}

func TestDateComparisons(t *testing.T) {
	early := NewDate(2024, time.January, 5)
	late := NewDate(2024, time.January, 10)

	if !early.Before(late) {
		t.Error("expected early.Before(late)")
	}
	if !late.OnOrAfter(early) {
		t.Error("expected late.OnOrAfter(early)")
	}
	if !early.OnOrAfter(early) {
		t.Error("a date is on-or-after itself")
	}
	if !DateOf(time.Date(2024, time.January, 5, 23, 59, 0, 0, time.UTC)).Equal(early) {
		t.Error("DateOf should truncate the time component")
	}
}
