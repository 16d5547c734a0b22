package raster

import "testing"

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"png", FormatPNG, false},
		{"PNG", FormatPNG, false},
		{"jpeg", FormatJPEG, false},
		{"jpg", FormatJPG, false},
		{"JPEG", FormatJPEG, false},
		{"gif", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseFormat(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormat(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatExtMatchesRequestedName(t *testing.T) {
	if FormatPNG.Ext() != "png" {
		t.Errorf("png ext = %q", FormatPNG.Ext())
	}
	if FormatJPEG.Ext() != "jpeg" {
		t.Errorf("jpeg ext = %q", FormatJPEG.Ext())
	}
	// "jpg" stays "jpg" so output filenames carry the extension the user asked for.
	if FormatJPG.Ext() != "jpg" {
		t.Errorf("jpg ext = %q", FormatJPG.Ext())
	}
}

func TestRangeValidate(t *testing.T) {
	tests := []struct {
		name    string
		r       Range
		wantErr bool
	}{
		{"full", Range{}, false},
		{"single page", Range{Start: 3, End: 3}, false},
		{"ascending", Range{Start: 1, End: 10}, false},
		{"zero start", Range{Start: 0, End: 5}, true},
		{"negative start", Range{Start: -1, End: 5}, true},
		{"end before start", Range{Start: 5, End: 2}, true},
	}

	for _, tt := range tests {
		err := tt.r.Validate()
		if tt.wantErr && err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
		}
	}
}

func TestRangeClamp(t *testing.T) {
	tests := []struct {
		name      string
		r         Range
		total     int
		wantStart int
		wantEnd   int
	}{
		{"full document", Range{}, 5, 0, 5},
		{"interior", Range{Start: 2, End: 4}, 5, 1, 4},
		{"single page", Range{Start: 3, End: 3}, 5, 2, 3},
		{"end beyond total", Range{Start: 4, End: 99}, 5, 3, 5},
		{"entirely beyond total", Range{Start: 8, End: 9}, 5, 7, 7},
		{"covers everything", Range{Start: 1, End: 5}, 5, 0, 5},
	}

	for _, tt := range tests {
		start, end := tt.r.clamp(tt.total)
		if start != tt.wantStart || end != tt.wantEnd {
			t.Errorf("%s: clamp(%d) = [%d, %d), want [%d, %d)",
				tt.name, tt.total, start, end, tt.wantStart, tt.wantEnd)
		}
	}
}

func TestRangeClampBeyondTotalIsEmpty(t *testing.T) {
	start, end := (Range{Start: 8, End: 9}).clamp(5)
	if start != end {
		t.Errorf("expected empty interval, got [%d, %d)", start, end)
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		in      string
		want    Range
		wantErr bool
	}{
		{"1-3", Range{Start: 1, End: 3}, false},
		{"5", Range{Start: 5, End: 5}, false},
		{" 2 - 4 ", Range{Start: 2, End: 4}, false},
		{"3-1", Range{}, true},
		{"0-2", Range{}, true},
		{"a-b", Range{}, true},
		{"", Range{}, true},
	}

	for _, tt := range tests {
		got, err := ParseRange(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseRange(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRange(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRange(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestDPIInRecommendedRange(t *testing.T) {
	tests := []struct {
		dpi  float64
		want bool
	}{
		{71, false},
		{72, true},
		{150, true},
		{600, true},
		{601, false},
	}

	for _, tt := range tests {
		if got := DPIInRecommendedRange(tt.dpi); got != tt.want {
			t.Errorf("DPIInRecommendedRange(%v) = %v, want %v", tt.dpi, got, tt.want)
		}
	}
}
