package core

import (
	"errors"
	"testing"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"7", 7, false},
		{"07", 7, false},
		{"25", 25, false},
		{"day07", 7, false},
		{"day7", 7, false},
		{"Day25", 25, false},
		{" 3 ", 3, false},
		{"0", 0, true},
		{"day00", 0, true},
		{"-1", 0, true},
		{"seven", 0, true},
		{"day", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDay(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDay(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidDay) {
				t.Errorf("ParseDay(%q) error = %v, want ErrInvalidDay", tt.input, err)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseDay(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDayRange(t *testing.T) {
	tests := []struct {
		name      string
		from, to  string
		wantStart int
		wantEnd   int
		wantErr   bool
	}{
		{"ordered", "1", "5", 1, 5, false},
		{"single day", "day03", "3", 3, 3, false},
		{"reversed", "5", "1", 0, 0, true},
		{"bad start", "x", "5", 0, 0, true},
		{"bad end", "1", "y", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := ParseDayRange(tt.from, tt.to)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDayRange(%q, %q) error = %v, wantErr %v", tt.from, tt.to, err, tt.wantErr)
				return
			}
			if !tt.wantErr && (start != tt.wantStart || end != tt.wantEnd) {
				t.Errorf("ParseDayRange(%q, %q) = %d..%d, want %d..%d", tt.from, tt.to, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestCacheFileName(t *testing.T) {
	tests := []struct {
		day  int
		want string
	}{
		{1, "day01.txt"},
		{7, "day07.txt"},
		{25, "day25.txt"},
		{100, "day100.txt"},
	}

	for _, tt := range tests {
		if got := CacheFileName(tt.day); got != tt.want {
			t.Errorf("CacheFileName(%d) = %q, want %q", tt.day, got, tt.want)
		}
	}
}

func TestSessionEnvName(t *testing.T) {
	if got := SessionEnvName("2024"); got != "AOC_2024_SESSION_ID" {
		t.Errorf("SessionEnvName(2024) = %q", got)
	}
}

func TestMaskToken(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"", ""},
		{"abc", "***"},
		{"abcd", "****"},
		{"53616c7465645f5f", "************5f5f"},
	}

	for _, tt := range tests {
		if got := MaskToken(tt.token); got != tt.want {
			t.Errorf("MaskToken(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}
