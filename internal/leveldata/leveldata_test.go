package leveldata

import (
	"testing"
)

func TestLoadLevelRegistry(t *testing.T) {
	registry, err := LoadLevelRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 3 {
		t.Errorf("Expected 3 levels, got %d", registry.Count())
	}

	// Every built-in size must be present
	for _, rows := range []int{3, 4, 5} {
		level := registry.GetByRows(rows)
		if level == nil {
			t.Errorf("Level with %d rows not found", rows)
			continue
		}
		if level.Rows != rows {
			t.Errorf("Expected %d rows, got %d", rows, level.Rows)
		}
		if level.Name == "" {
			t.Errorf("Level %dx%d has no name", rows, rows)
		}
		if level.BackgroundPath == "" {
			t.Errorf("Level %dx%d has no background path", rows, rows)
		}
	}

	if registry.GetByRows(7) != nil {
		t.Error("Unknown size should return nil")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load[[]int]("does_not_exist.json"); err == nil {
		t.Error("Expected error for missing embedded file")
	}
}

func TestStarThresholds(t *testing.T) {
	thresholds, err := LoadStarThresholds()
	if err != nil {
		t.Fatalf("Failed to load thresholds: %v", err)
	}

	tests := []struct {
		rows     int
		moves    int
		expected int
	}{
		{3, 10, 3},
		{3, 20, 3}, // boundary: exactly the 3-star limit
		{3, 21, 2},
		{3, 30, 2}, // boundary: exactly the 2-star limit
		{3, 31, 1},
		{4, 40, 3},
		{4, 60, 2},
		{4, 500, 1},
		{5, 80, 3},
		{5, 120, 2},
		{5, 121, 1},
		{9, 1, 1}, // unknown size always rates one star
	}

	for _, test := range tests {
		if got := thresholds.Rate(test.rows, test.moves); got != test.expected {
			t.Errorf("Rate(%d, %d) = %d, expected %d", test.rows, test.moves, got, test.expected)
		}
	}
}
