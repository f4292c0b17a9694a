package idgen

import (
	"strings"
	"testing"
)

func TestNewHabitID_Shape(t *testing.T) {
	id := NewHabitID()
	if !strings.HasPrefix(id, "custom_") {
		t.Fatalf("id = %q, want custom_ prefix", id)
	}
	suffix := strings.TrimPrefix(id, "custom_")
	if len(suffix) != 8 {
		t.Fatalf("suffix %q has length %d, want 8", suffix, len(suffix))
	}
	if strings.Contains(suffix, "-") {
		t.Fatalf("suffix %q must not contain dashes", suffix)
	}
}

func TestNewHabitID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewHabitID()
		if seen[id] {
			t.Fatalf("duplicate id %q after %d draws", id, i)
		}
		seen[id] = true
	}
}

func TestIsHabitID(t *testing.T) {
	if !IsHabitID("custom_ab12cd34") {
		t.Fatalf("custom_ id not recognized")
	}
	if IsHabitID("walk") {
		t.Fatalf("system task id misclassified as habit")
	}
}
