package statemachine

import (
	"testing"

	"restaurant-pos-api/models"
)

func TestPendingTransitions(t *testing.T) {
	if err := CanTransition(models.StatusPending, models.StatusCompleted); err != nil {
		t.Errorf("pending → completed should be allowed: %v", err)
	}
	if err := CanTransition(models.StatusPending, models.StatusCancelled); err != nil {
		t.Errorf("pending → cancelled should be allowed: %v", err)
	}
}

func TestTerminalStates(t *testing.T) {
	for _, from := range []models.OrderStatus{models.StatusCompleted, models.StatusCancelled} {
		for _, to := range []models.OrderStatus{models.StatusPending, models.StatusCompleted, models.StatusCancelled} {
			if from == to {
				continue
			}
			if err := CanTransition(from, to); err == nil {
				t.Errorf("%s → %s should be rejected", from, to)
			}
		}
		if nexts := ValidTransitionsFrom(from); len(nexts) != 0 {
			t.Errorf("%s should be terminal, got next states %v", from, nexts)
		}
	}
}
