package exam

import "testing"

func TestEscalation_Easy(t *testing.T) {
	got := Easy.Escalation()
	want := []Difficulty{Easy, Medium, Hard}
	if len(got) != len(want) {
		t.Fatalf("got %d levels, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("level %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestEscalation_Medium(t *testing.T) {
	got := Medium.Escalation()
	if len(got) != 2 || got[0] != Medium || got[1] != Hard {
		t.Errorf("got %v, want [MEDIUM HARD]", got)
	}
}

func TestEscalation_Hard(t *testing.T) {
	got := Hard.Escalation()
	if len(got) != 1 || got[0] != Hard {
		t.Errorf("got %v, want [HARD]", got)
	}
}

func TestInEscalation_NeverEasier(t *testing.T) {
	if Medium.InEscalation(Easy) {
		t.Error("MEDIUM request must not accept EASY questions")
	}
	if Hard.InEscalation(Medium) {
		t.Error("HARD request must not accept MEDIUM questions")
	}
	if !Easy.InEscalation(Hard) {
		t.Error("EASY request must accept HARD questions")
	}
}
