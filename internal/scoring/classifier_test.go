package scoring

import (
	"testing"

	"github.com/abhisek/examiz/internal/exam"
)

func TestRunClassifiers(t *testing.T) {
	tests := []struct {
		name  string
		input ClassifyInput
		want  exam.Classification
	}{
		{
			name:  "instant answer is a blind guess",
			input: ClassifyInput{TimeSpentSeconds: 2, Difficulty: exam.Easy},
			want:  exam.BlindGuess,
		},
		{
			name:  "fast answer on a hard question is a blind guess",
			input: ClassifyInput{TimeSpentSeconds: 4, Difficulty: exam.Hard},
			want:  exam.BlindGuess,
		},
		{
			name:  "fast answer on an easy question is not blind",
			input: ClassifyInput{TimeSpentSeconds: 4, Difficulty: exam.Easy},
			want:  exam.Unknown,
		},
		{
			name:  "selection change marks an educated guess",
			input: ClassifyInput{TimeSpentSeconds: 20, SelectionChangeCount: 1, Difficulty: exam.Medium},
			want:  exam.EducatedGuess,
		},
		{
			name:  "heavy hovering marks an educated guess",
			input: ClassifyInput{TimeSpentSeconds: 20, HoverCount: 3, Difficulty: exam.Medium},
			want:  exam.EducatedGuess,
		},
		{
			name:  "long deliberation marks an educated guess",
			input: ClassifyInput{TimeSpentSeconds: 46, Difficulty: exam.Medium},
			want:  exam.EducatedGuess,
		},
		{
			name:  "settled answer is sure",
			input: ClassifyInput{TimeSpentSeconds: 12, Difficulty: exam.Medium},
			want:  exam.Sure,
		},
		{
			name:  "sure at exactly five seconds",
			input: ClassifyInput{TimeSpentSeconds: 5, Difficulty: exam.Hard},
			want:  exam.Sure,
		},
		{
			name:  "blind guess wins over hesitation signals",
			input: ClassifyInput{TimeSpentSeconds: 2, SelectionChangeCount: 3, HoverCount: 5, Difficulty: exam.Hard},
			want:  exam.BlindGuess,
		},
		{
			name:  "hesitation wins over sure",
			input: ClassifyInput{TimeSpentSeconds: 50, SelectionChangeCount: 0, Difficulty: exam.Easy},
			want:  exam.EducatedGuess,
		},
	}

	classifiers := DefaultClassifiers()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RunClassifiers(classifiers, &tt.input)
			if got != tt.want {
				t.Errorf("RunClassifiers(%+v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassifiersHonorThresholds(t *testing.T) {
	// Widened windows move the boundaries: 9s on a hard question is a
	// blind guess, and sure needs at least 10s.
	wide := Classifiers(Thresholds{
		BlindGuessSeconds:   6,
		RushSeconds:         10,
		DeliberationSeconds: 90,
	})

	got := RunClassifiers(wide, &ClassifyInput{TimeSpentSeconds: 9, Difficulty: exam.Hard})
	if got != exam.BlindGuess {
		t.Errorf("9s on HARD with widened windows = %q, want %q", got, exam.BlindGuess)
	}

	got = RunClassifiers(wide, &ClassifyInput{TimeSpentSeconds: 60, Difficulty: exam.Medium})
	if got != exam.Sure {
		t.Errorf("60s unchanged with 90s deliberation window = %q, want %q", got, exam.Sure)
	}

	got = RunClassifiers(wide, &ClassifyInput{TimeSpentSeconds: 95, Difficulty: exam.Medium})
	if got != exam.EducatedGuess {
		t.Errorf("95s with 90s deliberation window = %q, want %q", got, exam.EducatedGuess)
	}
}

func TestDefaultClassifiersOrder(t *testing.T) {
	names := []string{}
	for _, c := range DefaultClassifiers() {
		names = append(names, c.Name())
	}
	want := []string{"blind-guess", "educated-guess", "sure"}
	if len(names) != len(want) {
		t.Fatalf("got %d classifiers, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("classifier %d = %q, want %q", i, names[i], want[i])
		}
	}
}
