package problemgen

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// testObjects builds n marshaled objects whose string fields contain
// literal braces, quotes and escapes, the things a naive scanner trips
// over.
func testObjects(n int) []string {
	objs := make([]string, n)
	for i := range objs {
		p := GeneratedProblem{
			QuestionText: fmt.Sprintf(`Solve the set {x, y} where "x" > %d \ {nested {braces}}`, i),
			SolutionText: fmt.Sprintf(`Step %d: expand {a} and {b}`, i),
			Difficulty:   DifficultyMedium,
			Topic:        fmt.Sprintf("topic-%d", i),
		}
		b, err := json.Marshal(p)
		if err != nil {
			panic(err)
		}
		objs[i] = string(b)
	}
	return objs
}

func TestSalvageRecoversEveryTruncationPoint(t *testing.T) {
	const n = 5
	objs := testObjects(n)

	for k := 1; k < n; k++ {
		// Complete objects 0..k-1, then most of object k.
		partial := objs[k][:len(objs[k])/2]
		truncated := "[" + strings.Join(objs[:k], ",") + "," + partial

		repaired, err := salvageArray(truncated)
		if err != nil {
			t.Fatalf("k=%d: salvage failed: %v", k, err)
		}

		var got []GeneratedProblem
		if err := json.Unmarshal([]byte(repaired), &got); err != nil {
			t.Fatalf("k=%d: repaired text does not parse: %v\n%s", k, err, repaired)
		}
		if len(got) != k {
			t.Errorf("k=%d: recovered %d objects, want %d", k, len(got), k)
		}
		for i, p := range got {
			if p.Topic != fmt.Sprintf("topic-%d", i) {
				t.Errorf("k=%d: object %d has topic %q", k, i, p.Topic)
			}
		}
	}
}

func TestSalvageNothingComplete(t *testing.T) {
	inputs := []string{
		`[{"questionText": "cut off mid`,
		`[{"questionText": "balanced {brace} in string but object never closes"`,
		`[`,
		``,
		`[  `,
	}

	for _, in := range inputs {
		if _, err := salvageArray(in); !errors.Is(err, ErrNothingRecovered) {
			t.Errorf("salvageArray(%q) err = %v, want ErrNothingRecovered", in, err)
		}
	}
}

func TestSalvageCutMidEscape(t *testing.T) {
	objs := testObjects(2)
	// Cut immediately after a backslash inside the second object's string.
	second := objs[1]
	cut := strings.Index(second, `\\`)
	if cut < 0 {
		t.Fatal("test object lost its escape sequence")
	}
	truncated := "[" + objs[0] + "," + second[:cut+1]

	repaired, err := salvageArray(truncated)
	if err != nil {
		t.Fatalf("salvage failed: %v", err)
	}
	var got []GeneratedProblem
	if err := json.Unmarshal([]byte(repaired), &got); err != nil {
		t.Fatalf("repaired text does not parse: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("recovered %d objects, want 1", len(got))
	}
}

func TestSalvageTrailingComma(t *testing.T) {
	// Truncation exactly between objects leaves a dangling comma.
	objs := testObjects(3)
	truncated := "[" + objs[0] + "," + objs[1] + ","

	repaired, err := salvageArray(truncated)
	if err != nil {
		t.Fatalf("salvage failed: %v", err)
	}
	var got []GeneratedProblem
	if err := json.Unmarshal([]byte(repaired), &got); err != nil {
		t.Fatalf("repaired text does not parse: %v\n%s", err, repaired)
	}
	if len(got) != 2 {
		t.Errorf("recovered %d objects, want 2", len(got))
	}
}
