package nlp

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	got := Tokenize("What is Ashwagandha, really?!")
	want := []string{"what", "is", "ashwagandha", "really"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if got := Tokenize(""); len(got) != 0 {
		t.Errorf("Tokenize(empty) = %v, want none", got)
	}
	if got := Tokenize("!!! ... ???"); len(got) != 0 {
		t.Errorf("Tokenize(punctuation) = %v, want none", got)
	}
}

func TestKeywordsDropsStopWordsAndShortTokens(t *testing.T) {
	tokens := Tokenize("tell me about the best oil for my skin")
	got := Keywords(tokens)
	want := []string{"best", "oil", "skin"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Keywords = %v, want %v", got, want)
	}
}

func TestDetectIntentGreeting(t *testing.T) {
	intent, confidence := DetectIntent([]string{"hello"})
	if intent != IntentGreeting {
		t.Errorf("intent = %s, want greeting", intent)
	}
	if confidence <= 0 || confidence > 1 {
		t.Errorf("confidence = %.2f, want (0,1]", confidence)
	}
}

func TestDetectIntentUnknown(t *testing.T) {
	intent, confidence := DetectIntent([]string{"xyzasd", "qwerty"})
	if intent != IntentUnknown {
		t.Errorf("intent = %s, want unknown", intent)
	}
	if confidence != 0 {
		t.Errorf("confidence = %.2f, want 0", confidence)
	}
}

func TestDetectIntentConfidenceCaps(t *testing.T) {
	// Four health hits: confidence caps at 1.0.
	_, confidence := DetectIntent([]string{"stress", "anxiety", "sleep", "immunity"})
	if confidence != 1.0 {
		t.Errorf("confidence = %.2f, want 1.0", confidence)
	}

	// A single hit scores 1/3.
	_, confidence = DetectIntent([]string{"stress"})
	if confidence < 0.33 || confidence > 0.34 {
		t.Errorf("confidence = %.2f, want ~0.33", confidence)
	}
}

func TestDetectIntentTieBreaksByDeclarationOrder(t *testing.T) {
	// "suggest" appears in both alternative and product_search buckets;
	// alternative is declared first and must win the tie.
	intent, _ := DetectIntent([]string{"suggest"})
	if intent != IntentAlternative {
		t.Errorf("intent = %s, want alternative (first declared)", intent)
	}
}
