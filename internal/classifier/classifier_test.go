package classifier

import "testing"

func TestClassifyGreetings(t *testing.T) {
	inputs := []string{
		"Hello",
		"Hi there",
		"hey, how are you?",
		"Good morning!",
		"Hola",
		"Bonjour",
		"GREETINGS",
	}

	for _, in := range inputs {
		if got := Classify(in); got != Greeting {
			t.Errorf("Classify(%q) = %v, want Greeting", in, got)
		}
	}
}

func TestClassifyEducationalKeywords(t *testing.T) {
	inputs := []string{
		"Explain photosynthesis",
		"I'm struggling with calculus homework",
		"history of the Roman Empire",
		"Can you help with my chemistry exam?",
		"quicksort is an algorithm, right?",
	}

	for _, in := range inputs {
		if got := Classify(in); got != Educational {
			t.Errorf("Classify(%q) = %v, want Educational", in, got)
		}
	}
}

func TestClassifyFollowUps(t *testing.T) {
	inputs := []string{
		"tell me more",
		"please elaborate",
		"go on",
		"give me another example",
	}

	for _, in := range inputs {
		if got := Classify(in); got != Educational {
			t.Errorf("Classify(%q) = %v, want Educational", in, got)
		}
	}
}

func TestClassifyInterrogatives(t *testing.T) {
	inputs := []string{
		"What is entropy?",
		"how does a rainbow form",
		"Define osmosis",
		"calculate 15% of 300",
		"difference between mitosis and meiosis",
	}

	for _, in := range inputs {
		if got := Classify(in); got != Educational {
			t.Errorf("Classify(%q) = %v, want Educational", in, got)
		}
	}
}

func TestClassifyOffTopic(t *testing.T) {
	inputs := []string{
		"I like pizza",
		"who will win the football game tonight",
		"recommend me a haircut",
		"",
		"   ",
	}

	for _, in := range inputs {
		if got := Classify(in); got != OffTopic {
			t.Errorf("Classify(%q) = %v, want OffTopic", in, got)
		}
	}
}

// Rule order matters: greeting prefixes must not swallow words they
// merely prefix, and greetings win over keywords in the same text.
func TestClassifyOrdering(t *testing.T) {
	if got := Classify("history of jazz"); got != Educational {
		t.Errorf(`Classify("history of jazz") = %v, want Educational (not a "hi" greeting)`, got)
	}
	if got := Classify("hi, I need help with physics"); got != Greeting {
		t.Errorf(`Classify("hi, I need help with physics") = %v, want Greeting (first rule wins)`, got)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	in := "Explain the French Revolution"
	first := Classify(in)
	for i := 0; i < 10; i++ {
		if got := Classify(in); got != first {
			t.Fatalf("Classify(%q) changed between calls: %v then %v", in, first, got)
		}
	}
}
