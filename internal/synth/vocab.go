package synth

// Vocabulary holds the word classification tables that drive the
// generation heuristics. Passing them in explicitly (instead of burying
// literals in the matching code) keeps them testable and tunable.
type Vocabulary struct {
	// StopWords are excluded from keyword extraction.
	StopWords map[string]bool
	// CommonVerbs are excluded from keyword extraction.
	CommonVerbs map[string]bool
	// SubstantiveKeywords mark a sentence as having real content.
	SubstantiveKeywords []string
	// ConnectiveWords mark a clause as important when condensing a
	// sentence for a card back.
	ConnectiveWords []string
	// GenericEasyDistractors are content-free filler answers for easy
	// questions.
	GenericEasyDistractors []string
	// GenericFillers pad medium-difficulty distractor lists.
	GenericFillers []string
}

// DefaultVocabulary returns the stock English tables.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		StopWords: wordSet(
			"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with", "by",
			"is", "are", "was", "were", "be", "been", "being", "have", "has", "had", "do", "does",
			"did", "will", "would", "could", "should", "may", "might", "must", "can", "this", "that",
			"these", "those", "it", "its", "they", "them", "their", "what", "which", "who", "whom",
			"when", "where", "why", "how",
		),
		CommonVerbs: wordSet(
			"have", "has", "had", "do", "does", "did", "say", "says", "said", "make", "makes", "made",
			"go", "goes", "went", "get", "gets", "got", "know", "knows", "known", "see", "sees", "saw",
			"think", "thinks", "thought", "take", "takes", "took", "come", "comes", "came", "look", "looks",
		),
		SubstantiveKeywords: []string{
			"system", "method", "process", "technique", "theory", "concept", "principle", "approach",
			"model", "framework", "study", "research", "analysis", "development", "implementation",
			"definition", "function", "purpose", "benefit", "advantage", "disadvantage",
			"characteristic", "feature",
		},
		ConnectiveWords: []string{
			"because", "therefore", "however", "although", "while", "since",
		},
		GenericEasyDistractors: []string{
			"different approach", "alternative method", "various techniques",
			"multiple ways", "other means", "diverse strategies",
		},
		GenericFillers: []string{
			"the process", "the system", "the method",
		},
	}
}

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
