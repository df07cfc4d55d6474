package service

// Task sizing policy. A task needs at least MinWordsPerTask words to be
// worth serving and never carries more than MaxWordsPerTask.
const (
	MinWordsPerTask = 5
	MaxWordsPerTask = 7

	// MinGenerationBatch is the smallest batch requested from the content
	// generator. Small generation requests waste calls, so shortfalls are
	// always rounded up to at least this many words.
	MinGenerationBatch = 6

	// QuizPassThreshold is the fraction of words that must be answered
	// correctly for a quiz task to count as passed.
	QuizPassThreshold = 0.6
)
