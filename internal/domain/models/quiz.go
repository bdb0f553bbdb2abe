package models

// QuizItem is a labeled sample message for the phishing-awareness quiz.
type QuizItem struct {
	Subject     string `json:"subject"`
	Body        string `json:"body"`
	IsPhishing  bool   `json:"-"` // never serialized to the quiz taker
	Explanation string `json:"-"`
}

// QuizQuestion is the client-facing view of a quiz item within a session.
type QuizQuestion struct {
	Index   int    `json:"index"` // position in the fixed sample set
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// QuizSession is a shuffled run over the sample set.
type QuizSession struct {
	Questions []QuizQuestion `json:"questions"`
	Total     int            `json:"total"`
}

// QuizScoreRequest submits answers for a session. Order carries the item
// indexes in the order they were presented; Answers the is-phishing guesses.
type QuizScoreRequest struct {
	Order   []int  `json:"order"`
	Answers []bool `json:"answers"`
}

// QuizScoreResult is the graded outcome with per-question explanations.
type QuizScoreResult struct {
	Score        int      `json:"score"`
	Total        int      `json:"total"`
	Explanations []string `json:"explanations"`
}
