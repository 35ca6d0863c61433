package service

import "time"

// Question is one trivia entry. Answer is the index into Options. It is
// returned to clients on purpose: the daily quiz award does not depend on
// answering correctly, the client only uses the answer for feedback.
type Question struct {
	Index    int      `json:"index"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   int      `json:"answer"`
}

var quizQuestions = []Question{
	{
		Question: "What is the name of the fast-food restaurant where SpongeBob works?",
		Options:  []string{"Chum Bucket", "Krusty Krab", "Weenie Hut Jr.", "Shell Shack"},
		Answer:   1,
	},
	{
		Question: "Who is SpongeBob's best friend?",
		Options:  []string{"Patrick Star", "Squidward Tentacles", "Mr. Krabs", "Sandy Cheeks"},
		Answer:   0,
	},
	{
		Question: "What is the secret ingredient in the Krabby Patty?",
		Options:  []string{"Kelp", "Plankton", "It's a secret!", "Mayonnaise"},
		Answer:   2,
	},
	{
		Question: "What instrument does Squidward play?",
		Options:  []string{"Clarinet", "Flute", "Trumpet", "Violin"},
		Answer:   0,
	},
	{
		Question: "What is the name of SpongeBob's pet snail?",
		Options:  []string{"Larry", "Gary", "Barry", "Harry"},
		Answer:   1,
	},
	{
		Question: "Who lives in the Chum Bucket?",
		Options:  []string{"Plankton", "Mermaid Man", "Barnacle Boy", "Bubble Bass"},
		Answer:   0,
	},
	{
		Question: "What shape is SpongeBob's driving teacher, Mrs. Puff?",
		Options:  []string{"Pufferfish", "Shark", "Stingray", "Jellyfish"},
		Answer:   0,
	},
	{
		Question: "What does Squidward think of SpongeBob's enthusiasm?",
		Options:  []string{"He enjoys it", "He finds it annoying", "He is inspired by it", "He ignores it"},
		Answer:   1,
	},
	{
		Question: "Who is the owner of the Krusty Krab?",
		Options:  []string{"Mr. Krabs", "SpongeBob", "Squidward", "Patrick"},
		Answer:   0,
	},
	{
		Question: "Where does SpongeBob live?",
		Options:  []string{"In a rock", "In a pineapple", "In a boat", "In a shell"},
		Answer:   1,
	},
	{
		Question: "What hobby does SpongeBob enjoy in his spare time?",
		Options:  []string{"Jellyfishing", "Weightlifting", "Playing soccer", "Painting"},
		Answer:   0,
	},
	{
		Question: "Who tries to steal the Krabby Patty secret formula?",
		Options:  []string{"Patrick Star", "Plankton", "Sandy Cheeks", "King Neptune"},
		Answer:   1,
	},
	{
		Question: "What type of animal is Sandy Cheeks?",
		Options:  []string{"Octopus", "Squirrel", "Starfish", "Crab"},
		Answer:   1,
	},
}

// QuizService rotates through the question bank, one question per calendar
// day, the same question for every user.
type QuizService struct {
	now func() time.Time
}

func NewQuizService() *QuizService {
	return &QuizService{now: time.Now}
}

// QuestionOfDay picks today's question by day-of-year, so the rotation has a
// single authoritative source instead of every client deriving its own.
func (s *QuizService) QuestionOfDay() Question {
	idx := (s.now().YearDay() - 1) % len(quizQuestions)
	q := quizQuestions[idx]
	q.Index = idx
	return q
}
