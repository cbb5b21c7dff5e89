package content

// QuestionType distinguishes single-answer from multi-answer questions.
type QuestionType string

const (
	TypeSingle QuestionType = "single"
	TypeMulti  QuestionType = "multi"
)

// Quiz is a complete case-study quiz definition as loaded from quiz.json.
type Quiz struct {
	Slug               string              `json:"slug"`
	Title              string              `json:"title"`
	Scenario           string              `json:"scenario"`
	LearningObjectives []string            `json:"learning_objectives,omitempty"`
	SkillsCatalog      []Skill             `json:"skills_catalog"`
	Scoring            Scoring             `json:"scoring"`
	ImprovementRubric  map[string][]string `json:"improvement_rubric,omitempty"`
	Questions          []Question          `json:"questions"`
}

// Skill is one competency in the quiz's catalog.
type Skill struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Scoring holds quiz-level scoring configuration.
type Scoring struct {
	// DeliverCount is how many questions a run presents. Zero means
	// the default of 10.
	DeliverCount int `json:"deliver_count"`
}

// SkillWeight attaches a weighted competency to a question.
type SkillWeight struct {
	Key    string  `json:"key"`
	Weight float64 `json:"weight"`
}

// Question is a single case-study question.
//
// Single questions use AnswerIndex; multi questions use AnswerIndices
// together with SelectCount (the learner must select exactly that many).
type Question struct {
	ID            string        `json:"id"`
	Type          QuestionType  `json:"type"`
	Stem          string        `json:"stem"`
	Options       []string      `json:"options"`
	AnswerIndex   int           `json:"answer_index"`
	AnswerIndices []int         `json:"answer_indices,omitempty"`
	SelectCount   int           `json:"select_count,omitempty"`
	Skills        []SkillWeight `json:"skills"`
	Explain       string        `json:"explain"`
	Hints         []string      `json:"hints,omitempty"`
}

// SkillLabel resolves a skill key to its catalog label, falling back to
// the key itself when the catalog doesn't list it.
func (q *Quiz) SkillLabel(key string) string {
	for _, s := range q.SkillsCatalog {
		if s.Key == key {
			return s.Label
		}
	}
	return key
}

// DeliverCount returns the effective number of questions per run.
func (q *Quiz) DeliverCount() int {
	if q.Scoring.DeliverCount > 0 {
		return q.Scoring.DeliverCount
	}
	return 10
}
