package models

type TaskType string

const (
	TaskListening TaskType = "listening"
	TaskReading   TaskType = "reading"
	TaskWriting   TaskType = "writing"
	TaskSpeaking  TaskType = "speaking"
	TaskVocab     TaskType = "vocab"
	TaskReview    TaskType = "review"
	TaskMock      TaskType = "mock"
	TaskRest      TaskType = "rest"
)

// CoreSkills is the fixed focus/support rotation order.
var CoreSkills = [4]TaskType{TaskListening, TaskReading, TaskWriting, TaskSpeaking}

// IsCoreSkill reports whether t is one of the four practiced skills.
func IsCoreSkill(t TaskType) bool {
	for _, s := range CoreSkills {
		if s == t {
			return true
		}
	}
	return false
}

// StudyTask is a single allocated block of study time within a day.
type StudyTask struct {
	ID         string   `json:"id"`
	Type       TaskType `json:"type"`
	Title      string   `json:"title"`
	EstMinutes int      `json:"est_minutes"`
	Completed  bool     `json:"completed"`
}
