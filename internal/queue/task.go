package queue

import "fmt"

type TaskType string

const (
	TaskTypeRecountCelebration TaskType = "recount_celebration"
	TaskTypeRecountFundraiser  TaskType = "recount_fundraiser"
)

// Task asks the worker to recompute one aggregate counter from its source rows.
type Task struct {
	TaskType TaskType
	TargetID int64
	TraceID  *string
	Attempt  int
	Reason   string
}

func (t TaskType) Valid() bool {
	switch t {
	case TaskTypeRecountCelebration, TaskTypeRecountFundraiser:
		return true
	}
	return false
}

// DedupKey identifies tasks that recount the same counter.
func (t Task) DedupKey() string {
	return fmt.Sprintf("%s:%d", t.TaskType, t.TargetID)
}
