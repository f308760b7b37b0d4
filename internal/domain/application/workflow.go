package application

// StepState tags a workflow step relative to the application's progress
type StepState string

const (
	StepDone    StepState = "done"
	StepCurrent StepState = "current"
	StepLocked  StepState = "locked"
)

// Step is one stage of the review pipeline as rendered on the tracking page
type Step struct {
	Name  string    `json:"name"`
	State StepState `json:"state"`
}

// stepNames is the fixed, ordered review pipeline
var stepNames = [...]string{
	"Submitted",
	"Document Verification",
	"Interview & Assessment",
	"Office Assignment",
	"Final Approval",
}

// StepCount returns the number of steps in the pipeline
func StepCount() int {
	return len(stepNames)
}

// currentStepIndex maps a status to the index of its current step.
// Steps before the index are done, the step at the index is current,
// everything after is locked. Approved maps one past the last step so
// every step reads done. Rejected returns -1: the pipeline is
// short-circuited and no step is active. Unrecognized values fall back
// to the pending index so the mapping stays total.
func currentStepIndex(s Status) int {
	switch s {
	case StatusPending, StatusUnderReview:
		return 1
	case StatusInterviewScheduled:
		return 2
	case StatusInterviewDone:
		return 3
	case StatusOfficeAssigned:
		return 4
	case StatusApproved:
		return len(stepNames)
	case StatusRejected:
		return -1
	default:
		return 1
	}
}

// Steps returns the ordered step list for a status. The function is pure
// and total: any input yields a well-formed list.
func Steps(s Status) []Step {
	current := currentStepIndex(s)
	steps := make([]Step, len(stepNames))
	for i, name := range stepNames {
		state := StepLocked
		switch {
		case current >= 0 && i < current:
			state = StepDone
		case i == current:
			state = StepCurrent
		}
		steps[i] = Step{Name: name, State: state}
	}
	return steps
}

// Progress returns the integer progress percentage for a status:
// floor(done / total * 100). Rejected yields 0, approved yields 100.
func Progress(s Status) int {
	current := currentStepIndex(s)
	if current < 0 {
		return 0
	}
	done := current
	if done > len(stepNames) {
		done = len(stepNames)
	}
	return done * 100 / len(stepNames)
}
