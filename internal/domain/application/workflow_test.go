package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSteps(t *testing.T) {
	tests := []struct {
		name     string
		status   Status
		expected []StepState
	}{
		{
			name:     "pending has submitted done and verification current",
			status:   StatusPending,
			expected: []StepState{StepDone, StepCurrent, StepLocked, StepLocked, StepLocked},
		},
		{
			name:     "under review shares the pending shape",
			status:   StatusUnderReview,
			expected: []StepState{StepDone, StepCurrent, StepLocked, StepLocked, StepLocked},
		},
		{
			name:     "interview scheduled",
			status:   StatusInterviewScheduled,
			expected: []StepState{StepDone, StepDone, StepCurrent, StepLocked, StepLocked},
		},
		{
			name:     "interview done",
			status:   StatusInterviewDone,
			expected: []StepState{StepDone, StepDone, StepDone, StepCurrent, StepLocked},
		},
		{
			name:     "office assigned",
			status:   StatusOfficeAssigned,
			expected: []StepState{StepDone, StepDone, StepDone, StepDone, StepCurrent},
		},
		{
			name:     "approved completes every step",
			status:   StatusApproved,
			expected: []StepState{StepDone, StepDone, StepDone, StepDone, StepDone},
		},
		{
			name:     "rejected locks every step",
			status:   StatusRejected,
			expected: []StepState{StepLocked, StepLocked, StepLocked, StepLocked, StepLocked},
		},
		{
			name:     "unknown status falls back to the pending shape",
			status:   Status("bogus"),
			expected: []StepState{StepDone, StepCurrent, StepLocked, StepLocked, StepLocked},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps := Steps(tt.status)
			assert.Len(t, steps, StepCount())
			for i, step := range steps {
				assert.Equal(t, tt.expected[i], step.State, "step %d (%s)", i, step.Name)
				assert.NotEmpty(t, step.Name)
			}
		})
	}
}

func TestStepsExactlyOneCurrent(t *testing.T) {
	for _, status := range AllStatuses {
		current := 0
		for _, step := range Steps(status) {
			if step.State == StepCurrent {
				current++
			}
		}
		if status == StatusApproved || status == StatusRejected {
			assert.Zero(t, current, "terminal status %s should have no current step", status)
		} else {
			assert.Equal(t, 1, current, "status %s should have exactly one current step", status)
		}
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		status   Status
		expected int
	}{
		{StatusPending, 20},
		{StatusUnderReview, 20},
		{StatusInterviewScheduled, 40},
		{StatusInterviewDone, 60},
		{StatusOfficeAssigned, 80},
		{StatusApproved, 100},
		{StatusRejected, 0},
		{Status("bogus"), 20},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, Progress(tt.status))
		})
	}
}

func TestProgressMatchesDoneSteps(t *testing.T) {
	for _, status := range AllStatuses {
		done := 0
		for _, step := range Steps(status) {
			if step.State == StepDone {
				done++
			}
		}
		assert.Equal(t, done*100/StepCount(), Progress(status), "status %s", status)
	}
}
