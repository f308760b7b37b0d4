package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	for _, status := range AllStatuses {
		parsed, ok := ParseStatus(string(status))
		assert.True(t, ok, "status %s should parse", status)
		assert.Equal(t, status, parsed)
	}

	for _, raw := range []string{"", "Pending", "PENDING", "done", "interview", "approved "} {
		_, ok := ParseStatus(raw)
		assert.False(t, ok, "%q should not parse", raw)
	}
}

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, StatusApproved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	for _, status := range []Status{StatusPending, StatusUnderReview, StatusInterviewScheduled, StatusInterviewDone, StatusOfficeAssigned} {
		assert.False(t, status.IsTerminal(), "status %s", status)
	}
}

func TestStatusCountsTowardCapacity(t *testing.T) {
	for _, status := range AllStatuses {
		expected := status == StatusOfficeAssigned || status == StatusApproved
		assert.Equal(t, expected, status.CountsTowardCapacity(), "status %s", status)
	}
}

func TestStatusLabelAndMessage(t *testing.T) {
	for _, status := range AllStatuses {
		assert.NotEmpty(t, status.Label())
		assert.NotEmpty(t, status.Message())
	}

	// Unknown values fall back to the pending copy so the tracking page
	// never renders blank.
	assert.Equal(t, StatusPending.Label(), Status("bogus").Label())
	assert.Equal(t, StatusPending.Message(), Status("bogus").Message())
}
