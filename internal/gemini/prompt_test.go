package gemini

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWeeklyPrompt_SingleDay(t *testing.T) {
	prompt := BuildWeeklyPrompt(map[string]string{
		"Monday":    "Did X",
		"Tuesday":   "",
		"Wednesday": "",
		"Thursday":  "",
		"Friday":    "",
	})

	assert.Equal(t, 1, strings.Count(prompt, "Monday: Did X"))
	for _, day := range []string{"Tuesday:", "Wednesday:", "Thursday:", "Friday:"} {
		injected := strings.TrimPrefix(prompt, fewShotPrompt)
		assert.NotContains(t, injected, day)
	}
	assert.True(t, strings.HasSuffix(prompt, "Output:"))
}

func TestBuildWeeklyPrompt_OrderedMondayToFriday(t *testing.T) {
	prompt := BuildWeeklyPrompt(map[string]string{
		"Friday": "wrapped up",
		"Monday": "kicked off",
	})

	injected := strings.TrimPrefix(prompt, fewShotPrompt)
	mondayIdx := strings.Index(injected, "Monday: kicked off")
	fridayIdx := strings.Index(injected, "Friday: wrapped up")
	require.GreaterOrEqual(t, mondayIdx, 0)
	require.GreaterOrEqual(t, fridayIdx, 0)
	assert.Less(t, mondayIdx, fridayIdx)
}

func TestBuildWeeklyPrompt_KeepsFewShotExamples(t *testing.T) {
	prompt := BuildWeeklyPrompt(map[string]string{"Monday": "Did X"})

	assert.Contains(t, prompt, "### Example 1")
	assert.Contains(t, prompt, "### Example 2")
	assert.Contains(t, prompt, "expert workplace communicator")
}

func TestBuildWeeklyPrompt_AllEmpty(t *testing.T) {
	prompt := BuildWeeklyPrompt(map[string]string{})

	assert.Equal(t, fewShotPrompt+"Output:", prompt)
}
