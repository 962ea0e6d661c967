package gemini

import (
	"fmt"
	"strings"

	"weekupAPI/internal/week"
)

// fewShotPrompt steers the model with two worked examples before the real input.
const fewShotPrompt = `
You are an expert workplace communicator. Your task is to convert a user's raw daily entries into one concise, professional paragraph summarizing the week's accomplishments. Use first person, mention key collaborators by name, and maintain an upbeat, collaborative tone.

### Example 1
INPUT:
{
"Monday":    "Reviewed the resources James shared and began developing a new design for CAIN.",
"Tuesday":   "Discussed initial ideas with James and was asked to create a layout inspired by Microsoft 365 Copilot.",
"Wednesday": "Built a functional prototype of the Copilot-like interface.",
"Thursday":  "Collaborated with James to structure the CAIN module internally.",
"Friday":    "Refined the prototype based on James's feedback and prepared documentation for next week."
}

OUTPUT:
This week, I reviewed the resources James shared and kicked off the new CAIN design, then after discussing concepts he asked me to craft a layout inspired by Microsoft 365 Copilot. I proceeded to build a working prototype of that interface and collaborated with James to define the internal module structure. By Friday, I refined the prototype based on his feedback and prepared documentation for our next steps.

---

### Example 2
INPUT:
{
"Monday":    "Conducted a kickoff meeting with Maria to align on project objectives.",
"Tuesday":   "Drafted wireframes for the mobile app and shared them with the team.",
"Wednesday": "Integrated the authentication API and resolved two critical bugs.",
"Thursday":  "Held a design review session and incorporated UX improvements suggested by Maria.",
"Friday":    "Deployed the first alpha build to the staging environment and wrote release notes."
}

OUTPUT:
This week, I led a kickoff meeting with Maria to align on our goals, then drafted and circulated mobile app wireframes. Midweek, I integrated the authentication API and fixed two critical bugs, followed by a design review where I incorporated Maria's UX suggestions. Finally, I deployed the first alpha build to staging and authored the release notes.

---

### Now it's your turn
INPUT:
`

// BuildWeeklyPrompt injects the non-empty weekday entries, in Monday..Friday
// order, into the few-shot template. Empty days are skipped.
func BuildWeeklyPrompt(entries map[string]string) string {
	var lines []string
	for _, day := range week.Weekdays {
		text := entries[day]
		if text == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", day, text))
	}
	return fewShotPrompt + strings.Join(lines, "\n") + "Output:"
}
