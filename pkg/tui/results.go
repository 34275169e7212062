package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ksysoev/waterlily/pkg/core"
)

const (
	optStartNew  = "Start New Survey"
	optTryAgain  = "Try Again"
	optSubmitNew = "Submit Another Response"
)

// PrintResults renders the outcome of a results lookup and returns the label of the follow-up action it offers.
func (u *UI) PrintResults(res *core.Results, err error) string {
	switch {
	case errors.Is(err, core.ErrNoResults):
		u.println(titleStyle.Render("No Results Found"))
		u.println("No responses found for this user.")

		return optStartNew
	case err != nil:
		u.println(errorStyle.Render("Error"))
		u.println(err.Error())

		return optTryAgain
	}

	u.println(renderResults(res))

	return optSubmitNew
}

func renderResults(res *core.Results) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Survey Results"))
	b.WriteString("\n")
	b.WriteString("Thank you for completing the questionnaire! Here are your responses:\n")

	submitted := "N/A"
	if !res.SubmittedAt.IsZero() {
		submitted = res.SubmittedAt.Local().Format("2006-01-02")
	}

	b.WriteString(labelStyle.Render(fmt.Sprintf("User ID: %d | Submitted: %s", res.UserID, submitted)))
	b.WriteString("\n")

	for _, g := range res.Groups {
		b.WriteString("\n")
		b.WriteString(pageStyle.Render(g.Field))
		b.WriteString("\n")

		lines := make([]string, 0, len(g.Answers)*3)

		for _, a := range g.Answers {
			lines = append(lines, valueStyle.Render(a.Title))

			if a.Description != "" {
				lines = append(lines, labelStyle.Render(a.Description))
			}

			answer := a.Answer
			if answer == "" {
				answer = "No answer provided"
			}

			lines = append(lines, "Your Answer: "+answer)
		}

		b.WriteString(sectionStyle.Render(strings.Join(lines, "\n")))
		b.WriteString("\n")
	}

	return b.String()
}
