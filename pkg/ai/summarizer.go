package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/zemellal/gutenshelf/pkg/domain"
)

const systemPrompt = "You are an assistant with expert knowledge in literature that helps users summarize books."

const tooLongSummary = "The book content was too long to process for an AI summary. " +
	"Please try with a shorter excerpt or check back later for an improved version."

const unknownErrorSummary = "An unknown error occurred while generating the summary"

// Summarizer produces book summaries through a TextGenerator.
type Summarizer struct {
	generator TextGenerator
}

// NewSummarizer wraps a generator.
func NewSummarizer(generator TextGenerator) *Summarizer {
	return &Summarizer{generator: generator}
}

// Summarize asks the model for a summary of the given excerpt, or of the
// title alone when no excerpt is available. Failures never propagate as
// errors: the result carries a displayable failure message instead, and
// Success gates whether callers persist the summary.
//
// The length-failure classification is a substring heuristic over the
// provider's error text ("too long" / "token limit"); differently worded
// provider messages fall through to the generic branch.
func (s *Summarizer) Summarize(ctx context.Context, title, content string) domain.SummaryResult {
	var prompt string
	if content != "" {
		prompt = fmt.Sprintf("Please write a brief summary of the following book content. "+
			"Focus on the main themes, plot, and characters:\n\n%s", content)
	} else {
		prompt = fmt.Sprintf("Can you write a one paragraph summary of the popular book: %s?", title)
	}

	answer, err := s.generator.GenerateText(ctx, systemPrompt, prompt)
	if err != nil {
		return classifyFailure(err)
	}
	return domain.SummaryResult{Success: true, Summary: answer}
}

func classifyFailure(err error) domain.SummaryResult {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "too long") || strings.Contains(msg, "token limit"):
		return domain.SummaryResult{
			Success: false,
			Summary: tooLongSummary,
			Error:   "Content too long for AI processing",
		}
	case msg != "":
		return domain.SummaryResult{
			Success: false,
			Summary: "Error generating summary: " + msg,
			Error:   msg,
		}
	default:
		return domain.SummaryResult{
			Success: false,
			Summary: unknownErrorSummary,
			Error:   "Unknown error",
		}
	}
}
