package ai

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type stubGenerator struct {
	lastSystem string
	lastPrompt string
	answer     string
	err        error
}

func (g *stubGenerator) GenerateText(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	g.lastSystem = systemPrompt
	g.lastPrompt = userPrompt
	return g.answer, g.err
}

func TestSummarizeWithContent(t *testing.T) {
	gen := &stubGenerator{answer: "A whale hunts back."}
	s := NewSummarizer(gen)

	res := s.Summarize(context.Background(), "Moby Dick", "Call me Ishmael.")
	if !res.Success || res.Summary != "A whale hunts back." {
		t.Fatalf("unexpected result: %+v", res)
	}
	if !strings.Contains(gen.lastPrompt, "Call me Ishmael.") {
		t.Fatalf("prompt should include the excerpt verbatim: %q", gen.lastPrompt)
	}
	if !strings.Contains(gen.lastPrompt, "themes, plot, and characters") {
		t.Fatalf("prompt should ask for themes/plot/characters: %q", gen.lastPrompt)
	}
	if !strings.Contains(gen.lastSystem, "expert knowledge in literature") {
		t.Fatalf("system prompt = %q", gen.lastSystem)
	}
}

func TestSummarizeTitleFallback(t *testing.T) {
	gen := &stubGenerator{answer: "A classic."}
	s := NewSummarizer(gen)

	res := s.Summarize(context.Background(), "Moby Dick", "")
	if !res.Success {
		t.Fatalf("unexpected failure: %+v", res)
	}
	if !strings.Contains(gen.lastPrompt, "one paragraph summary of the popular book: Moby Dick") {
		t.Fatalf("fallback prompt = %q", gen.lastPrompt)
	}
}

func TestSummarizeTokenLimitFailure(t *testing.T) {
	s := NewSummarizer(&stubGenerator{err: errors.New("request exceeds the model token limit")})

	res := s.Summarize(context.Background(), "Moby Dick", "excerpt")
	if res.Success {
		t.Fatalf("expected failure")
	}
	if res.Error != "Content too long for AI processing" {
		t.Fatalf("error = %q", res.Error)
	}
	if !strings.Contains(res.Summary, "too long to process for an AI summary") {
		t.Fatalf("summary = %q, want fixed apologetic message", res.Summary)
	}
}

func TestSummarizeTooLongFailure(t *testing.T) {
	s := NewSummarizer(&stubGenerator{err: errors.New("input is too long")})

	res := s.Summarize(context.Background(), "Moby Dick", "excerpt")
	if res.Success || res.Error != "Content too long for AI processing" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestSummarizeGenericFailure(t *testing.T) {
	s := NewSummarizer(&stubGenerator{err: errors.New("upstream unavailable")})

	res := s.Summarize(context.Background(), "Moby Dick", "excerpt")
	if res.Success {
		t.Fatalf("expected failure")
	}
	if res.Summary != "Error generating summary: upstream unavailable" {
		t.Fatalf("summary = %q", res.Summary)
	}
	if res.Error != "upstream unavailable" {
		t.Fatalf("error = %q", res.Error)
	}
}

func TestSummarizeBlankFailureMessage(t *testing.T) {
	s := NewSummarizer(&stubGenerator{err: errors.New("")})

	res := s.Summarize(context.Background(), "Moby Dick", "excerpt")
	if res.Success {
		t.Fatalf("expected failure")
	}
	if res.Summary != unknownErrorSummary || res.Error != "Unknown error" {
		t.Fatalf("unexpected result: %+v", res)
	}
}
