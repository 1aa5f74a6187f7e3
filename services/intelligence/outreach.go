package intelligence

import (
	"context"
	"fmt"
)

// OutreachDrafter writes candidate-facing email bodies. Pure model glue: the
// proposed slots arrive already computed and formatted, and the prompt
// instructs the model to embed them verbatim.
type OutreachDrafter interface {
	DraftOutreachEmail(ctx context.Context, candidateName, position, formattedSlots string) (string, error)
}

// DefaultOutreachService drafts outreach emails with Gemini.
type DefaultOutreachService struct {
	Client *GeminiClient
}

func NewDefaultOutreachService(apiKey string) (*DefaultOutreachService, error) {
	client, err := NewGeminiClient(apiKey)
	if err != nil {
		return nil, err
	}
	return &DefaultOutreachService{Client: client}, nil
}

func (s *DefaultOutreachService) DraftOutreachEmail(ctx context.Context, candidateName, position, formattedSlots string) (string, error) {
	prompt := fmt.Sprintf(`You are a recruiting coordinator writing a short, friendly interview invitation email.

Candidate name: %s
Position: %s

Propose the following time slots. Include them in the email exactly as written, one per line, without changing times or dates:

%s

Write only the email body, no subject line.`, candidateName, position, formattedSlots)

	return s.Client.GenerateContent(ctx, prompt)
}
