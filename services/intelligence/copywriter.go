package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"trailhub/models"
)

// CopySuggestion is a generated title and description for a listing.
type CopySuggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CopywriterService drafts listing copy from the current form content.
type CopywriterService interface {
	SuggestListingCopy(ctx context.Context, form models.TrailerFormData) (*CopySuggestion, error)
}

type GeminiCopywriterService struct {
	client *GeminiClient
}

func NewGeminiCopywriterService(client *GeminiClient) *GeminiCopywriterService {
	return &GeminiCopywriterService{client: client}
}

// SuggestListingCopy asks the model for a Dutch title and description based
// on whatever the form already holds. The model is instructed to answer in
// strict JSON; markdown fences around the payload are tolerated.
func (s *GeminiCopywriterService) SuggestListingCopy(ctx context.Context, form models.TrailerFormData) (*CopySuggestion, error) {
	trailerType := form.TrailerType
	if trailerType == "Overig" && strings.TrimSpace(form.CustomType) != "" {
		trailerType = form.CustomType
	}

	var facts []string
	if trailerType != "" {
		facts = append(facts, "type: "+trailerType)
	}
	if form.City != "" {
		facts = append(facts, "plaats: "+form.City)
	}
	if form.Length != "" && form.Width != "" {
		facts = append(facts, fmt.Sprintf("afmetingen: %sx%s cm", form.Length, form.Width))
	}
	if form.Capacity != "" {
		facts = append(facts, "laadvermogen: "+form.Capacity+" kg")
	}
	if form.PricePerDay != "" {
		facts = append(facts, "prijs per dag: €"+form.PricePerDay)
	}
	for _, acc := range form.Accessories {
		if acc.Selected {
			facts = append(facts, "accessoire: "+acc.Name)
		}
	}

	prompt := fmt.Sprintf(
		`Schrijf een titel (max 60 tekens) en een wervende beschrijving (max 400 tekens) voor een advertentie op een aanhangerverhuurplatform.
Gegevens:
%s
Antwoord uitsluitend met JSON in de vorm {"title": "...", "description": "..."}.`,
		strings.Join(facts, "\n"))

	raw, err := s.client.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var suggestion CopySuggestion
	if err := json.Unmarshal([]byte(cleaned), &suggestion); err != nil {
		return nil, fmt.Errorf("failed to parse model response: %w", err)
	}
	if suggestion.Title == "" && suggestion.Description == "" {
		return nil, fmt.Errorf("model returned empty suggestion")
	}
	return &suggestion, nil
}
