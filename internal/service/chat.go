package service

import (
	"context"
	"fmt"
	"strings"

	"propertyhub/internal/model"
	"propertyhub/internal/utils"
)

// Fixed chat replies
const (
	ReplyAvailability = "Availability changes daily. Please contact our agent to confirm the current status."
	ReplyFallback     = "Thanks for your question! I'll pass this to the agent and they'll get back to you shortly."
)

// chatRule pairs a message matcher with the answer it produces
type chatRule struct {
	topic   string
	matches func(message string) bool
	answer  func(p *model.Property) string
}

// chatRules are evaluated in order and the first match wins, so a message
// mentioning both price and location is answered with the price.
var chatRules = []chatRule{
	{
		topic:   "price",
		matches: anyKeyword("price", "cost", "how much"),
		answer: func(p *model.Property) string {
			return fmt.Sprintf("The price is %s.", utils.FormatPeso(p.PriceAmount))
		},
	},
	{
		topic:   "bedrooms",
		matches: anyKeyword("bedroom", "beds"),
		answer: func(p *model.Property) string {
			return fmt.Sprintf("This property has %s.", pluralize(p.Beds, "bedroom"))
		},
	},
	{
		topic:   "bathrooms",
		matches: anyKeyword("bathroom", "baths"),
		answer: func(p *model.Property) string {
			return fmt.Sprintf("This property has %s.", pluralize(p.Baths, "bathroom"))
		},
	},
	{
		topic:   "parking",
		matches: anyKeyword("parking"),
		answer: func(p *model.Property) string {
			if p.Parking {
				return "Parking is available for this property."
			}
			return "Parking is not available for this property."
		},
	},
	{
		topic:   "location",
		matches: anyKeyword("location", "where"),
		answer: func(p *model.Property) string {
			if area := strings.TrimSpace(p.Area); area != "" {
				return fmt.Sprintf("This property is located in %s, %s.", area, p.City)
			}
			return fmt.Sprintf("This property is located in %s.", p.City)
		},
	},
	{
		topic:   "availability",
		matches: anyKeyword("available", "availability"),
		answer:  func(*model.Property) string { return ReplyAvailability },
	},
}

// Respond answers a free-text question about a property by keyword matching.
// An empty message is rejected with model.ErrInvalidInput.
func Respond(p *model.Property, message string) (string, error) {
	if p == nil {
		return "", model.ErrNotFound
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return "", fmt.Errorf("%w: message is required", model.ErrInvalidInput)
	}

	for _, rule := range chatRules {
		if rule.matches(message) {
			return rule.answer(p), nil
		}
	}
	return ReplyFallback, nil
}

// PropertyLookup resolves a slug to a property, returning model.ErrNotFound for unknown slugs
type PropertyLookup interface {
	GetProperty(ctx context.Context, slug string) (*model.Property, error)
}

// ChatService answers questions about a single property
type ChatService struct {
	properties PropertyLookup
}

// NewChatService creates a new chat service
func NewChatService(properties PropertyLookup) *ChatService {
	return &ChatService{
		properties: properties,
	}
}

// Ask looks up the property and answers the message. The property is
// resolved first, so an unknown slug is reported even when the message is empty.
func (s *ChatService) Ask(ctx context.Context, slug, message string) (string, error) {
	p, err := s.properties.GetProperty(ctx, slug)
	if err != nil {
		return "", err
	}
	return Respond(p, message)
}

func anyKeyword(keywords ...string) func(string) bool {
	return func(message string) bool {
		return utils.ContainsAnyFold(message, keywords...)
	}
}

func pluralize(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
