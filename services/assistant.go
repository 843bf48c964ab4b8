package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const assistantSystemInstruction = `You are 'Uno 2.0', the advanced virtual intelligence for 'Fixuno', India's #1 Home Service partner.
Contact: 8423979371 | Email: fixuno628@gmail.com | Status: All Day Open (24/7 Support).

RELIABILITY PROTOCOL:
- Never say you are having technical difficulties.
- If a user asks for a service not in our standard list (AC, Fan, Wiring, Lighting, Large Appliances), respond: "That's an excellent request! While it's not in our immediate catalog, our certified master technicians handle custom home improvements daily. Please describe your project details or click 'Book Now' to have an expert visit for a custom quote."
- Always encourage a "Book Now" or "Call us at 8423979371" call to action.
- Be concise, bold, and helpful. Represent the brand: Premium, Reliable, Fast.`

// Fallbacks shown instead of any technical error string.
const (
	chatEmptyFallback   = "I'm focusing on your home solution right now. For the fastest booking, please use our 'Book Now' feature or call 8423979371."
	chatErrorFallback   = "Our services are optimized for your home comfort. For immediate assistance and live booking with an expert, please connect with our priority line at 8423979371."
	explainEmptyReply   = "This professional service ensures the long-term health and efficiency of your home appliances."
	explainErrorReply   = "This critical maintenance service is designed to prevent major failures and ensure your appliance operates at peak safety and performance levels."
	explainSystemPrompt = "You are Uno, a helpful home service expert."
)

// Assistant answers free-text storefront questions through Gemini. Every
// failure path returns on-brand copy, never an error.
type Assistant struct {
	chat    *genai.GenerativeModel
	explain *genai.GenerativeModel
}

// NewAssistant builds the Gemini-backed assistant. A missing API key or
// client failure yields a nil Assistant, which answers with fallbacks only.
func NewAssistant(ctx context.Context) *Assistant {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Println("[ASSISTANT] GEMINI_API_KEY not set, fallback replies only")
		return nil
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		log.Printf("[ASSISTANT] failed to create Gemini client: %v", err)
		return nil
	}

	chat := client.GenerativeModel("models/gemini-1.5-flash")
	chat.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(assistantSystemInstruction)}}

	explain := client.GenerativeModel("models/gemini-1.5-flash")
	explain.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(explainSystemPrompt)}}

	return &Assistant{chat: chat, explain: explain}
}

// Chat answers a free-text message.
func (a *Assistant) Chat(ctx context.Context, message string) string {
	if a == nil {
		return chatErrorFallback
	}
	reply, err := generate(ctx, a.chat, message)
	if err != nil {
		log.Printf("[ASSISTANT] chat failed: %v", err)
		return chatErrorFallback
	}
	if reply == "" {
		return chatEmptyFallback
	}
	return reply
}

// ExplainService describes why a sub-service matters, for the detail modal.
func (a *Assistant) ExplainService(ctx context.Context, serviceName, subServiceName string, price int) string {
	if a == nil {
		return explainErrorReply
	}
	prompt := fmt.Sprintf(
		"Explain the importance of %q (Part of %s). Why is it essential for home safety/comfort? Cost: ₹%d. Be short and professional.",
		subServiceName, serviceName, price,
	)
	reply, err := generate(ctx, a.explain, prompt)
	if err != nil {
		log.Printf("[ASSISTANT] explain failed: %v", err)
		return explainErrorReply
	}
	if reply == "" {
		return explainEmptyReply
	}
	return reply
}

func generate(ctx context.Context, model *genai.GenerativeModel, prompt string) (string, error) {
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return strings.TrimSpace(sb.String()), nil
}
