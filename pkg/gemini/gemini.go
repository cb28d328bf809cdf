package gemini

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

const SystemPrompt = `Eres el asistente virtual de "San Marcos Conecta", el foro académico de la UNMSM (Universidad Nacional Mayor de San Marcos).
Tu objetivo es ayudar a los estudiantes con dudas sobre la plataforma y la vida académica.

Información sobre la plataforma:
- Facultades disponibles: Medicina, Derecho, Ingeniería de Sistemas (FISI), Ciencias, Administración, Electrónica (FIEE).
- Categorías de publicación: Discusiones, Talleres, Apuntes y Materiales, Investigación, Eventos Académicos, Recursos Recomendados.
- Funcionalidades: Crear publicaciones, comentar, votar (upvote/downvote), guardar posts, perfil de usuario.

Responde de manera amable, concisa y útil. Si te preguntan algo fuera de este contexto, intenta relacionarlo con la vida universitaria o indica que solo puedes ayudar con temas académicos y de la plataforma.`

const (
	DefaultModel = "gemini-2.0-flash"

	MissingKeyMessage = "Error: No se encontró la API Key. Por favor configura GEMINI_API_KEY en el archivo .env"
	FailureMessage    = "Lo siento, hubo un error al procesar tu mensaje. Inténtalo de nuevo más tarde."
)

var errEmptyResponse = errors.New("gemini returned no candidates")

// Message is one chat bubble
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    string    `json:"sender"` // "user" or "bot"
	Timestamp time.Time `json:"timestamp"`
}

// Generator produces a model reply for a prompt
type Generator interface {
	Generate(ctx context.Context, model, systemPrompt, prompt string) (string, error)
}

// Assistant answers student questions about the platform. It never
// returns an error: failures become a fixed apology message.
type Assistant struct {
	generator Generator
	model     string
}

// NewAssistant creates an Assistant backed by the Gemini API. An empty
// apiKey yields an Assistant that only answers with MissingKeyMessage.
func NewAssistant(ctx context.Context, apiKey, model string) (*Assistant, error) {
	if apiKey == "" {
		log.Println("GEMINI_API_KEY not set, chat assistant disabled.")
		return New(nil, model), nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("error initializing gemini client: %w", err)
	}

	log.Println("Gemini client initialized successfully!")
	return New(&clientGenerator{client: client}, model), nil
}

// New creates an Assistant over any Generator. A nil generator means the
// assistant is not configured.
func New(generator Generator, model string) *Assistant {
	if model == "" {
		model = DefaultModel
	}
	return &Assistant{generator: generator, model: model}
}

// Reply answers text with a bot message
func (a *Assistant) Reply(ctx context.Context, text string) Message {
	if a.generator == nil {
		return botMessage(MissingKeyMessage)
	}

	reply, err := a.generator.Generate(ctx, a.model, SystemPrompt, text)
	if err != nil {
		log.Printf("Error calling Gemini API: %v", err)
		return botMessage(FailureMessage)
	}
	return botMessage(reply)
}

func botMessage(text string) Message {
	return Message{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    "bot",
		Timestamp: time.Now(),
	}
}

type clientGenerator struct {
	client *genai.Client
}

func (g *clientGenerator) Generate(ctx context.Context, model, systemPrompt, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemPrompt}}},
	}

	result, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), config)
	if err != nil {
		return "", err
	}
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", errEmptyResponse
	}

	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	if sb.Len() == 0 {
		return "", errEmptyResponse
	}
	return sb.String(), nil
}
