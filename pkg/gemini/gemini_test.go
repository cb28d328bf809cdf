package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type stubGenerator struct {
	reply string
	err   error

	gotModel  string
	gotSystem string
	gotPrompt string
}

func (g *stubGenerator) Generate(ctx context.Context, model, systemPrompt, prompt string) (string, error) {
	g.gotModel, g.gotSystem, g.gotPrompt = model, systemPrompt, prompt
	return g.reply, g.err
}

func TestReplyWithoutKey(t *testing.T) {
	a, err := NewAssistant(context.Background(), "", "")
	if err != nil {
		t.Fatalf("NewAssistant: %v", err)
	}
	msg := a.Reply(context.Background(), "hola")
	if msg.Text != MissingKeyMessage || msg.Sender != "bot" || msg.ID == "" {
		t.Fatalf("unexpected message %+v", msg)
	}
}

func TestReplyPassesPromptAndModel(t *testing.T) {
	gen := &stubGenerator{reply: "¡Hola! ¿En qué te ayudo?"}
	a := New(gen, "")

	msg := a.Reply(context.Background(), "¿Qué facultades hay?")
	if msg.Text != gen.reply {
		t.Fatalf("unexpected reply %q", msg.Text)
	}
	if gen.gotModel != DefaultModel || gen.gotPrompt != "¿Qué facultades hay?" {
		t.Fatalf("unexpected call model=%q prompt=%q", gen.gotModel, gen.gotPrompt)
	}
	if !strings.Contains(gen.gotSystem, "San Marcos Conecta") {
		t.Fatal("system prompt must describe the platform")
	}
}

func TestReplyOnFailure(t *testing.T) {
	a := New(&stubGenerator{err: errors.New("429 resource exhausted")}, "gemini-2.5-flash")
	if msg := a.Reply(context.Background(), "hola"); msg.Text != FailureMessage {
		t.Fatalf("expected the apology message, got %q", msg.Text)
	}
}
