package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cloudwork-labs/ragline/internal/domain"
)

type mockGenerator struct {
	text    string
	err     error
	calls   int
	lastReq domain.GenerationRequest
}

func (m *mockGenerator) Generate(_ context.Context, req domain.GenerationRequest) (domain.GenerationResult, error) {
	m.calls++
	m.lastReq = req
	if m.err != nil {
		return domain.GenerationResult{}, m.err
	}
	return domain.GenerationResult{Text: m.text}, nil
}

func TestReply_BlankMessage(t *testing.T) {
	gen := &mockGenerator{text: "返信"}
	svc := New(gen, "gpt-4o-mini")

	for _, msg := range []string{"", "   ", "\n"} {
		_, err := svc.Reply(context.Background(), msg, nil)
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("message %q: expected ErrInvalidInput, got %v", msg, err)
		}
	}
	if gen.calls != 0 {
		t.Errorf("blank message must not call the generator, got %d calls", gen.calls)
	}
}

func TestReply_Success(t *testing.T) {
	gen := &mockGenerator{text: "  請求書は毎月1日に発行されます。  "}
	svc := New(gen, "gpt-4o-mini")

	reply, err := svc.Reply(context.Background(), "請求書はいつ発行されますか？", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "請求書は毎月1日に発行されます。" {
		t.Errorf("expected trimmed reply, got %q", reply)
	}

	if !strings.HasSuffix(gen.lastReq.Input, "ユーザー: 請求書はいつ発行されますか？\nAI:") {
		t.Errorf("transcript should end with the open assistant line, got %q", gen.lastReq.Input)
	}
	if gen.lastReq.MaxOutputTokens != 400 {
		t.Errorf("expected default max tokens 400, got %d", gen.lastReq.MaxOutputTokens)
	}
	if gen.lastReq.Temperature != 0.2 {
		t.Errorf("expected default temperature 0.2, got %v", gen.lastReq.Temperature)
	}
}

func TestReply_TranscriptRolesAndOrder(t *testing.T) {
	gen := &mockGenerator{text: "返信"}
	svc := New(gen, "gpt-4o-mini")

	history := []Message{
		{Role: RoleUser, Content: "SSOの設定方法は？"},
		{Role: RoleBot, Content: "OktaのSAML連携を使います。"},
		{Role: RoleAssistant, Content: "詳細は管理画面をご覧ください。"},
	}

	if _, err := svc.Reply(context.Background(), "ありがとうございます", history); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "ユーザー: SSOの設定方法は？\n" +
		"AI: OktaのSAML連携を使います。\n" +
		"AI: 詳細は管理画面をご覧ください。\n" +
		"ユーザー: ありがとうございます\nAI:"
	if gen.lastReq.Input != want {
		t.Errorf("unexpected transcript:\ngot:  %q\nwant: %q", gen.lastReq.Input, want)
	}
}

func TestReply_HistoryWindow(t *testing.T) {
	gen := &mockGenerator{text: "返信"}
	svc := New(gen, "gpt-4o-mini")

	var history []Message
	for i := 0; i < 10; i++ {
		history = append(history, Message{Role: RoleUser, Content: "ターン" + string(rune('0'+i))})
	}

	if _, err := svc.Reply(context.Background(), "質問", history); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(gen.lastReq.Input, "ターン3") {
		t.Error("turns outside the trailing window must be dropped")
	}
	for i := 4; i < 10; i++ {
		if !strings.Contains(gen.lastReq.Input, "ターン"+string(rune('0'+i))) {
			t.Errorf("turn %d should survive the window", i)
		}
	}
}

func TestReply_DropsBlankTurns(t *testing.T) {
	gen := &mockGenerator{text: "返信"}
	svc := New(gen, "gpt-4o-mini")

	history := []Message{
		{Role: RoleUser, Content: "   "},
		{Role: RoleBot, Content: ""},
		{Role: RoleUser, Content: "有効なターン"},
	}

	if _, err := svc.Reply(context.Background(), "質問", history); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(gen.lastReq.Input, "\n")
	if len(lines) != 3 {
		t.Errorf("expected 3 transcript lines (1 history + question + open line), got %d: %q", len(lines), gen.lastReq.Input)
	}
}

func TestReply_EmptyGeneration(t *testing.T) {
	gen := &mockGenerator{text: "  \n "}
	svc := New(gen, "gpt-4o-mini")

	_, err := svc.Reply(context.Background(), "質問", nil)
	if !errors.Is(err, domain.ErrEmptyGeneration) {
		t.Errorf("expected ErrEmptyGeneration, got %v", err)
	}
}

func TestReply_GeneratorError(t *testing.T) {
	gen := &mockGenerator{err: domain.ErrGenerationProvider}
	svc := New(gen, "gpt-4o-mini")

	_, err := svc.Reply(context.Background(), "質問", nil)
	if !errors.Is(err, domain.ErrGenerationProvider) {
		t.Errorf("expected ErrGenerationProvider, got %v", err)
	}
}

func TestReply_MaxHistoryOverride(t *testing.T) {
	gen := &mockGenerator{text: "返信"}
	svc := New(gen, "gpt-4o-mini").WithMaxHistory(2)

	history := []Message{
		{Role: RoleUser, Content: "古いターン"},
		{Role: RoleUser, Content: "二番目"},
		{Role: RoleUser, Content: "最新"},
	}

	if _, err := svc.Reply(context.Background(), "質問", history); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(gen.lastReq.Input, "古いターン") {
		t.Error("history beyond the override window must be dropped")
	}
	if !strings.Contains(gen.lastReq.Input, "最新") {
		t.Error("latest turn should survive the window")
	}
}
