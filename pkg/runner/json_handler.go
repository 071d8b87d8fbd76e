package runner

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/aretw0/splitcalc/pkg/domain"
	"github.com/aretw0/splitcalc/pkg/session"
)

// Event is one NDJSON input line.
//
//	{"type":"bill","value":"120"}
//	{"type":"tip","kind":"percentage","value":0.15}
//	{"type":"tip","kind":"fixed","value":20}
//	{"type":"tip","kind":"custom"}
//	{"type":"tip","preset":2}
//	{"type":"split","value":3}
//	{"type":"increment"} {"type":"decrement"} {"type":"reset"}
type Event struct {
	Type   string          `json:"type"`
	Kind   string          `json:"kind,omitempty"`
	Value  json.RawMessage `json:"value,omitempty"`
	Preset int             `json:"preset,omitempty"`
}

// Message is one NDJSON output line.
type Message struct {
	Type    string                    `json:"type"`
	State   *domain.SessionState      `json:"state,omitempty"`
	Result  *domain.CalculationResult `json:"result,omitempty"`
	Message string                    `json:"message,omitempty"`
}

// JSONHandler implements the IOHandler interface for structured JSON-Lines communication.
type JSONHandler struct {
	Reader *bufio.Reader
	Writer io.Writer

	mu      sync.Mutex
	encoder *json.Encoder
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Reader:  bufio.NewReader(r),
		Writer:  w,
		encoder: json.NewEncoder(w),
	}
}

func (h *JSONHandler) emit(m Message) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.encoder.Encode(m)
}

func (h *JSONHandler) readLine(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		text, err := h.Reader.ReadString('\n')
		text = strings.TrimSpace(text)
		if text != "" {
			return text, nil
		}
		if err != nil {
			return "", err
		}
	}
}

func (h *JSONHandler) Input(ctx context.Context) (Command, error) {
	line, err := h.readLine(ctx)
	if err != nil {
		return Command{}, err
	}
	var ev Event
	if err := json.Unmarshal([]byte(line), &ev); err != nil {
		return Command{}, fmt.Errorf("%w: %v", ErrInvalidCommand, err)
	}
	return DecodeEvent(ev)
}

func (h *JSONHandler) Prompt(ctx context.Context, question string) (string, error) {
	if err := h.emit(Message{Type: "prompt", Message: question}); err != nil {
		return "", err
	}
	line, err := h.readLine(ctx)
	if err != nil {
		return "", err
	}
	// Accept "20", {"value": 20} or a bare 20.
	var s string
	if json.Unmarshal([]byte(line), &s) == nil {
		return s, nil
	}
	var ev Event
	if json.Unmarshal([]byte(line), &ev) == nil && len(ev.Value) > 0 {
		return rawText(ev.Value), nil
	}
	return line, nil
}

func (h *JSONHandler) Output(ctx context.Context, view View) error {
	state, result := view.State, view.Result
	return h.emit(Message{Type: "result", State: &state, Result: &result})
}

func (h *JSONHandler) Signal(ctx context.Context, name string) error {
	return h.emit(Message{Type: name})
}

func (h *JSONHandler) SystemOutput(ctx context.Context, msg string) error {
	return h.emit(Message{Type: "system", Message: msg})
}

// DecodeEvent maps an NDJSON event onto a Command.
func DecodeEvent(ev Event) (Command, error) {
	switch strings.ToLower(ev.Type) {
	case "bill":
		return Command{Kind: CmdBill, Text: rawText(ev.Value)}, nil
	case "tip":
		return decodeTip(ev)
	case "split":
		n, err := session.ParseSplit(rawText(ev.Value))
		if err != nil {
			return Command{}, fmt.Errorf("%w: %w", ErrInvalidCommand, err)
		}
		return Command{Kind: CmdSplit, Split: n}, nil
	case "increment":
		return Command{Kind: CmdIncrement}, nil
	case "decrement":
		return Command{Kind: CmdDecrement}, nil
	case "reset":
		return Command{Kind: CmdReset}, nil
	case "show":
		return Command{Kind: CmdShow}, nil
	case "help":
		return Command{Kind: CmdHelp}, nil
	case "quit", "exit":
		return Command{Kind: CmdQuit}, nil
	}
	return Command{}, fmt.Errorf("%w: unknown event type %q", ErrInvalidCommand, ev.Type)
}

func decodeTip(ev Event) (Command, error) {
	if ev.Preset > 0 {
		return Command{Kind: CmdTipPreset, Preset: ev.Preset}, nil
	}
	kind := strings.ToLower(ev.Kind)
	if kind == "" || kind == "none" {
		return Command{Kind: CmdTip, Tip: domain.NoTip}, nil
	}
	if kind == "custom" && len(ev.Value) == 0 {
		return Command{Kind: CmdTipCustom}, nil
	}

	v, err := strconv.ParseFloat(rawText(ev.Value), 64)
	if err != nil {
		return Command{}, fmt.Errorf("%w: tip value %s", ErrInvalidCommand, ev.Value)
	}
	var sel domain.TipSelection
	switch kind {
	case "percentage":
		sel, err = domain.Percentage(v)
	case "fixed", "custom":
		sel, err = domain.Fixed(v)
	default:
		return Command{}, fmt.Errorf("%w: unknown tip kind %q", ErrInvalidCommand, ev.Kind)
	}
	if err != nil {
		return Command{}, fmt.Errorf("%w: %w", ErrInvalidCommand, err)
	}
	return Command{Kind: CmdTip, Tip: sel}, nil
}

// rawText renders a JSON scalar as the text a user would have typed.
func rawText(v json.RawMessage) string {
	if len(v) == 0 || bytes.Equal(v, []byte("null")) {
		return ""
	}
	var s string
	if json.Unmarshal(v, &s) == nil {
		return s
	}
	return string(v)
}
