package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/splitcalc/internal/presentation/format"
	"github.com/aretw0/splitcalc/internal/presentation/tui"
)

// TextHandler implements the line-oriented terminal interface.
type TextHandler struct {
	Reader    *bufio.Reader
	Writer    io.Writer
	Renderer  ContentRenderer
	Formatter *format.Formatter

	inputChan chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the content renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithTextHandlerFormatter configures how amounts are printed.
func WithTextHandlerFormatter(f *format.Formatter) TextHandlerOption {
	return func(h *TextHandler) {
		h.Formatter = f
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader:    bufio.NewReader(r),
		Writer:    w,
		Formatter: format.New("en-US", "$"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) initPump() {
	h.startOnce.Do(func() {
		h.inputChan = make(chan inputResult)
		go h.pump()
	})
}

// pump owns the blocking reads so Input and Prompt can honour ctx.
func (h *TextHandler) pump() {
	for {
		text, err := h.Reader.ReadString('\n')

		// If we got text (even with EOF), send it
		if text != "" {
			h.inputChan <- inputResult{text: text}
		}
		if err != nil {
			if err == io.EOF {
				close(h.inputChan)
				return
			}
			h.inputChan <- inputResult{err: err}
			// Backoff for non-fatal errors to prevent CPU spikes on persistent failure
			time.Sleep(50 * time.Millisecond)
		}
	}
}

func (h *TextHandler) readLine(ctx context.Context, prompt string) (string, error) {
	h.initPump()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
			fmt.Fprint(h.Writer, prompt)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case res, ok := <-h.inputChan:
			if !ok {
				return "", io.EOF
			}
			if res.err != nil {
				return "", res.err
			}
			clean, err := SanitizeInput(res.text)
			if err != nil {
				fmt.Fprintf(h.Writer, "Error: %v. Please try again.\n", err)
				continue
			}
			return clean, nil
		}
	}
}

func (h *TextHandler) Input(ctx context.Context) (Command, error) {
	for {
		line, err := h.readLine(ctx, "> ")
		if err != nil {
			return Command{}, err
		}
		if line == "" {
			continue
		}
		return ParseCommand(line)
	}
}

func (h *TextHandler) Prompt(ctx context.Context, question string) (string, error) {
	return h.readLine(ctx, question+": ")
}

func (h *TextHandler) Output(ctx context.Context, view View) error {
	output := tui.Summary(h.Formatter, view.State, view.Result)
	if h.Renderer != nil {
		if rendered, err := h.Renderer(output); err == nil {
			output = rendered
		}
	}
	_, err := fmt.Fprintln(h.Writer, strings.TrimRight(output, "\n"))
	return err
}

func (h *TextHandler) Signal(ctx context.Context, name string) error {
	if name == SignalReset {
		_, err := fmt.Fprintln(h.Writer, ">>> Calculator reset.")
		return err
	}
	return nil
}

func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	_, err := fmt.Fprintf(h.Writer, ">>> %s\n", msg)
	return err
}
