package runner

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/aretw0/splitcalc/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeMessages(t *testing.T, out *bytes.Buffer) []Message {
	t.Helper()
	var msgs []Message
	scanner := bufio.NewScanner(out)
	for scanner.Scan() {
		var m Message
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &m), scanner.Text())
		msgs = append(msgs, m)
	}
	return msgs
}

func TestJSONHandler_Input(t *testing.T) {
	in := strings.Join([]string{
		`{"type":"bill","value":"120"}`,
		``,
		`{"type":"tip","kind":"percentage","value":0.15}`,
		`{"type":"split","value":3}`,
	}, "\n")
	handler := NewJSONHandler(strings.NewReader(in), io.Discard)
	ctx := context.Background()

	cmd, err := handler.Input(ctx)
	require.NoError(t, err)
	assert.Equal(t, Command{Kind: CmdBill, Text: "120"}, cmd)

	cmd, err = handler.Input(ctx)
	require.NoError(t, err)
	assert.Equal(t, CmdTip, cmd.Kind)
	assert.Equal(t, domain.MustPercentage(0.15), cmd.Tip)

	cmd, err = handler.Input(ctx)
	require.NoError(t, err)
	assert.Equal(t, Command{Kind: CmdSplit, Split: 3}, cmd)

	_, err = handler.Input(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestJSONHandler_Input_Malformed(t *testing.T) {
	handler := NewJSONHandler(strings.NewReader("{not json}\n"), io.Discard)

	_, err := handler.Input(context.Background())
	assert.ErrorIs(t, err, ErrInvalidCommand)
}

func TestJSONHandler_OutputAndSignals(t *testing.T) {
	out := &bytes.Buffer{}
	handler := NewJSONHandler(strings.NewReader(""), out)
	ctx := context.Background()

	view := View{
		State:  domain.SessionState{Bill: domain.SomeBill(100), Tip: domain.NoTip, Split: 2},
		Result: domain.CalculationResult{AmountPerPerson: 50, TotalBill: 100},
	}
	require.NoError(t, handler.Output(ctx, view))
	require.NoError(t, handler.Signal(ctx, SignalReset))
	require.NoError(t, handler.SystemOutput(ctx, "note"))

	msgs := decodeMessages(t, out)
	require.Len(t, msgs, 3)

	assert.Equal(t, "result", msgs[0].Type)
	require.NotNil(t, msgs[0].State)
	require.NotNil(t, msgs[0].Result)
	assert.Equal(t, view.State, *msgs[0].State)
	assert.Equal(t, view.Result, *msgs[0].Result)

	assert.Equal(t, "reset", msgs[1].Type)
	assert.Equal(t, Message{Type: "system", Message: "note"}, msgs[2])
}

func TestJSONHandler_Prompt(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"json string", `"20"`, "20"},
		{"value object", `{"value":12.5}`, "12.5"},
		{"bare number", `7`, "7"},
		{"bare text", `cancel`, "cancel"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			handler := NewJSONHandler(strings.NewReader(tt.line+"\n"), out)

			answer, err := handler.Prompt(context.Background(), "Amount")
			require.NoError(t, err)
			assert.Equal(t, tt.want, answer)

			msgs := decodeMessages(t, out)
			require.Len(t, msgs, 1)
			assert.Equal(t, Message{Type: "prompt", Message: "Amount"}, msgs[0])
		})
	}
}

func TestDecodeEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   string
		want Command
	}{
		{"bill number", `{"type":"bill","value":12.5}`, Command{Kind: CmdBill, Text: "12.5"}},
		{"bill cleared", `{"type":"bill"}`, Command{Kind: CmdBill}},
		{"tip none", `{"type":"tip","kind":"none"}`, Command{Kind: CmdTip, Tip: domain.NoTip}},
		{"tip fixed", `{"type":"tip","kind":"fixed","value":20}`, Command{Kind: CmdTip, Tip: domain.MustFixed(20)}},
		{"tip custom amount", `{"type":"tip","kind":"custom","value":"5"}`, Command{Kind: CmdTip, Tip: domain.MustFixed(5)}},
		{"tip custom prompt", `{"type":"tip","kind":"custom"}`, Command{Kind: CmdTipCustom}},
		{"tip preset", `{"type":"tip","preset":2}`, Command{Kind: CmdTipPreset, Preset: 2}},
		{"split clamped", `{"type":"split","value":0}`, Command{Kind: CmdSplit, Split: 1}},
		{"increment", `{"type":"increment"}`, Command{Kind: CmdIncrement}},
		{"decrement", `{"type":"decrement"}`, Command{Kind: CmdDecrement}},
		{"reset", `{"type":"reset"}`, Command{Kind: CmdReset}},
		{"quit", `{"type":"EXIT"}`, Command{Kind: CmdQuit}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ev Event
			require.NoError(t, json.Unmarshal([]byte(tt.ev), &ev))
			got, err := DecodeEvent(ev)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeEvent_Errors(t *testing.T) {
	for _, raw := range []string{
		`{"type":"jump"}`,
		`{"type":"split","value":"many"}`,
		`{"type":"tip","kind":"percentage","value":1.5}`,
		`{"type":"tip","kind":"fixed","value":-1}`,
		`{"type":"tip","kind":"bribe","value":1}`,
		`{"type":"tip","kind":"fixed","value":"lots"}`,
	} {
		t.Run(raw, func(t *testing.T) {
			var ev Event
			require.NoError(t, json.Unmarshal([]byte(raw), &ev))
			_, err := DecodeEvent(ev)
			assert.ErrorIs(t, err, ErrInvalidCommand)
		})
	}
}
