package runner

import (
	"context"
	"strings"

	"github.com/aretw0/splitcalc/pkg/domain"
)

// CustomTipQuestion is shown when the user picks a custom tip without an amount.
const CustomTipQuestion = "Custom tip amount (empty to cancel)"

// PromptCustomTip asks for a fixed tip amount through h and hands the
// selection to completion. An empty answer or "cancel" leaves the tip as it
// was; so does an answer that is not a non-negative number, after telling
// the user. Only I/O failures are returned.
func PromptCustomTip(ctx context.Context, h IOHandler, completion func(domain.TipSelection)) error {
	answer, err := h.Prompt(ctx, CustomTipQuestion)
	if err != nil {
		return err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" || strings.EqualFold(answer, "cancel") {
		return h.SystemOutput(ctx, "Custom tip cancelled.")
	}

	tip, err := ParseCustomTip(answer)
	if err != nil {
		return h.SystemOutput(ctx, err.Error())
	}
	completion(tip)
	return nil
}
