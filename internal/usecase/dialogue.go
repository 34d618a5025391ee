package usecase

import (
	"fmt"

	"github.com/yourusername/pc-advisor-bot/internal/domain/entity"
)

// dialogueAction is the next conversational step derived from a NeedsRecord.
type dialogueAction int

const (
	actionAskBudget dialogueAction = iota
	actionAskUseCase
	actionAskConfirm
	actionProceed
)

const (
	onboardingPrompt = "Hello! I'm your PC building expert assistant. To get started, what do you plan to use this PC for and what is your approximate budget?"

	askBudgetPrompt = "I see. And what is your approximate budget for the new PC?"

	emptyReportMessage = "I'm sorry, I encountered an error while searching for parts. Please try again."
)

// resolveDialogueAction maps a NeedsRecord to exactly one action, evaluated
// in strict priority order: budget before use case, and no confirmation until
// both are known. Pure and stateless; all memory of prior turns lives in the
// transcript the extractor re-reads each turn.
func resolveDialogueAction(needs entity.NeedsRecord) dialogueAction {
	switch {
	case needs.Budget == 0:
		return actionAskBudget
	case needs.UseCase == entity.UseCaseUnknown:
		return actionAskUseCase
	case !needs.Confirmed:
		return actionAskConfirm
	default:
		return actionProceed
	}
}

func askUseCasePrompt(budget int) string {
	return fmt.Sprintf("Got it, a budget of around $%d. What is the primary use for this PC? For example: high-end gaming, video editing, or just office work and web browsing?", budget)
}

func askConfirmPrompt(needs entity.NeedsRecord) string {
	return fmt.Sprintf("Okay, just to confirm: you're looking for a PC for **%s** with a budget around **$%d**. Is that correct?", needs.UseCase, needs.Budget)
}
