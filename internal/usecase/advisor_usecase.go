package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/yourusername/pc-advisor-bot/internal/domain/entity"
	"github.com/yourusername/pc-advisor-bot/internal/domain/repository"
)

// AdvisorUseCase processes one conversational turn of the PC build advisor.
type AdvisorUseCase interface {
	// Respond takes the latest user message and the full prior history and
	// returns the assistant's reply, ready for direct display. It is total:
	// every collaborator failure degrades to a defined sentinel and the turn
	// always completes with some response.
	Respond(ctx context.Context, message string, history []entity.Turn) string
}

type advisorUseCase struct {
	extractor repository.NeedsExtractor
	prices    repository.PriceRepository
	catalog   repository.Catalog
}

// NewAdvisorUseCase creates the advisor with its injected collaborators.
func NewAdvisorUseCase(
	extractor repository.NeedsExtractor,
	prices repository.PriceRepository,
	catalog repository.Catalog,
) AdvisorUseCase {
	return &advisorUseCase{
		extractor: extractor,
		prices:    prices,
		catalog:   catalog,
	}
}

// Respond drives one turn: transcript → needs extraction → dialogue action;
// only a proceed action triggers tier selection, price lookups and the
// report. Exactly one extractor call and at most one lookup per part happen
// per turn.
func (u *advisorUseCase) Respond(ctx context.Context, message string, history []entity.Turn) string {
	if len(history) == 0 {
		return onboardingPrompt
	}

	needs, err := u.extractor.ExtractNeeds(ctx, buildTranscript(message, history))
	if err != nil {
		log.Printf("needs extraction failed, degrading to empty record: %v", err)
		needs = entity.EmptyNeeds()
	}
	needs = needs.Normalize()

	switch resolveDialogueAction(needs) {
	case actionAskBudget:
		return askBudgetPrompt
	case actionAskUseCase:
		return askUseCasePrompt(needs.Budget)
	case actionAskConfirm:
		return askConfirmPrompt(needs)
	}

	tier := selectBuildTier(u.catalog, needs.Budget, needs.UseCase)
	listings := u.collectListings(ctx, tier)
	if len(listings) == 0 {
		return emptyReportMessage
	}
	return renderReport(tier, listings)
}

// collectListings issues one price lookup per part. The lookups share no
// state, so they fan out concurrently; writing into an index-addressed slice
// keeps the tier's category order regardless of completion order.
func (u *advisorUseCase) collectListings(ctx context.Context, tier entity.BuildTier) []entity.PartListing {
	listings := make([]entity.PartListing, len(tier.Parts))

	var wg sync.WaitGroup
	for i, part := range tier.Parts {
		wg.Add(1)
		go func(i int, part entity.PartSpec) {
			defer wg.Done()
			listing, err := u.prices.Lookup(ctx, part.Name)
			if err != nil {
				log.Printf("price lookup failed for %q: %v", part.Name, err)
				listing = entity.NotFoundListing(part.Name)
			}
			listing.Category = part.Category
			listings[i] = listing
		}(i, part)
	}
	wg.Wait()

	return listings
}

// buildTranscript flattens the history plus the latest message into the text
// the extractor re-reads every turn.
func buildTranscript(message string, history []entity.Turn) string {
	var sb strings.Builder
	for _, turn := range history {
		fmt.Fprintf(&sb, "User: %s\nAssistant: %s\n", turn.User, turn.Assistant)
	}
	fmt.Fprintf(&sb, "User: %s", message)
	return sb.String()
}
