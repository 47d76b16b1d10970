package hint

import "github.com/fillword/fillwordgame-go/internal/model"

// Strategy defines how a hint is chosen for a round
type Strategy interface {
	// PickHint selects one of the round's unfound placements to reveal.
	// Returns model.ErrNoHintAvailable when every placed word has been found.
	PickHint(round *model.Round) (*model.Hint, error)
}
