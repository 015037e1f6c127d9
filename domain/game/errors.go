package game

import "errors"

// Engine contract violations. None of these are retryable: they signal
// either bad construction input or a desynchronization between the
// decision source and the engine state, and must be surfaced to the
// caller as-is.
var (
	ErrInvalidRoundCount = errors.New("round count must be at least 1")
	ErrEmptyPlay         = errors.New("play must contain at least one card")
	ErrMixedRanks        = errors.New("all cards in a play must share one rank")
	ErrCardNotInHand     = errors.New("card not in hand")
	ErrInsufficientCards = errors.New("not enough cards in hand")
	ErrPlayDoesNotBeat   = errors.New("play does not beat the current play")
	ErrPlayerNotActive   = errors.New("player is not active in this trick")
	ErrNoLeaderFound     = errors.New("no player holds the 3 of clubs")
)
