package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller provides an interface for resolving dice notation.
// This allows us to inject different implementations for testing.
type Roller interface {
	// Roll resolves a dice expression such as "1d20+2". The reason tag is
	// carried through to the result for logging.
	Roll(notation, reason string) (*RollResult, error)
}
