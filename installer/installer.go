package installer

import (
	"context"

	"github.com/itchio/headway/state"
)

// Manager implements one packaging convention: it can tell whether an
// archive's file listing matches its convention, and turn a matching
// listing into copy instructions for the host to execute.
type Manager interface {
	TestSupported(params TestParams) (*TestResult, error)
	Install(params InstallParams) (*InstallResult, error)
	Name() string
}

type TestParams struct {
	// Archive-relative paths, order preserved as listed. Directory
	// entries end with a separator.
	Files []string

	// The game the user is installing for.
	GameID string
}

type TestResult struct {
	Supported bool
}

type InstallParams struct {
	Files  []string
	GameID string

	// The staging folder the archive was extracted to. Install only
	// reads from it (manifest contents); the host performs the copies.
	DestPath string

	// Listener for progress events, logging etc.
	Consumer *state.Consumer

	// For cancellation
	Context context.Context
}

type InstallResult struct {
	Instructions []Instruction
}

type InstructionType string

const (
	// TypeCopy copies Source (inside the archive) to Destination
	// (relative to the staging folder, or to the game folder for
	// root-deployed mods).
	TypeCopy InstructionType = "copy"
)

// An Instruction tells the host to materialize one file. Instructions
// are immutable once produced.
type Instruction struct {
	Type        InstructionType
	Source      string
	Destination string
}

func Copy(source string, destination string) Instruction {
	return Instruction{
		Type:        TypeCopy,
		Source:      source,
		Destination: destination,
	}
}
