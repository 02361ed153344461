package undermine

import (
	"context"

	"github.com/itchio/headway/state"
	"github.com/pkg/errors"
	"github.com/skratchdot/open-golang/open"

	"github.com/modhaven/minemod/host"
)

// LoaderDownloadURL is where users can get the companion mod loader.
const LoaderDownloadURL = "https://www.nexusmods.com/undermine/mods/1"

// A GamePatcher runs the one-time binary patch. *patcher.Patcher is
// the real one; tests swap in a fake.
type GamePatcher interface {
	IsPatched(gameDir string) bool
	Patch(ctx context.Context, consumer *state.Consumer, gameDir string) error
}

// Adapter is the game adapter exposed to the host: install-path
// discovery, launch/mod-path constants, and the one-time setup flow
// that runs on every activation of the game.
type Adapter struct {
	Store    host.Store
	Dialogs  host.Dialogs
	Consumer *state.Consumer
	Patcher  GamePatcher

	// OpenURL opens a page in the user's browser. Defaults to
	// open.Start, swappable for tests.
	OpenURL func(url string) error
}

var _ host.Game = (*Adapter)(nil)

func NewAdapter(store host.Store, dialogs host.Dialogs, consumer *state.Consumer, p GamePatcher) *Adapter {
	return &Adapter{
		Store:    store,
		Dialogs:  dialogs,
		Consumer: consumer,
		Patcher:  p,
		OpenURL:  open.Start,
	}
}

func (a *Adapter) ID() string {
	return GameID
}

func (a *Adapter) QueryPath(ctx context.Context) (string, error) {
	p, err := a.Store.FindGame(SteamAppID)
	if err != nil {
		return "", errors.WithMessage(err, "locating UnderMine")
	}
	return p, nil
}

func (a *Adapter) Executable() string {
	return ExecutableName
}

func (a *Adapter) QueryModPath() string {
	return ModsFolderName
}

// setup flow states. Every activation walks this machine; an already
// patched game skips straight to the mod loader check, which is what
// makes re-running Setup idempotent.
type setupState int

const (
	stateAwaitingConsent setupState = iota
	statePatching
	stateCheckingLoader
	stateDone
	stateCanceled
)

const (
	decisionPatch    host.Decision = "patch"
	decisionCancel   host.Decision = "cancel"
	decisionDownload host.Decision = "download"
	decisionNotNow   host.Decision = "not-now"
	decisionNever    host.Decision = "never"
)

// Setup runs the one-time patch and mod loader consent flow. It fails
// with host.ErrUserCanceled when the user declines the patch, which
// stops game activation. Not re-entrant; the host serializes
// activations of the same game.
func (a *Adapter) Setup(ctx context.Context, d host.Discovery) error {
	st := stateAwaitingConsent
	if a.Patcher.IsPatched(d.Path) {
		a.Consumer.Infof("%s: already patched, no consent needed", d.Path)
		st = stateCheckingLoader
	}

	for {
		switch st {
		case stateAwaitingConsent:
			dec, err := a.Dialogs.Ask(patchConsentQuestion())
			if err != nil {
				return errors.WithStack(err)
			}
			if dec == decisionPatch {
				st = statePatching
			} else {
				st = stateCanceled
			}

		case statePatching:
			err := a.Patcher.Patch(ctx, a.Consumer, d.Path)
			if err != nil {
				return errors.WithMessage(err, "patching game")
			}
			st = stateCheckingLoader

		case stateCheckingLoader:
			err := a.offerModLoader(d.Path)
			if err != nil {
				return err
			}
			st = stateDone

		case stateDone:
			return nil

		case stateCanceled:
			return errors.WithStack(host.ErrUserCanceled)
		}
	}
}

// offerModLoader points the user at the companion mod loader when it
// isn't installed yet. Declining for good writes the opt-out marker so
// later activations stay quiet.
func (a *Adapter) offerModLoader(gameDir string) error {
	if HasModLoader(gameDir) {
		return nil
	}
	if HasOptOut(gameDir) {
		return nil
	}

	dec, err := a.Dialogs.Ask(loaderOfferQuestion())
	if err != nil {
		return errors.WithStack(err)
	}

	switch dec {
	case decisionDownload:
		a.Consumer.Infof("opening %s", LoaderDownloadURL)
		if err := a.OpenURL(LoaderDownloadURL); err != nil {
			a.Consumer.Warnf("can't open browser: %v", err)
		}
	case decisionNever:
		if err := WriteOptOut(gameDir); err != nil {
			return errors.WithMessage(err, "writing opt-out marker")
		}
	}
	return nil
}

func patchConsentQuestion() host.Question {
	return host.Question{
		Kind:  host.DialogQuestion,
		Title: "Patch UnderMine?",
		Body: "To load mods, UnderMine's game assembly has to be patched once. " +
			"A backup of the original assembly is kept, but the patch itself " +
			"can't be undone from here. Patch now?",
		Choices: []host.Choice{
			{ID: string(decisionPatch), Label: "Patch"},
			{ID: string(decisionCancel), Label: "Cancel"},
		},
	}
}

func loaderOfferQuestion() host.Question {
	return host.Question{
		Kind:  host.DialogQuestion,
		Title: "Install UnderModLoader?",
		Body: "Most UnderMine mods need UnderModLoader to run. " +
			"It doesn't seem to be installed yet.",
		Choices: []host.Choice{
			{ID: string(decisionDownload), Label: "Open download page"},
			{ID: string(decisionNotNow), Label: "Not now"},
			{ID: string(decisionNever), Label: "Don't ask again"},
		},
	}
}
