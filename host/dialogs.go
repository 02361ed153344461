package host

type DialogKind string

const (
	DialogInfo     DialogKind = "info"
	DialogQuestion DialogKind = "question"
)

// A Choice is one of the buttons offered by a blocking prompt.
type Choice struct {
	ID    string
	Label string
}

type Question struct {
	Kind    DialogKind
	Title   string
	Body    string
	Choices []Choice
}

// A Decision is the ID of the choice the user picked.
type Decision string

// Dialogs asks the user blocking questions. Ask returns only once the
// user has picked one of the question's choices; there is no timeout.
type Dialogs interface {
	Ask(q Question) (Decision, error)
}

// StaticDialogs answers every question with a fixed decision, for tests
// and non-interactive runs.
type StaticDialogs struct {
	Decision Decision

	// Asked records every question, in order.
	Asked []Question
}

var _ Dialogs = (*StaticDialogs)(nil)

func (d *StaticDialogs) Ask(q Question) (Decision, error) {
	d.Asked = append(d.Asked, q)
	return d.Decision, nil
}
