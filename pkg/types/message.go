package types

import "fmt"

// Level is the severity of a reconciliation message.
type Level string

const (
	LevelDebug   Level = "debug"
	LevelVerbose Level = "verbose"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Message is one structured report emitted during a reconciliation pass.
// The engine attaches path context and nothing else; formatting and
// aggregation beyond that is the caller's job.
type Message struct {
	// Component is the name of the component the message belongs to
	Component string

	// Level is the message severity
	Level Level

	// Source is the source path involved, when applicable
	Source string

	// Target is the target path involved, when applicable
	Target string

	// Detail is the human-readable description
	Detail string
}

// String renders the message for plain-text output.
func (m Message) String() string {
	switch {
	case m.Source != "" && m.Target != "":
		return fmt.Sprintf("%s: %s (%s -> %s)", m.Component, m.Detail, m.Target, m.Source)
	case m.Target != "":
		return fmt.Sprintf("%s: %s (%s)", m.Component, m.Detail, m.Target)
	default:
		return fmt.Sprintf("%s: %s", m.Component, m.Detail)
	}
}
