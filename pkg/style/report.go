package style

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/arthur-debert/linkdot/pkg/errors"
	"github.com/arthur-debert/linkdot/pkg/types"
	"github.com/pterm/pterm"
)

// ComponentStatus is the display-ready view of one component's pass.
// Commands convert their reports into this before rendering.
type ComponentStatus struct {
	Name     string
	State    types.InstallState
	Messages []types.Message
	Err      error
}

// ComponentItem is the display-ready view of a discovered component.
type ComponentItem struct {
	Name         string
	FriendlyName string
	SourcePath   string
	Availability types.Availability
}

// StateStyle returns the pterm style used for a state badge.
func StateStyle(state types.InstallState) *pterm.Style {
	switch state {
	case types.StateInstalled:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case types.StateNotInstalled:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case types.StatePartialInstall:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack, pterm.Bold)
	case types.StateUnknown:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// StateLabel returns the badge text for a state, fixed-width so columns
// line up across components.
func StateLabel(state types.InstallState) string {
	switch state {
	case types.StateInstalled:
		return "installed    "
	case types.StateNotInstalled:
		return "not installed"
	case types.StatePartialInstall:
		return "partial      "
	case types.StateNotEvaluated:
		return "skipped      "
	default:
		return "unknown      "
	}
}

// RenderComponentStatus renders one component's header line plus its
// warning and error messages. Verbose indicates whether per-link detail
// messages are shown too.
func RenderComponentStatus(cs ComponentStatus, verbose bool) string {
	var result strings.Builder

	badge := StateStyle(cs.State).Sprint(StateLabel(cs.State))
	result.WriteString(fmt.Sprintf("%s  %s\n", badge, Bold(cs.Name)))

	if cs.Err != nil {
		line := fmt.Sprintf("%s %s", ErrorIndicator, cs.Err.Error())
		result.WriteString(Indent(line, 1) + "\n")
		return strings.TrimRight(result.String(), "\n")
	}

	for _, m := range cs.Messages {
		switch m.Level {
		case types.LevelError:
			result.WriteString(Indent(fmt.Sprintf("%s %s", ErrorIndicator, messageDetail(m)), 1) + "\n")
		case types.LevelWarning:
			result.WriteString(Indent(fmt.Sprintf("%s %s", WarningIndicator, messageDetail(m)), 1) + "\n")
		case types.LevelVerbose:
			if verbose {
				result.WriteString(Indent(fmt.Sprintf("%s %s", SuccessIndicator, messageDetail(m)), 1) + "\n")
			}
		}
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderComponentStatuses renders a full pass over several components.
func RenderComponentStatuses(statuses []ComponentStatus, verbose bool) string {
	if len(statuses) == 0 {
		return MutedStyle.Render("No components found")
	}

	var result strings.Builder
	for _, cs := range statuses {
		result.WriteString(RenderComponentStatus(cs, verbose) + "\n")
	}
	return strings.TrimRight(result.String(), "\n")
}

// RenderComponentList renders the discovered components with their
// detected availability.
func RenderComponentList(items []ComponentItem) string {
	if len(items) == 0 {
		return MutedStyle.Render("No components found")
	}

	var result strings.Builder
	result.WriteString(TitleStyle.Render("Components") + "\n\n")

	for _, item := range items {
		name := Bold(item.Name)
		if item.FriendlyName != "" && item.FriendlyName != item.Name {
			name += MutedStyle.Render(" (" + item.FriendlyName + ")")
		}
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			availabilityIndicator(item.Availability), name,
			MutedStyle.Render(string(item.Availability))))
		if item.SourcePath != "" {
			result.WriteString(Indent(PathStyle.Render(item.SourcePath), 1) + "\n")
		}
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderError renders a top-level error with its detail map when the
// error carries one.
func RenderError(err error) string {
	var result strings.Builder
	result.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))

	var le *errors.LinkdotError
	if stderrors.As(err, &le) && len(le.Details) > 0 {
		for k, v := range le.Details {
			result.WriteString("\n" + Indent(MutedStyle.Render(fmt.Sprintf("%s: %v", k, v)), 1))
		}
	}

	return result.String()
}

func availabilityIndicator(a types.Availability) string {
	switch a {
	case types.Available, types.AlwaysInstall, types.NoLogic:
		return SuccessIndicator
	case types.Unavailable, types.NeverInstall, types.Ignored:
		return PendingIndicator
	default:
		return WarningIndicator
	}
}

// messageDetail drops the component prefix from Message.String since the
// component header is already printed above the message block.
func messageDetail(m types.Message) string {
	s := m.String()
	return strings.TrimPrefix(s, m.Component+": ")
}
