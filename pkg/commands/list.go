package commands

import (
	"github.com/arthur-debert/linkdot/pkg/logging"
	"github.com/arthur-debert/linkdot/pkg/types"
)

// ComponentInfo is one entry in a listing.
type ComponentInfo struct {
	Name         string
	FriendlyName string
	SourcePath   string
	Availability types.Availability
}

// ListResult holds the components found in the dotfiles root.
type ListResult struct {
	DotfilesRoot string
	Components   []ComponentInfo
}

// List discovers and resolves every component without reconciling any
// trees; it reports names and detected availability only.
func List(opts Options) (*ListResult, error) {
	log := logging.GetLogger("commands")

	env, err := setup(opts, false)
	if err != nil {
		return nil, err
	}
	names, err := env.selectNames(opts.Components)
	if err != nil {
		return nil, err
	}

	result := &ListResult{DotfilesRoot: env.paths.DotfilesRoot()}
	for _, name := range names {
		comp, err := env.resolver.Resolve(name, env.paths.DotfilesRoot(),
			env.global.Lookup(name), env.custom.Lookup(name))
		if err != nil {
			log.Warn().Err(err).Str("component", name).Msg("Component resolution failed")
		}
		result.Components = append(result.Components, ComponentInfo{
			Name:         comp.Name,
			FriendlyName: comp.FriendlyName,
			SourcePath:   comp.SourcePath,
			Availability: comp.Availability,
		})
	}

	log.Info().Int("componentCount", len(result.Components)).Msg("Components listed")
	return result, nil
}
