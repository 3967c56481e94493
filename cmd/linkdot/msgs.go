package linkdot

// Short messages (one-liners)
const (
	MsgRootShort       = "A declarative dotfiles symlinker"
	MsgInstallShort    = "Link components into place"
	MsgRemoveShort     = "Remove the links a component created"
	MsgStatusShort     = "Show install status of components"
	MsgListShort       = "List all components in the dotfiles root"
	MsgListLong        = "List displays every component found in your dotfiles root with its detected availability."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview changes without executing them"
	MsgFlagRoot    = "Dotfiles root directory (overrides LINKDOT_ROOT)"

	// Error messages
	MsgErrInstall = "failed to install components: %w"
	MsgErrRemove  = "failed to remove components: %w"
	MsgErrStatus  = "failed to get component status: %w"
	MsgErrList    = "failed to list components: %w"

	// Status messages
	MsgDryRunNotice = "\nDRY RUN MODE - No changes were made"
)

// Long messages
const (
	MsgRootLong = `linkdot keeps your dotfiles in one versioned directory and links them
into place. Each top-level directory in the dotfiles root is a component;
installing a component symlinks its files to their configured targets,
preferring a single directory link where the target does not exist yet.

linkdot is stateless: the links on disk are the only record, so status,
install, and remove always reflect what is actually there.`

	MsgFallbackWarning = `Warning: no dotfiles root configured, falling back to %s
Set LINKDOT_ROOT or pass --root to silence this warning.
`

	MsgCompletionLong = `To load completions:

Bash:
  $ source <(linkdot completion bash)
  # To load completions for each session, execute once:
  $ linkdot completion bash > /etc/bash_completion.d/linkdot

Zsh:
  $ linkdot completion zsh > "${fpath[1]}/_linkdot"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ linkdot completion fish | source
  # To load completions for each session, execute once:
  $ linkdot completion fish > ~/.config/fish/completions/linkdot.fish

PowerShell:
  PS> linkdot completion powershell | Out-String | Invoke-Expression
`
)
