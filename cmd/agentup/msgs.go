package main

// Short messages (one-liners)
const (
	MsgRootShort    = "Install OpenCode agent files into your user configuration"
	MsgInstallShort = "Install agent files (default command)"
	MsgListShort    = "List installable agent files and their collision status"
	MsgShowShort    = "Render an agent file in the terminal"
	MsgVersionShort = "Print version information"
)

// Long messages
const (
	MsgRootLong = `agentup copies the agent definitions under .opencode/agent/ in your
repository into ~/.config/opencode/agent/, resolving collisions with
existing files interactively or via policy flags.

Without flags, collisions are resolved at an interactive prompt. Use
--force, --skip-existing or --backup for unattended runs, and --dry-run
to preview what a run would do without writing anything.`

	MsgListLong = `List shows every installable agent file found in the repository's
.opencode/agent/ directory, marking the ones that already exist at the
destination.`

	MsgShowLong = `Show renders an agent's markdown definition in the terminal. The name
may be given with or without the file extension.`
)
