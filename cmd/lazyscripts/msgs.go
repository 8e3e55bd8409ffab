package lazyscripts

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Generate PATH stubs and launchers for your scripts"
	MsgListShort       = "List the scripts that would be installed"
	MsgKeysShort       = "Show the frontmatter key reference"
	MsgSnippetShort    = "Print the PATH lines for your shell startup file"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgNoScriptsFound = "No scripts found in %s\n"
	MsgVersionFormat  = "lazy-scripts version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrLoadConfig = "failed to load config: %w"
	MsgErrInitPaths  = "failed to initialize paths: %w"
	MsgErrHomeDir    = "failed to find home directory: %w"
	MsgErrInstall    = "install failed: %w"
	MsgErrList       = "failed to list scripts: %w"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat  = "Output format (auto, term, text)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/keys-long.txt
	msgKeysLongRaw string
	MsgKeysLong    = strings.TrimSpace(msgKeysLongRaw)

	//go:embed msgs/snippet-long.txt
	msgSnippetLongRaw string
	MsgSnippetLong    = strings.TrimSpace(msgSnippetLongRaw)

	//go:embed msgs/fallback-warning.txt
	MsgFallbackWarning string

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
