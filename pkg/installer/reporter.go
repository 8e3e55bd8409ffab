package installer

import (
	"github.com/arthur-debert/lazy-scripts/pkg/desktop"
	"github.com/arthur-debert/lazy-scripts/pkg/sandbox"
	"github.com/arthur-debert/lazy-scripts/pkg/shellrc"
	"github.com/arthur-debert/lazy-scripts/pkg/stub"
)

// Reporter receives one event per observable step of a run.
type Reporter interface {
	PathRegistered(profile shellrc.Profile, changed bool)
	Skipped(fileName, reason string)
	Configuration(script Script)
	SandboxCreated(stubName string, sb sandbox.Sandbox)
	StubWritten(s stub.Stub)
	DesktopEntryWritten(e desktop.Entry)
}

// NopReporter ignores every event.
type NopReporter struct{}

func (NopReporter) PathRegistered(shellrc.Profile, bool)   {}
func (NopReporter) Skipped(string, string)                 {}
func (NopReporter) Configuration(Script)                   {}
func (NopReporter) SandboxCreated(string, sandbox.Sandbox) {}
func (NopReporter) StubWritten(stub.Stub)                  {}
func (NopReporter) DesktopEntryWritten(desktop.Entry)      {}

func orNop(r Reporter) Reporter {
	if r == nil {
		return NopReporter{}
	}
	return r
}

var _ Reporter = NopReporter{}

