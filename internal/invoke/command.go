// Package invoke constructs and executes the per-example build-and-run commands.
package invoke

import (
	"fmt"
	"os"

	"github.com/kballard/go-shellquote"
)

// BacktraceEnvKey is the environment variable the build tool reads to produce
// detailed failure diagnostics in the child process
const BacktraceEnvKey = "RUST_BACKTRACE"

const (
	runSubcommand   = "run"
	releaseFlag     = "--release"
	exampleSelector = "--example"
)

// Spec describes how invocation commands are constructed. One Spec produces the
// commands for every example of a run; only the example name varies between them
type Spec struct {
	Prefix         []string // optional tokens prepended to the tool, e.g. ["time"]
	Tool           string   // the build tool binary, normally "cargo"
	PassThrough    []string // arguments forwarded verbatim after the example name
	BacktraceValue string   // value for the backtrace env var; empty means "1"
}

// Command is one fully-constructed child invocation: the argv tokens plus the
// environment overrides merged over the inherited environment
type Command struct {
	Argv []string
	Env  map[string]string
}

// Command builds the invocation command for the named example:
//
//	[<prefix...>, <tool>, run, --release, --example, <name>, <pass-through...>]
func (s Spec) Command(name string) Command {
	argv := make([]string, 0, len(s.Prefix)+5+len(s.PassThrough))
	argv = append(argv, s.Prefix...)
	argv = append(argv, s.Tool, runSubcommand, releaseFlag, exampleSelector, name)
	argv = append(argv, s.PassThrough...)

	backtrace := s.BacktraceValue
	if backtrace == "" {
		backtrace = "1"
	}

	return Command{
		Argv: argv,
		Env:  map[string]string{BacktraceEnvKey: backtrace},
	}
}

// String renders the command as a single shell-quoted line that could be pasted
// into a POSIX shell
func (c Command) String() string {
	return shellquote.Join(c.Argv...)
}

// environ merges the command's overrides over the inherited environment. Entries
// appended later win, so an override shadows an inherited value of the same key
func (c Command) environ() []string {
	env := os.Environ()
	for key, value := range c.Env {
		env = append(env, fmt.Sprintf("%s=%s", key, value))
	}
	return env
}
