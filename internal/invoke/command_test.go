package invoke

import (
	"testing"

	"github.com/kballard/go-shellquote"
	"github.com/stretchr/testify/require"
)

func TestSpec_CommandTokenOrder(t *testing.T) {
	spec := Spec{
		Tool:        "cargo",
		PassThrough: []string{"--foo", "bar"},
	}

	command := spec.Command("basic")

	require.Equal(t,
		[]string{"cargo", "run", "--release", "--example", "basic", "--foo", "bar"},
		command.Argv)
}

func TestSpec_CommandWithoutPassThrough(t *testing.T) {
	spec := Spec{Tool: "cargo"}

	command := spec.Command("antialiasing")

	require.Equal(t,
		[]string{"cargo", "run", "--release", "--example", "antialiasing"},
		command.Argv)
}

func TestSpec_CommandPrefixLeadsTheCommand(t *testing.T) {
	spec := Spec{
		Prefix: []string{"time"},
		Tool:   "cargo",
	}

	command := spec.Command("basic")

	require.Equal(t,
		[]string{"time", "cargo", "run", "--release", "--example", "basic"},
		command.Argv)
}

func TestSpec_BacktraceDefaultsToOne(t *testing.T) {
	spec := Spec{Tool: "cargo"}

	command := spec.Command("basic")

	require.Equal(t, map[string]string{BacktraceEnvKey: "1"}, command.Env)
}

func TestSpec_BacktraceValueOverride(t *testing.T) {
	spec := Spec{Tool: "cargo", BacktraceValue: "full"}

	command := spec.Command("basic")

	require.Equal(t, "full", command.Env[BacktraceEnvKey])
}

func TestCommand_StringQuotesForShell(t *testing.T) {
	spec := Spec{
		Tool:        "cargo",
		PassThrough: []string{"--message", "hello world"},
	}

	command := spec.Command("demo")
	line := command.String()

	require.Contains(t, line, "'hello world'")

	// The echoed line must parse back into exactly the argv that will run
	words, err := shellquote.Split(line)
	require.NoError(t, err)
	require.Equal(t, command.Argv, words)
}

func TestCommand_StringPlainTokensUnquoted(t *testing.T) {
	spec := Spec{Tool: "cargo"}

	command := spec.Command("basic")

	require.Equal(t, "cargo run --release --example basic", command.String())
}
