package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quash-sh/quash/core/command"
)

func noJobs(int) (int, bool) { return 0, false }

func TestParseSimpleCommand(t *testing.T) {
	p, err := Parse([]string{"ls", "-l", "/tmp"}, noJobs)
	require.NoError(t, err)

	require.Len(t, p, 2)
	assert.Equal(t, command.Exec{Argv: []string{"ls", "-l", "/tmp"}}, p[0].Cmd)
	assert.False(t, p[0].PipeOut)
	assert.False(t, p.Background())
	assert.IsType(t, command.EOC{}, p[1].Cmd)
}

func TestParseEmpty(t *testing.T) {
	p, err := Parse(nil, noJobs)
	require.NoError(t, err)
	assert.True(t, p.Empty())
}

func TestParsePipeline(t *testing.T) {
	p, err := Parse([]string{"a", "|", "b", "|", "c"}, noJobs)
	require.NoError(t, err)

	require.Len(t, p, 4)
	assert.True(t, p[0].PipeOut)
	assert.True(t, p[1].PipeOut)
	assert.False(t, p[2].PipeOut)
	assert.Equal(t, command.Exec{Argv: []string{"b"}}, p[1].Cmd)
}

func TestParseRedirections(t *testing.T) {
	p, err := Parse([]string{"cat", "<", "in.txt", ">", "out.txt"}, noJobs)
	require.NoError(t, err)

	require.Len(t, p, 2)
	assert.Equal(t, command.Exec{Argv: []string{"cat"}}, p[0].Cmd)
	assert.Equal(t, "in.txt", p[0].RedirectIn)
	assert.Equal(t, "out.txt", p[0].RedirectOut)
}

func TestParseBackground(t *testing.T) {
	for _, tokens := range [][]string{
		{"sleep", "5", "&"},
		{"sleep", "5&"},
	} {
		p, err := Parse(tokens, noJobs)
		require.NoError(t, err)

		assert.True(t, p.Background())
		assert.Equal(t, command.Exec{Argv: []string{"sleep", "5"}}, p[0].Cmd)
	}
}

func TestParseBackgroundFlagOnFirstStageOnly(t *testing.T) {
	p, err := Parse([]string{"a", "|", "b", "&"}, noJobs)
	require.NoError(t, err)

	assert.True(t, p[0].Background)
	assert.False(t, p[1].Background)
}

func TestParseBuiltins(t *testing.T) {
	cases := []struct {
		tokens []string
		want   command.Command
	}{
		{[]string{"echo", "a", "b"}, command.Echo{Argv: []string{"a", "b"}}},
		{[]string{"echo"}, command.Echo{Argv: []string{}}},
		{[]string{"export", "FOO=bar"}, command.Export{Name: "FOO", Value: "bar"}},
		{[]string{"export", "FOO="}, command.Export{Name: "FOO", Value: ""}},
		{[]string{"cd", "/tmp"}, command.Cd{Path: "/tmp"}},
		{[]string{"cd"}, command.Cd{}},
		{[]string{"pwd"}, command.Pwd{}},
		{[]string{"jobs"}, command.Jobs{}},
		{[]string{"kill", "9", "123"}, command.Kill{Sig: 9, Pid: 123}},
		{[]string{"kill", "-15", "123"}, command.Kill{Sig: 15, Pid: 123}},
	}

	for _, tc := range cases {
		p, err := Parse(tc.tokens, noJobs)
		require.NoError(t, err, "%v", tc.tokens)
		assert.Equal(t, tc.want, p[0].Cmd, "%v", tc.tokens)
	}
}

func TestParseKillJobReference(t *testing.T) {
	pidOf := func(id int) (int, bool) {
		if id == 2 {
			return 777, true
		}
		return 0, false
	}

	p, err := Parse([]string{"kill", "-9", "%2"}, pidOf)
	require.NoError(t, err)
	assert.Equal(t, command.Kill{Sig: 9, Pid: 777}, p[0].Cmd)

	_, err = Parse([]string{"kill", "-9", "%3"}, pidOf)
	assert.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	cases := [][]string{
		{"a", "|"},
		{"|", "a"},
		{"a", "|", "|", "b"},
		{"cat", "<"},
		{"cat", ">"},
		{"export"},
		{"export", "FOObar"},
		{"export", "=bar"},
		{"kill"},
		{"kill", "x", "1"},
		{"kill", "9", "x"},
		{"kill", "9", "%x"},
	}

	for _, tokens := range cases {
		_, err := Parse(tokens, noJobs)
		assert.Error(t, err, "%v", tokens)
	}
}
