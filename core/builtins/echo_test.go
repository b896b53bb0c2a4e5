package builtins

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quash-sh/quash/core/session"
)

func TestUnescape(t *testing.T) {
	cases := []struct {
		escaped  string
		expected string
	}{
		{"not escaped", "not escaped"},
		{`newline\n`, "newline\n"},
		{`double-escape\\n`, `double-escape\n`},
		// Octal
		{`\07`, string(rune(7))},
		{`\011`, "\t"},
		{`\0101`, "A"},
		// Hex
		{`\x7`, string(rune(07))},
		{`\x9`, "\t"},
		{`\x4A`, "J"},
	}

	for _, tc := range cases {
		t.Run(tc.escaped, func(t *testing.T) {
			assert.Equal(t, tc.expected, unescape(tc.escaped))
		})
	}
}

// Each argument is followed by one space, then the line terminator.
func TestEchoExactOutput(t *testing.T) {
	var out bytes.Buffer
	p := &Proc{
		Argv: []string{"echo", "a", "b"},
		IO:   session.NewStdio(nil, &out, nil),
	}

	code := Echo(p)

	assert.Equal(t, 0, code)
	assert.Equal(t, "a b \n", out.String())
}

func TestEcho(t *testing.T) {
	cases := goldenTestSuite{
		"simple":     {Args: []string{"echo", "a", "b"}},
		"empty":      {Args: []string{"echo"}},
		"escape":     {Args: []string{"echo", "-e", `a\tb`}},
		"no-newline": {Args: []string{"echo", "-n", "hi"}},
	}

	cases.Run(t, Echo)
}
