// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package clitest_test

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"testing"

	"go.astrophena.name/cmdnames/cli"
	"go.astrophena.name/cmdnames/cli/clitest"
)

var errEmptyKey = errors.New("empty key")

// keyError reports a malformed input line.
type keyError struct{ line int }

func (e *keyError) Error() string { return fmt.Sprintf("line %d: %v", e.line, errEmptyKey) }
func (e *keyError) Unwrap() error { return errEmptyKey }

// tableApp reads "key=value" lines from stdin and prints them as a table
// wrapped in the -name header.
type tableApp struct {
	name string
	rows int
}

func (a *tableApp) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.name, "name", "Table", "Header `name`.")
}

func (a *tableApp) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	if len(env.Args) > 0 {
		return fmt.Errorf("%w: unexpected arguments %q", cli.ErrInvalidArgs, env.Args)
	}

	var rows [][2]string
	s := bufio.NewScanner(env.Stdin)
	for n := 1; s.Scan(); n++ {
		key, value, ok := strings.Cut(s.Text(), "=")
		if !ok {
			env.Logf("skipping line %d: no separator", n)
			continue
		}
		if key == "" {
			return &keyError{line: n}
		}
		rows = append(rows, [2]string{key, value})
	}
	if err := s.Err(); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	if prefix := env.Getenv("TABLE_INDENT"); prefix != "" {
		fmt.Fprintf(env.Stdout, "%s:\n", a.name)
		for _, r := range rows {
			fmt.Fprintf(env.Stdout, "%s%s = %q\n", prefix, r[0], r[1])
		}
		a.rows = len(rows)
		return nil
	}
	fmt.Fprintf(env.Stdout, "%s\n{\n", a.name)
	for _, r := range rows {
		fmt.Fprintf(env.Stdout, "    { %s, %q },\n", r[0], r[1])
	}
	io.WriteString(env.Stdout, "};\n")
	a.rows = len(rows)
	return nil
}

func TestRun(t *testing.T) {
	setup := func(t *testing.T) *tableApp { return new(tableApp) }

	cases := map[string]clitest.Case[*tableApp]{
		"empty input prints nothing": {
			WantNothingPrinted: true,
		},
		"table": {
			Args:  []string{"-name", "Commands"},
			Stdin: strings.NewReader("Play=Play/Pause\nStop=Stop\n"),
			WantStdout: `Commands
{
    { Play, "Play/Pause" },
    { Stop, "Stop" },
};
`,
			CheckFunc: func(t *testing.T, a *tableApp) {
				if a.rows != 2 {
					t.Errorf("rows = %d, want 2", a.rows)
				}
			},
		},
		"diagnostics on stderr": {
			Stdin:        strings.NewReader("garbage\nPlay=Play\n"),
			WantInStdout: `    { Play, "Play" },`,
			WantInStderr: "skipping line 1: no separator\n",
		},
		"environment": {
			Stdin:      strings.NewReader("Play=Play\n"),
			Env:        map[string]string{"TABLE_INDENT": "  "},
			WantStdout: "Table:\n  Play = \"Play\"\n",
		},
		"invalid args": {
			Args:    []string{"extra"},
			WantErr: cli.ErrInvalidArgs,
		},
		"help": {
			Args:         []string{"-help"},
			WantErr:      flag.ErrHelp,
			WantInStderr: "Header name.",
		},
		"wrapped sentinel": {
			Stdin:   strings.NewReader("=value\n"),
			WantErr: errEmptyKey,
		},
		"error type": {
			Stdin:       strings.NewReader("=value\n"),
			WantErrType: &keyError{},
		},
	}

	clitest.Run(t, setup, cases)
}
