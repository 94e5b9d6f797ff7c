// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"

	"go.astrophena.name/cmdnames/cli"
	"go.astrophena.name/cmdnames/cmdmap"
	"go.astrophena.name/cmdnames/logger"
)

func main() { cli.Main(new(app)) }

type app struct {
	namespace string
	ext       string
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.namespace, "namespace", cmdmap.DefaultNamespace, "Enum `type` qualifying command identifiers.")
	fs.StringVar(&a.ext, "ext", cmdmap.DefaultExt, "Extension of files scanned in directories.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	if len(env.Args) != 1 {
		return fmt.Errorf("%w: want exactly one path, got %d arguments", cli.ErrInvalidArgs, len(env.Args))
	}
	if a.ext == "" {
		return fmt.Errorf("%w: -ext must not be empty", cli.ErrInvalidArgs)
	}
	path := env.Args[0]

	ex, err := cmdmap.NewExtractor(a.namespace)
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrInvalidArgs, err)
	}
	ex.Logf = env.Logf

	s := &cmdmap.Scanner{Extractor: ex, Ext: a.ext}
	m, err := s.Scan(ctx, path)
	if errors.Is(err, cmdmap.ErrNotExist) {
		return fmt.Errorf("%w: %v", cli.ErrInvalidArgs, err)
	}
	if err != nil {
		return err
	}

	logger.Debug(ctx, "scan finished", slog.String("path", path), slog.Int("entries", len(m)))
	return cmdmap.Emit(env.Stdout, a.namespace, m)
}
