// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Extract-command-names generates the display name table for ApplicationCommand.

Usage:

	$ extract-command-names [flags] <path>

It looks for registration calls of the form

	new AnyType(AnyCall("ignored", "Display Name"), ApplicationCommand.Suffix);

and prints a C# dictionary initializer mapping every ApplicationCommand
member found to its display name, sorted by member name. Type and method
names may be obfuscated; only the shape of the call matters.

If path is a directory, every .cs file below it is scanned, visiting
entries in lexical order. When several files register the same member,
the one visited last wins. If path is a file, only that file is scanned.

When nothing is found, a notice is printed instead of the table. A path
that does not exist is an error.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/cmdnames/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
