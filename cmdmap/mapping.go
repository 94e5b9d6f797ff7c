// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package cmdmap extracts command display names from C# sources and
// renders them as a generated lookup table.
//
// The recognized construct is a registration call of the shape
//
//	new AnyType(AnyCall("ignored", "Display Name"), ApplicationCommand.Suffix);
//
// where only the call shape and the namespace token are significant, so
// obfuscated or renamed type and method names are still matched.
package cmdmap

import (
	"maps"
	"slices"
)

// Mapping maps command identifier suffixes to display names escaped for
// embedding in a C# string literal.
type Mapping map[string]string

// Merge copies every entry of other into m, overwriting existing keys.
func (m Mapping) Merge(other Mapping) {
	maps.Copy(m, other)
}

// Keys returns the keys of m in ascending lexicographic order.
func (m Mapping) Keys() []string {
	return slices.Sorted(maps.Keys(m))
}
