// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package cmdmap

import (
	"bufio"
	"fmt"
	"io"
)

// NoMappings is printed instead of a table when nothing was extracted.
const NoMappings = "No mappings found or an error occurred."

// Emit writes m to w as a C# dictionary initializer keyed by namespace
// members, with entries sorted by key. If m is empty, only the
// [NoMappings] notice is written.
func Emit(w io.Writer, namespace string, m Mapping) error {
	bw := bufio.NewWriter(w)
	if len(m) == 0 {
		fmt.Fprintln(bw, NoMappings)
		return bw.Flush()
	}
	fmt.Fprintf(bw, "new Dictionary<%s, string>()\n", namespace)
	fmt.Fprintln(bw, "{")
	for _, key := range m.Keys() {
		fmt.Fprintf(bw, "    { %s.%s, \"%s\" },\n", namespace, key, m[key])
	}
	fmt.Fprintln(bw, "};")
	return bw.Flush()
}
