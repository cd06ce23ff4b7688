// Package fieldpath parses field path patterns and resolves them against
// JSON-shaped payloads.
//
// A pattern is a dot separated list of keys with optional bracketed indices,
// for example "user.email", "items[0].id" or "*.a". The "*" segment (or "[*]")
// matches every key of a map, or every index of a slice, at that depth, so a
// single pattern can address the same sub-key across several sibling branches.
//
//	p := fieldpath.MustParse("*.a")
//	for _, inst := range p.Resolve(payload) {
//	    fmt.Println(inst.String(), inst.Value, inst.Present)
//	}
//
// Resolution never mutates the payload. Set writes resolved values into a
// separate destination tree and copies containers on the way in, so the
// destination never aliases the source.
package fieldpath
