package ownership

import (
	"fmt"
	"io"
	"maps"
	"slices"
)

// Team holds reference-like fields, so a plain struct copy is shallow.
type Team struct {
	Name    string
	Members []string
	Roles   map[string]string
}

// Clone returns a deep copy whose slices and maps are independent.
func (t Team) Clone() Team {
	return Team{
		Name:    t.Name,
		Members: slices.Clone(t.Members),
		Roles:   maps.Clone(t.Roles),
	}
}

func demoClone(w io.Writer) {
	orig := Team{
		Name:    "core",
		Members: []string{"ana", "bea"},
		Roles:   map[string]string{"ana": "lead"},
	}

	shallow := orig
	shallow.Members[0] = "ANA"
	fmt.Fprintln(w, "  shallow copy leaks writes: orig.Members =", orig.Members)

	deep := orig.Clone()
	deep.Members[0] = "zoe"
	deep.Roles["zoe"] = "dev"
	fmt.Fprintf(w, "  deep copy is isolated: orig.Members=%v len(orig.Roles)=%d\n", orig.Members, len(orig.Roles))
	fmt.Fprintf(w, "  deep.Members=%v len(deep.Roles)=%d\n", deep.Members, len(deep.Roles))

	// copy() into a fresh slice is the pre-1.21 spelling.
	buf := make([]string, len(orig.Members))
	n := copy(buf, orig.Members)
	fmt.Fprintf(w, "  copy(buf, Members) = %d elements: %v\n", n, buf)
}
