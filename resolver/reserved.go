package resolver

// reserved lists the names the generated modules declare or import. Symbols
// always start with an upper-case letter, so lower-case keywords of the
// emission languages cannot occur.
var reserved = toSet(
	// TSX output.
	"React", "SVGProps", "SVGSVGElement", "ComponentType", "Omit",
	"IconProps", "IconRegistryEntry", "Index", "Types",

	// Go output.
	"Entry", "Registry", "Lookup", "Option",
	"WithWidth", "WithHeight", "WithSize", "WithColor",
)

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// IsReserved reports whether symbol is a name the generated code uses itself.
func IsReserved(symbol string) bool {
	_, ok := reserved[symbol]
	return ok
}
