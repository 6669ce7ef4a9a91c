// Package resolver derives unique, language-safe symbols for icon assets.
package resolver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/awantoch/iconflow/model"
	"github.com/awantoch/iconflow/registry"
	"github.com/awantoch/iconflow/utils"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// Resolver turns relative asset paths into symbols. A Resolver serves a single
// run: it is created with the run's options and builds one registry.
type Resolver struct {
	prefix string
	caser  cases.Caser
}

// New returns a Resolver that prepends prefix to every symbol.
func New(prefix string) *Resolver {
	r := &Resolver{caser: cases.Title(language.Und, cases.NoLower)}
	r.prefix = r.join(splitWords(prefix))
	return r
}

type candidate struct {
	asset    model.IconAsset
	base     string
	dirs     []string
	depth    int
	symbol   string
	attempts []string
}

func (c *candidate) compute(prefix string) {
	c.symbol = prefix + strings.Join(c.dirs[len(c.dirs)-c.depth:], "") + c.base
	c.attempts = append(c.attempts, c.symbol)
}

// Resolve assigns a symbol to every asset and returns the registry in asset
// order. The result depends only on the assets and their order.
func (r *Resolver) Resolve(assets []model.IconAsset) (*registry.Registry, error) {
	cands := make([]*candidate, 0, len(assets))
	folded := make(map[string]string, len(assets))
	for _, asset := range assets {
		src := asset.SourcePath()
		if prev, ok := folded[strings.ToLower(src)]; ok {
			utils.Warnw("asset paths differ only by case; symbols will be disambiguated",
				"first", prev, "second", src)
		} else {
			folded[strings.ToLower(src)] = src
		}

		base := r.join(splitWords(asset.Stem()))
		if base == "" {
			return nil, &model.InvalidSymbolError{
				Path:   src,
				Symbol: asset.Stem(),
				Reason: "has no identifier characters",
			}
		}
		c := &candidate{asset: asset, base: base}
		for _, dir := range asset.Dirs() {
			if seg := r.join(splitWords(dir)); seg != "" {
				c.dirs = append(c.dirs, seg)
			}
		}
		c.compute(r.prefix)
		cands = append(cands, c)
	}

	escalate(cands, r.prefix)
	suffix(cands)

	reg := registry.New()
	for _, c := range cands {
		src := c.asset.SourcePath()
		if reason := invalid(c.symbol); reason != "" {
			return nil, &model.InvalidSymbolError{Path: src, Symbol: c.symbol, Reason: reason, Attempts: c.attempts}
		}
		if len(c.attempts) > 1 {
			utils.Debugw("collision resolved", "path", src, "symbol", c.symbol, "attempts", c.attempts)
		}
		name := model.IconName{
			Symbol:      c.symbol,
			SourcePath:  src,
			DisplayName: r.displayName(c.asset.Stem()),
			Attempts:    c.attempts,
		}
		if err := reg.Add(name, c.asset); err != nil {
			return nil, fmt.Errorf("resolve %s: %w", src, err)
		}
	}
	return reg, nil
}

// escalate prepends parent directory segments to colliding candidates, one
// segment per round, until no colliding candidate has a segment left. A
// candidate that is reserved or starts with a digit escalates the same way.
func escalate(cands []*candidate, prefix string) {
	for {
		groups := make(map[string][]*candidate, len(cands))
		var order []string
		for _, c := range cands {
			key := strings.ToLower(c.symbol)
			if _, ok := groups[key]; !ok {
				order = append(order, key)
			}
			groups[key] = append(groups[key], c)
		}
		changed := false
		for _, key := range order {
			group := groups[key]
			if len(group) < 2 && !unusable(group[0].symbol) {
				continue
			}
			for _, c := range group {
				if c.depth < len(c.dirs) {
					c.depth++
					c.compute(prefix)
					changed = true
				}
			}
		}
		if !changed {
			return
		}
	}
}

// suffix numbers the remaining duplicates in first-seen order. The first
// occurrence keeps its symbol; a suffixed symbol never takes a name that any
// candidate already holds.
func suffix(cands []*candidate) {
	held := make(map[string]struct{}, len(cands))
	for _, c := range cands {
		held[strings.ToLower(c.symbol)] = struct{}{}
	}
	seen := make(map[string]struct{}, len(cands))
	for _, c := range cands {
		key := strings.ToLower(c.symbol)
		if _, dup := seen[key]; !dup {
			seen[key] = struct{}{}
			continue
		}
		base := c.symbol
		for n := 2; ; n++ {
			next := base + strconv.Itoa(n)
			nextKey := strings.ToLower(next)
			_, taken := seen[nextKey]
			_, owned := held[nextKey]
			if !taken && !owned {
				c.symbol = next
				c.attempts = append(c.attempts, next)
				seen[nextKey] = struct{}{}
				break
			}
		}
	}
}

// unusable reports whether a parent segment may still turn symbol into a
// legal one.
func unusable(symbol string) bool {
	return symbol != "" && (symbol[0] >= '0' && symbol[0] <= '9' || IsReserved(symbol))
}

func invalid(symbol string) string {
	switch {
	case symbol == "":
		return "is empty"
	case symbol[0] >= '0' && symbol[0] <= '9':
		return "starts with a digit"
	case !identifierPattern.MatchString(symbol):
		return "is not an ASCII identifier"
	case IsReserved(symbol):
		return "is a reserved word"
	}
	return ""
}

// join title-cases each word and concatenates them.
func (r *Resolver) join(words []string) string {
	var b strings.Builder
	for _, w := range words {
		b.WriteString(r.title(w))
	}
	return b.String()
}

// title upper-cases the first character of an ASCII word and leaves the rest
// as written.
func (r *Resolver) title(w string) string {
	if w == "" {
		return w
	}
	return r.caser.String(w[:1]) + w[1:]
}

func (r *Resolver) displayName(stem string) string {
	words := splitWords(stem)
	for i, w := range words {
		words[i] = r.title(w)
	}
	return strings.Join(words, " ")
}

// splitWords breaks s on hyphens, underscores, dots and whitespace and drops
// every character that is not an ASCII letter or digit.
func splitWords(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || unicode.IsSpace(r)
	})
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		var b strings.Builder
		for _, r := range f {
			if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
				b.WriteRune(r)
			}
		}
		if b.Len() > 0 {
			words = append(words, b.String())
		}
	}
	return words
}
