package scripts

import (
	"strings"

	"golang.org/x/text/cases"
)

// Kind selects how a Rule compares a file name against its base name.
type Kind int

const (
	// Exact matches the base name only.
	Exact Kind = iota
	// AnyExtension matches "<name>.<anything>", e.g. activate.fish.
	AnyExtension
	// AnySuffix matches "<name>-<anything>", e.g. easy_install-3.7.
	AnySuffix
	// Versioned matches "<name>" followed by an optional version made of
	// digits and dots, optionally ending in ".exe": pip, pip3, pip3.12,
	// python3.11.exe. It never matches a longer word such as "pipeline".
	Versioned
)

// String returns the kind name used in diagnostics.
func (k Kind) String() string {
	switch k {
	case Exact:
		return "exact"
	case AnyExtension:
		return "any-extension"
	case AnySuffix:
		return "any-suffix"
	case Versioned:
		return "versioned"
	default:
		return "unknown"
	}
}

// Rule excludes a family of file names from the script set.
type Rule struct {
	Name string
	Kind Kind
}

// DefaultRules covers the files python -m venv and pip place in an
// environment's bin directory that are not program entry points.
var DefaultRules = []Rule{
	{Name: "activate", Kind: Exact},
	{Name: "activate", Kind: AnyExtension},
	{Name: "activate_this.py", Kind: Exact},
	{Name: "deactivate", Kind: Exact},
	{Name: "deactivate", Kind: AnyExtension},
	{Name: "easy_install", Kind: Exact},
	{Name: "easy_install", Kind: AnySuffix},
	{Name: "pip", Kind: Versioned},
	{Name: "python", Kind: Versioned},
	{Name: "pythonw", Kind: Versioned},
}

// fold returns the case-folded form of s. A Caser is stateful, so a fresh
// one is used per call.
func fold(s string) string {
	return cases.Fold().String(s)
}

// Match reports whether name is excluded by r. Comparison is case-insensitive.
func (r Rule) Match(name string) bool {
	return r.match(fold(name), fold(r.Name))
}

func (r Rule) match(name, base string) bool {
	if base == "" {
		return false
	}
	switch r.Kind {
	case Exact:
		return name == base
	case AnyExtension:
		rest, ok := strings.CutPrefix(name, base+".")
		return ok && rest != ""
	case AnySuffix:
		rest, ok := strings.CutPrefix(name, base+"-")
		return ok && rest != ""
	case Versioned:
		rest, ok := strings.CutPrefix(name, base)
		if !ok {
			return false
		}
		rest = strings.TrimSuffix(rest, ".exe")
		return isVersion(rest)
	default:
		return false
	}
}

// isVersion reports whether s is empty or a dotted version such as "3",
// "3.12". It must start with a digit and must not end with a dot.
func isVersion(s string) bool {
	if s == "" {
		return true
	}
	if s[0] < '0' || s[0] > '9' || s[len(s)-1] == '.' {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '.' {
			if s[i-1] == '.' {
				return false
			}
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Excluded reports whether any rule matches name.
func Excluded(name string, rules []Rule) bool {
	folded := fold(name)
	for _, r := range rules {
		if r.match(folded, fold(r.Name)) {
			return true
		}
	}
	return false
}
