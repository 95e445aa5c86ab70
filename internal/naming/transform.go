package naming

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/backmassage/batchrename/internal/walk"
)

// Options selects the transformation stages. The zero value is the neutral
// pipeline (only the final whitespace trim applies).
type Options struct {
	Pattern            string // regular expression, empty disables substitution
	Replacement        string // template for Pattern matches
	Slugify            bool
	Lowercase          bool
	SpacesToUnderscore bool
	Prefix             string
	Suffix             string
	KeepExtension      bool // files: transform the stem, reattach the extension
}

// ConfigError reports a pipeline that cannot be compiled.
type ConfigError struct {
	Pattern string
	Err     error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid regex %q: %v", e.Pattern, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Transformer is a compiled, immutable name pipeline. Safe for concurrent
// use.
type Transformer struct {
	opts     Options
	re       *regexp.Regexp
	template string
}

// New compiles opts. An invalid pattern yields a *ConfigError.
func New(opts Options) (*Transformer, error) {
	t := &Transformer{opts: opts}
	if opts.Pattern != "" {
		re, err := regexp.Compile(opts.Pattern)
		if err != nil {
			return nil, &ConfigError{Pattern: opts.Pattern, Err: err}
		}
		t.re = re
		t.template = expandTemplate(opts.Replacement, re)
	}
	return t, nil
}

// Neutral reports whether every stage but the final trim is disabled.
func (t *Transformer) Neutral() bool {
	o := t.opts
	return t.re == nil && !o.Slugify && !o.Lowercase && !o.SpacesToUnderscore &&
		o.Prefix == "" && o.Suffix == ""
}

// Transform runs the pipeline over name. stem is true when name is a file
// stem, which keeps dots out of slugified output.
//
// Stages run in a fixed order: pattern substitution (every match), slugify
// or the independent space/lowercase rules, prefix and suffix, then a
// whitespace trim with "item" as the fallback for an empty result.
func (t *Transformer) Transform(name string, stem bool) string {
	o := t.opts

	if t.re != nil {
		name = t.re.ReplaceAllString(name, t.template)
	}

	if o.Slugify {
		name = Slugify(name, SlugOptions{
			Lowercase:          o.Lowercase,
			SpacesToUnderscore: o.SpacesToUnderscore,
			KeepDots:           !stem,
		})
	} else {
		if o.SpacesToUnderscore {
			name = strings.ReplaceAll(name, " ", "_")
		}
		if o.Lowercase {
			name = strings.ToLower(name)
		}
	}

	name = o.Prefix + name + o.Suffix

	name = strings.TrimSpace(name)
	if name == "" {
		return fallbackName
	}
	return name
}

// NewName computes the new base name for an entry. Files keep their
// extension verbatim when KeepExtension is set; directories are always
// transformed whole.
func (t *Transformer) NewName(name string, kind walk.Kind) string {
	if kind == walk.KindFile && t.opts.KeepExtension {
		stem, ext := SplitExt(name)
		return t.Transform(stem, true) + ext
	}
	return t.Transform(name, false)
}

// expandTemplate rewrites backslash group references into regexp.Expand
// syntax: \1 and \12 become ${1} and ${12}, \g<x> becomes ${x}, and \\ is a
// literal backslash. A native $1 or ${name} passes through only when it
// names a group of re; every other $ is escaped to a literal.
func expandTemplate(repl string, re *regexp.Regexp) string {
	var b strings.Builder
	for i := 0; i < len(repl); i++ {
		c := repl[i]
		if c == '$' {
			if ref, n := dollarRef(repl[i:]); n > 0 && hasGroup(re, ref) {
				b.WriteString(repl[i : i+n])
				i += n - 1
			} else {
				b.WriteString("$$")
			}
			continue
		}
		if c != '\\' || i+1 == len(repl) {
			b.WriteByte(c)
			continue
		}

		next := repl[i+1]
		switch {
		case next == '\\':
			b.WriteByte('\\')
			i++
		case isDigit(next):
			j := i + 2
			if j < len(repl) && isDigit(repl[j]) {
				j++
			}
			b.WriteString("${" + repl[i+1:j] + "}")
			i = j - 1
		case next == 'g' && i+2 < len(repl) && repl[i+2] == '<':
			end := strings.IndexByte(repl[i+3:], '>')
			if end < 0 {
				b.WriteByte(c)
				continue
			}
			ref := repl[i+3 : i+3+end]
			b.WriteString("${" + ref + "}")
			i += 3 + end
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// dollarRef parses a reference the way regexp.Expand does: s starts with
// '$', followed by {name} or the longest run of letters, digits and '_'.
// It returns the name and the byte length of the reference, or 0.
func dollarRef(s string) (string, int) {
	if len(s) < 2 {
		return "", 0
	}
	if s[1] == '{' {
		end := strings.IndexByte(s, '}')
		if end < 3 {
			return "", 0
		}
		return s[2:end], end + 1
	}
	j := 1
	for j < len(s) && isWordByte(s[j]) {
		j++
	}
	if j == 1 {
		return "", 0
	}
	return s[1:j], j
}

// hasGroup reports whether ref is a group number or name defined by re.
func hasGroup(re *regexp.Regexp, ref string) bool {
	if isAllDigits(ref) {
		n, err := strconv.Atoi(ref)
		return err == nil && n <= re.NumSubexp()
	}
	return re.SubexpIndex(ref) >= 0
}

func isAllDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return s != ""
}

func isWordByte(c byte) bool {
	return c == '_' || isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
