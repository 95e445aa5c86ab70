package naming

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/batchrename/internal/walk"
)

func mustNew(t *testing.T, opts Options) *Transformer {
	t.Helper()
	tr, err := New(opts)
	require.NoError(t, err)
	return tr
}

func TestNewName(t *testing.T) {
	slug := Options{Slugify: true, Lowercase: true, SpacesToUnderscore: true, KeepExtension: true}

	cases := []struct {
		name string
		opts Options
		in   string
		kind walk.Kind
		want string
	}{
		{"accented slug", slug, "Relatório Final!!.txt", walk.KindFile, "relatorio_final.txt"},
		{"extension case kept", slug, "My Report.PDF", walk.KindFile, "my_report.PDF"},
		{
			"regex on stem",
			Options{Pattern: `IMG_(\d+)`, Replacement: `foto-\1`, KeepExtension: true},
			"IMG_0427.jpg", walk.KindFile, "foto-0427.jpg",
		},
		{"slug drops dots in stem", slug, "v1.2 final.txt", walk.KindFile, "v12_final.txt"},
		{"dotfile has no extension", Options{Prefix: "x", KeepExtension: true}, ".bashrc", walk.KindFile, "x.bashrc"},
		{"trailing dot has no extension", Options{Suffix: "_1", KeepExtension: true}, "notes.", walk.KindFile, "notes._1"},
		{"extension not kept", Options{Lowercase: true}, "Photo.JPG", walk.KindFile, "photo.jpg"},
		{"directory transformed whole", Options{Lowercase: true, KeepExtension: true}, "My.Dir", walk.KindDir, "my.dir"},
		{"directory slug keeps dots", slug, "Release 1.0", walk.KindDir, "release_1.0"},
		{"prefix and suffix", Options{Prefix: "p_", Suffix: "_s", KeepExtension: true}, "a.txt", walk.KindFile, "p_a_s.txt"},
		{"stem slugs to fallback", slug, "!!!.txt", walk.KindFile, "item.txt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := mustNew(t, tc.opts)
			assert.Equal(t, tc.want, tr.NewName(tc.in, tc.kind))
		})
	}
}

func TestTransform_Stages(t *testing.T) {
	cases := []struct {
		name string
		opts Options
		in   string
		want string
	}{
		{"every match replaced", Options{Pattern: "a", Replacement: "b"}, "banana", "bbnbnb"},
		{"spaces without slug", Options{SpacesToUnderscore: true}, "a b  c", "a_b__c"},
		{"lowercase keeps accents without slug", Options{Lowercase: true}, "ÀB C", "àb c"},
		{"slug spaces become hyphens", Options{Slugify: true}, "Hello  World", "Hello-World"},
		{"regex runs before slug", Options{Pattern: `\s+\(\d+\)$`, Slugify: true}, "Song (2)", "Song"},
		{"prefix added after slug", Options{Slugify: true, Prefix: "@ "}, "a", "@ a"},
		{"outer whitespace trimmed", Options{Suffix: " "}, " a", "a"},
		{"empty becomes item", Options{Pattern: ".*", Replacement: ""}, "gone", "item"},
		{"neutral keeps name", Options{}, "Anything Goes.txt", "Anything Goes.txt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, mustNew(t, tc.opts).Transform(tc.in, false))
		})
	}
}

func TestTransform_ReplacementTemplates(t *testing.T) {
	cases := []struct {
		name    string
		pattern string
		repl    string
		in      string
		want    string
	}{
		{"numbered backslash", `(\w+)-(\w+)`, `\2-\1`, "left-right", "right-left"},
		{"two digit group", `(a)(b)(c)(d)(e)(f)(g)(h)(i)(j)`, `\10`, "abcdefghij", "j"},
		{"g syntax numbered", `(\d+)`, `n\g<1>`, "42", "n42"},
		{"g syntax named", `(?P<num>\d+)`, `#\g<num>`, "7", "#7"},
		{"go dollar syntax", `(\d+)x`, `${1}y`, "3x", "3y"},
		{"literal backslash", `-`, `\\`, "a-b", `a\b`},
		{"unknown escape kept", `-`, `\q`, "a-b", `a\qb`},
		{"unmatched group empty", `(a)|(b)`, `[\2]`, "a", "[]"},
		{"lone dollar literal", `x`, `$`, "axb", "a$b"},
		{"dollar word literal", `X`, `US$dollar`, "aXb", "aUS$dollarb"},
		{"dollar digit word literal", `(\d+)`, `$1k`, "7", "$1k"},
		{"dollar brace unknown group literal", `(\d+)`, `${2}x`, "7", "${2}x"},
		{"go dollar named", `(?P<n>\d+)`, `<$n>`, "7", "<7>"},
		{"double dollar stays double", `x`, `$$`, "axb", "a$$b"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := mustNew(t, Options{Pattern: tc.pattern, Replacement: tc.repl})
			assert.Equal(t, tc.want, tr.Transform(tc.in, false))
		})
	}
}

func TestNew_InvalidPattern(t *testing.T) {
	_, err := New(Options{Pattern: "(unclosed"})
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "(unclosed", cfgErr.Pattern)
	assert.Contains(t, err.Error(), "invalid regex")
}

func TestNeutral(t *testing.T) {
	assert.True(t, mustNew(t, Options{}).Neutral())
	assert.True(t, mustNew(t, Options{KeepExtension: true, Replacement: "x"}).Neutral())
	assert.False(t, mustNew(t, Options{Pattern: "a"}).Neutral())
	assert.False(t, mustNew(t, Options{Slugify: true}).Neutral())
	assert.False(t, mustNew(t, Options{Prefix: "p"}).Neutral())
}

func TestTransform_NeutralIsIdempotent(t *testing.T) {
	first := mustNew(t, Options{Slugify: true, Lowercase: true, SpacesToUnderscore: true, KeepExtension: true})
	neutral := mustNew(t, Options{KeepExtension: true})

	names := []string{"Relatório Final!!.txt", "  padded .md", "Über Ordner", "a.b.c", ".hidden", "x"}
	for _, n := range names {
		once := first.NewName(n, walk.KindFile)
		assert.Equal(t, once, neutral.NewName(once, walk.KindFile), "neutral pass drifted for %q", n)

		again := neutral.NewName(neutral.NewName(n, walk.KindFile), walk.KindFile)
		assert.Equal(t, neutral.NewName(n, walk.KindFile), again)
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		opts SlugOptions
		want string
	}{
		{"ação", SlugOptions{}, "acao"},
		{"a - - b", SlugOptions{}, "a-b"},
		{"__x__", SlugOptions{}, "x"},
		{"a  b", SlugOptions{SpacesToUnderscore: true}, "a_b"},
		{"A.B", SlugOptions{Lowercase: true, KeepDots: true}, "a.b"},
		{"A.B", SlugOptions{}, "AB"},
		{"日本語", SlugOptions{}, "item"},
		{"", SlugOptions{}, "item"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in, tc.opts), "Slugify(%q)", tc.in)
	}
}

func TestSplitExt(t *testing.T) {
	cases := []struct {
		in, stem, ext string
	}{
		{"a.txt", "a", ".txt"},
		{"archive.tar.gz", "archive.tar", ".gz"},
		{".bashrc", ".bashrc", ""},
		{"notes.", "notes.", ""},
		{"README", "README", ""},
		{"...", "...", ""},
		{"", "", ""},
	}
	for _, tc := range cases {
		stem, ext := SplitExt(tc.in)
		assert.Equal(t, tc.stem, stem, "stem of %q", tc.in)
		assert.Equal(t, tc.ext, ext, "ext of %q", tc.in)
	}
}
