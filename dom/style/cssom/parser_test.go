package cssom

import (
	"errors"
	"testing"

	"github.com/npillmayer/boxer/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStylesheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxer.cssom")
	defer teardown()
	//
	sheet, err := Parse("test [foo=bar] { aa: bb; cc: dd } rule { ee: dd;  }\n\n")
	require.NoError(t, err)
	rules := sheet.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, []Selector{AttributeSelector{Tag: "test", Op: AttrEq, Attribute: "foo", Value: "bar"}},
		rules[0].Selectors)
	assert.Equal(t, []Declaration{{"aa", "bb"}, {"cc", "dd"}}, rules[0].Declarations)
	assert.Equal(t, []Selector{TypeSelector{Tag: "rule"}}, rules[1].Selectors)
	assert.Equal(t, []Declaration{{"ee", "dd"}}, rules[1].Declarations)
}

func TestParseRuleVariants(t *testing.T) {
	sheet, err := Parse(`test [foo=bar], testtest[piyo~=guoo] {}`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules(), 1)
	assert.Equal(t, []Selector{
		AttributeSelector{Tag: "test", Op: AttrEq, Attribute: "foo", Value: "bar"},
		AttributeSelector{Tag: "testtest", Op: AttrContains, Attribute: "piyo", Value: "guoo"},
	}, sheet.Rules()[0].Selectors)
	assert.Empty(t, sheet.Rules()[0].Declarations)
	//
	sheet, err = Parse(`*, .note, h1 , p[ class ~= "a b" ] { display : list-item }`)
	require.NoError(t, err)
	assert.Equal(t, []Selector{
		UniversalSelector{},
		ClassSelector{Class: "note"},
		TypeSelector{Tag: "h1"},
		AttributeSelector{Tag: "p", Op: AttrContains, Attribute: "class", Value: "a b"},
	}, sheet.Rules()[0].Selectors)
	assert.Equal(t, style.Property("list-item"), sheet.Rules()[0].Declarations[0].Value)
}

func TestParseEmptyStylesheet(t *testing.T) {
	for _, input := range []string{"", "   \n\t "} {
		sheet, err := Parse(input)
		require.NoError(t, err)
		assert.True(t, sheet.Empty())
	}
}

func TestParseFailures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxer.cssom")
	defer teardown()
	//
	inputs := []string{
		"p { display: block",            // unterminated rule
		"p { display }",                 // missing ':'
		"p { display: ; }",              // missing value
		"p { a: b c: d }",               // missing ';'
		"p[class|=x] { a: b }",          // unsupported operator
		"p[class^=x] { a: b }",          // unsupported operator
		"p[class] { a: b }",             // missing operator
		`p[class="x] { a: b }`,          // unterminated value
		"{ a: b }",                      // missing selector
		"p, { a: b }",                   // dangling comma
		"p { a: b } }",                  // stray brace
		"p { color: #fff }",             // not a keyword
		"p { margin: 10px }",            // not a keyword
	}
	for _, input := range inputs {
		sheet, err := Parse(input)
		assert.Nil(t, sheet, input)
		require.Error(t, err, input)
		assert.True(t, errors.Is(err, ErrSyntax), "error for %q should wrap ErrSyntax", input)
		t.Logf("%q -> %v", input, err)
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse("p { a: b }\nq[x|=y] { }")
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Line)
	assert.Equal(t, 4, perr.Column)
}

func TestStylesheetStringRoundTrip(t *testing.T) {
	input := `p, .x, *, div[class~="a"] { display: none; color: red } span[id=main] { }`
	sheet, err := Parse(input)
	require.NoError(t, err)
	again, err := Parse(sheet.String())
	require.NoError(t, err, sheet.String())
	assert.Equal(t, sheet.Rules(), again.Rules())
	t.Logf("\n%s", sheet)
}

func TestParseSelectorList(t *testing.T) {
	sels, err := ParseSelectorList(" h1, p[lang=en] ")
	require.NoError(t, err)
	assert.Len(t, sels, 2)
	_, err = ParseSelectorList("h1 > p")
	assert.True(t, errors.Is(err, ErrSyntax))
}

func TestParseKeyword(t *testing.T) {
	kw, err := ParseKeyword(" inline-block ")
	require.NoError(t, err)
	assert.Equal(t, style.Property("inline-block"), kw)
	_, err = ParseKeyword("1px solid")
	assert.Error(t, err)
	_, err = ParseKeyword("solid black")
	assert.Error(t, err)
}

func TestAppendRules(t *testing.T) {
	a, _ := Parse("p { display: block }")
	b, _ := Parse("p { display: inline } div { display: none }")
	a.AppendRules(b)
	require.Len(t, a.Rules(), 3)
	assert.Equal(t, style.Property("inline"), a.Rules()[1].Declarations[0].Value)
	a.AppendRules(nil)
	assert.Len(t, a.Rules(), 3)
}
