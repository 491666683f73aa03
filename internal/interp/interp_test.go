package interp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bcoopers/poiboi/internal/cst"
	"github.com/bcoopers/poiboi/internal/function"
	"github.com/bcoopers/poiboi/internal/interp"
	"github.com/bcoopers/poiboi/internal/parser"
)

func run(t *testing.T, sources ...string) string {
	t.Helper()
	modules := make([]*cst.Node, 0, len(sources))
	for _, s := range sources {
		mod, err := parser.Parse(s)
		require.NoError(t, err)
		modules = append(modules, mod)
	}
	tbl, err := function.NewTable(modules)
	require.NoError(t, err)
	var buf bytes.Buffer
	_, err = interp.Run(tbl, "", &buf)
	require.NoError(t, err)
	return buf.String()
}

func lines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// TestHelloWorld is spec.md §8 scenario S1.
func TestHelloWorld(t *testing.T) {
	out := run(t, `Main(){ hello="Hello World!"; PRINT(hello); }`)
	assert.Equal(t, []string{"Hello World!"}, lines(out))
}

// TestSimpleBranching is spec.md §8 scenario S2.
func TestSimpleBranching(t *testing.T) {
	out := run(t, `
Main() {
    aba = "ABA";
    baba = "BABA";
    IF [EQUAL(aba, "ABA")] {
        PRINT(CONCAT("aba equals ", aba));
    } ELIF [EQUAL(baba, "BABA")] {
        PRINT("THIS should't print");
    } ELSE {
        PRINT("Nor this.");
    }
    IF [EQUAL(aba, "BABA")] {
        PRINT("THIS should't print");
    } ELIF [EQUAL(baba, "BABA")] {
        PRINT(CONCAT("baba = BABA: ", EQUAL(baba, "BABA")));
    } ELSE {
        PRINT("Nor this.");
    }
    IF [EQUAL(aba, "BABA")] {
        PRINT("THIS should't print");
    } ELIF [EQUAL(baba, "ABA")] {
        PRINT("Nor this");
    } ELSE {
        PRINT(CONCAT(NOT(EQUAL("def", "efg")), NOT(EQUAL("abc", "abc"))));
    }
}
`)
	assert.Equal(t, []string{
		"aba equals ABA",
		"baba = BABA: TRUE",
		"TRUEFALSE",
	}, lines(out))
}

// TestSimpleLoops is spec.md §8 scenario S3.
func TestSimpleLoops(t *testing.T) {
	out := run(t, `
Main() {
    foo = "foo";
    WHILE [NOT(EQUAL(foo, "baz"))] {
        PRINT(foo);
        IF [EQUAL(foo, "foo")] {
            foo = "bar";
        } ELIF [EQUAL(foo, "bar")] {
            foo = "blaz";
        } ELIF [EQUAL(foo, "blaz")] {
            foo = "baz";
        }
    }
    PRINT("done.");
}
`)
	assert.Equal(t, []string{"foo", "bar", "blaz", "done."}, lines(out))
}

// TestNestedBreak is spec.md §8 scenario S4.
func TestNestedBreak(t *testing.T) {
	out := run(t, `
Foo() {
    WHILE ["TRUE"] {
        PRINT("HEYO");
        BREAK;
    }
    PRINT("SUP");
}

Main() {
    WHILE ["TRUE"] {
        PRINT("YO");
        BREAK;
    }
    WHILE ["TRUE"] {
        PRINT("ONE");
        WHILE ["TRUE"] {
            PRINT("TWO");
            Foo();
            BREAK;
            PRINT("HOWDY");
        }
        PRINT("Balderdash");
        BREAK;
    }
    PRINT("SUP");
    RETURN "0";
    PRINT("UNREACHABLE");
}
`)
	got := lines(out)
	assert.Equal(t, []string{"YO", "ONE", "TWO", "HEYO", "SUP", "Balderdash", "SUP"}, got)
	assert.NotContains(t, got, "HOWDY")
	assert.NotContains(t, got, "UNREACHABLE")
}

// TestScopeSemantics is spec.md §8 scenario S5.
func TestScopeSemantics(t *testing.T) {
	out := run(t, `
Foo() {
    PRINT(a);
}

Bar() {
    LOCAL a = "A1 Steak Sauce.";
    IF ["TRUE"] {
        LOCAL a = "Heinz Tomato Ketchup.";
        LOCAL b = "Worchestershire Sauce.";
        PRINT(a);
        PRINT(b);
    }
    PRINT(a);
    PRINT(b);
}

Main() {
    Foo();
    a = "bar";
    Foo();
    a = "barbar";
    Foo();
    LOCAL a = "baz";
    Foo();
    PRINT(a);
    a = "bing";
    Foo();
    Bar();
}
`)
	assert.Equal(t, []string{
		"",                        // Foo() before any global a is set
		"bar",                     // Foo() after a = "bar"
		"barbar",                  // Foo() after a = "barbar"
		"barbar",                  // Foo() after Main's LOCAL a = "baz" doesn't leak to Foo
		"baz",                     // PRINT(a) in Main sees its own local
		"barbar",                  // a = "bing" updates Main's local, not the global Foo reads
		"Heinz Tomato Ketchup.",   // inner-block LOCAL a shadows Bar's outer LOCAL a
		"Worchestershire Sauce.",  // inner LOCAL b, visible inside the block
		"A1 Steak Sauce.",         // outer LOCAL a unshadowed again once the block ends
		"",                        // b is unbound outside its defining block
	}, lines(out))
}

// TestSubstringClamping is spec.md §8 scenario S6, exercised end to end
// through PRINT rather than calling the builtin directly.
func TestSubstringClamping(t *testing.T) {
	out := run(t, `
Main() {
    PRINT(SUBSTRING("abcdef", "2", "100"));
    PRINT(SUBSTRING("abc", "-5", "2"));
    PRINT(SUBSTRING("abc", "x", "y"));
    PRINT(SUBSTRING("abc", "2", "1"));
}
`)
	assert.Equal(t, []string{"cdef", "ab", "abc", ""}, lines(out))
}

func TestShortCircuitAbsenceForAndOr(t *testing.T) {
	// AND/OR must evaluate both arguments (observable via PRINT side
	// effects inside a FunctionCall argument), never short-circuiting.
	out := run(t, `
SideEffect(tag, v) {
    PRINT(tag);
    RETURN v;
}

Main() {
    AND(SideEffect("left", "FALSE"), SideEffect("right", "TRUE"));
    OR(SideEffect("left2", "TRUE"), SideEffect("right2", "FALSE"));
}
`)
	assert.Equal(t, []string{"left", "right", "left2", "right2"}, lines(out))
}

func TestTruthinessIsExactEqualityWithTRUE(t *testing.T) {
	out := run(t, `
Main() {
    IF ["true"] { PRINT("wrong1"); } ELSE { PRINT("right1"); }
    IF ["1"] { PRINT("wrong2"); } ELSE { PRINT("right2"); }
    IF [""] { PRINT("wrong3"); } ELSE { PRINT("right3"); }
    IF ["FALSE"] { PRINT("wrong4"); } ELSE { PRINT("right4"); }
    IF ["TRUE"] { PRINT("right5"); } ELSE { PRINT("wrong5"); }
}
`)
	assert.Equal(t, []string{"right1", "right2", "right3", "right4", "right5"}, lines(out))
}

func TestNoMainYieldsEmptyOutput(t *testing.T) {
	out := run(t, `FunctionOne(a) { RETURN a; }`)
	assert.Equal(t, "", out)
}

func TestMainWithTwoParamsIsAnError(t *testing.T) {
	mod, err := parser.Parse(`Main(a, b) { RETURN a; }`)
	require.NoError(t, err)
	tbl, err := function.NewTable([]*cst.Node{mod})
	require.NoError(t, err)
	var buf bytes.Buffer
	_, err = interp.Run(tbl, "", &buf)
	assert.Error(t, err)
}

func TestMultiModuleUnion(t *testing.T) {
	out := run(t,
		`FunctionOne(a) { RETURN a; }`,
		`Main() { PRINT(FunctionOne("unioned")); }`,
	)
	assert.Equal(t, []string{"unioned"}, lines(out))
}
