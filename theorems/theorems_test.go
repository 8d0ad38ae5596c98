package theorems_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gifnksm/srither/geom"
	"github.com/gifnksm/srither/puzzle"
	"github.com/gifnksm/srither/search"
	"github.com/gifnksm/srither/theorem"
	"github.com/gifnksm/srither/theorems"
)

func TestDefaultReturnsFourTheorems(t *testing.T) {
	theos := theorems.Default()
	require.Len(t, theos, 4)
}

func TestDefaultTheoremsAreIndividuallySound(t *testing.T) {
	// Every theorem's result must be a set of Edge facts that is at least
	// consistent with its own matcher: no theorem should assert both Line
	// and Cross for the same pair of points, since that can never be a
	// valid deduction regardless of board context.
	for i, theo := range theorems.Default() {
		seen := map[[2]geom.Point]puzzle.Edge{}
		for _, pat := range theo.Result() {
			if pat.Kind != theorem.EdgePattern {
				continue
			}
			key := [2]geom.Point{pat.P0, pat.P1}
			if prev, ok := seen[key]; ok {
				assert.Equal(t, prev, pat.EdgeKind, "theorem %d asserts both Line and Cross for the same edge", i)
			}
			seen[key] = pat.EdgeKind
		}
	}
}

func TestHintZeroTheoremForcesAllFourEdgesCross(t *testing.T) {
	theos := theorems.Default()

	var hintZero *theorem.Theorem
	for i := range theos {
		m := theos[i].Matcher()
		if len(m) == 1 && m[0].Kind == theorem.HintPattern {
			hintZero = &theos[i]
			break
		}
	}
	require.NotNil(t, hintZero, "Default must include a lone-hint-0 theorem")
	assert.Len(t, hintZero.Result(), 4)
	for _, pat := range hintZero.Result() {
		assert.Equal(t, puzzle.Cross, pat.EdgeKind)
	}
}

func TestDefaultTheoremsApplyToAHintZeroCell(t *testing.T) {
	pz, err := puzzle.New(geom.Size{Rows: 1, Cols: 1}, [][]puzzle.Hint{{puzzle.HintOf(0)}})
	require.NoError(t, err)

	d, err := search.New(pz, theorems.Default())
	require.NoError(t, err)
	assert.True(t, d.AllFilled(), "the lone-hint-0 theorem alone should fully resolve a 1x1 hint-0 board")
}
