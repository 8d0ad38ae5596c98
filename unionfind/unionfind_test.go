package unionfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gifnksm/srither/unionfind"
)

func TestUnionFindBasics(t *testing.T) {
	uf := unionfind.New(6)
	assert.False(t, uf.Find(0, 1))

	assert.True(t, uf.Union(0, 1))
	assert.True(t, uf.Find(0, 1))

	assert.False(t, uf.Union(0, 1), "re-union of already-merged nodes is a no-op")

	assert.True(t, uf.Union(1, 2))
	assert.True(t, uf.Find(0, 2), "transitive merge")

	assert.False(t, uf.Find(0, 3))
}

func TestUnionFindCloneIsIndependent(t *testing.T) {
	uf := unionfind.New(4)
	uf.Union(0, 1)

	clone := uf.Clone()
	assert.True(t, clone.Find(0, 1))

	clone.Union(2, 3)
	assert.True(t, clone.Find(2, 3))
	assert.False(t, uf.Find(2, 3), "mutating the clone must not affect the original")
}

func TestParityNodesDoubling(t *testing.T) {
	// item i lives at nodes 2i, 2i+1; asserting "0 same 1" unions 2*0,2*1
	// and 2*0+1,2*1+1; asserting "1 different 2" unions 2*1,2*2+1 and
	// 2*1+1,2*2. A self-conflicting chain must make Find(2*0,2*0+1) true.
	uf := unionfind.New(8)
	same := func(i, j int) { uf.Union(2*i, 2*j); uf.Union(2*i+1, 2*j+1) }
	different := func(i, j int) { uf.Union(2*i, 2*j+1); uf.Union(2*i+1, 2*j) }

	same(0, 1)
	different(1, 2)
	// Now force item 0 to be both same and different from item 2.
	same(0, 2)

	assert.True(t, uf.Find(2*0, 2*0+1), "item 0's own parity nodes must collide when constraints contradict")
}
