package xorshift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewUniformAliases(t *testing.T) {
	for _, alg := range algorithms {
		g := New(alg, View, 1)
		rvs1, err := g.Uniform(4)
		require.NoError(t, err)
		first := append([]float64(nil), rvs1...)
		rvs2, err := g.Uniform(4)
		require.NoError(t, err)

		assert.Equal(t, rvs1, rvs2, "%s: view results of two calls must share storage", alg)
		assert.Same(t, &rvs1[0], &rvs2[0])
		assert.NotEqual(t, first, rvs2, "%s: the second call must have produced new values", alg)
	}
}

func TestViewBinomialAliases(t *testing.T) {
	for _, alg := range algorithms {
		g := New(alg, View, 1)
		rvs1, err := g.Binomial(1000, 0.5, 4)
		require.NoError(t, err)
		rvs2, err := g.Binomial(1000, 0.5, 4)
		require.NoError(t, err)
		assert.Equal(t, rvs1, rvs2, "%s", alg)
		assert.Same(t, &rvs1[0], &rvs2[0])
	}
}

func TestCopyUniformIndependent(t *testing.T) {
	for _, alg := range algorithms {
		g := New(alg, Copy, 1)
		rvs1, err := g.Uniform(4)
		require.NoError(t, err)
		rvs2, err := g.Uniform(4)
		require.NoError(t, err)
		assert.NotEqual(t, rvs1, rvs2, "%s", alg)
		assert.NotSame(t, &rvs1[0], &rvs2[0])
	}
}

func TestCopyBinomialIndependent(t *testing.T) {
	for _, alg := range algorithms {
		g := New(alg, Copy, 1)
		rvs1, err := g.Binomial(1000, 0.5, 4)
		require.NoError(t, err)
		rvs2, err := g.Binomial(1000, 0.5, 4)
		require.NoError(t, err)
		assert.NotEqual(t, rvs1, rvs2, "%s", alg)
		assert.NotSame(t, &rvs1[0], &rvs2[0])
	}
}

func TestViewAndCopyProduceSameValues(t *testing.T) {
	v := New(Xoroshiro128Plus, View, 11)
	c := New(Xoroshiro128Plus, Copy, 11)
	for _, n := range []int{3, 10, 1, 0, 7} {
		a, err := v.Uniform(n)
		require.NoError(t, err)
		b, err := c.Uniform(n)
		require.NoError(t, err)
		assert.Equal(t, b, a)
	}
}

func TestUniformAndBinomialUseSeparateBuffers(t *testing.T) {
	g := New(Xorshift128Plus, View, 1)
	u, err := g.Uniform(4)
	require.NoError(t, err)
	saved := append([]float64(nil), u...)
	_, err = g.Binomial(100, 0.5, 4)
	require.NoError(t, err)
	assert.Equal(t, saved, u, "a binomial draw must not overwrite the uniform buffer")
}

func TestBufferGrowOnly(t *testing.T) {
	b := buffer[float64]{mode: View}
	assert.Zero(t, b.capacity(), "buffer must be allocated lazily")

	s := b.acquire(8)
	assert.Len(t, s, 8)
	assert.Equal(t, 8, b.capacity())

	small := b.acquire(3)
	assert.Len(t, small, 3)
	assert.Equal(t, 3, cap(small), "callers must not see the spare capacity")
	assert.Equal(t, 8, b.capacity(), "smaller requests reuse the storage")
	assert.Same(t, &s[0], &small[0])

	large := b.acquire(20)
	assert.Len(t, large, 20)
	assert.Equal(t, 20, b.capacity())
	assert.Same(t, &large[0], &b.present()[0])
}

func TestBufferAppendDoesNotClobber(t *testing.T) {
	g := New(Xoroshiro128Plus, View, 1)
	_, err := g.Uniform(8)
	require.NoError(t, err)
	short, err := g.Uniform(2)
	require.NoError(t, err)
	_ = append(short, -1)
	again, err := g.Uniform(8)
	require.NoError(t, err)
	for _, v := range again {
		assert.GreaterOrEqual(t, v, 0.0)
	}
	assert.NotContains(t, g.floats.data, -1.0)
}

func TestBufferCopyModeNeverUsesStorage(t *testing.T) {
	b := buffer[int64]{mode: Copy}
	s1 := b.acquire(5)
	o1 := b.present()
	s2 := b.acquire(5)
	o2 := b.present()
	assert.Same(t, &s1[0], &o1[0])
	assert.NotSame(t, &o1[0], &o2[0])
	assert.Same(t, &s2[0], &o2[0])
	assert.Zero(t, b.capacity())
}
