package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/newsnotes/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_AddAndTest(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Test("3f0a9c1d2b4e5f60"))

	f.Add("3f0a9c1d2b4e5f60")

	assert.True(t, f.Test("3f0a9c1d2b4e5f60"))
	assert.False(t, f.Test("00aa11bb22cc33dd"))
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.Equal(t, uint(0), f.EstimatedCount())

	for i := 0; i < 3; i++ {
		f.Add(fmt.Sprintf("hash-%d", i))
	}

	count := f.EstimatedCount()
	assert.GreaterOrEqual(t, count, uint(2))
	assert.LessOrEqual(t, count, uint(4))
}

func TestFilter_ZeroCapacity(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(0, 0.01)
	f.Add("only")

	assert.True(t, f.Test("only"))
}

func TestFilter_NoFalseNegatives(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(500, 0.01)
	for i := 0; i < 500; i++ {
		f.Add(fmt.Sprintf("key-%d", i))
	}

	for i := 0; i < 500; i++ {
		assert.True(t, f.Test(fmt.Sprintf("key-%d", i)))
	}
}
