// SPDX-License-Identifier: MIT

package dictionary_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatrix/dictionary"
)

func TestPushGrowsByDoubling(t *testing.T) {
	t.Parallel()

	d := dictionary.New(2)
	require.Equal(t, 2, d.Cap())
	require.True(t, d.Push("a", 1))
	require.True(t, d.Push("b", 2))
	require.True(t, d.Push("c", 3))
	require.Equal(t, 3, d.Len())
	require.Equal(t, 4, d.Cap())

	z := dictionary.New(0)
	require.True(t, z.Push("x", 9))
	require.Equal(t, 9, z.Value("x"))
}

func TestCapacityDoublesExactly(t *testing.T) {
	t.Parallel()

	d := dictionary.New(17)
	var caps []int
	for i := 0; i < 70; i++ {
		require.True(t, d.Push("k", i))
		if n := len(caps); n == 0 || caps[n-1] != d.Cap() {
			caps = append(caps, d.Cap())
		}
	}
	require.Equal(t, []int{17, 34, 68, 136}, caps)

	// Add on a full dictionary doubles as well.
	full := dictionary.New(2)
	full.Push("a", 1)
	full.Push("b", 2)
	require.True(t, full.Add(0, "z", 0))
	require.Equal(t, 4, full.Cap())
}

func TestPushRejectsLongKey(t *testing.T) {
	t.Parallel()

	d := dictionary.New(1)
	require.True(t, d.Push(strings.Repeat("k", dictionary.MaxKeyLen), 1))
	require.False(t, d.Push(strings.Repeat("k", dictionary.MaxKeyLen+1), 2))
	require.Equal(t, 1, d.Len())
}

func TestFindAndValue(t *testing.T) {
	t.Parallel()

	d := dictionary.New(4)
	d.Push("one", 1)
	d.Push("two", 2)
	d.Push("one", 11)

	require.Equal(t, 0, d.Find("one"))
	require.Equal(t, 1, d.Find("two"))
	require.Equal(t, dictionary.NotFound, d.Find("three"))
	require.Equal(t, 1, d.Value("one"))
	require.Equal(t, 0, d.Value("three"))
}

func TestAddInsertsBeforeIndex(t *testing.T) {
	t.Parallel()

	d := dictionary.New(2)
	d.Push("a", 1)
	d.Push("c", 3)

	require.True(t, d.Add(1, "b", 2))
	require.Equal(t, "{\n  'a': 1\n  'b': 2\n  'c': 3\n}\n", d.String())

	require.False(t, d.Add(3, "z", 0))
	require.False(t, d.Add(-1, "z", 0))
	require.Equal(t, 3, d.Len())
}

func TestRemoveIndex(t *testing.T) {
	t.Parallel()

	d := dictionary.New(3)
	d.Push("a", 1)
	d.Push("b", 2)
	d.Push("c", 3)

	require.True(t, d.RemoveIndex(1))
	require.Equal(t, 2, d.Len())
	require.Equal(t, dictionary.NotFound, d.Find("b"))
	require.Equal(t, 1, d.Find("c"))
	require.False(t, d.RemoveIndex(2))
}

func TestPrintAndDestroy(t *testing.T) {
	t.Parallel()

	d := dictionary.New(1)
	d.Push("k", -5)

	var buf bytes.Buffer
	require.NoError(t, d.Print(&buf))
	require.Equal(t, "{\n  'k': -5\n}\n", buf.String())

	d.Destroy()
	require.Equal(t, 0, d.Len())
	require.Equal(t, 0, d.Cap())
	require.Equal(t, "{\n}\n", d.String())
}
