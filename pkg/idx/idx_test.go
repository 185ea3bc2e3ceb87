package idx

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	id := New()

	parsed, err := Parse(" " + id.String() + "\n")
	require.NoError(t, err)
	require.Equal(t, id, parsed)

	for _, in := range []string{"", "   ", "not-a-ulid", "64f1c2e8a9b3d4e5f6a7b8c9", "01J0000000000000000000000"} {
		_, err := Parse(in)
		require.ErrorIs(t, err, ErrInvalid, "input %q", in)
	}
}

func TestSortsByCreation(t *testing.T) {
	a := newAt(time.Unix(1, 0))
	b := newAt(time.Unix(2, 0))
	require.Less(t, a.String(), b.String())

	// same millisecond, still ordered
	now := time.Now()
	c := newAt(now)
	d := newAt(now)
	require.Less(t, c.String(), d.String())
}

func TestConcurrentUnique(t *testing.T) {
	const n = 200
	ids := make(chan ID, n)

	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- New()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[ID]struct{}, n)
	for id := range ids {
		seen[id] = struct{}{}
	}
	require.Len(t, seen, n)
}
