package receipt

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/buntdb"
)

func newTestRepository(t *testing.T) *BuntDBPointsRepository {
	t.Helper()
	db, err := buntdb.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewBuntDBPointsRepository(db)
}

func TestRepositorySaveAndLookup(t *testing.T) {
	repo := newTestRepository(t)

	require.NoError(t, repo.Save("abc", 28))

	points, err := repo.Points("abc")
	require.NoError(t, err)
	assert.Equal(t, 28, points)

	// a stored score never changes
	for i := 0; i < 5; i++ {
		points, err = repo.Points("abc")
		require.NoError(t, err)
		assert.Equal(t, 28, points)
	}
}

func TestRepositoryUnknownID(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Points("test")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepositoryRejectsDuplicateID(t *testing.T) {
	repo := newTestRepository(t)

	require.NoError(t, repo.Save("abc", 28))
	err := repo.Save("abc", 99)
	assert.ErrorIs(t, err, ErrDuplicateID)

	// the original score is untouched
	points, err := repo.Points("abc")
	require.NoError(t, err)
	assert.Equal(t, 28, points)
}

func TestRepositoryZeroPoints(t *testing.T) {
	repo := newTestRepository(t)

	require.NoError(t, repo.Save("zero", 0))
	points, err := repo.Points("zero")
	require.NoError(t, err)
	assert.Equal(t, 0, points)
}

// Concurrent distinct-key writers plus readers; every write must be visible
// to a read issued after Save returns, with no lost entries.
func TestRepositoryConcurrentAccess(t *testing.T) {
	repo := newTestRepository(t)

	const writers = 50
	const perWriter = 20

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				id := fmt.Sprintf("receipt-%d-%d", w, i)
				if err := repo.Save(id, w*perWriter+i); err != nil {
					t.Errorf("Save(%s) failed: %v", id, err)
					return
				}
				// read-after-write on our own key while other writers run
				points, err := repo.Points(id)
				if err != nil {
					t.Errorf("Points(%s) failed: %v", id, err)
					return
				}
				if points != w*perWriter+i {
					t.Errorf("Points(%s) = %d, want %d", id, points, w*perWriter+i)
				}
			}
		}(w)
	}
	wg.Wait()

	// nothing was lost
	for w := 0; w < writers; w++ {
		for i := 0; i < perWriter; i++ {
			points, err := repo.Points(fmt.Sprintf("receipt-%d-%d", w, i))
			require.NoError(t, err)
			assert.Equal(t, w*perWriter+i, points)
		}
	}
}
