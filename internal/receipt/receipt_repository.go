package receipt

import (
	"errors"
	"strconv"

	"github.com/tidwall/buntdb"
)

// PointsRepository - insert-only mapping from receipt id to reward points.
// Entries are never updated or removed; a score read back for an id is always
// the score that was stored for it.
type PointsRepository interface {
	// Save records the points for a newly minted receipt id. Saving an id
	// that is already present returns ErrDuplicateID.
	Save(id string, points int) error
	// Points returns the points stored for id, or ErrNotFound.
	Points(id string) (int, error)
}

// BuntDBPointsRepository - PointsRepository on a buntdb database. The
// database's serializable transactions make concurrent Save and Points calls
// safe without any locking here, and a Points call issued after Save returns
// is guaranteed to observe the entry.
type BuntDBPointsRepository struct {
	db *buntdb.DB
}

func NewBuntDBPointsRepository(db *buntdb.DB) *BuntDBPointsRepository {
	return &BuntDBPointsRepository{db: db}
}

func pointsKey(id string) string {
	return "receipt:" + id
}

// Save - creates the db entry for a scored receipt with the id as primary key
func (repo *BuntDBPointsRepository) Save(id string, points int) error {
	return repo.db.Update(func(tx *buntdb.Tx) error {
		key := pointsKey(id)
		_, err := tx.Get(key)
		if err == nil {
			return ErrDuplicateID
		}
		if !errors.Is(err, buntdb.ErrNotFound) {
			return err
		}
		_, _, err = tx.Set(key, strconv.Itoa(points), nil)
		return err
	})
}

// Points - takes a receipt id and returns the points stored for that receipt
func (repo *BuntDBPointsRepository) Points(id string) (int, error) {
	var raw string
	err := repo.db.View(func(tx *buntdb.Tx) error {
		var err error
		raw, err = tx.Get(pointsKey(id))
		return err
	})
	if errors.Is(err, buntdb.ErrNotFound) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(raw)
}
