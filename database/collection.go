package database

import "time"

// collection is the list-valued CRUD shared by the entity repos
type collection[T any] struct {
	s      *store
	key    string
	idOf   func(T) int64
	setID  func(*T, int64)
	atHead bool
}

func (c collection[T]) findAll() ([]T, error) {
	return readList[T](c.s, c.key)
}

func (c collection[T]) findByID(id int64) (*T, error) {
	items, err := c.findAll()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if c.idOf(items[i]) == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

// add assigns a fresh identity, lets prepare stamp any other generated
// fields, then inserts at the head or tail.
func (c collection[T]) add(item T, prepare func(item *T, now time.Time)) (T, error) {
	err := c.s.mutate(func() error {
		items, err := readList[T](c.s, c.key)
		if err != nil {
			return err
		}
		ids := make([]int64, len(items))
		for i := range items {
			ids[i] = c.idOf(items[i])
		}
		now := c.s.now()
		c.setID(&item, c.s.ids.next(now, ids))
		if prepare != nil {
			prepare(&item, now)
		}
		if c.atHead {
			items = append([]T{item}, items...)
		} else {
			items = append(items, item)
		}
		return writeList(c.s, c.key, items)
	})
	return item, err
}

// update replaces the record with the same identity. A missing record is a
// silent no-op: nothing is written and nothing is published.
func (c collection[T]) update(item T) (found bool, err error) {
	err = c.s.mutate(func() error {
		items, err := readList[T](c.s, c.key)
		if err != nil {
			return err
		}
		for i := range items {
			if c.idOf(items[i]) == c.idOf(item) {
				items[i] = item
				found = true
				return writeList(c.s, c.key, items)
			}
		}
		return errUnchanged
	})
	return found, err
}

// delete filters out the record with id. When nothing matches the slot is
// not touched (absent and unparseable slots included) but the signal still
// goes out, as for any other delete.
func (c collection[T]) delete(id int64) error {
	return c.s.mutate(func() error {
		items, err := readList[T](c.s, c.key)
		if err != nil {
			return err
		}
		kept := make([]T, 0, len(items))
		for _, item := range items {
			if c.idOf(item) != id {
				kept = append(kept, item)
			}
		}
		if len(kept) == len(items) {
			return nil
		}
		return writeList(c.s, c.key, kept)
	})
}
