// Package repository provides create, read, update and delete operations over
// the record lists kept by the store
package repository

import (
	"context"
	"log/slog"

	"github.com/ayoisaiah/focusflow/store"
)

// listRepo implements the read-modify-write cycle shared by every record
// kind: each change loads the whole list, edits it in memory and saves it
// back. Ids come from counterKey, or from the largest existing id when
// counterKey is empty.
type listRepo[T any] struct {
	db         *store.Client
	getID      func(T) int
	setID      func(T, int) T
	key        string
	counterKey string
}

func (r *listRepo[T]) all() ([]T, error) {
	return store.Load[T](r.db, r.key)
}

// watch emits the current list, then the list again after every change to
// it, until ctx is done.
func (r *listRepo[T]) watch(ctx context.Context) <-chan []T {
	out := make(chan []T, 1)

	changes, cancel := r.db.Subscribe(r.key)

	go func() {
		defer close(out)
		defer cancel()

		for {
			list, err := r.all()
			if err != nil {
				slog.Warn(
					"unable to refresh record list",
					slog.String("key", r.key),
					slog.Any("error", err),
				)
			}

			select {
			case out <- list:
			case <-ctx.Done():
				return
			}

			select {
			case <-changes:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

func (r *listRepo[T]) insert(rec T) (T, error) {
	unlock := r.db.Lock(r.key)
	defer unlock()

	list, err := r.all()
	if err != nil {
		return rec, err
	}

	var id int

	if r.counterKey == "" {
		id = r.maxID(list) + 1
	} else {
		id, err = r.db.AllocateID(r.counterKey)
		if err != nil {
			return rec, err
		}
	}

	rec = r.setID(rec, id)

	err = store.Save(r.db, r.key, append(list, rec))
	if err != nil {
		return rec, err
	}

	return rec, nil
}

// modify applies fn to the record with the given id and saves the list. It
// reports false without saving when no record has that id.
func (r *listRepo[T]) modify(id int, fn func(T) T) (T, bool, error) {
	unlock := r.db.Lock(r.key)
	defer unlock()

	var zero T

	list, err := r.all()
	if err != nil {
		return zero, false, err
	}

	for i := range list {
		if r.getID(list[i]) != id {
			continue
		}

		list[i] = fn(list[i])

		return list[i], true, store.Save(r.db, r.key, list)
	}

	return zero, false, nil
}

// replace overwrites the record sharing rec's id.
func (r *listRepo[T]) replace(rec T) error {
	_, _, err := r.modify(r.getID(rec), func(T) T {
		return rec
	})

	return err
}

func (r *listRepo[T]) delete(id int) error {
	unlock := r.db.Lock(r.key)
	defer unlock()

	list, err := r.all()
	if err != nil {
		return err
	}

	kept := make([]T, 0, len(list))

	for _, v := range list {
		if r.getID(v) != id {
			kept = append(kept, v)
		}
	}

	return store.Save(r.db, r.key, kept)
}

func (r *listRepo[T]) find(id int) (T, bool, error) {
	var zero T

	list, err := r.all()
	if err != nil {
		return zero, false, err
	}

	for _, v := range list {
		if r.getID(v) == id {
			return v, true, nil
		}
	}

	return zero, false, nil
}

func (r *listRepo[T]) maxID(list []T) int {
	var highest int

	for _, v := range list {
		highest = max(highest, r.getID(v))
	}

	return highest
}
