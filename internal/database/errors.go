package database

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

var (
	ErrStorageUnavailable    = errors.New("storage unavailable")
	ErrConstraintViolation   = errors.New("constraint violation")
	ErrNotFound              = errors.New("not found")
	ErrSequenceNotIncreasing = errors.New("sequence number must be greater than the last recorded one")
)

// Entity names used in OpError.
const (
	EntityMood     = "mood"
	EntityResource = "resource"
	EntityMusic    = "music"
	EntitySetting  = "setting"
	EntityStore    = "store"
)

type OpError struct {
	Op     string
	Entity string
	ID     int64
	Err    error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID > 0 {
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Entity, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapErr(entity, op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Entity: entity, ID: id, Err: classify(err)}
}

// violation marks err as a constraint violation while keeping it unwrappable.
type violation struct{ err error }

func (v violation) Error() string        { return "constraint violation: " + v.err.Error() }
func (v violation) Unwrap() error        { return v.err }
func (v violation) Is(target error) bool { return target == ErrConstraintViolation }

type unavailable struct{ err error }

func (u unavailable) Error() string        { return "storage unavailable: " + u.err.Error() }
func (u unavailable) Unwrap() error        { return u.err }
func (u unavailable) Is(target error) bool { return target == ErrStorageUnavailable }

// classify maps driver errors onto the package sentinels. Anything that is
// not a constraint failure or a missing row means the store could not be
// read or written, including a caller deadline that expired while sqlite
// waited on a lock.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrConstraintViolation),
		errors.Is(err, ErrNotFound),
		errors.Is(err, ErrStorageUnavailable):
		return err
	}
	var se sqlite3.Error
	if errors.As(err, &se) {
		switch se.Code {
		case sqlite3.ErrConstraint:
			return violation{err}
		case sqlite3.ErrBusy, sqlite3.ErrLocked:
			return unavailable{err}
		}
	}
	var pe *pq.Error
	if errors.As(err, &pe) && pe.Code.Class() == "23" {
		return violation{err}
	}
	return unavailable{err}
}
