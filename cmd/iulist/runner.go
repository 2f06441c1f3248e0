package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/mgnsk/iulist"
	"github.com/mgnsk/iulist/list"
	"github.com/mgnsk/iulist/slist"
	"go.uber.org/zap"
)

const (
	implDoubly = "doubly"
	implSingly = "singly"
)

var (
	// ErrUnsupported indicates an operation the selected list implementation does not provide.
	ErrUnsupported = errors.New("operation not supported by list implementation")
	// ErrUnknownOp indicates an unrecognized step.
	ErrUnknownOp = errors.New("unknown operation")
	// ErrNoCursor indicates a cursor step before any "cursor" step.
	ErrNoCursor = errors.New("no open cursor")
	// ErrUnknownImpl indicates an unrecognized list implementation name.
	ErrUnknownImpl = errors.New("unknown list implementation")
)

// Runner applies script steps to a list of strings.
type Runner struct {
	list        iulist.IndexedUnsortedList[string]
	cursor      iulist.Iterator[string]
	log         *zap.Logger
	stopOnError bool
}

// NewRunner creates a runner over an empty list of the given implementation.
func NewRunner(impl string, log *zap.Logger, stopOnError bool) (*Runner, error) {
	r := &Runner{
		log:         log,
		stopOnError: stopOnError,
	}

	switch impl {
	case "", implDoubly:
		r.list = list.New[string]()
	case implSingly:
		r.list = slist.New[string]()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownImpl, impl)
	}

	return r, nil
}

// List returns the list the runner operates on.
func (r *Runner) List() iulist.IndexedUnsortedList[string] {
	return r.list
}

// Run applies steps in order. Failed steps are logged and skipped unless the
// runner stops on error, in which case the first failure is returned.
func (r *Runner) Run(steps []Step) error {
	var failed int

	for i, s := range steps {
		result, err := r.Apply(s)
		if err != nil {
			failed++
			r.log.Warn("step failed",
				zap.Int("step", i),
				zap.String("op", s.Op),
				zap.Error(err),
			)

			if r.stopOnError {
				return fmt.Errorf("step %d (%s): %w", i, s.Op, err)
			}

			continue
		}

		r.log.Debug("step",
			zap.Int("step", i),
			zap.String("op", s.Op),
			zap.String("value", s.Value),
			zap.String("target", s.Target),
			zap.Int("index", s.Index),
			zap.String("result", result),
			zap.Stringer("list", r.list),
		)
	}

	r.log.Info("script finished",
		zap.Int("steps", len(steps)),
		zap.Int("failed", failed),
		zap.Int("len", r.list.Len()),
	)

	return nil
}

// Apply applies a single step and returns its result rendered as a string.
func (r *Runner) Apply(s Step) (string, error) {
	l := r.list

	switch s.Op {
	case "add":
		l.Add(s.Value)
		return "", nil

	case "add_to_front":
		l.AddToFront(s.Value)
		return "", nil

	case "add_to_rear":
		l.AddToRear(s.Value)
		return "", nil

	case "add_at":
		return "", l.AddAt(s.Index, s.Value)

	case "add_after":
		return "", l.AddAfter(s.Value, s.Target)

	case "get":
		return l.Get(s.Index)

	case "set":
		return "", l.Set(s.Index, s.Value)

	case "remove":
		return l.Remove(s.Value)

	case "remove_at":
		return l.RemoveAt(s.Index)

	case "remove_first":
		return l.RemoveFirst()

	case "remove_last":
		return l.RemoveLast()

	case "first":
		return l.First()

	case "last":
		return l.Last()

	case "index_of":
		return strconv.Itoa(l.IndexOf(s.Value)), nil

	case "contains":
		return strconv.FormatBool(l.Contains(s.Value)), nil

	case "len":
		return strconv.Itoa(l.Len()), nil

	case "print":
		return l.String(), nil

	case "cursor":
		return "", r.openCursor(s.Index)
	}

	return r.applyCursor(s)
}

func (r *Runner) openCursor(index int) error {
	if dl, ok := r.list.(*list.List[string]); ok {
		c, err := dl.ListIteratorAt(index)
		if err != nil {
			return err
		}
		r.cursor = c
		return nil
	}

	if index != 0 {
		return ErrUnsupported
	}

	r.cursor = r.list.Iterator()

	return nil
}

func (r *Runner) applyCursor(s Step) (string, error) {
	switch s.Op {
	case "next", "has_next", "cursor_remove",
		"previous", "has_previous", "cursor_add", "cursor_set":
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOp, s.Op)
	}

	if r.cursor == nil {
		return "", ErrNoCursor
	}

	switch s.Op {
	case "next":
		return r.cursor.Next()

	case "has_next":
		ok, err := r.cursor.HasNext()
		return strconv.FormatBool(ok), err

	case "cursor_remove":
		return "", r.cursor.Remove()
	}

	c, ok := r.cursor.(iulist.ListIterator[string])
	if !ok {
		return "", ErrUnsupported
	}

	switch s.Op {
	case "previous":
		return c.Previous()

	case "has_previous":
		ok, err := c.HasPrevious()
		return strconv.FormatBool(ok), err

	case "cursor_add":
		return "", c.Add(s.Value)

	default:
		return "", c.Set(s.Value)
	}
}
