/*
Package result implements the result of a computation which may fail.

A Result is either Ok(x) or Err(e). The script interpreter of this module reports
the outcome of every step as a Result, so callers may inspect successful steps and
failed steps alike without aborting a run.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package result

// Result is the outcome of a computation producing a T.
type Result[T any] interface {
	Match() Matcher[T]
	Get() (T, error)
	IsOk() bool
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful outcome.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps a failure. err should be non-nil.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

// Of converts a Go-style (value, error) return into a Result.
func Of[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

func (r result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r result[T]) IsOk() bool {
	return r.err == nil
}

// Map applies f to an Ok value; errors pass through unchanged.
func Map[T, S any](f func(T) S, r Result[T]) Result[S] {
	v, err := r.Get()
	if err != nil {
		return Err[S](err)
	}
	return Ok(f(v))
}

// --- Matching --------------------------------------------------------------

// Matcher is used for pattern matching on a Result:
//
//     switch m := r.Match(); m {
//     case m.Ok(&v):
//     case m.Err(&err):
//     }
//
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
