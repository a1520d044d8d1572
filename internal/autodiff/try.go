package autodiff

import "github.com/gomlx/exceptions"

// Try runs fn, which builds part of a graph, and returns its result. If a
// primitive inside fn panics with an error (a domain or shape error), Try
// returns that error instead. Panics with non-error values are not caught.
//
// Example:
//
//	y, err := autodiff.Try(func() *autodiff.Value {
//	    return x.Log().Mul(autodiff.Const(2))
//	})
//	var domainErr *ops.DomainError
//	if errors.As(err, &domainErr) { ... }
func Try(fn func() *Value) (v *Value, err error) {
	err = exceptions.TryCatch[error](func() { v = fn() })
	if err != nil {
		return nil, err
	}
	return v, nil
}
