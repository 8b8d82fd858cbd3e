// Package validate checks raw calculator inputs. Values may arrive as Go
// numbers, json.Number or numeric-looking strings. Every failure is an
// *Error naming the offending parameter; callers match it with errors.As or
// errors.Is(err, ErrInvalidInput). Checks fail fast on the first violated rule.
package validate
