// Package fn provides function combinators: predicate composition,
// constant and composed functions, currying and partial application.
package fn
