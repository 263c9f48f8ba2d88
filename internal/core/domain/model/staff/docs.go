// Package staff provides the employee registry side of the domain model.
//
// The package includes:
//   - Role: a closed enumeration of employee role tags
//   - Employee: an owner-approved identity carrying one role tag
//
// Role tags are validated at the boundary: only the closed set of textual
// tags is accepted, any other tag is a validation error and is never
// silently coerced.
package staff
