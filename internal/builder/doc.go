// Package builder turns requirements specifications into a ReqIF document shaped by
// a template.
//
// The template contributes the datatypes, spec types and tool extensions, which are
// shared with the output as they are. The builder adds one Specification per
// non-deprecated input specification and one SpecObject per requirement and group,
// arranged in SpecHierarchy trees that mirror the group nesting.
//
// Failure handling is deliberately two-level:
//   - a missing field (role id not in the template, unresolved correspondence,
//     unknown enumeration literal) drops that field only;
//   - an error while filling one entity's attributes aborts the whole build.
package builder
