// Package reqif is an in-memory ReqIF 1.0 document model together with the XML codec
// used to read templates and write exported documents.
//
// Every polymorphic ReqIF concept (datatype definitions, spec types, attribute
// definitions and attribute values) is a closed union discriminated by a kind enum.
// Back-references that would otherwise create object cycles, such as an enum value
// pointing at its enumeration, are stored as identifiers and resolved with a Registry.
package reqif
