package fixgen

// Package fixgen generates synthetic JSON values from a declarative schema:
//
// - A recursive dispatcher walks the schema tree and routes each node to a
//   typed generator (integer, string, object, array, boolean, date)
// - Constrained-value generators honor bounds, patterns, enumerations,
//   country phone tables, and date token formats
// - A stable error model via Issues (JSON Pointer, code, message)
// - Entropy, clock, and pattern synthesis are injectable for deterministic tests
//
// Design policy:
// - Keep the public API and the generators in the root package; put entropy
//   primitives under internal/ and the node type under schema/.
// - Place the CLI under cmd/fixgen.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s, err := schema.FromJSON(data)
//	v, err := fixgen.FromSchema(s)
//	out, err := fixgen.JSONFromSchema(s)
