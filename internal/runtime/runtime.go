// Package runtime embeds the PBString C++ runtime pair referenced by
// spec.md §1/§4.7/§13: a header and source file providing PBString, its
// comparison/concat/length/substring operations, and the Builtin_*
// functions the transpiler's emitted calls link against. These files are
// an external collaborator (spec.md §1) — vendored text, never compiled
// by this module — and are inlined verbatim into every emitted C++
// translation unit.
package runtime

import _ "embed"

//go:embed poiboi_string.h
var HeaderText string

//go:embed poiboi_string.cc
var SourceText string
