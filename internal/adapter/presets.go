package adapter

import (
	"fmt"
	"sort"

	m "github.com/mouse-blink/trimsrc/internal/model"
)

// presets are starting points for `trimsrc init`.
var presets = map[string]m.RuleSet{
	"empty": {},

	// Strip gogo/protobuf generated files down to their wire codec so they
	// build without the gogo runtime, one directory per Go package.
	"gogoproto": {
		Drop: []m.DropRule{
			{Matcher: m.Matcher{Contains: "var _ = proto.Marshal"}, DropBody: true},
			{Matcher: m.Matcher{Contains: "proto.GoGoProtoPackageIsVersion3"}, DropBody: true},
			{Matcher: m.Matcher{Contains: "var xxx"}, DropBody: true},
			{Matcher: m.Matcher{Contains: "var fileDescriptor"}, DropBody: true},
			{Matcher: m.Matcher{Contains: "const ("}, DropBody: true},
			{Matcher: m.Matcher{Contains: `io "io"`}},
			{Matcher: m.Matcher{Contains: "github.com/gogo/protobuf/proto"}},
		},
		Declarations: m.DeclarationRules{
			Starts: []m.Matcher{{Contains: "func"}},
			Allow: []string{
				"Marshal()",
				" Unmarshal(",
				"MarshalTo",
				"MarshalToSizedBuffer",
				" Size()",
				"encodeVarint" + m.StemPlaceholder,
				"sov" + m.StemPlaceholder,
				"skip" + m.StemPlaceholder,
			},
			DropBody: true,
			Resume:   []string{"var", "type"},
		},
		Substitutions: []m.Substitution{
			{From: "io.ErrUnexpectedEOF", To: `fmt.Errorf("ErrUnexpectedEOF")`},
		},
		Extensions: []string{".go"},
		Output: m.OutputRules{
			Mode:      m.OutputRegroup,
			KeyPrefix: "package ",
			DirSuffix: ".pb",
		},
	},

	// Detach Rust crates from bevy_utils: logging macros become println!,
	// bevy_reflect gated items are removed, hash maps come from std.
	"bevy": {
		Triggers: []string{`#[cfg(feature = "bevy_reflect")]`},
		Drop: []m.DropRule{
			{Matcher: m.Matcher{Contains: "use bevy_utils::tracing::"}},
			{Matcher: m.Matcher{Contains: "impl_println"}},
			{Matcher: m.Matcher{Contains: "pub use crate::reflect::ReflectComponent;"}},
			{Matcher: m.Matcher{Contains: "Unique mutable borrow of a Reflected component"}},
		},
		Substitutions: []m.Substitution{
			{From: "use bevy_utils::{tracing::info, HashMap, HashSet};", To: "use std::collections::{HashMap,HashSet};", Line: true},
			{From: "use bevy_utils::{tracing::warn, HashMap, HashSet};", To: "use std::collections::{HashMap,HashSet};", Line: true},
			{From: "use bevy_utils::{AHasher, HashMap};", To: "use std::collections::{HashMap,hash_map::DefaultHasher};", Line: true},
			{From: "use bevy_utils::HashMap", To: "use std::collections::HashMap;", Line: true},
			{From: "warn!", To: "println!"},
			{From: "trace!", To: "println!"},
			{From: "info!", To: "println!"},
			{From: "debug!", To: "println!"},
			{From: "error!", To: "println!"},
			{From: "HashMap::default()", To: "HashMap::<_, _, RandomState>::default()"},
			{From: "AHasher::default()", To: "DefaultHasher::default()"},
		},
		Extensions: []string{".rs"},
	},
}

// Preset returns the named built-in rule set.
func Preset(name string) (m.RuleSet, error) {
	rules, ok := presets[name]
	if !ok {
		return m.RuleSet{}, fmt.Errorf("unknown preset %q (available: %v)", name, PresetNames())
	}

	return rules, nil
}

// PresetNames lists the built-in presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
