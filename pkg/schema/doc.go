// Package schema describes record attributes and compiles their raw
// declarations into validation rule sets.
//
// A raw declaration mixes validation rules with storage and relationship
// metadata. The Compiler strips the metadata (the reserved properties),
// drops null-valued properties and renames enum to the in membership rule.
// The declared type is kept so that the evaluator can derive a base rule
// from it.
//
//	defs := schema.Definitions{
//		"email": {"type": "email", "required": true, "unique": true},
//		"role":  {"type": "string", "enum": []any{"admin", "user"}},
//	}
//
//	rules, err := schema.NewCompiler(schema.WithIgnoreProperties("label")).Compile(defs)
//	if err != nil {
//		return err
//	}
//	rules["role"].In // []any{"admin", "user"}
//
// Schemas can also be read from YAML with ParseYAML, LoadFile and, for
// files declaring several models, ParseModelsYAML and LoadModelsFile.
package schema
