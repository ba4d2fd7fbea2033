package ast

import "fmt"

// UnqualifiedPath is a symbol's leaf name: a literal identifier, a template
// instantiation, an intrinsic (operator/ctor/dtor/RTTI marker), or an
// MD5-hashed name.
type UnqualifiedPath interface {
	unqualifiedPathNode()
}

// NestedPath is one component of a Scope: everything UnqualifiedPath can be,
// plus the forms that only make sense as an enclosing scope component
// (a nested mangled Symbol, a numeric disambiguator, an anonymous
// namespace).
type NestedPath interface {
	nestedPathNode()
}

// UnqualifiedLiteral is a plain identifier used as a leaf name.
type UnqualifiedLiteral struct{ Name Literal }

func (UnqualifiedLiteral) unqualifiedPathNode() {}

// UnqualifiedTemplate is a template instantiation used as a leaf name.
type UnqualifiedTemplate struct{ Template *Template }

func (UnqualifiedTemplate) unqualifiedPathNode() {}

// MD5Name is an MD5-hashed name: the entire symbol name in the `??@<hash>@`
// form, or a hashed component appearing in a scope.
type MD5Name struct{ Hash string }

func (MD5Name) unqualifiedPathNode() {}
func (MD5Name) nestedPathNode()      {}

// NestedLiteral is a plain identifier scope component.
type NestedLiteral struct{ Name Literal }

func (NestedLiteral) nestedPathNode() {}

// NestedInterface is an `?Q`-introduced interface name; renders bracketed.
type NestedInterface struct{ Name Literal }

func (NestedInterface) nestedPathNode() {}

// NestedTemplate is a template instantiation used as a scope component.
type NestedTemplate struct{ Template *Template }

func (NestedTemplate) nestedPathNode() {}

// NestedSymbol is a scope component that is itself a nested mangled symbol.
type NestedSymbol struct{ Symbol *Symbol }

func (NestedSymbol) nestedPathNode() {}

// NestedDisambiguator is a numeric disambiguator (`?<number>`). It is
// skipped when a scope is consulted for constructor/destructor naming but
// still rendered, as `` `N' ``, when it survives to ordinary output.
type NestedDisambiguator struct{ N int64 }

func (NestedDisambiguator) nestedPathNode() {}

// NestedAnonymous is an anonymous-namespace scope component
// (`?A0x<hex-run>@`); renders as `` `anonymous namespace' ``.
type NestedAnonymous struct{ Name Literal }

func (NestedAnonymous) nestedPathNode() {}

// Scope is the ordered list of enclosing namespaces/classes, innermost
// first, terminated by `@` in the grammar.
type Scope []NestedPath

// Template is a parameterised name: a leaf name plus a parameter list,
// parsed against its own fresh pair of back-reference tables (§3.2) which
// are discarded once the template's parameters are fully parsed.
type Template struct {
	Name   Literal
	Params []Type
}

// Path is a fully-qualified name: a leaf UnqualifiedPath plus its enclosing
// Scope.
type Path struct {
	Leaf  UnqualifiedPath
	Scope Scope
}

// Symbol is the root of a parsed mangled name: a qualified path plus the
// symbol's type (Unit for names with no type suffix, e.g. an MD5 hash).
type Symbol struct {
	Path *Path
	Type Type
}

func (s Symbol) String() string {
	return fmt.Sprintf("Symbol{%v}", s.Path)
}

func (p Path) String() string {
	return fmt.Sprintf("Path{scope:%d}", len(p.Scope))
}
