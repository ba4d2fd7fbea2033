package ast

import (
	"fmt"
	"strings"

	"github.com/msvcdemangle/symbols/internal/token"
)

// Render turns a parsed Symbol back into human-readable C++, as a colourised
// token.Stream. input is the original mangled bytes the Symbol was parsed
// from; Literal values borrow ranges out of it rather than carrying their
// own copy (§ as documented on Literal).
//
// Every Type implements a conceptual pre/post pair: text emitted before the
// declared name and text emitted after it, so that C++'s inside-out
// declarator syntax (a pointer to a function, an array of pointers) comes
// out in the right order. typePrePost below is that pair, computed
// recursively; renderSymbol is the top-level dispatcher, a type-switch over
// the symbol's type, matching the style the printer this replaced used for its own
// recursive walk.
func Render(sym *Symbol, input []byte) *token.Stream {
	s := token.NewStream()
	p := &printer{input: input, scope: sym.Path.Scope}
	p.renderSymbol(s, sym)
	return s
}

type printer struct {
	input []byte
	scope Scope
}

func (p *printer) text(lit Literal) string {
	return lit.Resolve(p.input)
}

func (p *printer) renderSymbol(s *token.Stream, sym *Symbol) {
	switch t := sym.Type.(type) {
	case Unit:
		s.Push(p.pathString(sym.Path), token.WHITE)
	case Variable:
		p.renderVariable(s, sym.Path, t)
	case Function:
		p.renderFreeFunction(s, sym.Path, t)
	case MemberFunction:
		p.renderMemberFunction(s, sym.Path, t)
	case MemberFunctionPtr:
		p.renderMemberFunctionPtr(s, sym.Path, t)
	case VFTable:
		s.Push(p.vtableName(sym.Path, t.Path, t.Mod), token.PURPLE)
	case VBTable:
		s.Push(p.vtableName(sym.Path, t.Path, t.Mod), token.PURPLE)
	case VCallThunk:
		s.Push(fmt.Sprintf("%s::`vcall'{%d,{flat}}", p.pathString(sym.Path), t.Offset), token.PURPLE)
	default:
		s.Push(p.pathString(sym.Path), token.WHITE)
	}
}

func (p *printer) renderVariable(s *token.Stream, path *Path, v Variable) {
	if vis := storageVariableVisibility(v.Storage); vis != "" {
		s.Push(vis+": ", token.GREEN)
	}
	if v.Storage == StorageFunctionLocalStatic {
		// rendered inline below with the declaration, nothing extra
	}
	pre, post := p.typePrePost(v.Elem)
	if q := v.Mod.String(); q != "" {
		pre = q + " " + pre
	}
	name := p.pathString(path)
	s.Push(pre+name+post, token.WHITE)
}

// vtableName renders a vftable/vbtable symbol: its own qualified name,
// qualified by any cv-modifier, with a "{for `Base'}" suffix when the
// mangling carries extra base-class scope names disambiguating it under
// multiple inheritance.
func (p *printer) vtableName(own *Path, disambig *Path, mod Modifiers) string {
	name := p.pathString(own)
	if q := mod.String(); q != "" {
		name = q + " " + name
	}
	if disambig != nil && len(disambig.Scope) > 0 {
		name += "{for `" + strings.TrimSuffix(p.scopeString(disambig.Scope), "::") + "'}"
	}
	return name
}

// storageScopePrefix renders a member function's storage scope (visibility,
// virtual, static) as the plain-text prefix the original's storage_scope
// demangle emits ahead of the calling convention.
func storageScopePrefix(s StorageScope) string {
	var b strings.Builder
	if vis := s.Visibility(); vis != "" {
		b.WriteString(vis)
		b.WriteString(": ")
	}
	if s.Has(ScopeVirtual) {
		b.WriteString("virtual ")
	}
	if s.Has(ScopeStatic) {
		b.WriteString("static ")
	}
	return b.String()
}

func storageVariableVisibility(s StorageVariable) string {
	switch s {
	case StoragePrivateStatic:
		return "private: static"
	case StorageProtectedStatic:
		return "protected: static"
	case StoragePublicStatic:
		return "public: static"
	default:
		return ""
	}
}

func (p *printer) renderFreeFunction(s *token.Stream, path *Path, f Function) {
	retPre, retPost := p.typePrePost(f.Return)
	name := p.declName(path)
	params := p.paramList(f.Params)
	decl := fmt.Sprintf("%s%s %s(%s)%s", retPre, f.CallConv, name, params, retPost)
	s.Push(strings.TrimSpace(decl), token.WHITE)
}

func (p *printer) renderMemberFunction(s *token.Stream, path *Path, m MemberFunction) {
	vis := m.Storage.Visibility()
	if vis != "" {
		s.Push(vis+": ", token.GREEN)
	}
	if m.Storage.Has(ScopeVirtual) {
		s.Push("virtual ", token.GREEN)
	}
	if m.Storage.Has(ScopeStatic) {
		s.Push("static ", token.GREEN)
	}
	params := p.paramList(m.Params)
	// A cast operator is the one symbol kind where the return type sits
	// after the name instead of before it: "operator int(void)" rather than
	// "int operator()(void)". No this-qualifier suffix is printed here,
	// matching the original's special case for this one symbol shape.
	if intr, ok := path.Leaf.(Intrinsics); ok && intr.Kind == IntrinsicOperatorCast {
		retPre, retPost := p.typePrePost(m.Return)
		castType := strings.TrimSpace(retPre + retPost)
		name := p.scopeString(path.Scope) + "operator " + castType
		decl := fmt.Sprintf("%s %s(%s)", m.CallConv, name, params)
		s.Push(strings.TrimSpace(decl), token.WHITE)
		return
	}
	retPre, retPost := p.typePrePost(m.Return)
	name := p.declName(path)
	qual := m.Qualifiers.String()
	if qual != "" {
		qual = " " + qual
	}
	decl := fmt.Sprintf("%s%s %s(%s)%s%s", retPre, m.CallConv, name, params, qual, retPost)
	s.Push(strings.TrimSpace(decl), token.WHITE)
}

func (p *printer) renderMemberFunctionPtr(s *token.Stream, path *Path, m MemberFunctionPtr) {
	retPre, retPost := p.typePrePost(m.Return)
	params := p.paramList(m.Params)
	cls := p.pathString(m.Class)
	name := p.declName(path)
	decl := fmt.Sprintf("%s%s%s (%s::*%s)(%s)%s", storageScopePrefix(m.Storage), retPre, m.CallConv, cls, name, params, retPost)
	s.Push(strings.TrimSpace(decl), token.WHITE)
}

// declName renders the name that goes where a declarator's identifier would
// sit: the qualified path, with constructor/destructor/operator-cast leaves
// resolved against the enclosing scope (§4.10, ctor/dtor special case).
func (p *printer) declName(path *Path) string {
	switch leaf := path.Leaf.(type) {
	case UnqualifiedTemplate, UnqualifiedLiteral:
		return p.pathString(path)
	case Intrinsics:
		return p.scopedIntrinsicName(path, leaf)
	default:
		return p.pathString(path)
	}
}

func (p *printer) scopedIntrinsicName(path *Path, intr Intrinsics) string {
	className, hasClass := p.innermostScopeName(path.Scope)
	switch intr.Kind {
	case IntrinsicCtor:
		if !hasClass {
			return "`unnamed constructor'"
		}
		return p.scopeString(path.Scope) + className
	case IntrinsicDtor:
		if !hasClass {
			return "`unnamed destructor'"
		}
		return p.scopeString(path.Scope) + "~" + className
	case IntrinsicOperatorCast:
		// The real "operator <type>(<params>)" rendering happens in
		// renderMemberFunction, which has the return type and params in
		// hand; this is only reached for declName call sites (e.g. a
		// pointer-to-member-function) that never get that far.
		return p.scopeString(path.Scope) + "operator cast"
	case IntrinsicDynamicInitializer:
		return fmt.Sprintf("`dynamic initializer for '%s''", p.symbolString(intr.Nested))
	case IntrinsicDynamicAtExitDtor:
		return fmt.Sprintf("`dynamic atexit destructor for '%s''", p.symbolString(intr.Nested))
	case IntrinsicSourceName:
		return p.scopeString(path.Scope) + p.text(intr.Name)
	default:
		if txt, ok := p.intrinsicPayloadText(intr); ok {
			return txt
		}
		if txt, ok := intr.Kind.operatorText(); ok {
			return p.scopeString(path.Scope) + txt
		}
		return p.scopeString(path.Scope) + intr.String()
	}
}

// intrinsicPayloadText renders the intrinsic kinds whose text is derived
// from parsed payload data rather than a fixed operator spelling, and which
// (per the original) carry no enclosing-scope prefix of their own.
func (p *printer) intrinsicPayloadText(intr Intrinsics) (string, bool) {
	switch intr.Kind {
	case IntrinsicRTTITypeDescriptor:
		pre, post := p.typePrePost(intr.RTTIType)
		return strings.TrimSpace(pre+post) + " `RTTI Type Descriptor'", true
	case IntrinsicRTTIBaseClassDescriptor:
		return fmt.Sprintf("`RTTI Base Class Descriptor at (%d, %d, %d, %d)'",
			intr.NVOffset, intr.PtrOffset, intr.VBTableOffset, intr.Flags), true
	case IntrinsicRTTIBaseClassArray:
		return "`RTTI Base Class Array'", true
	case IntrinsicRTTIClassHierarchyDescriptor:
		return "`RTTI Class Hierarchy Descriptor'", true
	case IntrinsicRTTICompleteObjectLocator:
		return "`RTTI Complete Object Locator'", true
	default:
		return "", false
	}
}

func (p *printer) symbolString(sym *Symbol) string {
	if sym == nil {
		return ""
	}
	return p.pathString(sym.Path)
}

// innermostScopeName returns the name of the tightest enclosing scope
// component, used to fill in a constructor/destructor's class name. Numeric
// disambiguators are skipped; false when no component remains or the
// tightest remaining one isn't a plain name (e.g. a nested symbol or
// anonymous namespace, where no class name applies).
func (p *printer) innermostScopeName(scope Scope) (string, bool) {
	for _, comp := range scope {
		switch n := comp.(type) {
		case NestedDisambiguator:
			continue
		case NestedLiteral:
			return p.text(n.Name), true
		case NestedTemplate:
			return p.templateString(n.Template), true
		default:
			return "", false
		}
	}
	return "", false
}

func (p *printer) scopeString(scope Scope) string {
	if len(scope) == 0 {
		return ""
	}
	parts := make([]string, len(scope))
	for i, comp := range scope {
		parts[len(scope)-1-i] = p.nestedPathString(comp)
	}
	return strings.Join(parts, "::") + "::"
}

func (p *printer) nestedPathString(n NestedPath) string {
	switch v := n.(type) {
	case NestedLiteral:
		return p.text(v.Name)
	case NestedInterface:
		return "[" + p.text(v.Name) + "]"
	case NestedTemplate:
		return p.templateString(v.Template)
	case NestedSymbol:
		return p.symbolString(v.Symbol)
	case NestedDisambiguator:
		return fmt.Sprintf("`%d'", v.N)
	case NestedAnonymous:
		return "`anonymous namespace'"
	case MD5Name:
		return "??@" + v.Hash + "@"
	default:
		return "?"
	}
}

func (p *printer) templateString(t *Template) string {
	if t == nil {
		return ""
	}
	params := make([]string, len(t.Params))
	for i, param := range t.Params {
		pre, post := p.typePrePost(param)
		params[i] = strings.TrimSpace(pre + post)
	}
	return p.text(t.Name) + "<" + strings.Join(params, ",") + ">"
}

func (p *printer) pathString(path *Path) string {
	if path == nil {
		return ""
	}
	leaf := p.leafString(path.Leaf)
	scope := p.scopeString(path.Scope)
	return scope + leaf
}

func (p *printer) leafString(leaf UnqualifiedPath) string {
	switch v := leaf.(type) {
	case UnqualifiedLiteral:
		return p.text(v.Name)
	case UnqualifiedTemplate:
		return p.templateString(v.Template)
	case MD5Name:
		return "??@" + v.Hash + "@"
	case Intrinsics:
		if txt, ok := p.intrinsicPayloadText(v); ok {
			return txt
		}
		if txt, ok := v.Kind.operatorText(); ok {
			return txt
		}
		return v.String()
	default:
		return ""
	}
}

func (p *printer) paramList(params []Type) string {
	if len(params) == 0 {
		return "void"
	}
	parts := make([]string, len(params))
	for i, t := range params {
		pre, post := p.typePrePost(t)
		parts[i] = strings.TrimSpace(pre + post)
	}
	return strings.Join(parts, ", ")
}

// typePrePost computes the text emitted before and after a declared name for
// t — the two-pass "pre"/"post" halves of a recursive-descent declarator
// printer, so that "pointer to function" and "array of pointer" nest in the
// correct direction instead of reading inside-out.
func (p *printer) typePrePost(t Type) (pre string, post string) {
	switch v := t.(type) {
	case nil:
		return "", ""
	case Primitive:
		return v.Kind.String() + " ", ""
	case UDT:
		return v.Kind.String() + " " + p.pathString(v.Path) + " ", ""
	case Unit:
		return "", ""
	case Constant:
		return fmt.Sprintf("%d", v.Value), ""
	case TemplateParamIdx:
		sign := ""
		if v.Negative {
			sign = "-"
		}
		return fmt.Sprintf("`template-parameter-%s%d'", sign, v.N), ""
	case ExternC:
		innerPre, innerPost := p.typePrePost(v.Inner)
		return "extern \"C\" " + innerPre, innerPost
	case Pointer:
		return p.wrapPointee(v.Pointee, "*"+v.Mod.String())
	case Reference:
		return p.wrapPointee(v.Pointee, "&"+v.Mod.String())
	case RValueReference:
		return p.wrapPointee(v.Pointee, "&&"+v.Mod.String())
	case Array:
		innerPre, innerPost := p.typePrePost(v.Elem)
		return innerPre, fmt.Sprintf("[%d]", v.Length) + innerPost
	case Function:
		retPre, retPost := p.typePrePost(v.Return)
		return retPre + v.CallConv.String() + " ", "(" + p.paramList(v.Params) + ")" + retPost
	case MemberFunction:
		retPre, retPost := p.typePrePost(v.Return)
		return retPre + v.CallConv.String() + " ", "(" + p.paramList(v.Params) + ")" + retPost
	case MemberFunctionPtr:
		retPre, retPost := p.typePrePost(v.Return)
		cls := p.pathString(v.Class)
		return storageScopePrefix(v.Storage) + retPre + v.CallConv.String() + " (" + cls + "::*", ")(" + p.paramList(v.Params) + ")" + retPost
	case VFTable:
		return p.pathString(v.Path) + "::`vftable' ", ""
	case VBTable:
		return p.pathString(v.Path) + "::`vbtable' ", ""
	default:
		return "", ""
	}
}

// wrapPointee implements the parenthesisation rule: a pointer/reference
// whose pointee is itself a function or array must parenthesise the
// pointer/reference marker so it binds to the name instead of the pointee's
// own trailing syntax (§4.6/§4.10). A function pointee's calling convention
// goes inside the parentheses, before the marker: "int (__cdecl*f)(int)".
func (p *printer) wrapPointee(pointee Type, marker string) (string, string) {
	if fn, ok := pointee.(Function); ok {
		retPre, retPost := p.typePrePost(fn.Return)
		return retPre + "(" + fn.CallConv.String() + marker, ")(" + p.paramList(fn.Params) + ")" + retPost
	}
	innerPre, innerPost := p.typePrePost(pointee)
	if needsParens(pointee) {
		return innerPre + "(" + marker, ")" + innerPost
	}
	return innerPre + marker + " ", innerPost
}

func needsParens(t Type) bool {
	switch t.(type) {
	case Function, MemberFunction, MemberFunctionPtr, Array:
		return true
	default:
		return false
	}
}
