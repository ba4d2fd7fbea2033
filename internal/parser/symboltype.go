package parser

import "github.com/msvcdemangle/symbols/internal/ast"

// parseSymbolType parses the type suffix that follows a Path at the top of
// a Symbol, or after a member's Path anywhere a fully-qualified symbol's
// type is needed: a storage-variable digit, a free function ('Y'), a
// member function (a storage-scope letter), or a vftable/vbtable marker.
func parseSymbolType(c *Context) (ast.Type, bool) {
	b, ok := c.peek()
	if !ok {
		return nil, false
	}

	if b >= '0' && b <= '4' {
		c.pos++
		return parseVariable(c, storageVariableTable[b-'0'])
	}

	switch b {
	case '6':
		c.pos++
		return parseVFTable(c)
	case '7':
		c.pos++
		return parseVBTable(c)
	case 'Y':
		c.pos++
		return parseFunction(c)
	}

	if scope, ok := storageScopeTable[b]; ok {
		c.pos++
		return parseMemberFunction(c, scope)
	}

	return nil, false
}

// parseVariable parses a data symbol's type suffix: the element type comes
// first, followed by a single trailing cv-modifier byte that qualifies the
// variable itself (e.g. "HA" is a plain int, "PAHA" a non-const pointer to
// int held in a non-const pointer variable). This trailing byte is distinct
// from any modifier consumed inside the type itself (a pointer's own
// qualifier and its pointee's qualifier are both read by parseType/
// parseWithModifierPrefix before this one is ever reached).
func parseVariable(c *Context, storage ast.StorageVariable) (ast.Type, bool) {
	typ, ok := parseType(c)
	if !ok {
		return nil, false
	}
	mod, ok := parseModifierByte(c)
	if !ok {
		return nil, false
	}
	return ast.Variable{Storage: storage, Mod: mod, Elem: typ}, true
}

// parseVFTable parses a vftable's type suffix: a cv-modifier byte followed
// by the (usually empty) list of base-class scope names used to disambiguate
// a vftable under multiple inheritance, terminated by '@'.
func parseVFTable(c *Context) (ast.Type, bool) {
	mod, ok := parseModifierByte(c)
	if !ok {
		return nil, false
	}
	scope, ok := parseScope(c)
	if !ok {
		return nil, false
	}
	return ast.VFTable{Path: &ast.Path{Scope: scope}, Mod: mod}, true
}

func parseVBTable(c *Context) (ast.Type, bool) {
	mod, ok := parseModifierByte(c)
	if !ok {
		return nil, false
	}
	scope, ok := parseScope(c)
	if !ok {
		return nil, false
	}
	return ast.VBTable{Path: &ast.Path{Scope: scope}, Mod: mod}, true
}

// parseType parses a single Type node (§4.6). Multi-byte prefixes are
// checked before single-byte dispatch, as the grammar requires.
func parseType(c *Context) (ast.Type, bool) {
	if !c.descent() {
		return nil, false
	}
	defer c.ascent()

	if s, ok := c.peekSlice(2); ok {
		switch s {
		case "W4":
			c.pos += 2
			path, ok := parsePath(c)
			if !ok {
				return nil, false
			}
			return ast.UDT{Kind: ast.UDTEnum, Path: path}, true
		case "A6":
			c.pos += 2
			return parseFunctionPointee(c, false)
		case "P6":
			c.pos += 2
			return parseFunctionPointee(c, true)
		case "P8":
			c.pos += 2
			return parseMemberFunctionPointer(c)
		}
	}

	if c.eat('$') {
		return parseDollarType(c)
	}

	if d, ok := c.base10(); ok {
		t, found := c.getType(d)
		if !found {
			return nil, false
		}
		return t, true
	}

	mod := c.popModifiers()

	b, ok := c.take()
	if !ok {
		return nil, false
	}

	switch b {
	case 'T', 'U', 'V':
		path, ok := parsePath(c)
		if !ok {
			return nil, false
		}
		kind := map[byte]ast.UDTKind{'T': ast.UDTUnion, 'U': ast.UDTStruct, 'V': ast.UDTClass}[b]
		return ast.UDT{Kind: kind, Path: path}, true
	case 'A':
		pointee, ok := parseWithModifierPrefix(c)
		if !ok {
			return nil, false
		}
		return ast.Reference{Pointee: pointee, Mod: mod}, true
	case 'B':
		pointee, ok := parseWithModifierPrefix(c)
		if !ok {
			return nil, false
		}
		return ast.Reference{Pointee: pointee, Mod: mod | ast.ModVolatile}, true
	case 'P':
		pointee, ok := parseWithModifierPrefix(c)
		if !ok {
			return nil, false
		}
		return ast.Pointer{Pointee: pointee, Mod: mod}, true
	case 'Q':
		pointee, ok := parseWithModifierPrefix(c)
		if !ok {
			return nil, false
		}
		return ast.Pointer{Pointee: pointee, Mod: mod | ast.ModConst}, true
	case 'R':
		pointee, ok := parseWithModifierPrefix(c)
		if !ok {
			return nil, false
		}
		return ast.Pointer{Pointee: pointee, Mod: mod | ast.ModVolatile}, true
	case 'S':
		pointee, ok := parseWithModifierPrefix(c)
		if !ok {
			return nil, false
		}
		return ast.Pointer{Pointee: pointee, Mod: mod | ast.ModConst | ast.ModVolatile}, true
	case 'Y':
		return parseArray(c)
	case 'X':
		return ast.Primitive{Kind: ast.PrimVoid}, true
	case 'D':
		return ast.Primitive{Kind: ast.PrimChar}, true
	case 'C':
		return ast.Primitive{Kind: ast.PrimSignedChar}, true
	case 'E':
		return ast.Primitive{Kind: ast.PrimUnsignedChar}, true
	case 'F':
		return ast.Primitive{Kind: ast.PrimShort}, true
	case 'G':
		return ast.Primitive{Kind: ast.PrimUnsignedShort}, true
	case 'H':
		return ast.Primitive{Kind: ast.PrimInt}, true
	case 'I':
		return ast.Primitive{Kind: ast.PrimUnsignedInt}, true
	case 'J':
		return ast.Primitive{Kind: ast.PrimLong}, true
	case 'K':
		return ast.Primitive{Kind: ast.PrimUnsignedLong}, true
	case 'M':
		return ast.Primitive{Kind: ast.PrimFloat}, true
	case 'N':
		return ast.Primitive{Kind: ast.PrimDouble}, true
	case 'O':
		return ast.Primitive{Kind: ast.PrimLongDouble}, true
	case '_':
		return parseUnderscoreType(c)
	default:
		return nil, false
	}
}

func parseUnderscoreType(c *Context) (ast.Type, bool) {
	b, ok := c.take()
	if !ok {
		return nil, false
	}
	switch b {
	case 'N':
		return ast.Primitive{Kind: ast.PrimBool}, true
	case 'J':
		return ast.Primitive{Kind: ast.PrimInt64}, true
	case 'K':
		return ast.Primitive{Kind: ast.PrimUInt64}, true
	case 'W':
		return ast.Primitive{Kind: ast.PrimWChar}, true
	case 'S':
		return ast.Primitive{Kind: ast.PrimChar16}, true
	case 'U':
		return ast.Primitive{Kind: ast.PrimChar32}, true
	case 'D':
		return ast.Primitive{Kind: ast.PrimChar8}, true
	default:
		return nil, false
	}
}

// parseWithModifierPrefix is the "critical case" from §4.6: a pointee reads
// an optional 'E' (ptr64), merges it with a fresh modifier byte, pushes the
// combined set, recursively parses the pointee, and pops exactly what it
// pushed.
func parseWithModifierPrefix(c *Context) (ast.Type, bool) {
	ptr64 := c.eat('E')
	mod, ok := parseModifierByte(c)
	if !ok {
		return nil, false
	}
	if ptr64 {
		mod |= ast.ModPtr64
	}
	depth := len(c.modStack)
	c.pushModifiers(mod)
	typ, ok := parseType(c)
	// Pointee forms that never pop (prefixed, '$' or back-referenced types)
	// leave the pushed set behind; drop it here.
	c.modStack = c.modStack[:depth]
	if !ok {
		return nil, false
	}
	return typ, true
}

// parseFunctionPointee parses the pointee of a P6/A6 pointer/reference to
// function: qualifier parsing is suppressed for it (§4.6).
func parseFunctionPointee(c *Context, isPointer bool) (ast.Type, bool) {
	saved := c.parsingQualifiers
	c.parsingQualifiers = false
	fn, ok := parseFunction(c)
	c.parsingQualifiers = saved
	if !ok {
		return nil, false
	}
	if isPointer {
		return ast.Pointer{Pointee: fn}, true
	}
	return ast.Reference{Pointee: fn}, true
}

func parseMemberFunctionPointer(c *Context) (ast.Type, bool) {
	saved := c.parsingQualifiers
	c.parsingQualifiers = true
	mfp, ok := parseMemberFunctionPtr(c)
	c.parsingQualifiers = saved
	if !ok {
		return nil, false
	}
	return mfp, true
}

// parseDollarType handles every '$'-prefixed form from §4.6.
func parseDollarType(c *Context) (ast.Type, bool) {
	if c.eat('0') {
		n, ok := c.number()
		if !ok {
			return nil, false
		}
		return ast.Constant{Value: n}, true
	}
	if c.eat('D') {
		n, ok := c.number()
		if !ok {
			return nil, false
		}
		return ast.TemplateParamIdx{N: n}, true
	}
	if c.eat('S') {
		return ast.Unit{}, true
	}
	if got, ok := c.peekSlice(1); ok && got == "$" {
		c.pos++
		return parseDoubleDollarType(c)
	}
	if c.eat('?') {
		n, ok := c.number()
		if !ok {
			return nil, false
		}
		return ast.TemplateParamIdx{N: n, Negative: true}, true
	}
	if ok, kind := parseMemberFunctionPtrDollarPrefix(c, false); ok {
		return kind, true
	}
	return nil, false
}

func parseDoubleDollarType(c *Context) (ast.Type, bool) {
	if c.eat('Y') {
		mod, ok := parseModifierByte(c)
		if !ok {
			return nil, false
		}
		typ, ok := parseType(c)
		if !ok {
			return nil, false
		}
		return ast.Pointer{Pointee: typ, Mod: mod}, true // typedef literal with modifier
	}
	if c.eat('T') {
		return ast.Primitive{Kind: ast.PrimVoid}, true // nullptr_t has no kind of its own; parsed and rendered as void
	}
	if c.eat('Q') {
		saved := c.parsingQualifiers
		c.parsingQualifiers = false
		fn, ok := parseFunction(c)
		c.parsingQualifiers = saved
		if !ok {
			return nil, false
		}
		return ast.RValueReference{Pointee: fn}, true
	}
	if c.eatSlice("BY") {
		return parseArray(c)
	}
	if c.eat('A') && c.eatSlice("6") {
		saved := c.parsingQualifiers
		c.parsingQualifiers = false
		fn, ok := parseFunction(c)
		c.parsingQualifiers = saved
		return fn, ok
	}
	if c.eatSlice("A8@@") {
		return parseFunction(c)
	}
	if c.eat('V') || c.eat('Z') {
		return ast.Unit{}, true
	}
	if c.eat('C') {
		// A cv-qualified-in-place type: the modifier is pushed ahead of the
		// real type that follows, same discipline as a pointee's modifier.
		mod, ok := parseModifierByte(c)
		if !ok {
			return nil, false
		}
		depth := len(c.modStack)
		c.pushModifiers(mod)
		typ, ok := parseType(c)
		c.modStack = c.modStack[:depth]
		if !ok {
			return nil, false
		}
		return typ, true
	}
	if ok, kind := parseMemberFunctionPtrDollarPrefix(c, true); ok {
		return kind, true
	}
	return nil, false
}

// parseMemberFunctionPtrDollarPrefix covers the `$<1|H|I|J>?` and
// `$$<1|H|I|J>?` member-function-pointer forms (§4.6).
func parseMemberFunctionPtrDollarPrefix(c *Context, doubled bool) (bool, ast.Type) {
	start := c.pos
	b, ok := c.peek()
	if !ok || (b != '1' && b != 'H' && b != 'I' && b != 'J') {
		return false, nil
	}
	c.pos++
	if !c.eat('?') {
		c.pos = start
		return false, nil
	}
	fn, ok := parseMemberFunctionPtr(c)
	if !ok {
		return false, nil
	}
	_ = doubled
	return true, fn
}

// storageVariableTable maps a digit 0-4 to its StorageVariable kind (§4.9).
var storageVariableTable = [5]ast.StorageVariable{
	ast.StoragePrivateStatic,
	ast.StorageProtectedStatic,
	ast.StoragePublicStatic,
	ast.StorageGlobal,
	ast.StorageFunctionLocalStatic,
}

// storageScopeTable maps a member-function scope letter (A-X) to its
// StorageScope bit-union (§4.9): visibility x linkage x virtual/thunk.
var storageScopeTable = buildStorageScopeTable()

func buildStorageScopeTable() map[byte]ast.StorageScope {
	type entry struct {
		vis   ast.StorageScope
		extra ast.StorageScope
	}
	groups := []entry{
		{ast.ScopePrivate, 0},
		{ast.ScopePrivate, ast.ScopeStatic},
		{ast.ScopePrivate, ast.ScopeVirtual},
		{ast.ScopePrivate, ast.ScopeThunk},
		{ast.ScopeProtected, 0},
		{ast.ScopeProtected, ast.ScopeStatic},
		{ast.ScopeProtected, ast.ScopeVirtual},
		{ast.ScopeProtected, ast.ScopeThunk},
		{ast.ScopePublic, 0},
		{ast.ScopePublic, ast.ScopeStatic},
		{ast.ScopePublic, ast.ScopeVirtual},
		{ast.ScopePublic, ast.ScopeThunk},
	}
	table := make(map[byte]ast.StorageScope, 24)
	letter := byte('A')
	for _, g := range groups {
		table[letter] = g.vis | g.extra           // near
		table[letter+1] = g.vis | g.extra | ast.ScopeFar // far
		letter += 2
	}
	return table
}
