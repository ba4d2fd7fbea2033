package parser

import "github.com/msvcdemangle/symbols/internal/ast"

// parseSymbol parses the grammar root: §4.3.
func parseSymbol(c *Context) (*ast.Symbol, bool) {
	if !c.descent() {
		return nil, false
	}
	defer c.ascent()

	if !c.eat('?') {
		return nil, false
	}

	if c.eatSlice("?@") {
		hash, ok := parseMD5Payload(c)
		if !ok {
			return nil, false
		}
		return &ast.Symbol{
			Path: &ast.Path{Leaf: ast.MD5Name{Hash: hash}},
			Type: ast.Unit{},
		}, true
	}

	if got, ok := c.peekSlice(4); ok && got == "$TSS" {
		// Scoped thread-safe static guard: acknowledged unimplemented in
		// the source this grammar was distilled from (§9). We match that
		// and fail rather than guess at an undocumented encoding.
		return nil, false
	}

	path, ok := parsePath(c)
	if !ok {
		return nil, false
	}

	sym := &ast.Symbol{Path: path, Type: ast.Unit{}}
	if c.eof() {
		return sym, true
	}

	// The leading type of a top-level symbol never parses this-qualifiers:
	// a free function at the root has no implicit this.
	saved := c.parsingQualifiers
	c.parsingQualifiers = false
	c.scope = path.Scope
	typ, ok := parseSymbolType(c)
	c.parsingQualifiers = saved
	if !ok {
		return nil, false
	}
	sym.Type = typ
	return sym, true
}

// parseMD5Payload reads exactly 32 hex characters followed by '@'. A
// payload whose hex length isn't 32 is a parse failure (§8 item 10).
func parseMD5Payload(c *Context) (string, bool) {
	start := c.pos
	for i := 0; i < 32; i++ {
		if _, ok := c.base16(); !ok {
			return "", false
		}
	}
	hash := string(c.input[start:c.pos])
	if !c.eat('@') {
		return "", false
	}
	return hash, true
}

// parsePath parses §4.4: a leaf UnqualifiedPath followed by a Scope
// terminated by '@'.
func parsePath(c *Context) (*ast.Path, bool) {
	leaf, ok := parseUnqualifiedPath(c)
	if !ok {
		return nil, false
	}
	scope, ok := parseScope(c)
	if !ok {
		return nil, false
	}
	return &ast.Path{Leaf: leaf, Scope: scope}, true
}

// parseUnqualifiedPath parses a leaf name: template, intrinsic, or literal.
func parseUnqualifiedPath(c *Context) (ast.UnqualifiedPath, bool) {
	if c.eat('?') {
		if c.eat('$') {
			tmpl, ok := parseTemplate(c, true)
			if !ok {
				return nil, false
			}
			return ast.UnqualifiedTemplate{Template: tmpl}, true
		}
		intr, ok := parseIntrinsics(c)
		if !ok {
			return nil, false
		}
		return intr, true
	}
	lit, ok := c.ident()
	if !ok {
		return nil, false
	}
	c.memorizeIdent(lit)
	return ast.UnqualifiedLiteral{Name: lit}, true
}

// parseScope parses §4.4's Scope: a sequence of NestedPath components,
// innermost first, terminated by '@'. An empty scope is a single '@'.
func parseScope(c *Context) (ast.Scope, bool) {
	var scope ast.Scope
	for {
		if c.eat('@') {
			return scope, true
		}
		comp, ok := parseNestedPath(c)
		if !ok {
			return nil, false
		}
		scope = append(scope, comp)
	}
}

// parseNestedPath parses one scope component (§4.4).
func parseNestedPath(c *Context) (ast.NestedPath, bool) {
	if d, ok := c.base10(); ok {
		lit, found := c.getIdent(d)
		if !found {
			return nil, false
		}
		return ast.NestedLiteral{Name: lit}, true
	}

	if c.eat('?') {
		switch {
		case c.eat('?'):
			// The second '?' is the nested symbol's own leading '?'.
			c.pos--
			if !c.descent() {
				return nil, false
			}
			sym, ok := parseSymbol(c)
			c.ascent()
			if !ok {
				return nil, false
			}
			return ast.NestedSymbol{Symbol: sym}, true
		case c.eat('$'):
			tmpl, ok := parseTemplate(c, true)
			if !ok {
				return nil, false
			}
			return ast.NestedTemplate{Template: tmpl}, true
		case c.eatSlice("A0x"):
			start := c.pos
			for {
				b, ok := c.peek()
				if !ok {
					return nil, false
				}
				if b == '@' {
					break
				}
				c.pos++
			}
			lit := ast.NewBorrowedLiteral(start, c.pos)
			c.pos++ // consume '@'
			c.memorizeIdent(lit)
			return ast.NestedAnonymous{Name: lit}, true
		case c.eat('Q'):
			lit, ok := c.ident()
			if !ok {
				return nil, false
			}
			c.memorizeIdent(lit)
			return ast.NestedInterface{Name: lit}, true
		default:
			n, ok := c.number()
			if !ok {
				return nil, false
			}
			return ast.NestedDisambiguator{N: n}, true
		}
	}

	lit, ok := c.ident()
	if !ok {
		return nil, false
	}
	c.memorizeIdent(lit)
	return ast.NestedLiteral{Name: lit}, true
}

// parseTemplate parses §3.2/§4.4's Template: a name plus a parameter list,
// using a fresh, private pair of back-reference tables that is discarded
// once the parameter list finishes. When memorizeNameInOuter is true (both
// the leaf and the NestedPath callers pass true) the template's own name is additionally memorised into
// the tables that were active before this call.
func parseTemplate(c *Context, memorizeNameInOuter bool) (*ast.Template, bool) {
	if !c.descent() {
		return nil, false
	}
	defer c.ascent()

	name, ok := c.ident()
	if !ok {
		return nil, false
	}
	if memorizeNameInOuter {
		c.memorizeIdent(name)
	}

	var params []ast.Type
	var innerOK bool
	c.withFreshBackrefs(func() {
		for {
			if c.eat('@') {
				innerOK = true
				return
			}
			if d, ok := c.base10(); ok {
				t, found := c.getType(d)
				if !found {
					innerOK = false
					return
				}
				params = append(params, t)
				continue
			}
			startPos := c.pos
			t, ok := parseType(c)
			if !ok {
				innerOK = false
				return
			}
			c.memorizeType(t, c.pos-startPos)
			params = append(params, t)
		}
	})
	if !innerOK {
		return nil, false
	}
	return &ast.Template{Name: name, Params: params}, true
}
