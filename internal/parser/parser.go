// Package parser implements Iris's recursive-descent SDL + value/type
// literal parser (spec.md §4.2), grounded on the teacher's single-struct,
// method-per-production control flow (internal/parser/parser.go:
// p.parseXxx() methods walking a *lexer.Lexer), generalized from TypeMUX's
// namespace/enum/type/union/service grammar to Iris's data/resolver/
// variant grammar and its stricter fail-fast (rather than accumulate-and-
// continue) error policy (spec.md §7: parse errors abort on first
// encounter).
package parser

import (
	"strings"

	"github.com/iris-graphql/iris/internal/ast"
	"github.com/iris-graphql/iris/internal/ierror"
	"github.com/iris-graphql/iris/internal/lexer"
	"github.com/iris-graphql/iris/internal/source"
)

// Options mirrors spec.md §6's parse options.
type Options struct {
	NoLocation bool
}

// node is the subset of ast.Node every concrete node type satisfies once
// its base.SetLoc is promoted; used only inside finish().
type node interface {
	ast.Node
	SetLoc(*ast.Loc)
}

// Parser holds the single current token a recursive-descent parse needs;
// there is no lookahead buffer beyond the current token, matching the
// teacher's parser shape.
type Parser struct {
	lex  *lexer.Lexer
	src  *source.Source
	opts Options
	tok  *lexer.Token
}

func newParser(src *source.Source, opts Options) (*Parser, error) {
	l := lexer.New(src)
	p := &Parser{lex: l, src: src, opts: opts}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) advance() error {
	tok, err := p.lex.Advance()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *Parser) peek(k lexer.Kind) bool { return p.tok.Kind == k }

func (p *Parser) peekKeyword(word string) bool {
	return p.tok.Kind == lexer.NAME && p.tok.Value == word
}

// expect consumes the current token if it matches k, else fails with
// `Expected <kind>, found <actualDesc>.` (spec.md §4.2).
func (p *Parser) expect(k lexer.Kind) (*lexer.Token, error) {
	tok := p.tok
	if tok.Kind != k {
		return nil, ierror.Syntaxf("Expected %s, found %s.", k, tok.Desc()).WithNode(tok)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return tok, nil
}

// expectKeyword consumes a NAME token whose value equals word, else fails
// with `Expected "<keyword>", found <desc>.`.
func (p *Parser) expectKeyword(word string) (*lexer.Token, error) {
	tok := p.tok
	if tok.Kind != lexer.NAME || tok.Value != word {
		return nil, ierror.Syntaxf("Expected %q, found %s.", word, tok.Desc()).WithNode(tok)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return tok, nil
}

// skipPunct advances and returns true if the current token is k, else
// leaves the cursor untouched and returns false.
func (p *Parser) skipPunct(k lexer.Kind) (bool, error) {
	if p.tok.Kind != k {
		return false, nil
	}
	if err := p.advance(); err != nil {
		return false, err
	}
	return true, nil
}

// skipKeyword is skipPunct's NAME-keyword counterpart.
func (p *Parser) skipKeyword(word string) (bool, error) {
	if !p.peekKeyword(word) {
		return false, nil
	}
	if err := p.advance(); err != nil {
		return false, err
	}
	return true, nil
}

func (p *Parser) unexpected(tok *lexer.Token) error {
	if tok == nil {
		tok = p.tok
	}
	return ierror.Syntaxf("Unexpected %s.", tok.Desc()).WithNode(tok)
}

// loc builds the Loc spanning from start up to (and including) the last
// token actually consumed, or nil under Options.NoLocation.
func (p *Parser) loc(start *lexer.Token) *ast.Loc {
	if p.opts.NoLocation {
		return nil
	}
	return &ast.Loc{Start: start, End: p.lex.LastToken, Source: p.src}
}

// finish attaches n's location (spanning from start) and returns n, letting
// every parseXxx method end with `return finish(p, &ast.Foo{...}, start), nil`
// instead of repeating a two-statement SetLoc dance.
func finish[T node](p *Parser, n T, start *lexer.Token) T {
	n.SetLoc(p.loc(start))
	return n
}

var reservedVariantNames = map[string]bool{"true": true, "false": true, "null": true}

// --- Entry points (spec.md §6) ------------------------------------------

// ParseDocument parses a full SDL document: Document = Definition+.
func ParseDocument(src *source.Source, opts Options) (*ast.Document, error) {
	p, err := newParser(src, opts)
	if err != nil {
		return nil, err
	}
	return p.parseDocument()
}

// ParseValue parses a single, possibly variable-containing value literal.
func ParseValue(src *source.Source) (ast.Node, error) {
	p, err := newParser(src, Options{})
	if err != nil {
		return nil, err
	}
	v, err := p.parseValueLiteral(false)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.EOF); err != nil {
		return nil, err
	}
	return v, nil
}

// ParseConstValue parses a single value literal that must not contain a
// variable.
func ParseConstValue(src *source.Source) (ast.Node, error) {
	p, err := newParser(src, Options{})
	if err != nil {
		return nil, err
	}
	v, err := p.parseValueLiteral(true)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.EOF); err != nil {
		return nil, err
	}
	return v, nil
}

// ParseType parses a single type reference.
func ParseType(src *source.Source) (ast.Node, error) {
	p, err := newParser(src, Options{})
	if err != nil {
		return nil, err
	}
	t, err := p.parseTypeReference()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.EOF); err != nil {
		return nil, err
	}
	return t, nil
}

// --- Document / definitions ---------------------------------------------

func (p *Parser) parseDocument() (*ast.Document, error) {
	start := p.tok
	var defs []ast.Node
	for !p.peek(lexer.EOF) {
		def, err := p.parseDefinition()
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return finish(p, &ast.Document{Definitions: defs}, start), nil
}

func (p *Parser) parseDefinition() (ast.Node, error) {
	var description *ast.StringValue
	if p.peek(lexer.STRING) || p.peek(lexer.BLOCK_STRING) {
		sv, err := p.parseStringValue()
		if err != nil {
			return nil, err
		}
		description = sv
	}

	if p.peek(lexer.BRACE_L) {
		if description != nil {
			return nil, p.unexpected(nil)
		}
		return p.parseOperationDefinition()
	}

	if !p.peek(lexer.NAME) {
		if description != nil {
			return nil, ierror.Syntaxf("Unexpected description, descriptions are supported only on type definitions.").WithNode(p.tok)
		}
		return nil, p.unexpected(nil)
	}

	switch p.tok.Value {
	case "data":
		return p.parseRoleTypeDefinition(description, ast.RoleData)
	case "resolver":
		return p.parseRoleTypeDefinition(description, ast.RoleResolver)
	case "directive":
		return p.parseDirectiveDefinition(description)
	case "query", "mutation", "subscription":
		if description != nil {
			return nil, ierror.Syntaxf("Unexpected description, descriptions are supported only on type definitions.").WithNode(p.tok)
		}
		return p.parseOperationDefinition()
	case "fragment":
		if description != nil {
			return nil, ierror.Syntaxf("Unexpected description, descriptions are supported only on type definitions.").WithNode(p.tok)
		}
		return p.parseFragmentDefinition()
	default:
		if description != nil {
			return nil, ierror.Syntaxf("Unexpected description, descriptions are supported only on type definitions.").WithNode(p.tok)
		}
		return nil, p.unexpected(nil)
	}
}

// parseRoleTypeDefinition implements both `data Name = variants` and
// `resolver Name = variants`, sharing the variant-disambiguation logic
// spec.md §4.2 specifies once for both keywords.
func (p *Parser) parseRoleTypeDefinition(description *ast.StringValue, role ast.Role) (ast.Node, error) {
	start := p.tok
	if _, err := p.expect(lexer.NAME); err != nil { // consumes "data"/"resolver"
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(false)
	if err != nil {
		return nil, err
	}

	variants, err := p.parseOptionalVariants(name)
	if err != nil {
		return nil, err
	}

	if role == ast.RoleData {
		return finish(p, &ast.DataTypeDefinition{Description: description, Name: name, Directives: directives, Variants: variants}, start), nil
	}
	return finish(p, &ast.ResolverTypeDefinition{Description: description, Name: name, Directives: directives, Variants: variants}, start), nil
}

// parseOptionalVariants implements the disambiguation rules in spec.md
// §4.2 "Variant syntax disambiguation":
//   - no '=' and no '{'        -> synthesize a single empty record variant
//   - '{' with or without '='  -> single record variant reusing typeName
//   - '=' followed by NAME or '|' -> '|'-separated variant list
//   - '=' followed by anything else -> "Expected Variant"
func (p *Parser) parseOptionalVariants(typeName *ast.Name) ([]*ast.VariantDefinition, error) {
	hasEquals, err := p.skipPunct(lexer.EQUALS)
	if err != nil {
		return nil, err
	}
	if !hasEquals && !p.peek(lexer.BRACE_L) {
		return []*ast.VariantDefinition{{Name: typeName, Fields: []*ast.FieldDefinition{}}}, nil
	}

	if p.peek(lexer.BRACE_L) {
		fields, err := p.parseFieldsBlock()
		if err != nil {
			return nil, err
		}
		return []*ast.VariantDefinition{{Name: typeName, Fields: fields}}, nil
	}

	if !p.peek(lexer.NAME) && !p.peek(lexer.PIPE) {
		return nil, ierror.Syntaxf("Expected Variant.").WithNode(p.tok)
	}
	return p.parseVariantList()
}

func (p *Parser) parseVariantList() ([]*ast.VariantDefinition, error) {
	// A leading '|' is optional.
	if _, err := p.skipPunct(lexer.PIPE); err != nil {
		return nil, err
	}

	var variants []*ast.VariantDefinition
	for {
		v, err := p.parseVariant()
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)

		hasPipe, err := p.skipPunct(lexer.PIPE)
		if err != nil {
			return nil, err
		}
		if !hasPipe {
			break
		}
		if !p.peek(lexer.NAME) {
			return nil, ierror.Syntaxf("Expected Name, found %s.", p.tok.Desc()).WithNode(p.tok)
		}
	}
	return variants, nil
}

func (p *Parser) parseVariant() (*ast.VariantDefinition, error) {
	start := p.tok
	var description *ast.StringValue
	if p.peek(lexer.STRING) || p.peek(lexer.BLOCK_STRING) {
		sv, err := p.parseStringValue()
		if err != nil {
			return nil, err
		}
		description = sv
	}

	nameTok := p.tok
	if nameTok.Kind == lexer.NAME && reservedVariantNames[nameTok.Value] {
		return nil, ierror.Syntaxf("Name %q is reserved and cannot be used for a variant.", nameTok.Value).WithNode(nameTok)
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(false)
	if err != nil {
		return nil, err
	}

	var fields []*ast.FieldDefinition
	if p.peek(lexer.BRACE_L) {
		fields, err = p.parseFieldsBlock()
		if err != nil {
			return nil, err
		}
	}

	return finish(p, &ast.VariantDefinition{Description: description, Name: name, Directives: directives, Fields: fields}, start), nil
}

func (p *Parser) parseFieldsBlock() ([]*ast.FieldDefinition, error) {
	if _, err := p.expect(lexer.BRACE_L); err != nil {
		return nil, err
	}
	fields := []*ast.FieldDefinition{}
	for !p.peek(lexer.BRACE_R) {
		f, err := p.parseFieldDefinition()
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	if _, err := p.expect(lexer.BRACE_R); err != nil {
		return nil, err
	}
	return fields, nil
}

func (p *Parser) parseFieldDefinition() (*ast.FieldDefinition, error) {
	start := p.tok
	var description *ast.StringValue
	if p.peek(lexer.STRING) || p.peek(lexer.BLOCK_STRING) {
		sv, err := p.parseStringValue()
		if err != nil {
			return nil, err
		}
		description = sv
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var args []*ast.ArgumentDefinition
	if p.peek(lexer.PAREN_L) {
		args, err = p.parseArgumentDefs()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}
	ty, err := p.parseTypeReference()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(false)
	if err != nil {
		return nil, err
	}

	return finish(p, &ast.FieldDefinition{Description: description, Name: name, Arguments: args, Type: ty, Directives: directives}, start), nil
}

func (p *Parser) parseArgumentDefs() ([]*ast.ArgumentDefinition, error) {
	if _, err := p.expect(lexer.PAREN_L); err != nil {
		return nil, err
	}
	var args []*ast.ArgumentDefinition
	for !p.peek(lexer.PAREN_R) {
		a, err := p.parseArgumentDef()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
	}
	if len(args) == 0 {
		return nil, ierror.Syntaxf("Expected Name, found %s.", p.tok.Desc()).WithNode(p.tok)
	}
	if _, err := p.expect(lexer.PAREN_R); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parseArgumentDef() (*ast.ArgumentDefinition, error) {
	start := p.tok
	var description *ast.StringValue
	if p.peek(lexer.STRING) || p.peek(lexer.BLOCK_STRING) {
		sv, err := p.parseStringValue()
		if err != nil {
			return nil, err
		}
		description = sv
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}
	ty, err := p.parseTypeReference()
	if err != nil {
		return nil, err
	}
	var def ast.Node
	hasDefault, err := p.skipPunct(lexer.EQUALS)
	if err != nil {
		return nil, err
	}
	if hasDefault {
		def, err = p.parseValueLiteral(true)
		if err != nil {
			return nil, err
		}
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	return finish(p, &ast.ArgumentDefinition{Description: description, Name: name, Type: ty, DefaultValue: def, Directives: directives}, start), nil
}

// --- Type references (spec.md §4.2: TypeRef = NamedType | '[' TypeRef ']' | TypeRef '?') ---

func (p *Parser) parseTypeReference() (ast.Node, error) {
	start := p.tok
	var ty ast.Node
	if ok, err := p.skipPunct(lexer.BRACKET_L); err != nil {
		return nil, err
	} else if ok {
		inner, err := p.parseTypeReference()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.BRACKET_R); err != nil {
			return nil, err
		}
		ty = finish(p, &ast.ListType{Type: inner}, start)
	} else {
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		ty = finish(p, &ast.NamedType{Name: name}, start)
	}

	for {
		ok, err := p.skipPunct(lexer.QUESTION)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		ty = finish(p, &ast.MaybeType{Type: ty}, start)
	}
	return ty, nil
}

// --- Values (spec.md §4.2 parseValueLiteral) ----------------------------

func (p *Parser) parseValueLiteral(isConst bool) (ast.Node, error) {
	start := p.tok
	switch p.tok.Kind {
	case lexer.BRACKET_L:
		return p.parseListValue(isConst)
	case lexer.BRACE_L:
		return p.parseObjectValue(isConst)
	case lexer.INT:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return finish(p, &ast.IntValue{Value: start.Value}, start), nil
	case lexer.FLOAT:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return finish(p, &ast.FloatValue{Value: start.Value}, start), nil
	case lexer.STRING, lexer.BLOCK_STRING:
		return p.parseStringValue()
	case lexer.NAME:
		switch start.Value {
		case "true", "false":
			if err := p.advance(); err != nil {
				return nil, err
			}
			return finish(p, &ast.BooleanValue{Value: start.Value == "true"}, start), nil
		case "null":
			if err := p.advance(); err != nil {
				return nil, err
			}
			return finish(p, &ast.NullValue{}, start), nil
		default:
			if err := p.advance(); err != nil {
				return nil, err
			}
			return finish(p, &ast.EnumValue{Value: start.Value}, start), nil
		}
	case lexer.DOLLAR:
		if isConst {
			// The name token is only lexed once '$' is consumed, so parse
			// the whole variable first to report its name.
			v, err := p.parseVariable()
			if err != nil {
				return nil, err
			}
			return nil, ierror.Syntaxf("Unexpected variable \"$%s\" in constant value.", v.Name.Value).WithNode(start)
		}
		return p.parseVariable()
	default:
		return nil, p.unexpected(nil)
	}
}

func (p *Parser) parseStringValue() (*ast.StringValue, error) {
	start := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}
	return finish(p, &ast.StringValue{Value: start.Value, Block: start.Kind == lexer.BLOCK_STRING}, start), nil
}

func (p *Parser) parseVariable() (*ast.Variable, error) {
	start := p.tok
	if _, err := p.expect(lexer.DOLLAR); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	return finish(p, &ast.Variable{Name: name}, start), nil
}

func (p *Parser) parseListValue(isConst bool) (*ast.ListValue, error) {
	start := p.tok
	if _, err := p.expect(lexer.BRACKET_L); err != nil {
		return nil, err
	}
	values := []ast.Node{}
	for !p.peek(lexer.BRACKET_R) {
		v, err := p.parseValueLiteral(isConst)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	if _, err := p.expect(lexer.BRACKET_R); err != nil {
		return nil, err
	}
	return finish(p, &ast.ListValue{Values: values}, start), nil
}

func (p *Parser) parseObjectValue(isConst bool) (*ast.ObjectValue, error) {
	start := p.tok
	if _, err := p.expect(lexer.BRACE_L); err != nil {
		return nil, err
	}
	fields := []*ast.ObjectField{}
	for !p.peek(lexer.BRACE_R) {
		f, err := p.parseObjectField(isConst)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	if _, err := p.expect(lexer.BRACE_R); err != nil {
		return nil, err
	}
	return finish(p, &ast.ObjectValue{Fields: fields}, start), nil
}

func (p *Parser) parseObjectField(isConst bool) (*ast.ObjectField, error) {
	start := p.tok
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}
	v, err := p.parseValueLiteral(isConst)
	if err != nil {
		return nil, err
	}
	return finish(p, &ast.ObjectField{Name: name, Value: v}, start), nil
}

func (p *Parser) parseName() (*ast.Name, error) {
	start := p.tok
	tok, err := p.expect(lexer.NAME)
	if err != nil {
		return nil, err
	}
	return finish(p, &ast.Name{Value: tok.Value}, start), nil
}

// --- Directives ----------------------------------------------------------

func (p *Parser) parseDirectives(isConst bool) ([]*ast.Directive, error) {
	var directives []*ast.Directive
	for p.peek(lexer.AT) {
		d, err := p.parseDirective(isConst)
		if err != nil {
			return nil, err
		}
		directives = append(directives, d)
	}
	return directives, nil
}

func (p *Parser) parseDirective(isConst bool) (*ast.Directive, error) {
	start := p.tok
	if _, err := p.expect(lexer.AT); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	args, err := p.parseArguments(isConst)
	if err != nil {
		return nil, err
	}
	return finish(p, &ast.Directive{Name: name, Arguments: args}, start), nil
}

func (p *Parser) parseArguments(isConst bool) ([]*ast.Argument, error) {
	if !p.peek(lexer.PAREN_L) {
		return nil, nil
	}
	if _, err := p.expect(lexer.PAREN_L); err != nil {
		return nil, err
	}
	var args []*ast.Argument
	for !p.peek(lexer.PAREN_R) {
		a, err := p.parseArgument(isConst)
		if err != nil {
			return nil, err
		}
		args = append(args, a)
	}
	if _, err := p.expect(lexer.PAREN_R); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parseArgument(isConst bool) (*ast.Argument, error) {
	start := p.tok
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}
	v, err := p.parseValueLiteral(isConst)
	if err != nil {
		return nil, err
	}
	return finish(p, &ast.Argument{Name: name, Value: v}, start), nil
}

// --- Directive definitions -----------------------------------------------

var directiveLocations = map[string]bool{
	"QUERY": true, "MUTATION": true, "SUBSCRIPTION": true, "FIELD": true,
	"FRAGMENT_DEFINITION": true, "FRAGMENT_SPREAD": true, "INLINE_FRAGMENT": true,
	"VARIABLE_DEFINITION": true, "SCHEMA": true, "SCALAR": true, "OBJECT": true,
	"FIELD_DEFINITION": true, "ARGUMENT_DEFINITION": true, "INTERFACE": true,
	"UNION": true, "ENUM": true, "ENUM_VALUE": true, "INPUT_OBJECT": true,
	"INPUT_FIELD_DEFINITION": true, "VARIANT_DEFINITION": true,
}

func (p *Parser) parseDirectiveDefinition(description *ast.StringValue) (*ast.DirectiveDefinition, error) {
	start := p.tok
	if _, err := p.expectKeyword("directive"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.AT); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	var args []*ast.ArgumentDefinition
	if p.peek(lexer.PAREN_L) {
		args, err = p.parseArgumentDefs()
		if err != nil {
			return nil, err
		}
	}
	repeatable, err := p.skipKeyword("repeatable")
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("on"); err != nil {
		return nil, err
	}
	locs, err := p.parseDirectiveLocations()
	if err != nil {
		return nil, err
	}
	return finish(p, &ast.DirectiveDefinition{Description: description, Name: name, Arguments: args, Repeatable: repeatable, Locations: locs}, start), nil
}

func (p *Parser) parseDirectiveLocations() ([]*ast.Name, error) {
	if _, err := p.skipPunct(lexer.PIPE); err != nil {
		return nil, err
	}
	var locs []*ast.Name
	for {
		tok := p.tok
		if tok.Kind != lexer.NAME || !directiveLocations[strings.ToUpper(tok.Value)] {
			return nil, ierror.Syntaxf("Unexpected %s.", tok.Desc()).WithNode(tok)
		}
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		locs = append(locs, name)

		hasPipe, err := p.skipPunct(lexer.PIPE)
		if err != nil {
			return nil, err
		}
		if !hasPipe {
			break
		}
	}
	return locs, nil
}

// --- Executable definitions (spec.md §3/§9 Open Question #1: kept in the
// parser grammar even though no executor in this toolkit consumes them) --

func (p *Parser) parseOperationDefinition() (*ast.OperationDefinition, error) {
	start := p.tok

	if p.peek(lexer.BRACE_L) {
		ss, err := p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
		return finish(p, &ast.OperationDefinition{Operation: "query", SelectionSet: ss}, start), nil
	}

	opTok, err := p.expect(lexer.NAME)
	if err != nil {
		return nil, err
	}
	if opTok.Value != "query" && opTok.Value != "mutation" && opTok.Value != "subscription" {
		return nil, ierror.Syntaxf("Unexpected %s.", opTok.Desc()).WithNode(opTok)
	}

	var name *ast.Name
	if p.peek(lexer.NAME) {
		name, err = p.parseName()
		if err != nil {
			return nil, err
		}
	}
	varDefs, err := p.parseVariableDefinitions()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(false)
	if err != nil {
		return nil, err
	}
	ss, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}
	return finish(p, &ast.OperationDefinition{Operation: opTok.Value, Name: name, VariableDefinitions: varDefs, Directives: directives, SelectionSet: ss}, start), nil
}

func (p *Parser) parseVariableDefinitions() ([]*ast.VariableDefinition, error) {
	if !p.peek(lexer.PAREN_L) {
		return nil, nil
	}
	if _, err := p.expect(lexer.PAREN_L); err != nil {
		return nil, err
	}
	var defs []*ast.VariableDefinition
	for !p.peek(lexer.PAREN_R) {
		d, err := p.parseVariableDefinition()
		if err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	if _, err := p.expect(lexer.PAREN_R); err != nil {
		return nil, err
	}
	return defs, nil
}

func (p *Parser) parseVariableDefinition() (*ast.VariableDefinition, error) {
	start := p.tok
	v, err := p.parseVariable()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}
	ty, err := p.parseTypeReference()
	if err != nil {
		return nil, err
	}
	var def ast.Node
	hasDefault, err := p.skipPunct(lexer.EQUALS)
	if err != nil {
		return nil, err
	}
	if hasDefault {
		def, err = p.parseValueLiteral(true)
		if err != nil {
			return nil, err
		}
	}
	return finish(p, &ast.VariableDefinition{Variable: v, Type: ty, DefaultValue: def}, start), nil
}

func (p *Parser) parseSelectionSet() (*ast.SelectionSet, error) {
	start := p.tok
	if _, err := p.expect(lexer.BRACE_L); err != nil {
		return nil, err
	}
	var sels []ast.Node
	for !p.peek(lexer.BRACE_R) {
		s, err := p.parseSelection()
		if err != nil {
			return nil, err
		}
		sels = append(sels, s)
	}
	if _, err := p.expect(lexer.BRACE_R); err != nil {
		return nil, err
	}
	return finish(p, &ast.SelectionSet{Selections: sels}, start), nil
}

func (p *Parser) parseSelection() (ast.Node, error) {
	if p.peek(lexer.SPREAD) {
		return p.parseFragment()
	}
	return p.parseField()
}

func (p *Parser) parseField() (*ast.Field, error) {
	start := p.tok
	nameOrAlias, err := p.parseName()
	if err != nil {
		return nil, err
	}
	var alias, name *ast.Name
	if ok, err := p.skipPunct(lexer.COLON); err != nil {
		return nil, err
	} else if ok {
		alias = nameOrAlias
		name, err = p.parseName()
		if err != nil {
			return nil, err
		}
	} else {
		name = nameOrAlias
	}

	var args []*ast.Argument
	if p.peek(lexer.PAREN_L) {
		args, err = p.parseArguments(false)
		if err != nil {
			return nil, err
		}
	}
	directives, err := p.parseDirectives(false)
	if err != nil {
		return nil, err
	}
	var ss *ast.SelectionSet
	if p.peek(lexer.BRACE_L) {
		ss, err = p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
	}
	return finish(p, &ast.Field{Alias: alias, Name: name, Arguments: args, Directives: directives, SelectionSet: ss}, start), nil
}

func (p *Parser) parseFragment() (ast.Node, error) {
	start := p.tok
	if _, err := p.expect(lexer.SPREAD); err != nil {
		return nil, err
	}

	if p.peekKeyword("on") {
		return p.parseInlineFragment(start)
	}
	if p.peek(lexer.NAME) {
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		directives, err := p.parseDirectives(false)
		if err != nil {
			return nil, err
		}
		return finish(p, &ast.FragmentSpread{Name: name, Directives: directives}, start), nil
	}
	return p.parseInlineFragment(start)
}

func (p *Parser) parseInlineFragment(start *lexer.Token) (*ast.InlineFragment, error) {
	var cond *ast.NamedType
	if ok, err := p.skipKeyword("on"); err != nil {
		return nil, err
	} else if ok {
		condStart := p.tok
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		cond = finish(p, &ast.NamedType{Name: name}, condStart)
	}
	directives, err := p.parseDirectives(false)
	if err != nil {
		return nil, err
	}
	ss, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}
	return finish(p, &ast.InlineFragment{TypeCondition: cond, Directives: directives, SelectionSet: ss}, start), nil
}

func (p *Parser) parseFragmentDefinition() (*ast.FragmentDefinition, error) {
	start := p.tok
	if _, err := p.expectKeyword("fragment"); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if name.Value == "on" {
		return nil, ierror.Syntaxf("Unexpected Name \"on\".").WithNode(p.lex.LastToken)
	}
	varDefs, err := p.parseVariableDefinitions()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("on"); err != nil {
		return nil, err
	}
	condStart := p.tok
	condName, err := p.parseName()
	if err != nil {
		return nil, err
	}
	cond := finish(p, &ast.NamedType{Name: condName}, condStart)
	directives, err := p.parseDirectives(false)
	if err != nil {
		return nil, err
	}
	ss, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}
	return finish(p, &ast.FragmentDefinition{Name: name, VariableDefinitions: varDefs, TypeCondition: cond, Directives: directives, SelectionSet: ss}, start), nil
}
