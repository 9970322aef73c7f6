package engine

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"
)

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// Token represents a streaming token with approximate input offset.
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
	Offset int64
}

// TokenSource is a minimal interface required by the engine.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}

// Limits controls enforcement while building a tree.
type Limits struct {
	// MaxDepth caps object/array nesting; <= 0 means unlimited.
	MaxDepth int
	// AllowDuplicates keeps the last value of a repeated object key instead
	// of failing.
	AllowDuplicates bool
}

// Issue codes reported in Error.
const (
	CodeParse     = "parse_error"
	CodeDuplicate = "duplicate_key"
	CodeDepth     = "depth_exceeded"
	CodeTrailing  = "trailing_data"
)

// Error is a build failure located by a JSON Pointer.
type Error struct {
	Code    string
	Path    string
	Message string
	Offset  int64
	Err     error
}

func (e *Error) Error() string {
	msg := e.Code + " at " + e.Path + ": " + e.Message
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// BuildTree consumes exactly one value from src and returns it as a generic
// tree of map[string]any, []any, string, bool, nil and json.Number.
func BuildTree(src TokenSource, lim Limits) (any, error) {
	b := &builder{src: src, lim: lim}
	tok, err := b.next("")
	if err != nil {
		return nil, err
	}
	v, err := b.value(tok, "", 0)
	if err != nil {
		return nil, err
	}
	if _, err := src.NextToken(); !errors.Is(err, io.EOF) {
		return nil, &Error{Code: CodeTrailing, Path: "/", Message: "data after the top-level value", Offset: src.Location()}
	}
	return v, nil
}

type builder struct {
	src TokenSource
	lim Limits
}

func (b *builder) next(path string) (Token, error) {
	tok, err := b.src.NextToken()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return Token{}, &Error{Code: CodeParse, Path: pointer(path), Message: "invalid JSON", Offset: b.src.Location(), Err: err}
	}
	return tok, nil
}

func (b *builder) value(tok Token, path string, depth int) (any, error) {
	switch tok.Kind {
	case KindBeginObject, KindBeginArray:
		if b.lim.MaxDepth > 0 && depth >= b.lim.MaxDepth {
			return nil, &Error{Code: CodeDepth, Path: pointer(path), Message: "max depth exceeded", Offset: tok.Offset}
		}
		if tok.Kind == KindBeginObject {
			return b.object(path, depth+1)
		}
		return b.array(path, depth+1)
	case KindString:
		return tok.String, nil
	case KindNumber:
		return json.Number(tok.Number), nil
	case KindBool:
		return tok.Bool, nil
	case KindNull:
		return nil, nil
	default:
		return nil, &Error{Code: CodeParse, Path: pointer(path), Message: "unexpected token", Offset: tok.Offset}
	}
}

func (b *builder) object(path string, depth int) (any, error) {
	m := make(map[string]any)
	for {
		tok, err := b.next(path)
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindEndObject {
			return m, nil
		}
		if tok.Kind != KindKey {
			return nil, &Error{Code: CodeParse, Path: pointer(path), Message: "expected object key", Offset: tok.Offset}
		}
		child := joinPointer(path, tok.String)
		if _, dup := m[tok.String]; dup && !b.lim.AllowDuplicates {
			return nil, &Error{Code: CodeDuplicate, Path: pointer(child), Message: "key '" + tok.String + "' duplicated", Offset: tok.Offset}
		}
		vt, err := b.next(child)
		if err != nil {
			return nil, err
		}
		v, err := b.value(vt, child, depth)
		if err != nil {
			return nil, err
		}
		m[tok.String] = v
	}
}

func (b *builder) array(path string, depth int) (any, error) {
	arr := []any{}
	for {
		tok, err := b.next(path)
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindEndArray {
			return arr, nil
		}
		v, err := b.value(tok, joinPointer(path, strconv.Itoa(len(arr))), depth)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}

var jsonPointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func joinPointer(base, token string) string {
	return base + "/" + jsonPointerEscaper.Replace(token)
}

func pointer(p string) string {
	if p == "" {
		return "/"
	}
	return p
}
