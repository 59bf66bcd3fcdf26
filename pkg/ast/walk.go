package ast

import (
	"reflect"

	"github.com/leapstack-labs/sqlkit/pkg/token"
)

var (
	nodeType = reflect.TypeOf((*Node)(nil)).Elem()
	spanType = reflect.TypeOf(token.Span{})
	astPkg   = reflect.TypeOf(Ident{}).PkgPath()
	tokenPkg = spanType.PkgPath()
)

// Walk traverses an AST depth-first and calls fn for each node, parents
// before children, in source order. If fn returns false the children of
// that node are skipped.
func Walk(node Node, fn func(node Node) bool) {
	if isNil(node) {
		return
	}
	if !fn(node) {
		return
	}
	walkChildren(reflect.ValueOf(node), fn, true)
}

// Children returns the direct child nodes of n.
func Children(n Node) []Node {
	var out []Node
	if isNil(n) {
		return nil
	}
	walkChildren(reflect.ValueOf(n), func(c Node) bool {
		out = append(out, c)
		return false
	}, true)
	return out
}

// walkChildren visits the nodes reachable from v without passing through
// another node. top is true for the node value itself.
func walkChildren(v reflect.Value, fn func(Node) bool, top bool) {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return
		}
		walkChildren(v.Elem(), fn, false)
		return
	case reflect.Ptr:
		if v.IsNil() {
			return
		}
		if !top && isASTNode(v.Type()) {
			Walk(v.Interface().(Node), fn)
			return
		}
		walkChildren(v.Elem(), fn, top)
		return
	}
	if !top && isASTNode(v.Type()) {
		Walk(v.Interface().(Node), fn)
		return
	}
	switch v.Kind() {
	case reflect.Struct:
		if v.Type().PkgPath() == tokenPkg {
			return
		}
		for i := 0; i < v.NumField(); i++ {
			walkChildren(v.Field(i), fn, false)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			walkChildren(v.Index(i), fn, false)
		}
	}
}

func isASTNode(t reflect.Type) bool {
	if !t.Implements(nodeType) {
		return false
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.PkgPath() == astPkg
}

// Span returns the union of every source span reachable from n: Ident
// spans, literal spans and attached keyword tokens. Nodes with no
// recoverable location return the empty span.
func Span(n any) token.Span {
	if n == nil {
		return token.Span{}
	}
	return collectSpan(reflect.ValueOf(n))
}

func collectSpan(v reflect.Value) token.Span {
	switch v.Kind() {
	case reflect.Interface, reflect.Ptr:
		if v.IsNil() {
			return token.Span{}
		}
		return collectSpan(v.Elem())
	case reflect.Struct:
		if v.Type() == spanType {
			return v.Interface().(token.Span)
		}
		var out token.Span
		for i := 0; i < v.NumField(); i++ {
			out = out.Union(collectSpan(v.Field(i)))
		}
		return out
	case reflect.Slice, reflect.Array:
		var out token.Span
		for i := 0; i < v.Len(); i++ {
			out = out.Union(collectSpan(v.Index(i)))
		}
		return out
	}
	return token.Span{}
}
