package saldata

import (
	"fmt"

	"github.com/reoring/saldata/i18n"
)

// IssueAt creates an Issue at the given path. The message is translated from
// code with data filling its placeholders; data is also copied into Params.
func IssueAt(p PathRef, code string, node any, data map[string]string) Issue {
	var params map[string]any
	if len(data) > 0 {
		params = make(map[string]any, len(data))
		for k, v := range data {
			params[k] = v
		}
	}
	return Issue{Path: p.Pointer(), Code: code, Message: i18n.T(code, data), Node: node, Params: params}
}

// singleIssue wraps one issue as an error.
func singleIssue(p PathRef, code string, node any, data map[string]string) error {
	return Issues{IssueAt(p, code, node, data)}
}

func malformed(p PathRef, node any, format string, a ...any) error {
	return singleIssue(p, CodeMalformedInput, node, map[string]string{"detail": fmt.Sprintf(format, a...)})
}

func mismatch(p PathRef, node any, expected, got string) error {
	return singleIssue(p, CodeTypeMismatch, node, map[string]string{"expected": expected, "got": got})
}

func summaryAccess() error {
	return singleIssue(RootPath(), CodeSummaryPayloadAccess, nil, nil)
}

// withCause attaches cause to every issue of err when err is Issues.
func withCause(err, cause error) error {
	if iss, ok := err.(Issues); ok {
		for i := range iss {
			iss[i].Cause = cause
		}
		return iss
	}
	return err
}

// relocate moves every issue of err to p and attaches node. It is used for
// errors produced by path-less helpers such as Strides.
func relocate(err error, p PathRef, node any) error {
	if iss, ok := err.(Issues); ok {
		for i := range iss {
			iss[i].Path = p.Pointer()
			iss[i].Node = node
		}
		return iss
	}
	return err
}

// nest prefixes every issue path of err with p. Children encode and decode
// relative to themselves; the parent adds its own location.
func nest(err error, p PathRef) error {
	iss, ok := err.(Issues)
	if !ok {
		return err
	}
	prefix := p.Pointer()
	if prefix == "/" {
		return iss
	}
	for i := range iss {
		if iss[i].Path == "/" {
			iss[i].Path = prefix
		} else {
			iss[i].Path = prefix + iss[i].Path
		}
	}
	return iss
}
