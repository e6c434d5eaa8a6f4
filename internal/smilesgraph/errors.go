// Package smilesgraph coding=utf-8
// @Project : go-selfies
// @Author  : chengxiang.luo
// @Email   : chengxiang.luo@foxmail.com
// @File    : errors.go
// @Software: GoLand
package smilesgraph

import "github.com/pkg/errors"

// MalformedSmiles is returned by the tokenizer when the input cannot be
// split into a well-formed symbol sequence.
type MalformedSmiles struct {
	cause error
}

func (e *MalformedSmiles) Error() string {
	return "malformed SMILES: " + e.cause.Error()
}

func (e *MalformedSmiles) Unwrap() error {
	return e.cause
}

func malformed(format string, args ...interface{}) error {
	return &MalformedSmiles{cause: errors.Errorf(format, args...)}
}

// Unkekulizable is returned when an aromatic subgraph has no valid
// single/double bond alternation.
type Unkekulizable struct {
	cause error
}

func (e *Unkekulizable) Error() string {
	return "unkekulizable: " + e.cause.Error()
}

func (e *Unkekulizable) Unwrap() error {
	return e.cause
}

func unkekulizable(format string, args ...interface{}) error {
	return &Unkekulizable{cause: errors.Errorf(format, args...)}
}
