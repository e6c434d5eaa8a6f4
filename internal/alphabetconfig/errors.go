// Package alphabetconfig coding=utf-8
// @Project : go-selfies
// @Author  : chengxiang.luo
// @Email   : chengxiang.luo@foxmail.com
// @File    : errors.go
// @Software: GoLand
//
// Package alphabetconfig holds the mutable, call-local alphabet
// configuration (§4.7): which elements SELFIES symbols are defined over,
// and what valence cap each carries.
package alphabetconfig

import "github.com/pkg/errors"

// AlphabetConflict reports an invalid or self-contradictory alphabet
// configuration request, such as a non-positive valence cap.
type AlphabetConflict struct {
	cause error
}

func (e *AlphabetConflict) Error() string { return "alphabet conflict: " + e.cause.Error() }
func (e *AlphabetConflict) Unwrap() error { return e.cause }

func conflict(format string, args ...interface{}) error {
	return &AlphabetConflict{cause: errors.Errorf(format, args...)}
}
