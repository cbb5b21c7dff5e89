package content

import (
	_ "embed"
)

//go:embed builtin/quiz.json
var builtinQuizJSON []byte

// Builtin returns the embedded sample quiz. It ships inside the binary so
// the app is usable before any content directory exists.
func Builtin() (*Quiz, error) {
	return Parse(builtinQuizJSON)
}
