// Package analyzer rewrites table-expression trees. Its single structural
// pass, lean projection, restricts every table leaf to the columns actually
// consumed downstream of it.
package analyzer

import (
	"os"

	"github.com/sirupsen/logrus"
	errors "gopkg.in/src-d/go-errors.v1"
)

const debugOptimizerKey = "DEBUG_OPTIMIZER"

// errNoRule is an internal-consistency error: a node kind reached the
// rewrite dispatch without a rule.
var errNoRule = errors.NewKind("lean projection: no rule for node of type %T")

// Analyzer applies structural rewrites to expression trees.
type Analyzer struct {
	// Whether to log debugging messages about each rewrite step.
	Debug bool
}

// NewDefault creates an Analyzer, enabling debug logging when the
// DEBUG_OPTIMIZER environment variable is set.
func NewDefault() *Analyzer {
	_, debug := os.LookupEnv(debugOptimizerKey)
	return &Analyzer{Debug: debug}
}

// Log prints an INFO message with the given message and args if the analyzer
// is in debug mode.
func (a *Analyzer) Log(msg string, args ...interface{}) {
	if a != nil && a.Debug {
		logrus.Infof(msg, args...)
	}
}
