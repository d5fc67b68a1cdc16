// Package screens holds what the TUI screens share: the services they are
// built from.
package screens

import (
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/careerfit/internal/advisor"
	"github.com/abhisek/careerfit/internal/questionbank"
	"github.com/abhisek/careerfit/internal/scoring"
	"github.com/abhisek/careerfit/internal/store"
)

// Deps are the services a screen may use. Reports and Advisor are optional;
// screens degrade when they are nil.
type Deps struct {
	Bank          *questionbank.Bank
	Scoring       scoring.Config
	AnswerKeyName string

	Reports     store.ReportRepo
	Archive     bool
	ArchiveKeep int

	Advisor *advisor.Advisor
	Log     *zap.Logger

	// Now stamps reports. Defaults to time.Now.
	Now func() time.Time
}

// Logger returns d.Log, or a no-op logger when unset.
func (d Deps) Logger() *zap.Logger {
	if d.Log == nil {
		return zap.NewNop()
	}
	return d.Log
}

// Clock returns d.Now, or time.Now when unset.
func (d Deps) Clock() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}
