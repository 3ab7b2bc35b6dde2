package cmd

import (
	"go.uber.org/zap"

	"github.com/dahl-build/gsr/pkg/log"
)

type Error struct {
	UserMessage string
	LogMessage  string
}

func (e *Error) Error() string {
	if e.LogMessage == "" {
		return e.UserMessage
	}

	return e.UserMessage + ": " + e.LogMessage
}

func LogError(err *Error, checkLogMessage string) {
	if err.LogMessage == "" {
		log.AuditError(err.UserMessage)
		return
	}

	log.Audit(err.UserMessage)
	log.Audit(checkLogMessage)
	zap.S().Error(err.LogMessage)
}
