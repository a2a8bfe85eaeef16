package factory

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func NewModuleLogger(module string) logrus.FieldLogger {
	return logrus.WithField("module", module)
}

func NewRunID() string {
	return fmt.Sprintf("cli-%s", uuid.New().String())
}

func LoggerWithRunID(logger logrus.FieldLogger, runID string) logrus.FieldLogger {
	return logger.WithField("run_id", runID)
}
