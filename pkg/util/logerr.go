package util

import (
	"github.com/sirupsen/logrus"
)

// LogErr logs the error with the message and arguments if the error is not nil.
// It returns true if the error is not nil.
// Examples:
// LogErr(err)
// LogErr(err, "error message")
// LogErr(err, "error message %s", "with argument")
func LogErr(err error, msgAndArgs ...interface{}) bool {
	return LogErrTo(logrus.StandardLogger(), err, msgAndArgs...)
}

// LogErrTo is LogErr with an explicit logger, for components that carry
// their own fields.
func LogErrTo(logger logrus.FieldLogger, err error, msgAndArgs ...interface{}) bool {
	if err == nil {
		return false
	}

	entry := logger.WithError(err)
	if len(msgAndArgs) == 0 {
		entry.Error(err.Error())
	} else if len(msgAndArgs) == 1 {
		msg := msgAndArgs[0].(string)
		entry.Error(msg)
	} else if len(msgAndArgs) > 1 {
		msg := msgAndArgs[0].(string)
		entry.Errorf(msg, msgAndArgs[1:]...)
	}

	return true
}
