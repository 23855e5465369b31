package utils

import (
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
)

var Logger = logrus.New()

func init() {
	Logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})
	Logger.SetLevel(logrus.InfoLevel)
}

func LogInfo(message string) {
	Logger.WithFields(logrus.Fields{
		"function": getCaller(),
		"source":   "app",
	}).Info(message)
}

func LogSuccess(message string) {
	Logger.WithFields(logrus.Fields{
		"function": getCaller(),
		"status":   "success",
		"source":   "app",
	}).Info(message)
}

func LogError(err error, message string) {
	entry := Logger.WithFields(logrus.Fields{
		"function": getCaller(),
		"status":   "error",
		"source":   "app",
	})
	if err != nil {
		entry = entry.WithField("error", err.Error())
	}
	entry.Error(message)
}

func LogErrorWithUser(userID interface{}, err error, message string) {
	if userID == nil || userID == "" {
		userID = "0"
	}
	entry := Logger.WithFields(logrus.Fields{
		"function": getCaller(),
		"status":   "error",
		"source":   "app",
		"user_id":  userID,
	})
	if err != nil {
		entry = entry.WithField("error", err.Error())
	}
	entry.Error(message)
}

func LogSuccessWithUser(userID interface{}, message string) {
	if userID == nil || userID == "" {
		userID = "0"
	}
	Logger.WithFields(logrus.Fields{
		"function": getCaller(),
		"status":   "success",
		"source":   "app",
		"user_id":  userID,
	}).Info(message)
}

func getCaller() string {
	pc, _, _, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	return fn.Name()
}
