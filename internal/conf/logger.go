package conf

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

func newFileLogger() io.Writer {
	return &lumberjack.Logger{
		Filename:  filepath.Join(loggerFileSetting.SavePath, loggerFileSetting.FileName+loggerFileSetting.FileExt),
		MaxSize:   600,
		MaxAge:    10,
		LocalTime: true,
	}
}

func setupLogger() {
	if loggerSetting.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logrus.SetLevel(loggerSetting.logLevel())

	if CfgIf("LoggerFile") {
		logrus.SetOutput(io.MultiWriter(os.Stdout, newFileLogger()))
		logrus.Infof("use LoggerFile as logger output at %s", loggerFileSetting.SavePath)
	} else {
		logrus.SetOutput(os.Stdout)
	}
}
