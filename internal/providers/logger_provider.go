package providers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"dirfav/internal/structures"
)

type TypeEnum uint8

const (
	TypeApp TypeEnum = iota
	TypeGet
	TypePost
	TypeStorage
	TypeGateway
)

func GetLogTypeByRequestType(requestType string) TypeEnum {
	if requestType == http.MethodPost {
		return TypePost
	}
	return TypeGet
}

type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

var logFiles = map[TypeEnum]string{
	TypeApp:     "app.log",
	TypeGet:     "get.log",
	TypePost:    "post.log",
	TypeStorage: "storage.log",
	TypeGateway: "gateway.log",
}

type LogProvider struct {
	loggers map[TypeEnum]zerolog.Logger
	files   []*os.File
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", conf.Logger.Level, err)
	}

	provider := &LogProvider{
		loggers: make(map[TypeEnum]zerolog.Logger),
	}

	for t, name := range logFiles {
		path := filepath.Join(conf.Logger.Dir, name)
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, os.FileMode(conf.Logger.Mode))
		if err != nil {
			provider.Close()
			return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
		}
		provider.files = append(provider.files, file)

		var logger zerolog.Logger
		if conf.Debug {
			multi := zerolog.MultiLevelWriter(file, zerolog.ConsoleWriter{Out: os.Stderr})
			logger = zerolog.New(multi)
		} else {
			logger = zerolog.New(file)
		}
		provider.loggers[t] = logger.Level(level).With().Timestamp().Logger()
	}

	return provider, nil
}

func (l *LogProvider) log(t TypeEnum, level zerolog.Level, format string, args ...interface{}) {
	logger, ok := l.loggers[t]
	if !ok {
		logger = l.loggers[TypeApp]
	}
	logger.WithLevel(level).Msgf(format, args...)
}

func (l *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	l.log(t, zerolog.ErrorLevel, format, args...)
}

func (l *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	l.log(t, zerolog.WarnLevel, format, args...)
}

func (l *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	l.log(t, zerolog.DebugLevel, format, args...)
}

func (l *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	l.log(t, zerolog.InfoLevel, format, args...)
}

func (l *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	l.log(t, zerolog.FatalLevel, format, args...)
	os.Exit(1)
}

func (l *LogProvider) Close() {
	for _, file := range l.files {
		_ = file.Close()
	}
}
