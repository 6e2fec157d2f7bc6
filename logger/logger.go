// Package logger はlogrusをラップした構造化ロガーを提供する。
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger はlogrusのロガーをラップする
type Logger struct {
	log *logrus.Logger
}

// Entry はメソッドチェーンでフィールドを積み上げるためのラッパー
type Entry struct {
	entry *logrus.Entry
	level logrus.Level
}

// New は指定したレベルと出力先でLoggerを生成する
// 不正なレベルが指定された場合はinfoになる
func New(level string, output io.Writer) *Logger {
	if output == nil {
		output = os.Stderr
	}

	log := logrus.New()
	log.SetOutput(output)

	logLevel, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	log.SetLevel(logLevel)

	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})

	return &Logger{log: log}
}

// Discard は何も出力しないLoggerを返す
func Discard() *Logger {
	return New("panic", io.Discard)
}

// SetLevel は出力レベルを変更する
func (l *Logger) SetLevel(level string) {
	if logLevel, err := logrus.ParseLevel(strings.ToLower(level)); err == nil {
		l.log.SetLevel(logLevel)
	}
}

// Level は現在の出力レベルを返す
func (l *Logger) Level() string {
	return l.log.GetLevel().String()
}

func (l *Logger) Debug() *Entry { return l.newEntry(logrus.DebugLevel) }
func (l *Logger) Info() *Entry  { return l.newEntry(logrus.InfoLevel) }
func (l *Logger) Warn() *Entry  { return l.newEntry(logrus.WarnLevel) }
func (l *Logger) Error() *Entry { return l.newEntry(logrus.ErrorLevel) }

func (l *Logger) newEntry(level logrus.Level) *Entry {
	return &Entry{entry: logrus.NewEntry(l.log), level: level}
}

// Str は文字列のフィールドを追加する
func (e *Entry) Str(key, value string) *Entry {
	e.entry = e.entry.WithField(key, value)
	return e
}

// Int は整数のフィールドを追加する
func (e *Entry) Int(key string, value int) *Entry {
	e.entry = e.entry.WithField(key, value)
	return e
}

// Bool は真偽値のフィールドを追加する
func (e *Entry) Bool(key string, value bool) *Entry {
	e.entry = e.entry.WithField(key, value)
	return e
}

// Err はエラーのフィールドを追加する
func (e *Entry) Err(err error) *Entry {
	if err != nil {
		e.entry = e.entry.WithError(err)
	}
	return e
}

// Msg は積み上げたフィールドとともにメッセージを出力する
func (e *Entry) Msg(msg string) {
	e.entry.Log(e.level, msg)
}
