package helpers

import (
	"fmt"
	log "github.com/sirupsen/logrus"
	tb "gopkg.in/tucnak/telebot.v2"
	"io"
	"os"
	"strconv"
	"time"
)

type FileLogger struct {
	telegramOutput bool
	telegramToken  string
	telegramChatId string
}

func NewFileLogger() (*FileLogger, error) {
	telegramOutput, _ := strconv.ParseBool(os.Getenv("telegramOutput"))
	var telegramToken string
	var telegramChatId string

	if telegramOutput {
		telegramToken = os.Getenv("telegramToken")
		if telegramToken == "" {
			return nil, fmt.Errorf("telegramOutput set to true but telegramToken parameter not found")
		}
		telegramChatId = os.Getenv("telegramChatId")
		if telegramChatId == "" {
			return nil, fmt.Errorf("telegramOutput set to true but telegramChatId parameter not found")
		}
	}

	return &FileLogger{
		telegramChatId: telegramChatId,
		telegramOutput: telegramOutput,
		telegramToken:  telegramToken,
	}, nil
}

var defaultLogger = newPlainLogger(io.Discard, log.InfoLevel)
var Logger = &FileLogger{}

// InitLogger points the package logger at logFile ("-" for stderr) and enables Telegram output
// when configured through the environment. Until it is called, log lines are discarded.
func InitLogger(logFile string, level string) error {
	fileLogger, err := NewFileLogger()
	if err != nil {
		return err
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}

	var output io.Writer = os.Stderr
	if logFile != "-" {
		if logFile == "" {
			logFile = "grader.log"
		}
		f, err := os.OpenFile(logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return fmt.Errorf("error opening log file: %w", err)
		}
		output = f
	}

	defaultLogger = newPlainLogger(output, lvl)
	*Logger = *fileLogger
	return nil
}

func newPlainLogger(output io.Writer, level log.Level) *log.Logger {
	plainFormatter := new(PlainFormatter)
	plainFormatter.TimestampFormat = "2006-01-02 15:04:05"
	plainFormatter.LevelDesc = []string{"PANIC", "FATAL", "ERROR", "WARN", "INFO ", "DEBUG", "TRACE"}
	logger := log.New()
	logger.SetOutput(output)
	logger.SetFormatter(plainFormatter)
	logger.SetLevel(level)
	return logger
}

func (l *FileLogger) Errorln(args ...interface{}) {
	defaultLogger.Errorln(args...)
}

func (l *FileLogger) Fatalln(args ...interface{}) {
	defaultLogger.Fatalln(args...)
}

func (l *FileLogger) Warnln(args ...interface{}) {
	defaultLogger.Warnln(args...)
}

func (l *FileLogger) Infoln(args ...interface{}) {
	defaultLogger.Infoln(args...)
}

// Notify logs at info level and forwards the message to Telegram when enabled.
func (l *FileLogger) Notify(message string) {
	defaultLogger.Infoln(message)
	if l.telegramOutput {
		err := sendOnTelegramChannel(message, l.telegramToken, l.telegramChatId)
		if err != nil {
			defaultLogger.Errorln("telegram: " + err.Error())
		}
	}
}

func (l *FileLogger) Debugln(args ...interface{}) {
	defaultLogger.Debugln(args...)
}

func (l *FileLogger) Traceln(args ...interface{}) {
	defaultLogger.Traceln(args...)
}

type PlainFormatter struct {
	TimestampFormat string
	LevelDesc       []string
}

func (f PlainFormatter) Format(entry *log.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(f.TimestampFormat)
	return []byte(fmt.Sprintf("%s %s %s\n", f.LevelDesc[entry.Level], timestamp, entry.Message)), nil
}

func sendOnTelegramChannel(message string, token string, chatID string) error {

	b, err := tb.NewBot(tb.Settings{
		Token:  token,
		Poller: &tb.LongPoller{Timeout: 10 * time.Second},
	})

	if err != nil {
		return err
	}

	id, err := b.ChatByID(chatID)
	if err != nil {
		return err
	}
	_, err = b.Send(id, message)
	if err != nil {
		return err
	}

	return nil
}
