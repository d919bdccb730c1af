package utils

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
	"sync" // For thread-safe initialization

	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger represents a workspace logger.
type Logger struct {
	logger                 *log.Logger
	userInteractionEnabled bool // Flag to control user interaction
}

var (
	globalLogger *Logger
	once         sync.Once
)

// GetLogger returns the singleton instance of Logger.
// It initializes the logger with a file handler that rotates logs.
// The skipPrompts parameter determines if user interaction is enabled.
// This value can be overridden on subsequent calls to GetLogger.
func GetLogger(skipPrompts bool) *Logger {
	once.Do(func() {
		logFile := &lumberjack.Logger{
			Filename:   ".gemini-cli/workspace.log",
			MaxSize:    15, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		globalLogger = &Logger{
			logger: log.New(logFile, "", log.LstdFlags),
		}
	})
	// Always update userInteractionEnabled, allowing it to be overridden
	globalLogger.userInteractionEnabled = !skipPrompts
	return globalLogger
}

// Close closes the logger resources.
func (w *Logger) Close() error {
	if logFile, ok := w.logger.Writer().(*lumberjack.Logger); ok {
		return logFile.Close()
	}
	return nil
}

// LogUserInteraction logs user interactions that require a response, and prints to stdout.
func (w *Logger) LogUserInteraction(message string) {
	w.logger.Printf("User Interaction: %s", message)
	fmt.Print(message + "\n")
}

// LogProcessStep logs the current step in a process and prints it to stdout.
func (w *Logger) LogProcessStep(step string) {
	w.logger.Printf("Process Step: %s", step)
	fmt.Println(step)
}

// Log logs a general message only to the log file.
func (w *Logger) Log(message string) {
	w.logger.Print(message)
}

// Logf logs a formatted general message only to the log file.
func (w *Logger) Logf(format string, v ...interface{}) {
	w.logger.Printf(format, v...)
}

func (w *Logger) LogError(err error) {
	w.logger.Printf("Error: %s", err)
}

// AskForConfirmation prompts the user with a message and waits for a 'yes' or 'no' response.
// It returns true for 'yes' and false for 'no'. When user interaction is
// disabled, or stdin is not a terminal, the default response is returned
// without prompting.
func (w *Logger) AskForConfirmation(prompt string, defaultResponse bool, required bool) bool {
	if !w.userInteractionEnabled && required {
		w.Log("User interaction is disabled, but confirmation is required.")
		w.Log(fmt.Sprintf("We were going to ask the user: '%s'", prompt))
		w.Log("Exiting due to lack of confirmation in prompt-skipping mode.")
		os.Exit(1)
	}
	if !w.userInteractionEnabled || !term.IsTerminal(int(os.Stdin.Fd())) {
		w.Log("Skipping user confirmation in non-interactive mode.")
		return defaultResponse
	}
	reader := bufio.NewReader(os.Stdin)
	for {
		w.LogUserInteraction(fmt.Sprintf("%s (yes/no): ", prompt))
		response, _ := reader.ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		switch response {
		case "yes", "y":
			return true
		case "no", "n":
			return false
		default:
			w.LogUserInteraction("Invalid input. Please type 'yes' or 'no'.")
		}
	}
}
