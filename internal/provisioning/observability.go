package provisioning

import (
	"fmt"
	"log"
	"strings"
	"time"
)

// Logger is the minimal printf-style logging interface stages use for
// free-form output.
type Logger interface {
	Printf(format string, v ...interface{})
}

// Observer defines the interface for structured observability during setup.
type Observer interface {
	Logger

	// Event emits a structured event
	Event(event Event)

	// Progress reports attempt progress for a long-running wait
	Progress(stage string, current, total int)

	// WithFields returns a new Observer with additional context fields
	WithFields(fields map[string]string) Observer
}

// Event represents a structured setup event.
type Event struct {
	Type      EventType         // Type of event
	Stage     string            // Stage name (e.g., "system-packages", "browser-use")
	Message   string            // Human-readable message
	Resource  string            // Resource name/ID if applicable
	Timestamp time.Time         // When the event occurred
	Fields    map[string]string // Additional contextual fields
}

// EventType represents the type of setup event.
type EventType string

const (
	// EventStageStarted indicates a setup stage has started.
	EventStageStarted EventType = "stage.started"
	// EventStageCompleted indicates a setup stage completed successfully.
	EventStageCompleted EventType = "stage.completed"
	// EventStageFailed indicates a setup stage failed.
	EventStageFailed EventType = "stage.failed"
	// EventStageSkipped indicates a setup stage was skipped.
	EventStageSkipped EventType = "stage.skipped"

	// EventCommandRunning indicates a remote command is being executed.
	EventCommandRunning EventType = "command.running"
	// EventCommandFailed indicates a remote command exited non-zero.
	EventCommandFailed EventType = "command.failed"

	// EventWarning indicates a non-fatal problem the user should know about.
	EventWarning EventType = "warning"

	// EventProgress indicates progress in a long-running wait.
	EventProgress EventType = "progress"
)

// ConsoleObserver implements Observer using the standard log package.
type ConsoleObserver struct {
	contextFields map[string]string
}

// NewConsoleObserver creates a new console-based observer.
func NewConsoleObserver() *ConsoleObserver {
	return &ConsoleObserver{
		contextFields: make(map[string]string),
	}
}

// Printf implements the Logger interface.
func (o *ConsoleObserver) Printf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

// Event implements the Observer interface.
func (o *ConsoleObserver) Event(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	// Merge context fields
	if event.Fields == nil {
		event.Fields = make(map[string]string)
	}
	for k, v := range o.contextFields {
		if _, exists := event.Fields[k]; !exists {
			event.Fields[k] = v
		}
	}

	log.Print(o.formatEvent(event))
}

// Progress implements the Observer interface.
func (o *ConsoleObserver) Progress(stage string, current, total int) {
	if total == 0 {
		log.Printf("[%s] Progress: %d/%d", stage, current, total)
		return
	}
	percentage := (current * 100) / total
	log.Printf("[%s] Progress: %d/%d (%d%%)", stage, current, total, percentage)
}

// WithFields implements the Observer interface.
func (o *ConsoleObserver) WithFields(fields map[string]string) Observer {
	newFields := make(map[string]string)
	for k, v := range o.contextFields {
		newFields[k] = v
	}
	for k, v := range fields {
		newFields[k] = v
	}

	return &ConsoleObserver{
		contextFields: newFields,
	}
}

// formatEvent formats an event for console output.
func (o *ConsoleObserver) formatEvent(event Event) string {
	var parts []string

	parts = append(parts, string(event.Type))

	if event.Stage != "" {
		parts = append(parts, fmt.Sprintf("[%s]", event.Stage))
	}

	if event.Resource != "" {
		parts = append(parts, fmt.Sprintf("resource=%s", event.Resource))
	}

	parts = append(parts, event.Message)

	if len(event.Fields) > 0 {
		var fieldParts []string
		for k, v := range event.Fields {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%s", k, v))
		}
		parts = append(parts, fmt.Sprintf("(%s)", strings.Join(fieldParts, ", ")))
	}

	return strings.Join(parts, " ")
}

// Helper functions for common events

// LogStageStart logs a stage start event.
func LogStageStart(observer Observer, stage string) {
	observer.Event(Event{
		Type:    EventStageStarted,
		Stage:   stage,
		Message: "starting",
	})
}

// LogStageComplete logs a stage completion event.
func LogStageComplete(observer Observer, stage string, duration time.Duration) {
	observer.Event(Event{
		Type:    EventStageCompleted,
		Stage:   stage,
		Message: fmt.Sprintf("completed in %v", duration.Round(time.Millisecond)),
	})
}

// LogStageFailed logs a stage failure event.
func LogStageFailed(observer Observer, stage string, err error) {
	observer.Event(Event{
		Type:    EventStageFailed,
		Stage:   stage,
		Message: fmt.Sprintf("failed: %v", err),
	})
}

// LogStageSkipped logs a stage skip event with its reason.
func LogStageSkipped(observer Observer, stage, reason string) {
	observer.Event(Event{
		Type:    EventStageSkipped,
		Stage:   stage,
		Message: fmt.Sprintf("skipped: %s", reason),
	})
}

// LogWarning logs a non-fatal warning.
func LogWarning(observer Observer, stage, message string) {
	observer.Event(Event{
		Type:    EventWarning,
		Stage:   stage,
		Message: message,
	})
}

// LogCommandFailed logs a remote command that exited non-zero.
func LogCommandFailed(observer Observer, stage, command string, exitCode int) {
	observer.Event(Event{
		Type:    EventCommandFailed,
		Stage:   stage,
		Message: fmt.Sprintf("command exited with status %d", exitCode),
		Fields: map[string]string{
			"command": command,
		},
	})
}
