package notify

import (
	"os"

	"github.com/fatih/color"
)

// ConsoleSink печатает уведомления в терминал
type ConsoleSink struct{}

func NewConsoleSink() *ConsoleSink {
	return &ConsoleSink{}
}

func (s *ConsoleSink) Render(n *Notification) {
	printer := color.New(color.FgWhite)
	switch n.Severity {
	case SeveritySuccess:
		printer = color.New(color.FgGreen)
	case SeverityError:
		printer = color.New(color.FgRed, color.Bold)
	case SeverityWarning:
		printer = color.New(color.FgYellow)
	}

	printer.Fprintf(os.Stdout, "[%s] %s\n", n.Severity, n.Message)
}
