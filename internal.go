package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// sinkSet carries the two output channels of an initialized service.
// Informational entries go to info, diagnostics to diagnostic.
type sinkSet struct {
	info       zerolog.Logger
	diagnostic zerolog.Logger
}

func (s *Service) initializeSinks() *sinkSet {
	infoOut := s.Config.InfoOutput
	if infoOut == nil {
		infoOut = os.Stdout
	}
	diagnosticOut := s.Config.DiagnosticOutput
	if diagnosticOut == nil {
		diagnosticOut = os.Stderr
	}

	return &sinkSet{
		info:       newConsoleSink(infoOut),
		diagnostic: newConsoleSink(diagnosticOut),
	}
}

// newConsoleSink builds a plain-text sink over out. The part formatters
// reproduce the "LEVEL: timestamp - origin: message" line shape; parts
// absent from an entry are skipped entirely, which lets banner and
// report lines render bare.
func newConsoleSink(out io.Writer) zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:     out,
		NoColor: true,
		PartsOrder: []string{
			zerolog.LevelFieldName,
			zerolog.TimestampFieldName,
			zerolog.CallerFieldName,
			zerolog.MessageFieldName,
		},
		FormatLevel:     formatSeverityPart,
		FormatTimestamp: formatVerbatimPart,
		FormatCaller:    formatOriginPart,
		FormatMessage:   formatVerbatimPart,
	}

	return zerolog.New(writer)
}

func formatSeverityPart(i interface{}) string {
	if i == nil {
		return emptyString
	}
	return fmt.Sprintf("%s:", i)
}

func formatOriginPart(i interface{}) string {
	if i == nil {
		return emptyString
	}
	return fmt.Sprintf("- %s:", i)
}

func formatVerbatimPart(i interface{}) string {
	if i == nil {
		return emptyString
	}
	return fmt.Sprintf("%s", i)
}
