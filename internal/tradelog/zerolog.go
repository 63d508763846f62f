package tradelog

import "github.com/rs/zerolog"

// zerologAdapter adapts a zerolog.Logger to the Logger interface.
type zerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps logger so it can be installed with SetLogger.
func NewZerologAdapter(logger zerolog.Logger) Logger {
	return &zerologAdapter{logger: logger}
}

func (l *zerologAdapter) Debug(msg string, fields ...Field) { l.emit(l.logger.Debug(), msg, fields) }
func (l *zerologAdapter) Info(msg string, fields ...Field)  { l.emit(l.logger.Info(), msg, fields) }
func (l *zerologAdapter) Warn(msg string, fields ...Field)  { l.emit(l.logger.Warn(), msg, fields) }
func (l *zerologAdapter) Error(msg string, fields ...Field) { l.emit(l.logger.Error(), msg, fields) }

func (l *zerologAdapter) emit(event *zerolog.Event, msg string, fields []Field) {
	for _, f := range fields {
		event = addField(event, f)
	}
	event.Msg(msg)
}

func addField(event *zerolog.Event, f Field) *zerolog.Event {
	switch v := f.Value.(type) {
	case string:
		return event.Str(f.Key, v)
	case int:
		return event.Int(f.Key, v)
	case int64:
		return event.Int64(f.Key, v)
	case float64:
		return event.Float64(f.Key, v)
	case bool:
		return event.Bool(f.Key, v)
	case error:
		return event.AnErr(f.Key, v)
	default:
		return event.Interface(f.Key, v)
	}
}
