package logger

import (
	"log/slog"
	"os"
)

var log = slog.New(slog.NewTextHandler(os.Stdout, nil))

func Init(environment string) {
	var handler slog.Handler
	if environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	log = slog.New(handler)
}

func Info(msg string, args ...any) {
	log.Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	log.Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	log.Error(msg, normalize(args)...)
}

func Fatal(msg string, args ...any) {
	log.Error(msg, normalize(args)...)
	os.Exit(1)
}

// normalize accepts either slog key/value pairs or bare values (typically an
// error) and turns the latter into attrs so slog does not log !BADKEY.
func normalize(args []any) []any {
	if len(args)%2 == 0 {
		paired := true
		for i := 0; i < len(args); i += 2 {
			if _, ok := args[i].(string); !ok {
				paired = false
				break
			}
		}
		if paired {
			return args
		}
	}

	out := make([]any, 0, len(args))
	for _, arg := range args {
		switch v := arg.(type) {
		case slog.Attr:
			out = append(out, v)
		case error:
			out = append(out, slog.Any("error", v))
		default:
			out = append(out, slog.Any("detail", v))
		}
	}

	return out
}
