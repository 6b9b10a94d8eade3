package logging

import "fmt"

// GooseLogger adapts a Logger to the interface goose expects for migration
// output.
type GooseLogger struct {
	log *Logger
}

func (l *Logger) GooseLogger() *GooseLogger {
	return &GooseLogger{log: l}
}

func (gl *GooseLogger) Fatal(v ...interface{}) {
	gl.log.Fatal(fmt.Sprint(v...))
}

func (gl *GooseLogger) Fatalf(format string, v ...interface{}) {
	gl.log.Fatal(fmt.Sprintf(strip(format), v...))
}

func (gl *GooseLogger) Print(v ...interface{}) {
	gl.log.Info(fmt.Sprint(v...))
}

func (gl *GooseLogger) Printf(format string, v ...interface{}) {
	gl.log.Info(fmt.Sprintf(strip(format), v...))
}

func (gl *GooseLogger) Println(v ...interface{}) {
	gl.log.Info(fmt.Sprint(v...))
}

// strip drops the trailing newline goose appends to its format strings.
func strip(format string) string {
	if len(format) > 0 && format[len(format)-1] == '\n' {
		return format[:len(format)-1]
	}
	return format
}
