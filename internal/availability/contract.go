package availability

// Logger интерфейс для диагностики движка
// Передается снаружи, чтобы движок оставался чистой функцией от своих входов,
// а тесты могли проверять выданные предупреждения
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// nopLogger заглушка, используется если логгер не передан
type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}
