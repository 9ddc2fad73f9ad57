package database

import "fmt"

func NewSink(provider string) (Sink, error) {
	switch provider {
	case "postgresql", "postgres":
		return NewPostgresSink(), nil
	case "mysql":
		return NewMySQLSink(), nil
	case "sqlite", "sqlite3":
		return NewSQLiteSink(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, provider)
	}
}
