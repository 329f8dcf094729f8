// Package matching shows argument matchers constraining a struct argument.
package matching

// Data is a complex struct where a test might only care about some fields.
type Data struct {
	ID        int
	Payload   string
	Timestamp int64
}

// ComplexService is an interface taking a complex struct.
type ComplexService interface {
	Process(d Data) bool
}

// UseService sends one Data built around payload and reports whether the
// service accepted it.
func UseService(svc ComplexService, payload string) bool {
	const (
		id        = 123
		timestamp = 1600000000
	)

	return svc.Process(Data{
		ID:        id,
		Payload:   payload,
		Timestamp: timestamp,
	})
}
