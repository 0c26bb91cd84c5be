package query

// Value is either Single or Multiple. A key holds a Single until it occurs a second
// time, after which it is a Multiple for good.
type Value interface {
	// First returns the earliest value seen for the key.
	First() string
	// Values returns every value in the order they were met.
	Values() []string

	isValue()
}

type (
	Single   string
	Multiple []string
)

func (s Single) First() string {
	return string(s)
}

func (s Single) Values() []string {
	return []string{string(s)}
}

func (Single) isValue() {}

func (m Multiple) First() string {
	return m[0]
}

func (m Multiple) Values() []string {
	return m
}

func (Multiple) isValue() {}
