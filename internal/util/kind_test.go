package util

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type payload struct {
	Text string
}

type classy struct {
	Text string
}

func (c classy) String() string { return c.Text }

func TestIsPlainRecord(t *testing.T) {
	assert.True(t, IsPlainRecord(map[string]any{}))
	assert.True(t, IsPlainRecord(map[string]string{"type": "X"}))
	assert.True(t, IsPlainRecord(payload{Text: "x"}))
	assert.True(t, IsPlainRecord(&payload{Text: "x"}))

	assert.False(t, IsPlainRecord(nil))
	assert.False(t, IsPlainRecord((*payload)(nil)))
	assert.False(t, IsPlainRecord(42))
	assert.False(t, IsPlainRecord("record"))
	assert.False(t, IsPlainRecord([]any{}))
	assert.False(t, IsPlainRecord(map[int]any{}))
	assert.False(t, IsPlainRecord(func() {}))
	assert.False(t, IsPlainRecord(classy{Text: "x"}), "a method set gives the type class identity")
	assert.False(t, IsPlainRecord(time.Now()))
	assert.False(t, IsPlainRecord(errors.New("boom")))
}

func TestDescribeKind(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{nil, "nil"},
		{true, "bool"},
		{42, "integer"},
		{uint8(1), "integer"},
		{1.5, "float"},
		{complex(1, 2), "complex"},
		{"x", "string"},
		{func() {}, "function"},
		{make(chan int), "channel"},
		{[]int{1}, "slice"},
		{[2]int{}, "array"},
		{time.Now(), "date"},
		{errors.New("boom"), "error"},
		{(*payload)(nil), "nil pointer (*util.payload)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DescribeKind(tt.value))
	}

	assert.Contains(t, DescribeKind(map[string]any{}), "record")
	assert.Contains(t, DescribeKind(payload{}), "record")
	assert.Contains(t, DescribeKind(classy{}), "non-plain record")
	assert.Contains(t, DescribeKind(&payload{}), "pointer to record")
}

func TestSameRef(t *testing.T) {
	m1 := map[string]any{}
	m2 := map[string]any{}
	assert.True(t, SameRef(m1, m1))
	assert.False(t, SameRef(m1, m2))

	s := []int{1, 2, 3}
	assert.True(t, SameRef(s, s))
	assert.False(t, SameRef(s, s[:2]), "a reslice is a different reference")
	assert.False(t, SameRef(s, []int{1, 2, 3}))

	p := &payload{}
	assert.True(t, SameRef(p, p))
	assert.False(t, SameRef(p, &payload{}))

	assert.True(t, SameRef(5, 5))
	assert.False(t, SameRef(5, 6))
	assert.False(t, SameRef(5, "5"))
	assert.True(t, SameRef(nil, nil))
	assert.False(t, SameRef(nil, 5))

	// Uncomparable values never alias each other unless they are reference kinds.
	type holder struct{ S []int }
	assert.False(t, SameRef(holder{S: s}, holder{S: s}))
}
