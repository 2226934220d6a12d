package internal

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	a := map[string]int{"a": 1}
	b := map[string]int{"b": 2, "c": 3}

	got := map[string]int{}
	for key, value := range IterSeq2Concat(maps.All(a), maps.All(b)) {
		got[key] = value
	}
	assert.Equal(map[string]int{"a": 1, "b": 2, "c": 3}, got)

	count := 0
	for range IterSeq2Concat(maps.All(a), maps.All(b)) {
		count++
		break
	}
	assert.Equal(1, count)
}

func TestIterSeq2Sorted(t *testing.T) {
	assert := assert.New(t)

	a := map[string]int{"z": 1, "m": 2}
	b := map[string]int{"a": 3, "z": 4}

	var keys []string
	var values []int
	for key, value := range IterSeq2Sorted(IterSeq2Concat(maps.All(a), maps.All(b))) {
		keys = append(keys, key)
		values = append(values, value)
	}
	assert.Equal([]string{"a", "m", "z"}, keys)
	assert.Equal([]int{3, 2, 4}, values)
}
