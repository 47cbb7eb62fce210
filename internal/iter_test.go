package internal

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	a := IterSeq2Indexed("r", []int{10, 11})
	b := IterSeq2Indexed("m", []int{20})

	var keys []string
	var values []int
	for key, value := range IterSeq2Concat(a, b) {
		keys = append(keys, key)
		values = append(values, value)
	}

	assert.Equal([]string{"r0", "r1", "m0"}, keys)
	assert.Equal([]int{10, 11, 20}, values)
}

func TestIterSeq2Concat_EarlyStop(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeq2Concat(IterSeq2Indexed("r", []int{1, 2, 3}), IterSeq2Indexed("m", []int{4}))

	count := 0
	for range seq {
		count++
		if count == 2 {
			break
		}
	}

	assert.Equal(2, count)
}

func TestIterSeq2Indexed_Collect(t *testing.T) {
	assert := assert.New(t)

	got := maps.Collect(IterSeq2Indexed("m", []byte{7, 8}))
	assert.Equal(map[string]byte{"m0": 7, "m1": 8}, got)
}
