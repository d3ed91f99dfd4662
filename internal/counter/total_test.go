package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/randomizedcoder/primecount/internal/counter"
)

func TestTotal_ConcurrentAdd(t *testing.T) {
	var total counter.Total
	var wg sync.WaitGroup

	for i := 1; i <= 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			total.Add(n)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 16*17/2, total.Value())
}
