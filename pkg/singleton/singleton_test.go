package singleton

import (
	"io"
	"sync"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func init() {
	log.SetOutput(io.Discard)
}

func TestInstance(t *testing.T) {
	first := Instance()
	second := Instance()
	assert.Same(t, first, second)
	assert.Equal(t, 10, first.Data)
}

func TestInstance_Concurrent(t *testing.T) {
	const n = 16
	got := make([]*Singleton, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = Instance()
		}(i)
	}
	wg.Wait()

	for _, s := range got {
		assert.Same(t, Instance(), s)
	}
}
