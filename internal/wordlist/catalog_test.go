package wordlist

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleCatalog() *Catalog {
	return NewCatalog([]Entry{
		{Token: "section", Description: "doc"},
		{Token: "subsection", Description: "doc"},
		{Token: "sum", Description: "math"},
		{Token: "section", Description: "extra"},
	})
}

func TestCatalog_Filter(t *testing.T) {
	c := sampleCatalog()

	tests := []struct {
		prefix string
		want   []string
	}{
		{prefix: "", want: []string{"section", "subsection", "sum", "section"}},
		{prefix: "s", want: []string{"section", "subsection", "sum", "section"}},
		{prefix: "su", want: []string{"subsection", "sum"}},
		{prefix: "sec", want: []string{"section", "section"}},
		{prefix: "Sec", want: nil},
		{prefix: "zzz", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			var got []string
			for _, e := range c.Filter(tt.prefix) {
				got = append(got, e.Token)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalog_IsImmutable(t *testing.T) {
	source := []Entry{{Token: "a"}}
	c := NewCatalog(source)
	source[0].Token = "changed"

	entries := c.Entries()
	entries[0].Token = "also changed"

	assert.Equal(t, "a", c.At(0).Token)
}

func TestCatalog_Nil(t *testing.T) {
	var c *Catalog

	assert.Equal(t, 0, c.Len())
	assert.Nil(t, c.Entries())
	assert.Nil(t, c.Tokens())
	assert.Nil(t, c.Filter("a"))
	assert.Nil(t, c.Filter(""))
}

func TestCatalog_ConcurrentReaders(t *testing.T) {
	c := sampleCatalog()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Len(t, c.Filter("su"), 2)
			assert.Equal(t, 4, len(c.Tokens()))
		}()
	}
	wg.Wait()
}
