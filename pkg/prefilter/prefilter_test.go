package prefilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefilter_Contains(t *testing.T) {
	pf := New([]string{"cat", "dog"}, false)

	assert.True(t, pf.Contains("the cat sat"))
	assert.True(t, pf.Contains("hotdog"))
	assert.False(t, pf.Contains("a bird"))
	assert.False(t, pf.Contains("CAT"), "case-sensitive by default")
	assert.False(t, pf.Contains(""))
}

func TestPrefilter_FoldCase(t *testing.T) {
	pf := New([]string{"Cat"}, true)

	assert.True(t, pf.Contains("CATS"))
	assert.True(t, pf.Equals("cAt"))
	assert.False(t, pf.Equals("cats"))
}

func TestPrefilter_Equals(t *testing.T) {
	pf := New([]string{"foo", "bar"}, false)

	assert.True(t, pf.Equals("foo"))
	assert.True(t, pf.Equals("bar"))
	assert.False(t, pf.Equals("foobar"))
	assert.False(t, pf.Equals(""))
}

func TestPrefilter_EmptyKeyword(t *testing.T) {
	pf := New([]string{""}, false)

	assert.True(t, pf.Contains("anything"))
	assert.True(t, pf.Contains(""))
	assert.True(t, pf.Equals(""))
	assert.False(t, pf.Equals("x"))
	assert.Empty(t, pf.Keywords())
}

func TestPrefilter_Keywords(t *testing.T) {
	pf := New([]string{"foo", "bar", "foo", "baz"}, false)

	assert.Equal(t, []string{"foo", "bar", "baz"}, pf.Keywords(), "duplicates collapsed")
	assert.True(t, pf.Contains("foo and bar"))
	assert.False(t, pf.Contains("nothing here"))
}

func TestPrefilter_NoKeywords(t *testing.T) {
	pf := New(nil, false)

	assert.False(t, pf.Contains("text"))
	assert.False(t, pf.Equals("text"))
}
