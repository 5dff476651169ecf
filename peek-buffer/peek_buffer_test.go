package peekbuffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTakeAcrossChunks(t *testing.T) {
	var b Buffer
	b.Push([]byte("ab"))
	b.Push([]byte("cd"))
	assert.Equal(t, 4, b.Len())

	p := make([]byte, 3)
	n := b.Take(p)
	assert.Equal(t, 3, n)
	assert.Equal(t, "abc", string(p[:n]))

	n = b.Take(p)
	assert.Equal(t, 1, n)
	assert.Equal(t, "d", string(p[:n]))
	assert.True(t, b.Empty())
}

func TestPartialTakeKeepsRemainderInOrder(t *testing.T) {
	var b Buffer
	b.Push([]byte("abcd"))

	p := make([]byte, 1)
	assert.Equal(t, 1, b.Take(p))
	assert.Equal(t, "a", string(p))

	rest := make([]byte, 4)
	n := b.Take(rest)
	assert.Equal(t, 3, n)
	assert.Equal(t, "bcd", string(rest[:n]))
}

func TestUnreadGoesAheadOfRemainder(t *testing.T) {
	var b Buffer
	b.Push([]byte("abcd"))

	head := make([]byte, 2)
	b.Take(head)
	assert.Equal(t, "ab", string(head))

	// Put the taken prefix back; it must come out before the remainder.
	b.Unread([]byte("ab"))

	all := make([]byte, 4)
	n := b.Take(all)
	assert.Equal(t, 4, n)
	assert.Equal(t, "abcd", string(all))
}

func TestTakeFromEmpty(t *testing.T) {
	var b Buffer
	p := make([]byte, 4)
	assert.Equal(t, 0, b.Take(p))
	assert.Equal(t, 0, b.Take(nil))
}

func TestPushEmptyChunkIgnored(t *testing.T) {
	var b Buffer
	b.Push(nil)
	b.Push([]byte{})
	b.Unread(nil)
	assert.True(t, b.Empty())
	assert.Equal(t, 0, b.Len())
}

func TestManyChunksNeverReorder(t *testing.T) {
	var b Buffer
	b.Push([]byte("ab"))
	b.Push([]byte("c"))
	b.Push([]byte("defg"))
	b.Push([]byte("h"))

	var got []byte
	p := make([]byte, 3)
	for !b.Empty() {
		n := b.Take(p)
		got = append(got, p[:n]...)
	}
	assert.Equal(t, "abcdefgh", string(got))
}
