package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	closed bool
}

func (f *fakeConn) WriteJSON(v interface{}) error { return nil }
func (f *fakeConn) Close() error {
	f.closed = true
	return nil
}

func TestTrackConn_ReplacementClosesOldConn(t *testing.T) {
	h := NewNotificationHandler(nil, nil)
	first := &fakeConn{}
	second := &fakeConn{}

	h.trackConn("101", first)
	h.trackConn("101", second)

	// 同一用户重连时旧连接被关闭，不留孤儿 socket
	assert.True(t, first.closed)
	assert.False(t, second.closed)

	cur, ok := h.conns.Get("101")
	require.True(t, ok)
	assert.Same(t, second, cur)
}

func TestReleaseConn_OnlyRemovesOwnEntry(t *testing.T) {
	h := NewNotificationHandler(nil, nil)
	first := &fakeConn{}
	second := &fakeConn{}

	h.trackConn("101", first)
	h.trackConn("101", second)

	// 被顶掉的旧连接退出时不能摘掉顶替者的登记
	h.releaseConn("101", first)
	_, ok := h.conns.Get("101")
	assert.True(t, ok)

	h.releaseConn("101", second)
	_, ok = h.conns.Get("101")
	assert.False(t, ok)
}
