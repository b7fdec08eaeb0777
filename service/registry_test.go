package service_test

import (
	"testing"
	"time"

	"github.com/ratel-online/core/model"
	"github.com/ratel-online/duel/service"
	"github.com/stretchr/testify/require"
)

func TestConnectedReplacesPreviousLogin(t *testing.T) {
	firstConn := newFakeConn()
	first := service.Connected(firstConn, &model.AuthInfo{ID: 42, Name: "Ann"}, riggedOptions()...)
	require.Equal(t, first, service.GetSession(42))

	secondConn := newFakeConn()
	second := service.Connected(secondConn, &model.AuthInfo{ID: 42, Name: "Ann"}, riggedOptions()...)
	require.Equal(t, second, service.GetSession(42))
	require.False(t, first.Online())
	require.True(t, firstConn.Closed())
	require.True(t, second.Online())

	service.Disconnected(first)
	require.Equal(t, second, service.GetSession(42))

	service.Disconnected(second)
	require.Nil(t, service.GetSession(42))
}

func TestGetSessionsIsSorted(t *testing.T) {
	b := service.Connected(newFakeConn(), &model.AuthInfo{ID: 102, Name: "B"}, riggedOptions()...)
	a := service.Connected(newFakeConn(), &model.AuthInfo{ID: 101, Name: "A"}, riggedOptions()...)
	defer service.Disconnected(a)
	defer service.Disconnected(b)

	var ids []int64
	for _, session := range service.GetSessions() {
		if session.ID == 101 || session.ID == 102 {
			ids = append(ids, session.ID)
		}
	}
	require.Equal(t, []int64{101, 102}, ids)
}

func TestSweep(t *testing.T) {
	session := service.Connected(newFakeConn(), &model.AuthInfo{ID: 43, Name: "Eve"}, riggedOptions()...)
	session.Offline()

	require.GreaterOrEqual(t, service.Sweep(), 1)
	require.Nil(t, service.GetSession(43))
}

func TestJanitor(t *testing.T) {
	session := service.Connected(newFakeConn(), &model.AuthInfo{ID: 44, Name: "Fay"}, riggedOptions()...)
	stop := service.StartJanitor(5 * time.Millisecond)
	defer stop()

	require.Equal(t, session, service.GetSession(44))
	session.Offline()
	require.Eventually(t, func() bool {
		return service.GetSession(44) == nil
	}, time.Second, 5*time.Millisecond)

	stop()
	stop()
	again := service.Connected(newFakeConn(), &model.AuthInfo{ID: 45, Name: "Gil"}, riggedOptions()...)
	defer service.Disconnected(again)
	again.Offline()
	time.Sleep(30 * time.Millisecond)
	require.Equal(t, again, service.GetSession(45))
}
