package network

import (
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/duel/consts"
	"github.com/ratel-online/duel/service"
	"github.com/ratel-online/duel/uno/match"
)

// Network is interface of all kinds of network.
type Network interface {
	Serve() error
}

// handle authenticates the client, then gives it a match of its own.
func handle(rwc protocol.ReadWriteCloser, opts []match.Option) error {
	c := network.Wrapper(rwc)
	defer func() {
		err := c.Close()
		if err != nil {
			log.Error(err)
		}
	}()
	log.Info("new player connected! ")
	authInfo, err := loginAuth(c, consts.AuthTimeout)
	if err != nil || authInfo.ID == 0 {
		if err == nil {
			err = consts.ErrorsAuthFail
		}
		_ = c.Write(protocol.ErrorPacket(err))
		return err
	}
	session := service.Connected(c, authInfo, opts...)
	log.Infof("player auth accessed, %d:%s\n", authInfo.ID, authInfo.Name)
	defer service.Disconnected(session)
	defer session.Offline()

	async.Async(func() {
		err := session.Run()
		if err != nil && err != consts.ErrorsExist {
			log.Infof("session %s ended: %v\n", session, err)
		}
		session.Offline()
	})
	return session.Listening()
}

func loginAuth(c *network.Conn, timeout time.Duration) (*model.AuthInfo, error) {
	authChan := make(chan *model.AuthInfo, 1)
	async.Async(func() {
		packet, err := c.Read()
		if err != nil {
			log.Error(err)
			return
		}
		authInfo := &model.AuthInfo{}
		err = packet.Unmarshal(authInfo)
		if err != nil {
			log.Error(err)
			return
		}
		authChan <- authInfo
	})
	select {
	case authInfo := <-authChan:
		return authInfo, nil
	case <-time.After(timeout):
		return nil, consts.ErrorsAuthFail
	}
}
