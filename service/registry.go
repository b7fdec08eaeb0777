package service

import (
	"sort"
	"sync"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/duel/uno/match"
)

var sessions = hashmap.New()

// Connected registers a session for the authenticated player. A player that
// logs in again replaces, and disconnects, their previous session.
func Connected(conn Conn, info *model.AuthInfo, opts ...match.Option) *Session {
	session := NewSession(conn, info, opts...)
	if previous := GetSession(info.ID); previous != nil {
		log.Infof("session %s replaced by a new login\n", previous)
		previous.Offline()
	}
	sessions.Set(info.ID, session)
	return session
}

// Disconnected forgets session unless a newer login has already replaced it.
func Disconnected(session *Session) {
	if current := GetSession(session.ID); current == session {
		sessions.Del(session.ID)
	}
}

func GetSession(id int64) *Session {
	if v, ok := sessions.Get(id); ok {
		return v.(*Session)
	}
	return nil
}

func GetSessions() []*Session {
	list := make([]*Session, 0)
	sessions.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Session))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}

// Sweep drops sessions that went offline without being disconnected.
func Sweep() int {
	removed := 0
	for _, session := range GetSessions() {
		if !session.Online() {
			Disconnected(session)
			removed++
		}
	}
	if removed > 0 {
		log.Infof("%d offline session(s) removed.\n", removed)
	}
	return removed
}

// StartJanitor sweeps the registry every interval until the returned stop is
// called. Once stop returns no further sweep runs.
func StartJanitor(interval time.Duration) (stop func()) {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	exited := make(chan struct{})
	async.Async(func() {
		defer close(exited)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				Sweep()
			case <-done:
				return
			}
		}
	})
	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
		<-exited
	}
}
