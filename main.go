package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/duel/consts"
	"github.com/ratel-online/duel/network"
	"github.com/ratel-online/duel/service"
	"github.com/ratel-online/duel/uno/game"
	"github.com/ratel-online/duel/uno/match"
	"github.com/ratel-online/duel/uno/ui"
)

var (
	tcpAddr   = flag.String("tcp", consts.DefaultTcpAddr, "tcp listen address, empty to disable")
	wsAddr    = flag.String("ws", consts.DefaultWsAddr, "websocket listen address, empty to disable")
	console   = flag.Bool("console", false, "play one match in this terminal instead of serving")
	name      = flag.String("name", "", "player name in console mode")
	handSize  = flag.Int("hand", consts.HandSize, "cards dealt to each side")
	botDelay  = flag.Duration("bot-delay", consts.BotDelay, "pause before each bot decision")
	drawDelay = flag.Duration("draw-delay", consts.BotDrawDelay, "pause between the bot's draw attempts")
	deplete   = flag.Bool("deplete", false, "deal from a shuffled pile instead of sampling the catalog")
	pace      = flag.Duration("pace", 0, "pause after every console message")
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	flag.Parse()

	opts := matchOptions()
	if *console {
		if err := playConsole(opts); err != nil {
			log.Error(err)
		}
		return
	}

	var servers []network.Network
	if *tcpAddr != "" {
		servers = append(servers, network.NewTcpServer(*tcpAddr, opts...))
	}
	if *wsAddr != "" {
		servers = append(servers, network.NewWebsocketServer(*wsAddr, opts...))
	}
	if len(servers) == 0 {
		log.Info("nothing to serve, pass -tcp, -ws or -console")
		return
	}
	stopJanitor := service.StartJanitor(time.Minute)
	defer stopJanitor()

	errs := make(chan error, len(servers))
	for _, server := range servers {
		server := server
		async.Async(func() {
			errs <- server.Serve()
		})
	}
	log.Error(<-errs)
}

func matchOptions() []match.Option {
	mode := game.DrawSampled
	if *deplete {
		mode = game.DrawShuffled
	}
	return []match.Option{
		match.WithHandSize(*handSize),
		match.WithBotDelay(*botDelay),
		match.WithBotDrawDelay(*drawDelay),
		match.WithDrawMode(mode),
	}
}

func playConsole(opts []match.Option) error {
	display := ui.NewDisplay(nil, *pace)
	scanner := bufio.NewScanner(os.Stdin)
	playerName := *name
	if playerName == "" {
		var err error
		playerName, err = ui.PromptString(scanner, display, "What's your name?")
		if err != nil {
			return err
		}
	}
	m := match.New(opts...)
	defer m.Close()
	return ui.NewConsole(m, display).Play(scanner, playerName)
}
