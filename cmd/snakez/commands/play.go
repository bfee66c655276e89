package commands

import (
	"net/http"
	"sync"

	termbox "github.com/nsf/termbox-go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/snakezio/snakez/api"
	"github.com/snakezio/snakez/game"
	"github.com/snakezio/snakez/rules"
)

var (
	fieldWidth  = 20
	fieldHeight = 20
	numPlayers  = 1
	apiListen   = ""
	promEnable  = false
	promListen  = ":9000"
	verbose     = false
)

func init() {
	playCmd.Flags().IntVar(&fieldWidth, "width", fieldWidth, "field width in cells")
	playCmd.Flags().IntVar(&fieldHeight, "height", fieldHeight, "field height in cells")
	playCmd.Flags().IntVarP(&numPlayers, "players", "p", numPlayers, "number of local players (1-4)")
	playCmd.Flags().StringVar(&apiListen, "api-listen", apiListen, "serve the spectator api on this address, empty to disable")
	playCmd.Flags().BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	playCmd.Flags().StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")
	playCmd.Flags().BoolVar(&verbose, "verbose", verbose, "keep info logs on while the board is drawn")
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "play a snakez game in the terminal",
	PreRun: func(*cobra.Command, []string) {
		prometheus()
		if !verbose {
			// Info logs tear up the termbox screen.
			log.SetLevel(log.ErrorLevel)
		}
	},
	Run: func(*cobra.Command, []string) {
		if err := playGame(); err != nil {
			log.WithError(err).Fatal("game failed")
		}
	},
}

func prometheus() {
	if !promEnable {
		return
	}

	log.WithField("addr", promListen).Info("starting prometheus exporter")
	go func() {
		r := http.NewServeMux()
		r.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(promListen, r); err != nil {
			log.WithError(err).Warn("prometheus failed to listen")
		}
	}()
}

func playGame() error {
	g := game.New(rules.Vector{X: fieldWidth, Y: fieldHeight})

	intents := make([]chan rules.Direction, numPlayers)
	for i := range intents {
		intents[i] = make(chan rules.Direction, 8)
		if _, err := g.RegisterPlayer(intents[i]); err != nil {
			return err
		}
	}

	if apiListen != "" {
		go api.New(apiListen, g).WaitForExit()
	}

	if err := termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()

	events, cancel := g.Subscribe()
	defer cancel()

	stop := make(chan struct{})
	var stopOnce sync.Once
	requestStop := func() { stopOnce.Do(func() { close(stop) }) }

	go pollInput(intents, requestStop)
	go g.Run(stop)

	for ev := range events {
		switch ev := ev.(type) {
		case game.Update:
			if err := render(ev); err != nil {
				requestStop()
				return err
			}
		case game.GameOver:
			if err := renderGameOver(ev); err != nil {
				requestStop()
				return err
			}
		}
	}

	// Leave the final screen up until quit is pressed.
	<-stop
	return nil
}
