// Command orthocam is a terminal demo host for the orthographic camera.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gopxl/beep/speaker"
	"github.com/mgnsk/orthocam/assets"
	"github.com/mgnsk/orthocam/internal/client"
	"github.com/mgnsk/orthocam/internal/input"
	"github.com/mgnsk/orthocam/internal/notify"
	"github.com/mgnsk/orthocam/internal/scene"
	"github.com/mgnsk/orthocam/internal/store"
	"github.com/sirupsen/logrus"
)

func main() {
	var (
		configPath = flag.String("config", "config/orthocamera.json", "camera config document")
		logPath    = flag.String("log", "orthocam.log", "log file")
		debug      = flag.Bool("debug", false, "log at debug level")
		tps        = flag.Int("tps", 20, "simulation steps per second")
		fps        = flag.Int("fps", 30, "frames per second")
		hold       = flag.Duration("hold", input.DefaultHoldWindow, "how long a key counts as held after its last repeat")
		chimePath  = flag.String("chime", "", "WAV file to play on notifications instead of the built in tones")
		mute       = flag.Bool("mute", false, "disable notification sounds")
	)
	flag.Parse()

	if *tps <= 0 || *fps <= 0 {
		fmt.Fprintln(os.Stderr, "tps and fps must be positive")
		os.Exit(2)
	}

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	log := logrus.New()
	log.SetOutput(logFile)
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	if *debug {
		log.SetLevel(logrus.DebugLevel)
	}

	status := notify.NewQueueSink()
	sinks := notify.MultiSink{notify.NewLogSink(log, notify.EnUS), status}

	if !*mute {
		if chime, err := newChime(*chimePath); err != nil {
			log.WithError(err).Warn("notification sounds unavailable")
		} else {
			defer speaker.Close()
			sinks = append(sinks, chime)
		}
	}

	player := scene.NewPlayer(mgl32.Vec3{0, 0, 6}, 0, 0)
	h := &host{
		player:   player,
		queue:    input.NewQueue(*hold),
		bindings: input.DefaultBindings(),
		lang:     notify.EnUS,
		status:   status,
		log:      log,
	}

	st := store.New(*configPath, assets.FS, assets.DefaultConfigPath, store.WithLogger(log))
	h.client, err = client.New(st, player,
		client.WithLogger(log),
		client.WithSink(sinks),
		client.WithOpener(h.openForm),
	)
	if err != nil {
		log.WithError(err).Error("startup failed")
		fmt.Fprintf(os.Stderr, "Failed to load camera config: %+v\n", err)
		os.Exit(1)
	}

	if err := h.init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	h.run(time.Second/time.Duration(*tps), time.Second/time.Duration(*fps))
	h.cleanup()
}

func newChime(path string) (*notify.Chime, error) {
	play, err := notify.SpeakerPlayer(notify.DefaultSampleRate)
	if err != nil {
		return nil, err
	}

	if path == "" {
		return notify.NewToneChime(notify.DefaultSampleRate, play, notify.WithVolume(-1))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, notify.ErrCue.Wrap(err, "open %s", path)
	}
	defer f.Close()

	return notify.NewWAVChime(f, notify.DefaultSampleRate, play)
}
