package client_test

import (
	"os"
	"path/filepath"
	"testing/fstest"

	"github.com/joomcode/errorx"
	"github.com/mgnsk/orthocam/assets"
	"github.com/mgnsk/orthocam/internal/client"
	"github.com/mgnsk/orthocam/internal/config"
	"github.com/mgnsk/orthocam/internal/input"
	"github.com/mgnsk/orthocam/internal/notify"
	"github.com/mgnsk/orthocam/internal/store"
	"github.com/mgnsk/orthocam/pkg/gfx"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

type fakeView struct {
	perspective config.Perspective
}

func (v *fakeView) Perspective() config.Perspective          { return v.perspective }
func (v *fakeView) SetPerspective(p config.Perspective)      { v.perspective = p }
func (v *fakeView) CameraRotation() (float32, float32, bool) { return 0, 0, true }

var _ = Describe("Client", func() {
	var (
		dir   string
		path  string
		log   *logrus.Logger
		hook  *test.Hook
		view  *fakeView
		queue *notify.QueueSink
		opens int
		c     *client.Client
	)

	newClient := func(s *store.Store) (*client.Client, error) {
		return client.New(s, view,
			client.WithLogger(log),
			client.WithSink(queue),
			client.WithOpener(func() { opens++ }),
		)
	}

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "orthocam-client")
		Expect(err).NotTo(HaveOccurred())
		path = filepath.Join(dir, "config", "orthocamera.json")
		log, hook = test.NewNullLogger()
		view = &fakeView{perspective: config.FirstPerson}
		queue = notify.NewQueueSink()
		opens = 0

		c, err = newClient(store.New(path, assets.FS, assets.DefaultConfigPath, store.WithLogger(log)))
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	step := func(presses ...input.Action) {
		c.PreStep()
		c.PostStep(input.NewFrame(presses))
	}

	It("fails only when the bundled default is unusable", func() {
		broken := fstest.MapFS{assets.DefaultConfigPath: {Data: []byte("{")}}
		_, err := newClient(store.New(path, broken, assets.DefaultConfigPath, store.WithLogger(log)))
		Expect(err).To(HaveOccurred())
		Expect(errorx.IsOfType(err, store.ErrDefaults)).To(BeTrue())
	})

	It("starts disabled with no projection override", func() {
		Expect(c.Camera().Enabled()).To(BeFalse())
		_, ok := c.Render(0, 100, 100)
		Expect(ok).To(BeFalse())
		_, ok = c.FixedView(0)
		Expect(ok).To(BeFalse())
	})

	It("projects once toggled on", func() {
		step(input.Toggle)

		Expect(view.perspective).To(Equal(config.ThirdPersonBack))
		Expect(queue.Drain()).To(Equal([]notify.Message{notify.Enabled(true)}))

		m, ok := c.Render(0.5, 200, 100)
		Expect(ok).To(BeTrue())
		Expect(m).To(Equal(gfx.OrthoProjection(c.Camera(), 0.5, 200, 100, config.MinScale)))
		Expect(m[0]).To(BeNumerically("~", 1.0/6, 1e-6))
		Expect(m[5]).To(BeNumerically("~", 1.0/3, 1e-6))
	})

	It("returns the fixed view only when enabled and fixed", func() {
		step(input.FixCamera)
		_, ok := c.FixedView(0)
		Expect(ok).To(BeFalse())

		step(input.Toggle)
		m, ok := c.FixedView(1)
		Expect(ok).To(BeTrue())
		Expect(m).To(Equal(gfx.FixedView(c.Camera().FixedYaw(1), c.Camera().FixedPitch(1))))
	})

	It("forwards the options request", func() {
		step(input.OpenOptions, input.OpenOptions)
		Expect(opens).To(Equal(1))
	})

	Describe("Shutdown", func() {
		It("does not write an unchanged config", func() {
			c.Shutdown()
			_, err := os.Stat(path)
			Expect(os.IsNotExist(err)).To(BeTrue())
		})

		It("saves a changed config once", func() {
			step(input.Toggle)
			c.Shutdown()

			rec, err := store.New(path, assets.FS, assets.DefaultConfigPath, store.WithLogger(log)).Load()
			Expect(err).NotTo(HaveOccurred())
			// Not persisted without save_enabled_state.
			Expect(config.FromRecord(rec).Enabled()).To(BeFalse())
			Expect(rec.Enabled).To(BeTrue())

			Expect(os.Remove(path)).To(Succeed())
			c.Shutdown()
			_, err = os.Stat(path)
			Expect(os.IsNotExist(err)).To(BeTrue())
		})

		It("logs a failed save", func() {
			blocker := filepath.Join(dir, "blocker")
			Expect(os.WriteFile(blocker, nil, 0o644)).To(Succeed())

			bad, err := newClient(store.New(filepath.Join(blocker, "orthocamera.json"), assets.FS, assets.DefaultConfigPath, store.WithLogger(log)))
			Expect(err).NotTo(HaveOccurred())
			bad.Camera().MarkDirty()
			hook.Reset()

			bad.Shutdown()
			Expect(hook.LastEntry()).NotTo(BeNil())
			Expect(hook.LastEntry().Level).To(Equal(logrus.ErrorLevel))
			Expect(errorx.IsOfType(hook.LastEntry().Data[logrus.ErrorKey].(error), store.ErrWrite)).To(BeTrue())
		})
	})
})
