package dispatch_test

import (
	"github.com/mgnsk/orthocam/internal/config"
	"github.com/mgnsk/orthocam/internal/dispatch"
	"github.com/mgnsk/orthocam/internal/input"
	"github.com/mgnsk/orthocam/internal/notify"
	"github.com/mgnsk/orthocam/internal/store"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type fakeView struct {
	perspective config.Perspective
}

func (v *fakeView) Perspective() config.Perspective          { return v.perspective }
func (v *fakeView) SetPerspective(p config.Perspective)      { v.perspective = p }
func (v *fakeView) CameraRotation() (float32, float32, bool) { return 30, -15, true }

func presses(actions ...input.Action) input.Frame {
	return input.NewFrame(actions)
}

var _ = Describe("Dispatcher", func() {
	var (
		cam    *config.Camera
		view   *fakeView
		sink   *notify.QueueSink
		opened int
		d      *dispatch.Dispatcher
	)

	BeforeEach(func() {
		cam = config.FromRecord(&store.Record{
			ScaleX:           3,
			ScaleY:           3,
			MinDistance:      -1000,
			MaxDistance:      1000,
			RotateSpeedYaw:   3,
			RotateSpeedPitch: 2,
			AutoThirdPerson:  true,
		})
		view = &fakeView{}
		sink = notify.NewQueueSink()
		opened = 0
		d = dispatch.New(view, dispatch.WithSink(sink), dispatch.WithOpener(func() { opened++ }))
	})

	step := func(f input.Frame) dispatch.Outcome {
		cam.Tick()
		return d.Dispatch(cam, f)
	}

	It("does nothing for an empty frame", func() {
		out := step(input.Frame{})
		Expect(out.Messages).To(BeEmpty())
		Expect(out.OpenOptions).To(BeFalse())
		Expect(cam.Dirty()).To(BeFalse())
	})

	It("surfaces only the toggle when toggle and scale coincide", func() {
		out := step(presses(input.Toggle, input.ScaleIncrease, input.ScaleIncrease))

		Expect(out.Messages).To(Equal([]notify.Message{notify.Enabled(true)}))
		Expect(sink.Drain()).To(Equal(out.Messages))
		Expect(cam.CurrentScaleX()).To(BeNumerically("~", 3.63, 1e-4))
		Expect(cam.CurrentScaleY()).To(BeNumerically("~", 3.63, 1e-4))
		Expect(view.perspective).To(Equal(config.ThirdPersonBack))
	})

	It("notifies once per toggle edge", func() {
		out := step(presses(input.Toggle, input.Toggle, input.Toggle))
		Expect(out.Messages).To(Equal([]notify.Message{
			notify.Enabled(true),
			notify.Enabled(false),
			notify.Enabled(true),
		}))
		Expect(cam.Enabled()).To(BeTrue())
	})

	It("ignores scale keys while disabled", func() {
		out := step(presses(input.ScaleIncrease))
		Expect(out.Messages).To(BeEmpty())
		Expect(cam.CurrentScaleX()).To(Equal(float32(3)))
		Expect(cam.Dirty()).To(BeFalse())
	})

	Context("while enabled", func() {
		BeforeEach(func() {
			step(presses(input.Toggle))
			sink.Drain()
		})

		It("surfaces one scale message with the final values", func() {
			out := step(presses(input.ScaleIncrease, input.ScaleIncrease, input.ScaleDecrease))
			Expect(out.Messages).To(Equal([]notify.Message{notify.Scale(cam.CurrentScaleX(), cam.CurrentScaleY())}))
			Expect(cam.CurrentScaleX()).To(BeNumerically("~", 3.3, 1e-4))
			Expect(out.Messages[0].Args).To(Equal([]string{"3.3", "3.3"}))
		})

		It("suppresses the fix message behind the scale message", func() {
			out := step(presses(input.FixCamera, input.ScaleDecrease))
			Expect(out.Messages).To(HaveLen(1))
			Expect(out.Messages[0].Key).To(Equal(notify.KeyScale))
			Expect(cam.Fixed()).To(BeTrue())
		})

		It("interpolates from the pre-step scale", func() {
			step(presses(input.ScaleIncrease))
			Expect(cam.ScaleX(0)).To(Equal(float32(3)))
			Expect(cam.ScaleX(1)).To(BeNumerically("~", 3.3, 1e-4))
		})
	})

	It("surfaces one fix message with the final state", func() {
		out := step(presses(input.FixCamera, input.FixCamera, input.FixCamera))
		Expect(out.Messages).To(Equal([]notify.Message{notify.Fixed(true)}))
		Expect(cam.Fixed()).To(BeTrue())
		Expect(cam.CurrentFixedYaw()).To(Equal(float32(210)))
		Expect(cam.CurrentFixedPitch()).To(Equal(float32(-15)))

		out = step(presses(input.FixCamera, input.FixCamera))
		Expect(out.Messages).To(Equal([]notify.Message{notify.Fixed(true)}))
	})

	It("suppresses the fix message behind a toggle", func() {
		out := step(presses(input.FixCamera, input.Toggle))
		Expect(out.Messages).To(Equal([]notify.Message{notify.Enabled(true)}))
		Expect(cam.Fixed()).To(BeTrue())
	})

	It("rotates every step a key is held, regardless of notifications", func() {
		held := input.NewFrame([]input.Action{input.Toggle}, input.RotateLeft, input.RotateUp)

		out := step(held)
		Expect(out.Messages).To(HaveLen(1))
		Expect(cam.CurrentFixedYaw()).To(Equal(float32(3)))
		Expect(cam.CurrentFixedPitch()).To(Equal(float32(2)))

		step(input.NewFrame(nil, input.RotateLeft, input.RotateUp))
		Expect(cam.CurrentFixedYaw()).To(Equal(float32(6)))
		Expect(cam.CurrentFixedPitch()).To(Equal(float32(4)))
		Expect(cam.FixedYaw(0.5)).To(BeNumerically("~", 4.5, 1e-4))

		step(input.NewFrame(nil, input.RotateRight, input.RotateDown, input.RotateDown))
		Expect(cam.CurrentFixedYaw()).To(Equal(float32(3)))
		Expect(cam.CurrentFixedPitch()).To(Equal(float32(2)))
	})

	It("opens the options once however many edges arrive", func() {
		out := step(presses(input.OpenOptions, input.OpenOptions, input.Toggle))
		Expect(out.OpenOptions).To(BeTrue())
		Expect(opened).To(Equal(1))
		Expect(out.Messages).To(HaveLen(1))
	})

	It("works without a sink or opener", func() {
		bare := dispatch.New(view)
		cam.Tick()
		out := bare.Dispatch(cam, presses(input.OpenOptions, input.Toggle))
		Expect(out.OpenOptions).To(BeTrue())
		Expect(out.Messages).To(HaveLen(1))
	})
})
