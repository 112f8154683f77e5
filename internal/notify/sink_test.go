package notify_test

import (
	"github.com/mgnsk/orthocam/internal/notify"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

var _ = Describe("messages", func() {
	It("formats scale with one decimal", func() {
		Expect(notify.Scale(3.63, 10000)).To(Equal(notify.Message{
			Key:  notify.KeyScale,
			Args: []string{"3.6", "10000.0"},
		}))
	})

	DescribeTable("translation",
		func(m notify.Message, expected string) {
			Expect(notify.EnUS.Translate(m)).To(Equal(expected))
		},
		Entry("enabled", notify.Enabled(true), "Orthographic camera enabled"),
		Entry("disabled", notify.Enabled(false), "Orthographic camera disabled"),
		Entry("fixed", notify.Fixed(true), "Camera fixed"),
		Entry("unfixed", notify.Fixed(false), "Camera unfixed"),
		Entry("scale", notify.Scale(1.5, 2), "Scale: 1.5, 2.0"),
		Entry("unknown key", notify.New("some.key", "a", "b"), "some.key a b"),
		Entry("unknown bare key", notify.New("some.key"), "some.key"),
		Entry("argument mismatch", notify.New(notify.KeyScale, "1.0"), "Scale: %s, %s"),
	)

	It("translates bare keys", func() {
		Expect(notify.EnUS.Text("orthocamera.key.toggle")).To(Equal("Toggle orthographic camera"))
	})
})

var _ = Describe("sinks", func() {
	It("queues until drained", func() {
		q := notify.NewQueueSink()
		q.Append(notify.Enabled(true))
		q.Append(notify.Fixed(false))

		Expect(q.Drain()).To(Equal([]notify.Message{notify.Enabled(true), notify.Fixed(false)}))
		Expect(q.Drain()).To(BeEmpty())
	})

	It("transforms before forwarding", func() {
		q := notify.NewQueueSink()
		sink := notify.NewTransformSink(q, func(m *notify.Message) {
			m.Key = "prefixed." + m.Key
		})
		sink.Append(notify.Enabled(true))

		Expect(q.Drain()).To(ConsistOf(notify.New("prefixed." + notify.KeyEnabled)))
	})

	It("fans out to every sink", func() {
		a, b := notify.NewQueueSink(), notify.NewQueueSink()
		var seen []string
		notify.MultiSink{a, b, notify.SinkFunc(func(m notify.Message) {
			seen = append(seen, m.Key)
		})}.Append(notify.Fixed(true))

		Expect(a.Drain()).To(HaveLen(1))
		Expect(b.Drain()).To(HaveLen(1))
		Expect(seen).To(Equal([]string{notify.KeyFixed}))
	})

	It("logs translated text", func() {
		log, hook := test.NewNullLogger()
		notify.NewLogSink(log, notify.EnUS).Append(notify.Scale(2, 3))

		Expect(hook.LastEntry().Message).To(Equal("Scale: 2.0, 3.0"))
		Expect(hook.LastEntry().Level).To(Equal(logrus.InfoLevel))
		Expect(hook.LastEntry().Data).To(HaveKeyWithValue("key", notify.KeyScale))
	})
})
