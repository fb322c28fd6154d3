package sim

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("EventQueueImpl", func() {
	var (
		queue *EventQueueImpl
		ids   int64
	)

	newEvent := func(t VTimeInSec, priority int) *Event {
		ids++
		return &Event{
			id:       ids,
			time:     t,
			priority: priority,
			alive:    true,
		}
	}

	BeforeEach(func() {
		queue = NewEventQueue()
		ids = 0
	})

	It("should pop in time order", func() {
		numEvents := 100
		for i := 0; i < numEvents; i++ {
			queue.Push(newEvent(VTimeInSec(rand.Float64()/1e8), 0))
		}

		now := VTimeInSec(-1)
		for i := 0; i < numEvents; i++ {
			event := queue.Pop()
			Expect(event.Time() >= now).To(BeTrue())
			now = event.Time()
		}
	})

	It("should break time ties by priority, then by id", func() {
		late := newEvent(10, 0)
		lowPriority := newEvent(5, 2)
		highPriority := newEvent(5, -1)
		firstScheduled := newEvent(5, 0)
		secondScheduled := newEvent(5, 0)

		queue.Push(late)
		queue.Push(lowPriority)
		queue.Push(secondScheduled)
		queue.Push(highPriority)
		queue.Push(firstScheduled)

		Expect(queue.Pop()).To(BeIdenticalTo(highPriority))
		Expect(queue.Pop()).To(BeIdenticalTo(firstScheduled))
		Expect(queue.Pop()).To(BeIdenticalTo(secondScheduled))
		Expect(queue.Pop()).To(BeIdenticalTo(lowPriority))
		Expect(queue.Pop()).To(BeIdenticalTo(late))
	})

	It("should not pop in insertion order at equal keys", func() {
		a := newEvent(3, 0)
		b := newEvent(3, 0)
		c := newEvent(3, 0)

		queue.Push(c)
		queue.Push(a)
		queue.Push(b)

		Expect(queue.Pop()).To(BeIdenticalTo(a))
		Expect(queue.Pop()).To(BeIdenticalTo(b))
		Expect(queue.Pop()).To(BeIdenticalTo(c))
	})

	It("should skip cancelled events on pop", func() {
		a := newEvent(1, 0)
		b := newEvent(2, 0)
		c := newEvent(3, 0)

		queue.Push(a)
		queue.Push(b)
		queue.Push(c)

		queue.Cancel(a.ID())
		queue.Cancel(b.ID())

		Expect(queue.Len()).To(Equal(1))
		Expect(queue.Pop()).To(BeIdenticalTo(c))
		Expect(queue.Pop()).To(BeNil())
	})

	It("should skip cancelled events on peek", func() {
		a := newEvent(1, 0)
		b := newEvent(2, 0)

		queue.Push(a)
		queue.Push(b)

		queue.Cancel(a.ID())

		Expect(queue.Peek()).To(BeIdenticalTo(b))
		Expect(queue.Pop()).To(BeIdenticalTo(b))
	})

	It("should ignore cancelling unknown or fired events", func() {
		a := newEvent(1, 0)
		queue.Push(a)

		queue.Cancel(999)
		Expect(queue.Len()).To(Equal(1))

		Expect(queue.Pop()).To(BeIdenticalTo(a))
		queue.Cancel(a.ID())
		Expect(queue.Len()).To(Equal(0))
	})

	It("should ignore repeated cancellation", func() {
		a := newEvent(1, 0)
		b := newEvent(2, 0)
		queue.Push(a)
		queue.Push(b)

		queue.Cancel(a.ID())
		queue.Cancel(a.ID())

		Expect(queue.Len()).To(Equal(1))
		Expect(queue.Pop()).To(BeIdenticalTo(b))
	})
})
