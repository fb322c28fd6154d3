package sim

import (
	"errors"

	gomock "go.uber.org/mock/gomock"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SerialEngine", func() {
	var (
		mockCtrl *gomock.Controller
		engine   *SerialEngine
		trace    []string
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		engine = NewSerialEngine()
		trace = nil
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	record := func(name string) Action {
		return func(_ any, s *Scheduler) error {
			trace = append(trace, name)
			return nil
		}
	}

	It("should dispatch same-time, same-priority events in schedule order",
		func() {
			scheduler := engine.Scheduler()
			_, _ = scheduler.ScheduleAt(10, 0, record("A"))
			_, _ = scheduler.ScheduleAt(10, 0, record("B"))
			_, _ = scheduler.ScheduleAt(10, 0, record("C"))

			Expect(engine.Run(nil)).To(Succeed())
			Expect(trace).To(Equal([]string{"A", "B", "C"}))
			Expect(engine.CurrentTime()).To(Equal(VTimeInSec(10)))
		})

	It("should dispatch lower priority values first at equal times", func() {
		scheduler := engine.Scheduler()
		_, _ = scheduler.ScheduleAt(5, 1, record("P1"))
		_, _ = scheduler.ScheduleAt(5, 0, record("P0"))

		Expect(engine.Run(nil)).To(Succeed())
		Expect(trace).To(Equal([]string{"P0", "P1"}))
	})

	It("should run events scheduled by other events", func() {
		scheduler := engine.Scheduler()
		_, _ = scheduler.ScheduleAt(2, 0, func(_ any, s *Scheduler) error {
			trace = append(trace, "first")
			_, err := s.ScheduleAt(3, 0, record("second"))
			return err
		})

		Expect(engine.Run(nil)).To(Succeed())
		Expect(trace).To(Equal([]string{"first", "second"}))
	})

	It("should fire events scheduled at the current time after the "+
		"current action returns", func() {
		scheduler := engine.Scheduler()
		_, _ = scheduler.ScheduleAt(2, 0, func(_ any, s *Scheduler) error {
			trace = append(trace, "during")
			_, err := s.ScheduleAt(s.CurrentTime(), 0, record("after"))
			return err
		})

		Expect(engine.Run(nil)).To(Succeed())
		Expect(trace).To(Equal([]string{"during", "after"}))
		Expect(engine.CurrentTime()).To(Equal(VTimeInSec(2)))
	})

	It("should pass the model state to actions", func() {
		type state struct{ counter int }
		s := &state{}

		scheduler := engine.Scheduler()
		_, _ = scheduler.ScheduleAt(1, 0, func(st any, _ *Scheduler) error {
			st.(*state).counter++
			return nil
		})

		Expect(engine.Run(s)).To(Succeed())
		Expect(s.counter).To(Equal(1))
	})

	It("should not run cancelled events", func() {
		scheduler := engine.Scheduler()
		handle, _ := scheduler.ScheduleAt(10, 0, record("A"))
		_, _ = scheduler.ScheduleAt(5, 0, func(_ any, s *Scheduler) error {
			trace = append(trace, "B")
			s.Cancel(handle)
			return nil
		})

		Expect(engine.Run(nil)).To(Succeed())
		Expect(trace).To(Equal([]string{"B"}))
	})

	It("should abort on action failure and surface the time", func() {
		modelErr := errors.New("model logic failed")
		scheduler := engine.Scheduler()
		_, _ = scheduler.ScheduleAt(5, 0, func(_ any, _ *Scheduler) error {
			return modelErr
		})
		_, _ = scheduler.ScheduleAt(6, 0, record("never"))

		err := engine.Run(nil)

		var actionErr *ActionError
		Expect(errors.As(err, &actionErr)).To(BeTrue())
		Expect(actionErr.Now).To(Equal(VTimeInSec(5)))
		Expect(errors.Is(err, modelErr)).To(BeTrue())
		Expect(trace).To(BeEmpty())
	})

	It("should stop dispatching once Stop is called", func() {
		scheduler := engine.Scheduler()
		_, _ = scheduler.ScheduleAt(1, 0, func(_ any, _ *Scheduler) error {
			trace = append(trace, "A")
			engine.Stop()
			return nil
		})
		_, _ = scheduler.ScheduleAt(2, 0, record("B"))

		Expect(engine.Run(nil)).To(Succeed())
		Expect(trace).To(Equal([]string{"A"}))
		Expect(engine.Stopped()).To(BeTrue())
	})

	It("should count dispatched events", func() {
		scheduler := engine.Scheduler()
		_, _ = scheduler.ScheduleAt(1, 0, record("A"))
		_, _ = scheduler.ScheduleAt(2, 0, record("B"))

		Expect(engine.Run(nil)).To(Succeed())
		Expect(engine.EventCount()).To(Equal(int64(2)))
	})

	It("should invoke hooks around each dispatch", func() {
		hook := NewMockHook(mockCtrl)
		engine.AcceptHook(hook)

		scheduler := engine.Scheduler()
		handle, _ := scheduler.ScheduleAt(1, 0, record("A"))

		before := hook.EXPECT().
			Func(gomock.Cond(func(ctx HookCtx) bool {
				return ctx.Pos == HookPosBeforeEvent &&
					ctx.Item.(*Event).ID() == handle.ID()
			}))
		hook.EXPECT().
			Func(gomock.Cond(func(ctx HookCtx) bool {
				return ctx.Pos == HookPosAfterEvent
			})).
			After(before)

		Expect(engine.Run(nil)).To(Succeed())
	})
})
