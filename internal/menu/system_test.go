package menu

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dialnav/internal/gfx"
	"github.com/san-kum/dialnav/internal/physics"
)

type recordingObserver struct {
	NopObserver
	activated []string
	pushes    []bool
	pressed   int
	activates int
}

func (o *recordingObserver) MenuActivated(m *Menu, push bool) {
	o.activated = append(o.activated, m.Name)
	o.pushes = append(o.pushes, push)
}

func (o *recordingObserver) ItemPressed(*Menu, *Item)   { o.pressed++ }
func (o *recordingObserver) ItemActivated(*Menu, *Item) { o.activates++ }

var _ = Describe("System", func() {
	var (
		h    *harness
		log  *eventLog
		obs  *recordingObserver
		root *Menu
		sub  *Menu
		side *Menu
	)

	BeforeEach(func() {
		h = newHarness(DefaultOptions())
		log = &eventLog{}
		obs = &recordingObserver{}
		h.ms.SetObserver(obs)

		root = trackedMenu(log, "root", 3)
		sub = trackedMenu(log, "sub", 2)
		side = trackedMenu(log, "side", 4)
		Expect(root.Item(0).SetSubmenu(sub)).To(Succeed())
		Expect(root.Item(1).SetSubmenu(side)).To(Succeed())

		h.ms.ActivateMenu(root)
		h.run(0.5)
	})

	It("starts idle on the root with an empty stack", func() {
		Expect(h.ms.ActiveMenu()).To(BeIdenticalTo(root))
		Expect(h.ms.Transitioning()).To(BeFalse())
		Expect(h.ms.StackDepth()).To(Equal(0))
		Expect(h.ms.ActiveItem()).To(BeIdenticalTo(root.Item(0)))
		Expect(root.Position.Get()).To(Equal(gfx.Vec2{}))
	})

	Describe("the back-stack", func() {
		It("returns to the same menu in the same state", func() {
			selected := root.ActiveItem()
			angle := root.Rotation.Angle
			Expect(selected).To(BeIdenticalTo(root.Item(0)))

			h.ms.ActivateItem()
			Expect(h.ms.ActiveMenu()).To(BeIdenticalTo(sub))
			Expect(h.ms.StackDepth()).To(Equal(1))

			h.run(0.4)
			Expect(h.ms.Transitioning()).To(BeFalse())
			h.ms.Turn(3)
			h.run(0.6)

			h.ms.ActivatePreviousMenu()
			Expect(h.ms.ActiveMenu()).To(BeIdenticalTo(root))
			Expect(h.ms.StackDepth()).To(Equal(0))

			h.run(0.4)
			Expect(h.ms.Transitioning()).To(BeFalse())
			Expect(root.ActiveItem()).To(BeIdenticalTo(selected))
			Expect(root.Rotation.Angle).To(BeNumerically("~", angle, 1e-9))
			Expect(root.Position.Get()).To(Equal(gfx.Vec2{}))
			Expect(obs.pushes).To(Equal([]bool{true, true, false}))
		})

		It("unwinds nested menus in reverse order", func() {
			h.ms.ActivateMenu(sub)
			h.run(0.4)
			h.ms.ActivateMenu(side)
			h.run(0.4)
			Expect(h.ms.StackDepth()).To(Equal(2))

			h.ms.ActivatePreviousMenu()
			h.run(0.4)
			Expect(h.ms.ActiveMenu()).To(BeIdenticalTo(sub))

			h.ms.ActivatePreviousMenu()
			h.run(0.4)
			Expect(h.ms.ActiveMenu()).To(BeIdenticalTo(root))
			Expect(h.ms.StackDepth()).To(Equal(0))
		})

		It("ignores back with an empty stack", func() {
			h.ms.ActivatePreviousMenu()
			Expect(h.ms.ActiveMenu()).To(BeIdenticalTo(root))
			Expect(h.ms.Transitioning()).To(BeFalse())
			Expect(obs.activated).To(HaveLen(1))
		})
	})

	Describe("transitions", func() {
		It("drops activations while a menu is sliding out", func() {
			h.ms.ActivateMenu(sub)
			Expect(h.ms.Transitioning()).To(BeTrue())
			Expect(h.ms.DeactivatingMenu()).To(BeIdenticalTo(root))

			h.ms.ActivateMenu(side)
			h.ms.ActivatePreviousMenu()
			Expect(h.ms.ActiveMenu()).To(BeIdenticalTo(sub))
			Expect(h.ms.StackDepth()).To(Equal(1))
			Expect(side.Position.Get()).To(Equal(gfx.Vec2{}))
			Expect(obs.activated).To(Equal([]string{"root", "sub"}))

			h.run(0.4)
			h.ms.ActivateMenu(side)
			Expect(h.ms.ActiveMenu()).To(BeIdenticalTo(side))
			Expect(h.ms.StackDepth()).To(Equal(2))
		})

		It("slides the outgoing menu off by one viewport width", func() {
			h.ms.ActivateMenu(sub)
			Expect(sub.Position.Get().X).To(Equal(h.ms.Options().Viewport.X))

			h.run(0.4)
			Expect(root.Position.Get()).To(Equal(gfx.V(-h.ms.Options().Viewport.X, 0)))
			Expect(sub.Position.Get()).To(Equal(gfx.Vec2{}))
		})

		It("ignores re-activating the active menu", func() {
			h.ms.ActivateMenu(root)
			Expect(h.ms.Transitioning()).To(BeFalse())
			Expect(h.ms.StackDepth()).To(Equal(0))
		})

		It("draws both menus only while transitioning", func() {
			var drawn []string
			for _, m := range []*Menu{root, sub} {
				m.Draw = func(p gfx.Painter, m *Menu) { drawn = append(drawn, m.Name) }
			}

			h.ms.ActivateMenu(sub)
			h.tick()
			h.ms.Draw(gfx.NewRecorder())
			Expect(drawn).To(Equal([]string{"root", "sub"}))

			drawn = nil
			h.run(0.4)
			h.ms.Draw(gfx.NewRecorder())
			Expect(drawn).To(Equal([]string{"sub"}))
		})
	})

	Describe("IndicatePreviousMenu", func() {
		It("does nothing at the root", func() {
			h.ms.IndicatePreviousMenu()
			h.run(0.1)
			Expect(root.Position.Get()).To(Equal(gfx.Vec2{}))
		})

		It("nudges the active menu and springs back", func() {
			h.ms.ActivateMenu(sub)
			h.run(0.4)

			h.ms.IndicatePreviousMenu()
			h.run(0.2)
			Expect(sub.Position.Get().X).To(BeNumerically(">", 5))

			h.run(0.3)
			Expect(sub.Position.Get()).To(Equal(gfx.Vec2{}))
			Expect(h.ms.ActiveMenu()).To(BeIdenticalTo(sub))
			Expect(h.ms.StackDepth()).To(Equal(1))
		})
	})

	Describe("buttons", func() {
		It("ignores press and activate with nothing selected", func() {
			h.ms.Turn(0.1)
			log.events = nil

			h.ms.PressItem()
			h.ms.ReleaseItem()
			h.ms.ActivateItem()
			h.ms.ReleaseAndActivateItem()

			Expect(log.events).To(BeEmpty())
			Expect(obs.pressed).To(Equal(0))
			Expect(obs.activates).To(Equal(0))
			Expect(h.ms.ActiveMenu()).To(BeIdenticalTo(root))
		})

		It("only activates on release of a pressed item", func() {
			h.ms.ReleaseAndActivateItem()
			Expect(log.countEvent("activate")).To(Equal(0))

			h.ms.PressItem()
			h.ms.ReleaseAndActivateItem()
			Expect(log.events).To(ContainElements("press:root0", "release:root0", "activate:root0"))
			Expect(h.ms.ActiveMenu()).To(BeIdenticalTo(sub))
		})

		It("treats missing handlers as no-ops", func() {
			it := root.Item(2)
			it.Handlers = Handlers{}
			h.ms.Turn(slots(h.ms.Options(), 2))
			h.run(1)
			Expect(h.ms.ActiveItem()).To(BeIdenticalTo(it))

			Expect(func() {
				h.ms.PressItem()
				h.ms.ReleaseAndActivateItem()
				h.ms.Draw(gfx.NewRecorder())
			}).NotTo(Panic())
			Expect(h.ms.ActiveMenu()).To(BeIdenticalTo(root))
		})

		It("does not open anything from a leaf", func() {
			h.ms.ActivateMenu(sub)
			h.run(0.8)
			Expect(sub.ActiveItem()).NotTo(BeNil())

			h.ms.ActivateItem()
			Expect(h.ms.ActiveMenu()).To(BeIdenticalTo(sub))
			Expect(h.ms.StackDepth()).To(Equal(1))
		})
	})
})

// slots is the dial amount whose momentum carries an idle menu n slots.
func slots(opts Options, n int) float64 {
	return float64(n) * physics.TwoPi * opts.FrictionIdle
}
