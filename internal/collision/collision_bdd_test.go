package collision_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/collide/internal/collision"
	"github.com/san-kum/collide/internal/dynamo"
	"github.com/san-kum/collide/internal/geom"
	"github.com/san-kum/collide/internal/shapes"
)

var _ = Describe("Collision", func() {
	var (
		v1, v2 dynamo.Velocity
		rest   dynamo.Acceleration
	)

	BeforeEach(func() {
		v1 = dynamo.NewVelocity(5, 5, 0)
		v2 = dynamo.NewVelocity(-5, 5, 0)
		rest = dynamo.NewAcceleration(0, 0, 0)
	})

	Context("when two equal circles touch along the x axis", func() {
		var c collision.Collision[shapes.Circle]

		BeforeEach(func() {
			c = collision.New(
				shapes.NewCircleAt(5, 0, 2.5, v1, rest),
				shapes.NewCircleAt(0, 0, 2.5, v2, rest),
			)
		})

		It("classifies exact tangency as a collision", func() {
			Expect(c.IsCollision()).To(BeTrue())
			Expect(c.Contacts().Type).To(Equal(geom.Intersecting))
		})

		It("exchanges the linear velocities", func() {
			n1, n2 := c.NewVelocities()
			Expect(n1).To(Equal(v2))
			Expect(n2).To(Equal(v1))
		})

		It("leaves the stored velocities untouched", func() {
			c.NewVelocities()
			g1, g2 := c.Velocities()
			Expect(g1).To(Equal(v1))
			Expect(g2).To(Equal(v2))
		})
	})

	Context("when the circles are apart", func() {
		It("passes the velocities through", func() {
			c := collision.New(
				shapes.NewCircleAt(5, 0, 2.5, v1, rest),
				shapes.NewCircleAt(-5, 0, 2.5, v2, rest),
			)
			Expect(c.IsCollision()).To(BeFalse())

			n1, n2 := c.NewVelocities()
			Expect(n1).To(Equal(v1))
			Expect(n2).To(Equal(v2))
		})

		It("reports the diagonal pair as not intersecting", func() {
			c := collision.New(
				shapes.NewCircleAt(10, 10, 2.5, v1, rest),
				shapes.NewCircleAt(5, 5, 2.5, v2, rest),
			)
			contacts := c.Contacts()
			Expect(contacts.Type).To(Equal(geom.NoIntersection))
			Expect(contacts.Points).To(BeNil())
		})
	})

	Context("when one circle contains the other", func() {
		It("surfaces NaN contacts and an explicit error", func() {
			c := collision.New(
				shapes.NewCircleAt(0, 0, 5, v1, rest),
				shapes.NewCircleAt(1, 0, 1, v2, rest),
			)
			p0, _, ok := c.Contacts().Pair()
			Expect(ok).To(BeTrue())
			Expect(math.IsNaN(p0.X)).To(BeTrue())

			_, err := c.Resolve()
			Expect(err).To(MatchError(dynamo.ErrDegenerateGeometry))
		})
	})

	DescribeTable("conserves momentum for axis-aligned impacts",
		func(r1, r2, sep float64) {
			c := collision.New(
				shapes.NewCircleAt(0, 0, r1, dynamo.NewVelocity(3, 0, 0), rest),
				shapes.NewCircleAt(sep, 0, r2, dynamo.NewVelocity(-1, 0, 0), rest),
			)
			res, err := c.Resolve()
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Collided).To(BeTrue())

			px0, _ := res.MomentumBefore()
			px1, _ := res.MomentumAfter()
			Expect(px1).To(BeNumerically("~", px0, 1e-9))
			Expect(res.EnergyAfter()).To(BeNumerically("~", res.EnergyBefore(), 1e-9))
		},
		Entry("equal radii", 1.0, 1.0, 1.5),
		Entry("heavy first", 3.0, 1.0, 3.5),
		Entry("heavy second", 0.5, 2.0, 2.0),
	)
})
