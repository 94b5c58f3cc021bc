package node

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/art/arena"
)

func TestNode48(t *testing.T) {
	Convey("Given a Node48", t, func() {
		a := &arena.Arena{}
		n := NewNode48(a)

		Convey("Basic properties", func() {
			So(n.Kind(), ShouldEqual, KindNode48)
			So(n.Full(), ShouldBeFalse)
		})

		Convey("Adding 48 children fills it", func() {
			for i := 0; i < 48; i++ {
				n.AddChild(a, byte(i), NewLeaf(a, []byte{byte(i)}, nil))
			}
			So(n.NumChildren(), ShouldEqual, 48)
			So(n.Full(), ShouldBeTrue)

			for i := 0; i < 48; i++ {
				So(n.FindChild(byte(i)), ShouldNotBeNil)
			}
			So(n.FindChild(200), ShouldBeNil)
		})

		Convey("Removing a child frees its slot for reuse", func() {
			for i := 0; i < 48; i++ {
				n.AddChild(a, byte(i), NewLeaf(a, []byte{byte(i)}, nil))
			}
			n.RemoveChild(a, 10)
			So(n.NumChildren(), ShouldEqual, 47)
			So(n.FindChild(10), ShouldBeNil)

			n.AddChild(a, 200, NewLeaf(a, []byte{200}, nil))
			So(n.NumChildren(), ShouldEqual, 48)
			So(n.FindChild(200), ShouldNotBeNil)
		})

		Convey("Growing to Node256 preserves children", func() {
			for i := 0; i < 48; i++ {
				n.AddChild(a, byte(i), NewLeaf(a, []byte{byte(i)}, nil))
			}

			grown := n.Grow(a)

			So(grown.Kind(), ShouldEqual, KindNode256)
			So(grown.NumChildren(), ShouldEqual, 48)
			for i := 0; i < 48; i++ {
				So(grown.FindChild(byte(i)), ShouldNotBeNil)
			}
		})

		Convey("Shrinking below 16 children demotes to Node16", func() {
			for i := 0; i < 17; i++ {
				n.AddChild(a, byte(i), NewLeaf(a, []byte{byte(i)}, nil))
			}
			for i := 16; i >= 2; i-- {
				n.RemoveChild(a, byte(i))
			}
			So(n.NumChildren(), ShouldEqual, 2)

			shrunk := n.Shrink(a)

			So(shrunk.Kind(), ShouldEqual, KindNode16)
			So(shrunk.NumChildren(), ShouldEqual, 2)
			So(shrunk.FindChild(0), ShouldNotBeNil)
			So(shrunk.FindChild(1), ShouldNotBeNil)
		})

		Convey("EachChild visits children in ascending key order regardless of insertion order", func() {
			for _, b := range []byte{5, 1, 9, 3} {
				n.AddChild(a, b, NewLeaf(a, []byte{b}, nil))
			}

			var seen []byte
			n.EachChild(func(child Node) bool {
				seen = append(seen, child.(*Leaf).Key()[0])
				return true
			})

			So(seen, ShouldResemble, []byte{1, 3, 5, 9})
		})
	})
}
